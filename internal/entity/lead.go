package entity

import (
	"time"
)


// ValidatedLead is the trusted, normalized form of a lead submission.
// It is only ever constructed by the validator; every field is trimmed
// and optional fields default to "".
type ValidatedLead struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	System      string `json:"system"`
	Volume      string `json:"volume"`
	Message     string `json:"message"`
	Source      string `json:"source"`
	PageURL     string `json:"page_url"`
	SubmittedAt string `json:"submitted_at"`
	UserAgent   string `json:"user_agent"`
}


// RequestMeta carries capture-time metadata taken from the HTTP request.
type RequestMeta struct {
	RemoteIP  string
	UserAgent string
}


// NotificationMessage is the formatted email derived from a lead.
// It is never stored.
type NotificationMessage struct {
	Subject string
	Body    string
}


// LogRecord is one self-contained, append-only audit record per accepted
// submission. Written once, never read back by this service.
type LogRecord struct {
	Version   int           `json:"version"`
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Lead      ValidatedLead `json:"lead"`
	RemoteIP  string        `json:"remote_ip"`
	UserAgent string        `json:"user_agent"`
}
