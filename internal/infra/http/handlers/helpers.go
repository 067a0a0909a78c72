package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// LeadResponse is the uniform JSON body for every /api/lead outcome.
type LeadResponse struct {
	OK         bool     `json:"ok"`
	Ts         string   `json:"ts,omitempty"`
	Error      string   `json:"error,omitempty"`
	Required   []string `json:"required,omitempty"`
	Detail     string   `json:"detail,omitempty"`
	StatusCode int      `json:"status_code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}


func getClientIP(r *http.Request) string {

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}
