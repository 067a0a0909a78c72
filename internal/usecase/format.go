package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/invoicechaser/lead-api/internal/entity"
)

// Format renders the notification email for a validated lead. It is pure
// and total: identical inputs and timestamp produce byte-identical output,
// and no ValidatedLead can make it fail.
//
// Empty optional fields render as an empty value after their label, the
// same convention the lead form emails have always used.
func Format(lead entity.ValidatedLead, ts time.Time, meta entity.RequestMeta) entity.NotificationMessage {
	subject := fmt.Sprintf("New lead: %s (%s)", lead.Name, lead.Email)
	if lead.Company != "" {
		subject += " - " + lead.Company
	}

	submitted := lead.SubmittedAt
	if submitted == "" {
		submitted = ts.UTC().Format(time.RFC3339)
	}

	userAgent := meta.UserAgent
	if userAgent == "" {
		userAgent = lead.UserAgent
	}

	lines := []string{
		"New InvoiceChaser lead",
		"----------------------",
		"Submitted at (UTC): " + submitted,
		"Source: " + lead.Source,
		"Page URL: " + lead.PageURL,
		"",
		"Name: " + lead.Name,
		"Company: " + lead.Company,
		"Email: " + lead.Email,
		"Invoicing system: " + lead.System,
		"Invoice volume/month: " + lead.Volume,
		"",
		"Message:",
		lead.Message,
		"",
		"Remote IP: " + meta.RemoteIP,
		"User Agent:",
		userAgent,
	}

	return entity.NotificationMessage{
		Subject: subject,
		Body:    strings.Join(lines, "\n"),
	}
}
