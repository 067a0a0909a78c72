package mail

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/invoicechaser/lead-api/internal/entity"
)

// RejectionError means the provider was reachable but declined the
// message. Anything else coming out of a sender is a transport failure.
type RejectionError struct {
	StatusCode int
	Body       string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("provider rejected message with status %d", e.StatusCode)
}


// SendGridSender delivers notifications through the SendGrid HTTP API.
// FROM_EMAIL must be a verified sender in SendGrid.
type SendGridSender struct {
	client *sendgrid.Client
	from   string
	to     string
}

func NewSendGridSender(apiKey, from, to string) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg entity.NotificationMessage) error {
	from := sgmail.NewEmail("", s.from)
	to := sgmail.NewEmail("", s.to)
	m := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.Body)

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}

	// SendGrid answers 202 Accepted on success
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return &RejectionError{StatusCode: resp.StatusCode, Body: resp.Body}
	}
	return nil
}
