package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/invoicechaser/lead-api/internal/entity"
)

// SMTPSender delivers notifications over plain SMTP for deployments
// without a SendGrid account. SMTP gives no provider-rejection signal, so
// every failure here is a transport failure.
type SMTPSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func NewSMTPSender(host string, port int, user, password, from, to string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg entity.NotificationMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	// gomail has no deadline support of its own; bound the whole
	// dial-and-send with the caller's context. The buffered channel lets
	// the goroutine finish after a timeout without blocking.
	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	}
}
