package mail

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/invoicechaser/lead-api/internal/entity"
)

// silentSMTPServer accepts connections but never sends the SMTP greeting,
// simulating a stalled provider.
func silentSMTPServer(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
		}
	}()

	return ln.Addr().(*net.TCPAddr).Port
}

func TestSMTPSenderHonorsContextDeadline(t *testing.T) {
	port := silentSMTPServer(t)
	sender := NewSMTPSender("127.0.0.1", port, "", "", "noreply@getinvoicechaser.com", "support@getinvoicechaser.com")

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := sender.Send(ctx, entity.NotificationMessage{Subject: "New lead", Body: "body"})
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, 2*time.Second, "send must return soon after the deadline")
}

func TestSMTPSenderCanceledContext(t *testing.T) {
	port := silentSMTPServer(t)
	sender := NewSMTPSender("127.0.0.1", port, "", "", "noreply@getinvoicechaser.com", "support@getinvoicechaser.com")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.Send(ctx, entity.NotificationMessage{Subject: "New lead", Body: "body"})
	assert.ErrorIs(t, err, context.Canceled)
}
