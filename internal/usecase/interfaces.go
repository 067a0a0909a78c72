package usecase

import (
	"context"

	"github.com/invoicechaser/lead-api/internal/entity"
)

// Notifier delivers a formatted message to the configured support
// recipient. Implementations report provider-level rejection with
// mail.RejectionError; any other error is a transport failure.
type Notifier interface {
	Send(ctx context.Context, msg entity.NotificationMessage) error
}

// Recorder appends one audit record per accepted submission. Append errors
// are diagnostic only and never reach the caller of the service.
type Recorder interface {
	Append(ctx context.Context, rec entity.LogRecord) error
}


// MultiRecorder fans one record out to several recorders. The first error
// is returned after every recorder has been tried.
type MultiRecorder []Recorder

func (m MultiRecorder) Append(ctx context.Context, rec entity.LogRecord) error {
	var first error
	for _, r := range m {
		if err := r.Append(ctx, rec); err != nil && first == nil {
			first = err
		}
	}
	return first
}
