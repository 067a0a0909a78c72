package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/invoicechaser/lead-api/internal/entity"
)

const DefaultNotifyTimeout = 10 * time.Second


type SubmitLeadInput struct {
	Payload map[string]any
	Meta    entity.RequestMeta
}

type SubmitLeadOutput struct {
	Lead   entity.ValidatedLead
	SentAt time.Time
}


// SubmitLeadUseCase orchestrates one submission: validate, best-effort
// record, format, notify. The recorder may be nil (recording disabled);
// its failures are logged and swallowed. The notifier must be set by the
// caller; notify failures always surface.
type SubmitLeadUseCase struct {
	Schema   entity.Schema
	Recorder Recorder
	Notifier Notifier
	Timeout  time.Duration
	Logger   *slog.Logger

	now func() time.Time
}

func NewSubmitLeadUseCase(
	schema entity.Schema,
	recorder Recorder,
	notifier Notifier,
	timeout time.Duration,
	logger *slog.Logger,
) *SubmitLeadUseCase {
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmitLeadUseCase{
		Schema:   schema,
		Recorder: recorder,
		Notifier: notifier,
		Timeout:  timeout,
		Logger:   logger,
		now:      time.Now,
	}
}


func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (SubmitLeadOutput, error) {
	lead, fieldErrs := Validate(input.Payload, uc.Schema)
	if len(fieldErrs) > 0 {
		return SubmitLeadOutput{}, &ValidationFailure{Errors: fieldErrs}
	}

	ts := uc.now().UTC()

	if uc.Recorder != nil {
		rec := entity.LogRecord{
			Version:   1,
			ID:        uuid.NewString(),
			Timestamp: ts,
			Lead:      lead,
			RemoteIP:  input.Meta.RemoteIP,
			UserAgent: input.Meta.UserAgent,
		}
		if err := uc.Recorder.Append(ctx, rec); err != nil {
			// Recording is best-effort; a failed append must never change
			// the outcome of the submission.
			uc.Logger.Error("lead record append failed", "error", err, "id", rec.ID)
		}
	}

	msg := Format(lead, ts, input.Meta)

	sendCtx, cancel := context.WithTimeout(ctx, uc.Timeout)
	defer cancel()

	if err := uc.Notifier.Send(sendCtx, msg); err != nil {
		return SubmitLeadOutput{}, fmt.Errorf("notify: %w", err)
	}

	uc.Logger.Info("lead forwarded", "name", lead.Name, "email", lead.Email)
	return SubmitLeadOutput{Lead: lead, SentAt: ts}, nil
}
