package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/invoicechaser/lead-api/internal/entity"
	"github.com/invoicechaser/lead-api/internal/infra/http/middleware"
	"github.com/invoicechaser/lead-api/internal/infra/mail"
	"github.com/invoicechaser/lead-api/internal/usecase"
)


type LeadHandler struct {
	submitUC *usecase.SubmitLeadUseCase
	logger   *slog.Logger

	// notify configuration vars absent at startup; non-empty means every
	// submission short-circuits with a 500 naming them.
	missingConfig []string
}


func NewLeadHandler(uc *usecase.SubmitLeadUseCase, missingConfig []string, logger *slog.Logger) *LeadHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeadHandler{
		submitUC:      uc,
		logger:        logger,
		missingConfig: missingConfig,
	}
}


// HandlePreflight answers OPTIONS /api/lead with an empty 204 regardless
// of configuration state. CORS headers come from the router middleware.
func (h *LeadHandler) HandlePreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}


// Handle answers POST /api/lead.
func (h *LeadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); !strings.Contains(ct, "json") {
		middleware.RecordLead("malformed")
		writeJSON(w, http.StatusBadRequest, LeadResponse{
			OK:    false,
			Error: "Request must be JSON",
		})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		middleware.RecordLead("malformed")
		writeJSON(w, http.StatusBadRequest, LeadResponse{
			OK:    false,
			Error: "Request body is not a JSON object",
		})
		return
	}

	// Unmarshal over the whole body so trailing garbage is rejected; a
	// bare null decodes to a nil map and is malformed too.
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		middleware.RecordLead("malformed")
		writeJSON(w, http.StatusBadRequest, LeadResponse{
			OK:    false,
			Error: "Request body is not a JSON object",
		})
		return
	}

	// Deployment misconfiguration is not the client's fault; fail fast
	// before any validation-dependent work.
	if len(h.missingConfig) > 0 {
		middleware.RecordLead("misconfigured")
		writeJSON(w, http.StatusInternalServerError, LeadResponse{
			OK:    false,
			Error: "Server missing " + strings.Join(h.missingConfig, ", "),
		})
		return
	}

	input := usecase.SubmitLeadInput{
		Payload: payload,
		Meta: entity.RequestMeta{
			RemoteIP:  getClientIP(r),
			UserAgent: r.UserAgent(),
		},
	}

	output, err := h.submitUC.Execute(r.Context(), input)
	if err != nil {
		h.respondError(w, err)
		return
	}

	middleware.RecordLead("accepted")
	writeJSON(w, http.StatusOK, LeadResponse{
		OK: true,
		Ts: output.SentAt.Format(time.RFC3339),
	})
}


func (h *LeadHandler) respondError(w http.ResponseWriter, err error) {
	var vf *usecase.ValidationFailure
	if errors.As(err, &vf) {
		middleware.RecordLead("rejected")
		writeJSON(w, http.StatusBadRequest, LeadResponse{
			OK:       false,
			Error:    vf.Message(),
			Required: vf.Fields(),
		})
		return
	}

	var rej *mail.RejectionError
	if errors.As(err, &rej) {
		middleware.RecordLead("notify_rejected")
		middleware.RecordNotifyError("rejected")
		h.logger.Error("provider declined lead notification", "status", rej.StatusCode)
		writeJSON(w, http.StatusBadGateway, LeadResponse{
			OK:         false,
			Error:      "Email provider rejected the message",
			StatusCode: rej.StatusCode,
		})
		return
	}

	middleware.RecordLead("notify_failed")
	middleware.RecordNotifyError("transport")
	h.logger.Error("lead notification failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, LeadResponse{
		OK:     false,
		Error:  "Exception while sending email",
		Detail: err.Error(),
	})
}
