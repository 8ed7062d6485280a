package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/service/webhook"
)

type webhookService interface {
	Handle(ctx context.Context, businessID uuid.UUID, ev dto.VapiEvent) (*webhook.Result, error)
}

// WebhookHandler receives voice platform events.
type WebhookHandler struct {
	svc webhookService
	log *slog.Logger
}

func NewWebhookHandler(svc webhookService, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{svc: svc, log: logger.With("handler", "webhook")}
}

// Vapi handles POST /webhooks/vapi/{businessId}. The platform adds fields
// to its payloads over time, so unknown fields are accepted.
func (h *WebhookHandler) Vapi(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ev, err := dto.DecodeLenient[dto.VapiEvent](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Handle(r.Context(), businessID, ev)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
