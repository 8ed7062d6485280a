package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/service/assistant"
)

type assistantService interface {
	GetConfig(ctx context.Context, businessID uuid.UUID) (*assistant.View, error)
	UpdateConfig(ctx context.Context, req dto.AssistantConfigRequest) (*assistant.View, error)
	Generate(ctx context.Context, req dto.BusinessRequest) (*assistant.View, error)
	Sync(ctx context.Context, req dto.BusinessRequest) (*assistant.View, error)
}

// AssistantHandler serves /assistant-configs.
type AssistantHandler struct {
	svc assistantService
	log *slog.Logger
}

func NewAssistantHandler(svc assistantService, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{svc: svc, log: logger.With("handler", "assistant")}
}

// Get handles GET /assistant-configs?business_id=. The first read creates
// the default configuration.
func (h *AssistantHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseBusinessQuery(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	v, err := h.svc.GetConfig(r.Context(), q.BusinessUUID())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssistantConfigResponse(v))
}

// Update handles PUT /assistant-configs.
func (h *AssistantHandler) Update(w http.ResponseWriter, r *http.Request) {
	req, err := dto.Decode[dto.AssistantConfigRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	v, err := h.svc.UpdateConfig(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssistantConfigResponse(v))
}

// Generate handles POST /assistant-configs/generate.
func (h *AssistantHandler) Generate(w http.ResponseWriter, r *http.Request) {
	req, err := dto.Decode[dto.BusinessRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	v, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssistantConfigResponse(v))
}

// Sync handles POST /assistant-configs/sync. The push to the voice platform
// runs in the background; the response carries the pending state.
func (h *AssistantHandler) Sync(w http.ResponseWriter, r *http.Request) {
	req, err := dto.Decode[dto.BusinessRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	v, err := h.svc.Sync(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, toAssistantConfigResponse(v))
}
