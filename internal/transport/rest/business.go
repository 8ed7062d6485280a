package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
)

type businessService interface {
	List(ctx context.Context) ([]domain.Business, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	Create(ctx context.Context, req dto.CreateBusinessRequest) (*domain.Business, error)
}

// BusinessHandler serves /businesses.
type BusinessHandler struct {
	svc businessService
	log *slog.Logger
}

func NewBusinessHandler(svc businessService, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{svc: svc, log: logger.With("handler", "business")}
}

// List handles GET /businesses.
func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPage(mapSlice(items, toBusinessResponse), len(items)))
}

// Get handles GET /businesses/{id}.
func (h *BusinessHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBusinessResponse(b))
}

// Create handles POST /businesses.
func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := dto.Decode[dto.CreateBusinessRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	b, err := h.svc.Create(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBusinessResponse(b))
}
