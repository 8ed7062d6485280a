package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
)

type tagService interface {
	List(ctx context.Context, businessID uuid.UUID) ([]domain.Tag, error)
	Create(ctx context.Context, req dto.CreateTagRequest) (*domain.Tag, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateTagRequest) (*domain.Tag, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TagHandler serves /tags.
type TagHandler struct {
	svc tagService
	log *slog.Logger
}

func NewTagHandler(svc tagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tag")}
}

// List handles GET /tags?business_id=.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseBusinessQuery(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	items, err := h.svc.List(r.Context(), q.BusinessUUID())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPage(mapSlice(items, toTagResponse), len(items)))
}

// Create handles POST /tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := dto.Decode[dto.CreateTagRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	t, err := h.svc.Create(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTagResponse(t))
}

// Update handles PATCH /tags/{id}.
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	req, err := dto.Decode[dto.UpdateTagRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	t, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagResponse(t))
}

// Delete handles DELETE /tags/{id}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
