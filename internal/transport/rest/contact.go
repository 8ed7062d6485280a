package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/service/contact"
)

type contactService interface {
	List(ctx context.Context, f domain.ContactFilter) ([]domain.Contact, int, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	Create(ctx context.Context, req dto.CreateContactRequest) (*domain.Contact, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateContactRequest) (*domain.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListAppointments(ctx context.Context, id uuid.UUID, limit, offset int) ([]domain.Appointment, int, error)
	AddTag(ctx context.Context, contactID, tagID uuid.UUID) (*domain.Contact, error)
	RemoveTag(ctx context.Context, contactID, tagID uuid.UUID) error
	Import(ctx context.Context, businessID uuid.UUID, filename string, r io.Reader) (*domain.ImportResult, error)
	Export(ctx context.Context, businessID uuid.UUID) (*contact.ExportFile, error)
}

// ContactHandler serves /contacts.
type ContactHandler struct {
	svc       contactService
	maxUpload int64
	log       *slog.Logger
}

// NewContactHandler creates a ContactHandler. maxUpload bounds import files.
func NewContactHandler(svc contactService, maxUpload int64, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, maxUpload: maxUpload, log: logger.With("handler", "contact")}
}

// List handles GET /contacts?business_id=&search=&tag_id=&limit=&offset=.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseContactListQuery(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	items, total, err := h.svc.List(r.Context(), q.Filter())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPage(mapSlice(items, toContactResponse), total))
}

// Get handles GET /contacts/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContactResponse(c))
}

// Create handles POST /contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := dto.Decode[dto.CreateContactRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContactResponse(c))
}

// Update handles PATCH /contacts/{id}.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	req, err := dto.Decode[dto.UpdateContactRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContactResponse(c))
}

// Delete handles DELETE /contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Appointments handles GET /contacts/{id}/appointments.
func (h *ContactHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	q, err := dto.ParsePageQuery(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	items, total, err := h.svc.ListAppointments(r.Context(), id, q.Size(), q.Offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPage(mapSlice(items, toAppointmentResponse), total))
}

// AddTag handles POST /contacts/{id}/tags/{tagId}.
func (h *ContactHandler) AddTag(w http.ResponseWriter, r *http.Request) {
	id, tagID, err := contactTagIDs(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.AddTag(r.Context(), id, tagID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContactResponse(c))
}

// RemoveTag handles DELETE /contacts/{id}/tags/{tagId}.
func (h *ContactHandler) RemoveTag(w http.ResponseWriter, r *http.Request) {
	id, tagID, err := contactTagIDs(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.RemoveTag(r.Context(), id, tagID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Import handles POST /contacts/import, a multipart form with business_id
// and a CSV or XLSX "file".
func (h *ContactHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		handleError(h.log, w, r, uploadError(err, h.maxUpload))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	q, err := dto.ParseBusinessQuery(r.Form)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("file", "es requerido"))
		return
	}
	defer file.Close()

	result, err := h.svc.Import(r.Context(), q.BusinessUUID(), header.Filename, file)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Export handles GET /contacts/export?business_id=, answering with an XLSX file.
func (h *ContactHandler) Export(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseBusinessQuery(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	f, err := h.svc.Export(r.Context(), q.BusinessUUID())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(f.Data) //nolint:errcheck
}

func contactTagIDs(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	tagID, err := pathID(r, "tagId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return id, tagID, nil
}

// uploadError turns a multipart parse failure into a validation error.
func uploadError(err error, limit int64) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return domain.NewValidationError("file", fmt.Sprintf("supera el tamaño máximo de %d bytes", limit))
	}
	return domain.NewValidationError("body", "formulario multipart inválido")
}
