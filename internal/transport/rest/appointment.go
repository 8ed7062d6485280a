package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
)

type appointmentService interface {
	Create(ctx context.Context, req dto.CreateAppointmentRequest) (*domain.Appointment, error)
	List(ctx context.Context, f domain.AppointmentFilter) ([]domain.Appointment, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateAppointmentStatusRequest) (*domain.Appointment, error)
}

// AppointmentHandler serves /appointments.
type AppointmentHandler struct {
	svc appointmentService
	log *slog.Logger
}

func NewAppointmentHandler(svc appointmentService, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, log: logger.With("handler", "appointment")}
}

// List handles GET /appointments?business_id=&status=&from=&to=.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseAppointmentListQuery(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	items, total, err := h.svc.List(r.Context(), q.Filter())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPage(mapSlice(items, toAppointmentResponse), total))
}

// Create handles POST /appointments.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := dto.Decode[dto.CreateAppointmentRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	a, err := h.svc.Create(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
}

// UpdateStatus handles PATCH /appointments/{id}/status.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	req, err := dto.Decode[dto.UpdateAppointmentStatusRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	a, err := h.svc.UpdateStatus(r.Context(), id, req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAppointmentResponse(a))
}
