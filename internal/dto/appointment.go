package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/validate"
)

const DefaultDurationMinutes = 30

// CreateAppointmentRequest is the body of POST /appointments.
type CreateAppointmentRequest struct {
	BusinessID      string  `json:"business_id" validate:"required,uuid"`
	ContactID       *string `json:"contact_id" validate:"omitempty,uuid"`
	ClientName      string  `json:"client_name" validate:"required,max=120"`
	ClientPhone     string  `json:"client_phone" validate:"required,phone"`
	ClientEmail     *string `json:"client_email" validate:"omitempty,email"`
	ServiceType     string  `json:"service_type" validate:"required,max=120"`
	StartsAt        string  `json:"starts_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
	Notes           *string `json:"notes" validate:"omitempty,max=2000"`
}

func (r CreateAppointmentRequest) BusinessUUID() uuid.UUID { return parseID(r.BusinessID) }

func (r CreateAppointmentRequest) ContactUUID() *uuid.UUID { return parseOptionalID(r.ContactID) }

func (r CreateAppointmentRequest) NormalizedPhone() string {
	return validate.NormalizePhone(r.ClientPhone)
}

// StartTime returns the parsed start in UTC.
func (r CreateAppointmentRequest) StartTime() time.Time {
	t, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// Duration returns the requested duration or the default.
func (r CreateAppointmentRequest) Duration() int {
	if r.DurationMinutes == 0 {
		return DefaultDurationMinutes
	}
	return r.DurationMinutes
}

// UpdateAppointmentStatusRequest is the body of PATCH /appointments/{id}/status.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed no_show"`
}

func (r UpdateAppointmentStatusRequest) AppointmentStatus() domain.AppointmentStatus {
	return domain.AppointmentStatus(r.Status)
}
