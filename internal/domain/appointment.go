package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a booked slot. The contact and voice interaction links are
// optional and are cleared, not cascaded, when the referenced row is deleted.
type Appointment struct {
	ID                 uuid.UUID
	BusinessID         uuid.UUID
	ContactID          *uuid.UUID
	VoiceInteractionID *uuid.UUID
	ClientName         string
	ClientPhone        string
	ClientEmail        *string
	ServiceType        string
	StartsAt           time.Time
	DurationMinutes    int
	Status             AppointmentStatus
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EndsAt returns the end of the appointment slot.
func (a *Appointment) EndsAt() time.Time {
	return a.StartsAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// AppointmentFilter narrows an appointment listing.
type AppointmentFilter struct {
	BusinessID uuid.UUID
	ContactID  *uuid.UUID
	Status     *AppointmentStatus
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}
