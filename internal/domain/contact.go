package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a deduplicated party of a business, unique by phone.
type Contact struct {
	ID                uuid.UUID
	BusinessID        uuid.UUID
	Name              string
	Phone             string
	Email             *string
	Notes             *string
	InteractionsCount int
	AppointmentsCount int
	LastInteractionAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Tags            []Tag
	LastAppointment *AppointmentSummary
	NextAppointment *AppointmentSummary
}

// AppointmentSummary is the condensed appointment shown on contact listings.
type AppointmentSummary struct {
	ID          uuid.UUID
	ServiceType string
	StartsAt    time.Time
	Status      AppointmentStatus
}

// Tag is a business-scoped label attached to contacts.
type Tag struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	Color      *string
	CreatedAt  time.Time
}

// ContactFilter narrows a contact listing.
type ContactFilter struct {
	BusinessID uuid.UUID
	Search     string
	TagID      *uuid.UUID
	Limit      int
	Offset     int
}

// ImportRowError describes one rejected row of a contact import.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult reports the outcome of a contact import.
type ImportResult struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Errors  []ImportRowError `json:"errors"`
}
