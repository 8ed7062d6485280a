package dto

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/validate"
)

// CreateContactRequest is the body of POST /contacts.
type CreateContactRequest struct {
	BusinessID string   `json:"business_id" validate:"required,uuid"`
	Name       string   `json:"name" validate:"required,max=120"`
	Phone      string   `json:"phone" validate:"required,phone"`
	Email      *string  `json:"email" validate:"omitempty,email"`
	Notes      *string  `json:"notes" validate:"omitempty,max=2000"`
	TagIDs     []string `json:"tag_ids" validate:"omitempty,max=20,dive,uuid"`
}

func (r *CreateContactRequest) Normalize() { r.Email = normalizeOptionalEmail(r.Email) }

func (r CreateContactRequest) BusinessUUID() uuid.UUID { return parseID(r.BusinessID) }

// NormalizedPhone returns the phone without separators.
func (r CreateContactRequest) NormalizedPhone() string { return validate.NormalizePhone(r.Phone) }

func (r CreateContactRequest) TagUUIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.TagIDs))
	for _, s := range r.TagIDs {
		ids = append(ids, parseID(s))
	}
	return ids
}

// UpdateContactRequest is the body of PATCH /contacts/{id}. Nil fields are
// left unchanged.
type UpdateContactRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=120"`
	Phone *string `json:"phone" validate:"omitempty,phone"`
	Email *string `json:"email" validate:"omitempty,email"`
	Notes *string `json:"notes" validate:"omitempty,max=2000"`
}

func (r *UpdateContactRequest) Normalize() { r.Email = normalizeOptionalEmail(r.Email) }

// NormalizedPhone returns nil when the phone is not being changed.
func (r UpdateContactRequest) NormalizedPhone() *string {
	if r.Phone == nil {
		return nil
	}
	p := validate.NormalizePhone(*r.Phone)
	return &p
}

// Empty reports whether the request changes nothing.
func (r UpdateContactRequest) Empty() bool {
	return r.Name == nil && r.Phone == nil && r.Email == nil && r.Notes == nil
}

// CreateTagRequest is the body of POST /tags.
type CreateTagRequest struct {
	BusinessID string  `json:"business_id" validate:"required,uuid"`
	Name       string  `json:"name" validate:"required,max=50"`
	Color      *string `json:"color" validate:"omitempty,hexcolor"`
}

func (r CreateTagRequest) BusinessUUID() uuid.UUID { return parseID(r.BusinessID) }

func (r CreateTagRequest) TrimmedName() string { return strings.TrimSpace(r.Name) }

// UpdateTagRequest is the body of PATCH /tags/{id}.
type UpdateTagRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=50"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

// ContactImportRow is one parsed row of a CSV or XLSX import.
type ContactImportRow struct {
	Name  string  `json:"name" validate:"required,max=120"`
	Phone string  `json:"phone" validate:"required,phone"`
	Email *string `json:"email" validate:"omitempty,email"`
	Notes *string `json:"notes" validate:"omitempty,max=2000"`
}
