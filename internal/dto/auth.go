package dto

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/validate"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

func (r *LoginRequest) Normalize() { r.Email = normalizeEmail(r.Email) }

// NormalizedEmail lowercases and trims the email.
func (r LoginRequest) NormalizedEmail() string { return normalizeEmail(r.Email) }

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func normalizeOptionalEmail(s *string) *string {
	if s == nil {
		return nil
	}
	e := normalizeEmail(*s)
	return &e
}

// GuestSessionRequest is the body of POST /auth/guest.
type GuestSessionRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
}

func (r GuestSessionRequest) BusinessUUID() uuid.UUID { return parseID(r.BusinessID) }

// CreateBusinessRequest is the body of POST /businesses.
type CreateBusinessRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=120"`
	Phone    *string `json:"phone" validate:"omitempty,phone"`
	Timezone string  `json:"timezone" validate:"omitempty,timezone"`
}

// NormalizedPhone returns the phone without separators, or nil.
func (r CreateBusinessRequest) NormalizedPhone() *string {
	if r.Phone == nil {
		return nil
	}
	p := validate.NormalizePhone(*r.Phone)
	return &p
}

func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func parseOptionalID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id := parseID(*s)
	if id == uuid.Nil {
		return nil
	}
	return &id
}
