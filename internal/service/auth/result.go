package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

// Session is returned by Login and Refresh.
type Session struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string // raw token, NOT hash
	RefreshExpiresAt time.Time
	User             *domain.User
}

// GuestSession is an anonymous session bound to one business.
type GuestSession struct {
	AccessToken string
	ExpiresAt   time.Time
	Subject     string
	BusinessID  uuid.UUID
}

// Me describes the caller of GET /auth/me.
type Me struct {
	ID         string     `json:"id"`
	Email      string     `json:"email,omitempty"`
	Name       string     `json:"name,omitempty"`
	Role       string     `json:"role"`
	BusinessID *uuid.UUID `json:"business_id,omitempty"`
	IsGuest    bool       `json:"is_guest"`
}

// GuestMe builds the identity shown to a guest session. It needs no lookup.
func GuestMe(id *domain.Identity) *Me {
	return &Me{
		ID:         id.Subject,
		Role:       id.Role.String(),
		BusinessID: id.BusinessID,
		IsGuest:    true,
	}
}
