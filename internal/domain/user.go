package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthProvider is the credential source a user signed up with.
type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "local"
	AuthProviderGoogle AuthProvider = "google"
)

func (p AuthProvider) IsValid() bool {
	switch p {
	case AuthProviderLocal, AuthProviderGoogle:
		return true
	}
	return false
}

// User represents an authenticated application user.
type User struct {
	ID                  uuid.UUID
	Email               *string
	Name                string
	PasswordHash        *string
	Role                UserRole
	AuthProvider        AuthProvider
	ResetToken          *string
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// EmailOrEmpty returns the email or "" when the user has none.
func (u *User) EmailOrEmpty() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}

// HasPassword reports whether the user can log in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// Payment is a tenant-scoped payment record. The user link is optional so
// that deleting a user keeps the payment history.
type Payment struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	UserID      *uuid.UUID
	AmountCents int64
	Currency    string
	Status      string
	ExternalRef *string
	CreatedAt   time.Time
}
