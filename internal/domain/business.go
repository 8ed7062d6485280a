package domain

import (
	"time"

	"github.com/google/uuid"
)

// Business is the tenant boundary. Every contact, tag, appointment and
// assistant belongs to exactly one business.
type Business struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Phone     *string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the identity may act on this business.
// Admins act on every business; guests only on the one bound to their session.
func (b *Business) OwnedBy(id *Identity) bool {
	if id == nil {
		return false
	}
	if id.IsAdmin() {
		return true
	}
	if id.IsGuest() {
		return id.BusinessID != nil && *id.BusinessID == b.ID
	}
	return b.OwnerID == id.UserID
}
