package domain

import "github.com/google/uuid"

// Permission is a capability string required by an endpoint.
type Permission string

const (
	PermBusinessRead     Permission = "business:read"
	PermBusinessWrite    Permission = "business:write"
	PermContactRead      Permission = "contacts:read"
	PermContactWrite     Permission = "contacts:write"
	PermTagRead          Permission = "tags:read"
	PermTagWrite         Permission = "tags:write"
	PermAppointmentRead  Permission = "appointments:read"
	PermAppointmentWrite Permission = "appointments:write"
	PermAssistantRead    Permission = "assistant:read"
	PermAssistantWrite   Permission = "assistant:write"
	PermVoiceUse         Permission = "voice:use"
	PermWebhookIngest    Permission = "webhooks:ingest"
)

var allPermissions = []Permission{
	PermBusinessRead, PermBusinessWrite,
	PermContactRead, PermContactWrite,
	PermTagRead, PermTagWrite,
	PermAppointmentRead, PermAppointmentWrite,
	PermAssistantRead, PermAssistantWrite,
	PermVoiceUse, PermWebhookIngest,
}

var rolePermissions = map[UserRole][]Permission{
	UserRoleAdmin: allPermissions,
	UserRoleUser: {
		PermBusinessRead, PermBusinessWrite,
		PermContactRead, PermContactWrite,
		PermTagRead, PermTagWrite,
		PermAppointmentRead, PermAppointmentWrite,
		PermAssistantRead, PermAssistantWrite,
		PermVoiceUse,
	},
	UserRoleGuest: {PermAssistantRead, PermVoiceUse},
}

// PermissionSet is an unordered set of permissions.
type PermissionSet map[Permission]struct{}

// NewPermissionSet builds a set from the given permissions.
func NewPermissionSet(perms ...Permission) PermissionSet {
	s := make(PermissionSet, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// PermissionsFor resolves the permission set granted to a role.
// Unknown roles get an empty set.
func PermissionsFor(role UserRole) PermissionSet {
	return NewPermissionSet(rolePermissions[role]...)
}

// Has reports whether p is in the set.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// Missing returns the permissions of required that are not in s.
func (s PermissionSet) Missing(required []Permission) []Permission {
	var missing []Permission
	for _, p := range required {
		if !s.Has(p) {
			missing = append(missing, p)
		}
	}
	return missing
}

// Identity is the verified caller attached to a request context.
// A nil *Identity on a verified request means the route is public.
type Identity struct {
	UserID      uuid.UUID
	Email       string
	Role        UserRole
	BusinessID  *uuid.UUID // set for guest sessions, which are bound to one business
	Subject     string     // raw token subject, kept for machine identities
	Permissions PermissionSet
}

// IsAdmin reports whether the identity has the admin role.
func (i *Identity) IsAdmin() bool { return i != nil && i.Role.IsAdmin() }

// IsGuest reports whether the identity is a guest session.
func (i *Identity) IsGuest() bool { return i != nil && i.Role.IsGuest() }
