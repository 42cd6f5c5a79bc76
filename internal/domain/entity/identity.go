package entity

import "github.com/google/uuid"

// Identity is the caller derived from a verified access token.
// It is never persisted.
type Identity struct {
	UserID   uuid.UUID
	RoleName string
}

// HasRole reports whether the identity carries the given role name.
func (i Identity) HasRole(name string) bool {
	return i.RoleName == name
}
