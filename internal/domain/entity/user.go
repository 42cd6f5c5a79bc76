// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the stored account record. PasswordHash is the bcrypt digest and must never
// leave the service boundary; callers project the record before returning it.
type User struct {
	ID           uuid.UUID // Generated by the store on creation.
	FirstName    string    // Given name, also embedded in issued tokens.
	LastName     string    // Family name.
	Email        string    // Unique login identifier.
	PasswordHash string    // Salted one-way digest of the password.
	Role         Role      // The single role attached to the account.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// ProfileChanges carries the fields replaced by an own-profile update.
type ProfileChanges struct {
	FirstName string
	LastName  string
	Email     string
}
