// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authcore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user, with its role, by unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user, with its role and password hash, by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns every user ordered by creation time.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user. It must fail with domainerrors.ErrEmailTaken when the
	// email is already stored, independently of any prior lookup.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile replaces the name and email columns of the user with the given ID
	// and reports how many rows were affected.
	UpdateProfile(ctx context.Context, id uuid.UUID, changes entity.ProfileChanges) (int64, error)
}
