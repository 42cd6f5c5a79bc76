package usecase

import (
	"context"
	"time"

	"authcore/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
// Every operation scoped to "own" data trusts only the identity derived from a verified token.
type ProfileUsecase interface {
	ListUsers(ctx context.Context) ([]*PublicUserView, error)
	GetOwnProfile(ctx context.Context, identity entity.Identity) (*UserView, error)
	UpdateOwnProfile(ctx context.Context, identity entity.Identity, input *UpdateProfileInput) (*UpdateResult, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the fields replaced by an own-profile update. All are required.
type UpdateProfileInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

// --- Output DTOs ---

// RoleView is the outward form of a role.
type RoleView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserView is the full outward projection of an account. It never carries the password digest.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      RoleView  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUserView is the projection used in listings.
type PublicUserView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// UpdateResult reports how many records an update touched.
type UpdateResult struct {
	Affected int64 `json:"affected"`
}

// NewUserView projects a stored user without its password digest.
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      RoleView{ID: user.Role.ID, Name: user.Role.Name},
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewPublicUserView projects a stored user for listings.
func NewPublicUserView(user *entity.User) *PublicUserView {
	if user == nil {
		return nil
	}

	return &PublicUserView{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}
