// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"credential_email"`
	Password  string `json:"password" validate:"password_shape"`
}

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account without its password digest.
type RegisterOutput struct {
	User *UserView `json:"user"`
}

// LoginOutput carries the issued access token.
type LoginOutput struct {
	Token string `json:"token"`
}

// AuthUsecase defines registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
