package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims are the identity facts carried by an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	RoleName  string
	FirstName string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed access tokens.
// The signing secret and lifetime are fixed when the implementation is constructed.
type TokenService interface {
	// Issue signs a token for the given claims. IssuedAt and ExpiresAt are set by the service.
	Issue(claims TokenClaims) (string, error)

	// Verify checks signature and expiry and returns the full claims, or an error
	// and no claims at all.
	Verify(tokenString string) (*TokenClaims, error)
}
