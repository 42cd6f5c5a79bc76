// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"authcore/config"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/service"
)

// accessClaims is the wire form of service.TokenClaims.
type accessClaims struct {
	UserID    string `json:"userId"`
	RoleName  string `json:"roleName"`
	FirstName string `json:"firstName"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte           // Secret key for signing access tokens.
	ttl    time.Duration    // Time-to-live for access tokens.
	now    func() time.Time // Clock used for iat/exp and for validation.
}

// NewJWTService is the constructor for jwtService.
// The secret is read once here; it is never consulted from the environment afterwards.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg.SecretKey.Access, cfg.TokenTTL(), time.Now)
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue signs an access token for the user, role and display name in claims.
func (s *jwtService) Issue(claims service.TokenClaims) (string, error) {
	issuedAt := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		UserID:    claims.UserID.String(),
		RoleName:  claims.RoleName,
		FirstName: claims.FirstName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	return signed, nil
}

// Verify parses and validates a token. Expired tokens yield ErrTokenExpired; any other
// failure yields ErrInvalidToken. No claims are returned alongside an error.
func (s *jwtService) Verify(tokenString string) (*service.TokenClaims, error) {
	claims := &accessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrInvalidToken
	}
	if !token.Valid || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, domainerrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil || userID == uuid.Nil {
		return nil, domainerrors.ErrInvalidToken
	}

	return &service.TokenClaims{
		UserID:    userID,
		RoleName:  claims.RoleName,
		FirstName: claims.FirstName,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
