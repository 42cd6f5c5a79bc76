package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate verifies the bearer token and attaches the caller's identity to the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WithDetails("authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return domainerrors.ErrInvalidToken.WithDetails("must be a Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return err
		}

		identity := entity.Identity{UserID: claims.UserID, RoleName: claims.RoleName}

		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
		if logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", identity.UserID.String())))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c.Request().Context())
			if !ok {
				return domainerrors.ErrInvalidToken
			}

			if !identity.HasRole(requiredRole) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + requiredRole)
			}

			return next(c)
		}
	}
}
