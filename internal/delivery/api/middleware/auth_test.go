package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/service"
	mockSvc "authcore/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	userID := uuid.New()

	tokenSvc.EXPECT().Verify("good.token").Return(&service.TokenClaims{UserID: userID, RoleName: entity.RoleNameAdmin}, nil)

	c, rec := newAuthContext("Bearer good.token")
	var got entity.Identity
	err := m.Authenticate(func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c.Request().Context())
		require.True(t, ok)
		got = identity

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.Identity{UserID: userID, RoleName: entity.RoleNameAdmin}, got)
}

func TestAuthMiddleware_Authenticate_RejectsHeaders(t *testing.T) {
	tests := map[string]string{
		"missing":    "",
		"basic auth": "Basic dXNlcjpwYXNz",
		"no token":   "Bearer ",
		"lowercase":  "bearer good.token",
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), nil)
			c, _ := newAuthContext(header)

			err := m.Authenticate(okHandler)(c)

			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestAuthMiddleware_Authenticate_VerifyErrors(t *testing.T) {
	for _, verifyErr := range []error{domainerrors.ErrInvalidToken, domainerrors.ErrTokenExpired} {
		t.Run(verifyErr.Error(), func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tokenSvc.EXPECT().Verify("bad.token").Return(nil, verifyErr)
			m := NewAuthMiddleware(tokenSvc, nil)
			c, _ := newAuthContext("Bearer bad.token")

			err := m.Authenticate(okHandler)(c)

			assert.True(t, errors.Is(err, verifyErr))
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(nil, nil)

	t.Run("matching role", func(t *testing.T) {
		c, rec := newAuthContext("")
		ctx := deliverycontext.WithIdentity(c.Request().Context(), entity.Identity{UserID: uuid.New(), RoleName: entity.RoleNameSuperAdmin})
		c.SetRequest(c.Request().WithContext(ctx))

		require.NoError(t, m.RequireRole(entity.RoleNameSuperAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role", func(t *testing.T) {
		c, _ := newAuthContext("")
		ctx := deliverycontext.WithIdentity(c.Request().Context(), entity.Identity{UserID: uuid.New(), RoleName: entity.RoleNameUser})
		c.SetRequest(c.Request().WithContext(ctx))

		err := m.RequireRole(entity.RoleNameSuperAdmin)(okHandler)(c)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("no identity", func(t *testing.T) {
		c, _ := newAuthContext("")

		err := m.RequireRole(entity.RoleNameSuperAdmin)(okHandler)(c)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})
}
