package handler

import (
	"net/http"

	"authcore/internal/delivery/api/response"
	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user and profile handlers.
type UserHandler struct {
	uc usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// ListUsers returns the public view of every account.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetProfile returns the caller's own profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetOwnProfile(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile replaces the caller's names and email.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.UpdateOwnProfile(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// identityFrom returns the identity attached by the auth middleware.
func identityFrom(c echo.Context) (entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c.Request().Context())
	if !ok {
		return entity.Identity{}, domainerrors.ErrInvalidToken
	}

	return identity, nil
}
