package impl

import (
	"context"
	"log/slog"

	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	"authcore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every account in its public projection.
func (srv *profileService) ListUsers(ctx context.Context) ([]*usecase.PublicUserView, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	views := make([]*usecase.PublicUserView, 0, len(users))
	for _, user := range users {
		views = append(views, usecase.NewPublicUserView(user))
	}

	return views, nil
}

// GetOwnProfile loads the caller's own account.
func (srv *profileService) GetOwnProfile(ctx context.Context, identity entity.Identity) (*usecase.UserView, error) {
	srv.log(ctx).Debug("Getting own profile", slog.Any("userID", identity.UserID))

	user, err := srv.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return usecase.NewUserView(user), nil
}

// UpdateOwnProfile replaces the caller's names and email. Each field is required and the
// first absent one, in request order, is reported.
func (srv *profileService) UpdateOwnProfile(
	ctx context.Context,
	identity entity.Identity,
	input *usecase.UpdateProfileInput,
) (*usecase.UpdateResult, error) {
	if input == nil {
		input = &usecase.UpdateProfileInput{}
	}

	switch {
	case input.FirstName == "":
		return nil, domainerrors.NewMissingFieldError("first_name")
	case input.LastName == "":
		return nil, domainerrors.NewMissingFieldError("last_name")
	case input.Email == "":
		return nil, domainerrors.NewMissingFieldError("email")
	}

	srv.log(ctx).Info("Updating own profile", slog.Any("userID", identity.UserID))

	affected, err := srv.userRepo.UpdateProfile(ctx, identity.UserID, entity.ProfileChanges{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return &usecase.UpdateResult{Affected: affected}, nil
}
