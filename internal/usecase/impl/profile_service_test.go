package impl

import (
	"context"
	"testing"
	"time"

	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	mockRepo "authcore/internal/mocks/repository"
	"authcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return svc, userRepo
}

func TestProfileService_ListUsers(t *testing.T) {
	svc, userRepo := createTestProfileService(t)
	users := []*entity.User{
		{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PasswordHash: "digest-a", Role: entity.BaseRole()},
		{ID: uuid.New(), FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", PasswordHash: "digest-b", Role: entity.BaseRole()},
	}
	userRepo.EXPECT().List(mock.Anything).Return(users, nil)

	views, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, &usecase.PublicUserView{
		ID:        users[0].ID,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}, views[0])
	assert.Equal(t, "alan@example.com", views[1].Email)
}

func TestProfileService_ListUsers_Empty(t *testing.T) {
	svc, userRepo := createTestProfileService(t)
	userRepo.EXPECT().List(mock.Anything).Return(nil, nil)

	views, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestProfileService_ListUsers_StoreError(t *testing.T) {
	svc, userRepo := createTestProfileService(t)
	userRepo.EXPECT().List(mock.Anything).Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("boom"), "failed to list users"))

	views, err := svc.ListUsers(context.Background())

	assert.Nil(t, views)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestProfileService_GetOwnProfile(t *testing.T) {
	svc, userRepo := createTestProfileService(t)
	identity := entity.Identity{UserID: uuid.New(), RoleName: entity.RoleNameUser}
	now := time.Now()
	user := &entity.User{
		ID:           identity.UserID,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "digest",
		Role:         entity.BaseRole(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	userRepo.EXPECT().FindByID(mock.Anything, identity.UserID).Return(user, nil)

	view, err := svc.GetOwnProfile(context.Background(), identity)

	require.NoError(t, err)
	assert.Equal(t, usecase.NewUserView(user), view)
}

func TestProfileService_GetOwnProfile_NotFound(t *testing.T) {
	svc, userRepo := createTestProfileService(t)
	identity := entity.Identity{UserID: uuid.New()}
	userRepo.EXPECT().FindByID(mock.Anything, identity.UserID).Return(nil, repository.ErrUserNotFound)

	view, err := svc.GetOwnProfile(context.Background(), identity)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateOwnProfile_MissingField(t *testing.T) {
	tests := []struct {
		name      string
		input     *usecase.UpdateProfileInput
		wantField string
	}{
		{name: "nil input", input: nil, wantField: "first_name"},
		{name: "first name", input: &usecase.UpdateProfileInput{LastName: "L", Email: "a@example.com"}, wantField: "first_name"},
		{name: "last name", input: &usecase.UpdateProfileInput{FirstName: "F", Email: "a@example.com"}, wantField: "last_name"},
		{name: "email", input: &usecase.UpdateProfileInput{FirstName: "F", LastName: "L"}, wantField: "email"},
		{name: "first of several", input: &usecase.UpdateProfileInput{Email: "a@example.com"}, wantField: "first_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := createTestProfileService(t)

			result, err := svc.UpdateOwnProfile(context.Background(), entity.Identity{UserID: uuid.New()}, tt.input)

			assert.Nil(t, result)
			require.True(t, errors.Is(err, domainerrors.ErrMissingField))
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantField, appErr.Details())
		})
	}
}

func TestProfileService_UpdateOwnProfile_Success(t *testing.T) {
	svc, userRepo := createTestProfileService(t)
	identity := entity.Identity{UserID: uuid.New(), RoleName: entity.RoleNameUser}
	input := &usecase.UpdateProfileInput{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}

	userRepo.EXPECT().
		UpdateProfile(mock.Anything, identity.UserID, entity.ProfileChanges{
			FirstName: "Grace",
			LastName:  "Hopper",
			Email:     "grace@example.com",
		}).
		Return(int64(1), nil)

	result, err := svc.UpdateOwnProfile(context.Background(), identity, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Affected)
}

func TestProfileService_UpdateOwnProfile_EmailCollision(t *testing.T) {
	svc, userRepo := createTestProfileService(t)
	identity := entity.Identity{UserID: uuid.New()}
	input := &usecase.UpdateProfileInput{FirstName: "Grace", LastName: "Hopper", Email: "taken@example.com"}

	userRepo.EXPECT().UpdateProfile(mock.Anything, identity.UserID, mock.Anything).Return(int64(0), domainerrors.ErrEmailTaken)

	result, err := svc.UpdateOwnProfile(context.Background(), identity, input)

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}
