package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"authcore/internal/domain/repository"
	mockRepo "authcore/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the callback against a factory that hands out txRepo.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, txRepo repository.UserRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txRepo)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
