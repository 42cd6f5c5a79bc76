package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"authcore/config"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testDigest = "$2a$08$Q7w5bPpW6Gk3vH2tY1nLxeZsR9cJdK0mA4fU8iO2qE6rT5yB3nC1."

var userColumns = []string{"id", "first_name", "last_name", "email", "password_hash", "role_id", "created_at", "updated_at"}

// newSQLMockGorm opens a gorm session over sqlmock that logs every statement, the way
// a debug deployment does, into the returned buffer.
func newSQLMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *bytes.Buffer) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	require.NoError(t, err)

	return db, mock, &buf
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, logs := newSQLMockGorm(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO "users" \("first_name","last_name","email","password_hash","role_id","created_at","updated_at","id"\) VALUES .* RETURNING "id"`).
		WithArgs("Ada", "Lovelace", "ada@example.com", testDigest, 1, sqlmock.AnyArg(), sqlmock.AnyArg(), id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "roles" WHERE "roles"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, entity.RoleNameUser))

	user := &entity.User{
		ID:           id,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: testDigest,
	}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.Equal(t, entity.BaseRole(), user.Role)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Contains(t, logs.String(), `INSERT INTO \"users\"`)
	assert.NotContains(t, logs.String(), testDigest)
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	db, mock, logs := newSQLMockGorm(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "idx_users_email"`})

	err := repo.Create(context.Background(), &entity.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: testDigest,
	})

	require.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Contains(t, logs.String(), "GORM query failed")
	assert.NotContains(t, logs.String(), testDigest)
	assert.NotContains(t, logs.String(), "ada@example.com")
}

func TestUserRepository_Create_NotNullViolation(t *testing.T) {
	db, mock, _ := newSQLMockGorm(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23502"})

	err := repo.Create(context.Background(), &entity.User{Email: "ada@example.com"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "missing required user information", appErr.Details())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock, _ := newSQLMockGorm(t)
	repo := NewUserRepository(db)
	id := uuid.New()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WithArgs("ada@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "Ada", "Lovelace", "ada@example.com", testDigest, 3, created, created))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "roles" WHERE "roles"."id" = $1`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, entity.RoleNameSuperAdmin))

	user, err := repo.FindByEmail(context.Background(), "ada@example.com")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, &entity.User{
		ID:           id,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: testDigest,
		Role:         entity.Role{ID: 3, Name: entity.RoleNameSuperAdmin},
		CreatedAt:    created,
		UpdatedAt:    created,
	}, user)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock, _ := newSQLMockGorm(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByEmail(context.Background(), "ghost@example.com")

	assert.Nil(t, user)
	require.ErrorIs(t, err, repository.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db, mock, _ := newSQLMockGorm(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "email"=$1,"first_name"=$2,"last_name"=$3,"updated_at"=$4 WHERE id = $5`)).
		WithArgs("augusta@example.com", "Augusta", "King", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateProfile(context.Background(), id, entity.ProfileChanges{
		FirstName: "Augusta",
		LastName:  "King",
		Email:     "augusta@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile_UniqueViolation(t *testing.T) {
	db, mock, _ := newSQLMockGorm(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	affected, err := repo.UpdateProfile(context.Background(), uuid.New(), entity.ProfileChanges{
		FirstName: "Augusta",
		LastName:  "King",
		Email:     "taken@example.com",
	})

	assert.Zero(t, affected)
	require.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l := &gormSlogLogger{}

	sql, params := l.ParamsFilter(context.Background(), `INSERT INTO "users" ("password_hash") VALUES ($1)`, testDigest)

	assert.Equal(t, `INSERT INTO "users" ("password_hash") VALUES ($1)`, sql)
	assert.Nil(t, params)
}
