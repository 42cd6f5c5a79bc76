package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		content, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(content), "-- +goose Up", name)
		assert.Contains(t, string(content), "-- +goose Down", name)
	}
}

func TestInitMigrationSeedsRoles(t *testing.T) {
	content, err := fs.ReadFile(FS, "00001_init.sql")
	require.NoError(t, err)

	for _, role := range []string{"(1, 'user')", "(2, 'admin')", "(3, 'super_admin')"} {
		assert.Contains(t, string(content), role)
	}
	assert.Contains(t, string(content), "idx_users_email")
}
