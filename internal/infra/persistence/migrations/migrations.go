// Package migrations embeds the SQL schema migrations applied by goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"authcore/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

const dialect = "postgres"

// Up applies every pending migration embedded in FS.
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "failed to configure goose")
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// Version reports the current schema version recorded by goose.
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	if err := goose.SetDialect(dialect); err != nil {
		return 0, errors.Wrap(err, "failed to configure goose")
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read schema version")
	}

	return version, nil
}
