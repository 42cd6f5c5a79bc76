package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"authcore/config"
	"authcore/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:      Apply all pending migrations
// - version: Print the current schema version

const migrateTimeout = time.Minute

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := run(ctx, upCmd, versionCmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, upCmd, versionCmd *flag.FlagSet) error {
	switch os.Args[1] {
	case "up":
		if err := upCmd.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return withDB(func(db *sql.DB) error {
			if err := migrations.Up(ctx, db); err != nil {
				return err
			}
			fmt.Println("Migrations applied")

			return nil
		})
	case "version":
		if err := versionCmd.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return withDB(func(db *sql.DB) error {
			version, err := migrations.Version(ctx, db)
			if err != nil {
				return err
			}
			fmt.Printf("Schema version: %d\n", version)

			return nil
		})
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", os.Args[1])
	}
}

func withDB(fn func(db *sql.DB) error) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	gormDB, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	db, err := gormDB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer db.Close()

	return fn(db)
}

func printUsage() {
	fmt.Println("Usage: migrate <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up       Apply all pending migrations")
	fmt.Println("  version  Print the current schema version")
}
