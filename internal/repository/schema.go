// filepath: internal/repository/schema.go
package repository

import (
	"database/sql"
	"errors"
	"flowershop/internal/db/migrations"
	"flowershop/internal/logging"
	"fmt"

	"github.com/pressly/goose/v3"
)

// migrationsDir is the root of the embedded migrations FS.
const migrationsDir = "."

func configureGoose() error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(logging.Log)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// Migrate runs a goose command ("up", "down" or "status") against the catalog database.
func (s *Repository) Migrate(command string) error {
	if err := configureGoose(); err != nil {
		return err
	}

	var err error
	switch command {
	case "up":
		err = goose.Up(s.DB, migrationsDir)
	case "down":
		err = goose.Down(s.DB, migrationsDir)
	case "status":
		err = goose.Status(s.DB, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// EnsureSchemaBootstrapped migrates a brand new database to the latest version.
// A database that already has a goose version table is left alone, so upgrades
// stay an explicit 'migrate up'.
func (s *Repository) EnsureSchemaBootstrapped() error {
	var name string
	err := s.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	logging.Log.Info("Fresh database detected, applying all migrations...")
	return s.Migrate("up")
}

// ValidateSchema fails when the database is behind the embedded migrations.
func (s *Repository) ValidateSchema() error {
	if err := configureGoose(); err != nil {
		return err
	}

	known, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	last, err := known.Last()
	if err != nil {
		return fmt.Errorf("no embedded migrations found: %w", err)
	}

	current, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return fmt.Errorf("failed to read database version: %w", err)
	}

	if current < last.Version {
		return fmt.Errorf("database schema is outdated (version %d, expected %d); run 'flowershop migrate up'", current, last.Version)
	}
	return nil
}
