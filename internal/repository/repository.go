// filepath: internal/repository/repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"flowershop/internal/config"
	"flowershop/internal/logging"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite" // SQLite driver
)

var (
	// ErrNotFound is returned when an update or delete targets a missing flower.
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable is returned by every call on an Unavailable store.
	ErrUnavailable = errors.New("catalog store unavailable")
)

const flowerTable = "flowers"

// Repository is the SQLite-backed catalog store.
type Repository struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType

	now   func() time.Time
	newID func() string
}

// NewRepository opens the SQLite database at cfg.Database.Path.
// The schema is not touched; see EnsureSchemaBootstrapped and Migrate.
func NewRepository(cfg *config.Config) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", cfg.Database.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Database.Path, err)
	}
	// A single connection serializes writers, which SQLite requires anyway.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Database.Path, err)
	}

	logging.Log.Debugf("Opened catalog database at %s", cfg.Database.Path)

	return &Repository{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		now:     time.Now,
		newID:   func() string { return ulid.Make().String() },
	}, nil
}

// SetClock overrides the timestamp source used for created_at.
func (s *Repository) SetClock(now func() time.Time) {
	s.now = now
}

// Close closes the underlying database handle.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// Ping reports whether the database is reachable.
func (s *Repository) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// BeginTx starts a transaction wrapped in the repository's Tx helper.
func (s *Repository) BeginTx(ctx context.Context) (*Tx, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, builder: s.Builder}, nil
}
