// Package sqlite implements the persistence ports on top of a SQLite
// database accessed through database/sql and the modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	// Register modernc SQLite driver with database/sql.
	_ "modernc.org/sqlite"
)

// Config captures SQLite store configuration derived from application
// settings.
type Config struct {
	// Path is the database location or ":memory:" for in-memory deployments.
	Path string

	// MaxOpenConns controls the pool size exposed by database/sql.
	MaxOpenConns int

	// MaxIdleConns limits idle connections retained in the pool.
	MaxIdleConns int

	// ConnMaxLifetime bounds connection reuse duration.
	ConnMaxLifetime time.Duration

	// BusyTimeout configures how long writers wait on a locked database
	// before failing with SQLITE_BUSY.
	BusyTimeout time.Duration
}

const defaultBusyTimeout = 5 * time.Second

// Store owns the database handle and the transaction envelope consumed by
// the transaction manager. Repositories share the handle and resolve an open
// transaction from the context when one is bound.
type Store struct {
	db *sql.DB
}

// querier is the subset of *sql.DB and *sql.Tx the repositories need.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// Open opens the database at cfg.Path, configures the pool, and verifies
// connectivity.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// buildDSN assembles the driver DSN. Pragmas ride along as _pragma query
// parameters so every pooled connection gets them, and in-memory databases
// use a shared cache so all connections see one schema.
func buildDSN(cfg Config) (string, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return "", fmt.Errorf("sqlite: database path is empty")
	}

	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = defaultBusyTimeout
	}

	params := url.Values{}
	params.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busy.Milliseconds()))
	params.Add("_pragma", "foreign_keys(ON)")

	if path == ":memory:" {
		params.Set("mode", "memory")
		params.Set("cache", "shared")
		return "file::memory:?" + params.Encode(), nil
	}

	params.Add("_pragma", "journal_mode(WAL)")
	return "file:" + path + "?" + params.Encode(), nil
}

// DB exposes the underlying handle for migrations and tests.
func (s *Store) DB() *sql.DB { return s.db }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Transaction runs fn inside a begin/commit/rollback envelope. The open
// transaction is bound to the context passed to fn so repositories route
// their statements through it. A panic inside fn rolls back and re-panics.
func (s *Store) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin transaction: %w", err)
	}

	done := false
	defer func() {
		if !done {
			tx.Rollback()
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		done = true
		if rberr := tx.Rollback(); rberr != nil {
			return fmt.Errorf("sqlite: rollback after %w: %w", err, rberr)
		}
		return err
	}

	done = true
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit transaction: %w", err)
	}
	return nil
}

// Exec issues a raw directive against the transaction bound to ctx, or the
// pool when none is bound.
func (s *Store) Exec(ctx context.Context, directive string) error {
	if _, err := s.q(ctx).ExecContext(ctx, directive); err != nil {
		return fmt.Errorf("sqlite: exec directive %q: %w", directive, err)
	}
	return nil
}

// q resolves the querier for ctx: the bound transaction when inside one,
// otherwise the pool.
func (s *Store) q(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "sqlite" }

// HealthCheck implements ports.HealthChecker by pinging the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: ping: %w", err)
	}
	return nil
}
