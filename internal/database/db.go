// Package database handles the connection to the relational store and the
// board, column and task queries run against it.
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Driver names registered by the imported drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// ErrUnsupportedURI is returned when a database URI uses an unknown scheme
var ErrUnsupportedURI = errors.New("unsupported database uri")

// ParseURI maps a database URI onto a driver name and its data source name.
//
//	sqlite://kanban.db        relative sqlite file
//	sqlite:///app/db.sqlite   absolute sqlite file
//	sqlite://:memory:         in-memory sqlite
//	postgres://user@host/db   postgres through pgx
//	kanban.db                 bare path, sqlite
func ParseURI(uri string) (driver, dsn string, err error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return "", "", fmt.Errorf("%w: empty", ErrUnsupportedURI)
	}

	switch {
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return DriverPostgres, uri, nil
	case strings.HasPrefix(uri, "sqlite://"):
		dsn = strings.TrimPrefix(uri, "sqlite://")
		if dsn == "" {
			return "", "", fmt.Errorf("%w: missing sqlite path in %q", ErrUnsupportedURI, uri)
		}
		return DriverSQLite, dsn, nil
	case strings.Contains(uri, "://"):
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedURI, uri)
	default:
		return DriverSQLite, uri, nil
	}
}

// Open connects to the store named by uri and creates the schema if absent
func Open(ctx context.Context, uri string) (*sqlx.DB, error) {
	driver, dsn, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite && !isMemory(dsn) {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create directory: %w", err)
			}
		}
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// SQLite benefits from a single writer connection, and an in-memory
		// database only exists on the connection that created it
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		if err := configureSQLite(ctx, db); err != nil {
			closeQuietly(db)
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func configureSQLite(ctx context.Context, db *sqlx.DB) error {
	pragmas := []string{
		// Enable foreign key constraints
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		// SQLite will retry for this duration
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to configure sqlite", "pragma", pragma, "error", err)
			return fmt.Errorf("failed to run %q: %w", pragma, err)
		}
	}
	return nil
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

func closeQuietly(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
