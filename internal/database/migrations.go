package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// schema is kept to the subset of SQL that sqlite and postgres both accept
var schema = []string{
	`CREATE TABLE IF NOT EXISTS boards (
		id TEXT PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS columns (
		id TEXT PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		position INTEGER NOT NULL,
		board_id TEXT NOT NULL REFERENCES boards(id),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		description VARCHAR(250),
		position INTEGER NOT NULL,
		column_id TEXT NOT NULL REFERENCES columns(id),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	// Positions are renumbered row by row inside a transaction, so these
	// indexes must not be unique
	`CREATE INDEX IF NOT EXISTS idx_columns_board ON columns(board_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_column ON tasks(column_id, position)`,
}

// runMigrations creates the database schema if it does not exist yet
func runMigrations(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
