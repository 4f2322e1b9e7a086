package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Store owns the connection pool and creates one transaction per unit of work
type Store struct {
	db      *sqlx.DB
	queries *Queries
}

// NewStore wraps an open database
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db, queries: New(db)}
}

// Queries returns queries that run outside of any transaction
func (s *Store) Queries() DataStore {
	return s.queries
}

// WithTx runs fn in a single transaction; any error rolls back every write fn made
func (s *Store) WithTx(ctx context.Context, fn func(q DataStore) error) error {
	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		return fn(New(tx))
	})
}

// Ping checks the store is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// DB returns the underlying pool
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the underlying pool
func (s *Store) Close() error {
	return s.db.Close()
}
