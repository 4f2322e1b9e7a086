package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// DBTX is satisfied by both *sqlx.DB and *sqlx.Tx so the same queries run
// inside or outside a transaction
type DBTX interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Queries runs the board, column and task statements against a DBTX.
// Statements are written with ? placeholders and rebound for the driver.
type Queries struct {
	db DBTX
}

// New creates a Queries bound to db
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	result, err := q.db.ExecContext(ctx, q.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (q *Queries) get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return q.db.GetContext(ctx, dest, q.db.Rebind(query), args...)
}

func (q *Queries) selectRows(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return q.db.SelectContext(ctx, dest, q.db.Rebind(query), args...)
}
