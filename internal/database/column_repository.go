package database

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
)

// CreateColumn inserts a column at the position the caller chose
func (q *Queries) CreateColumn(ctx context.Context, column *models.Column) error {
	_, err := q.exec(ctx,
		`INSERT INTO columns (id, name, position, board_id) VALUES (?, ?, ?, ?)`,
		column.ID, column.Name, column.Position, column.BoardID,
	)
	return err
}

// GetColumnByID retrieves a column. Returns sql.ErrNoRows if it does not exist.
func (q *Queries) GetColumnByID(ctx context.Context, id string) (*models.Column, error) {
	column := &models.Column{}
	err := q.get(ctx, column,
		`SELECT id, name, position, board_id FROM columns WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	return column, nil
}

// GetColumnsByBoard retrieves all columns of a board, ordered by position
func (q *Queries) GetColumnsByBoard(ctx context.Context, boardID string) ([]*models.Column, error) {
	columns := []*models.Column{}
	err := q.selectRows(ctx, &columns,
		`SELECT id, name, position, board_id
		 FROM columns
		 WHERE board_id = ?
		 ORDER BY position ASC, created_at ASC, id ASC`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	return columns, nil
}
