package database

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
)

// CreateBoard inserts a board. The id must already be assigned.
func (q *Queries) CreateBoard(ctx context.Context, board *models.Board) error {
	_, err := q.exec(ctx,
		`INSERT INTO boards (id, name) VALUES (?, ?)`,
		board.ID, board.Name,
	)
	return err
}

// GetBoardByID retrieves a board. Returns sql.ErrNoRows if it does not exist.
func (q *Queries) GetBoardByID(ctx context.Context, id string) (*models.Board, error) {
	board := &models.Board{}
	if err := q.get(ctx, board, `SELECT id, name FROM boards WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return board, nil
}

// ListBoards retrieves every board in store order
func (q *Queries) ListBoards(ctx context.Context) ([]*models.Board, error) {
	boards := []*models.Board{}
	if err := q.selectRows(ctx, &boards, `SELECT id, name FROM boards`); err != nil {
		return nil, err
	}
	return boards, nil
}
