package database

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
)

// BoardRepository defines board persistence operations
type BoardRepository interface {
	CreateBoard(ctx context.Context, board *models.Board) error
	GetBoardByID(ctx context.Context, id string) (*models.Board, error)
	ListBoards(ctx context.Context) ([]*models.Board, error)
}

// ColumnRepository defines column persistence operations
type ColumnRepository interface {
	CreateColumn(ctx context.Context, column *models.Column) error
	GetColumnByID(ctx context.Context, id string) (*models.Column, error)
	GetColumnsByBoard(ctx context.Context, boardID string) ([]*models.Column, error)
}

// TaskRepository defines task persistence operations
type TaskRepository interface {
	CreateTask(ctx context.Context, task *models.Task) error
	GetTasksByColumn(ctx context.Context, columnID string) ([]*models.Task, error)
	GetTasksByBoard(ctx context.Context, boardID string) ([]*models.Task, error)
	GetTaskCountByColumn(ctx context.Context, columnID string) (int, error)
	GetColumnWithTask(ctx context.Context, columnID, taskID string) (*models.Column, *models.Task, error)
	UpdateTaskPlacement(ctx context.Context, placement models.TaskPlacement, expectedColumnID string) (bool, error)
}

// DataStore is the full set of queries available to a unit of work
type DataStore interface {
	BoardRepository
	ColumnRepository
	TaskRepository
}

// UnitOfWork hands out queries for reads and runs writes in a transaction.
// Every query issued inside fn must go through the DataStore it receives.
type UnitOfWork interface {
	Queries() DataStore
	WithTx(ctx context.Context, fn func(q DataStore) error) error
}

// Compile-time verification of the implementations
var (
	_ DataStore  = (*Queries)(nil)
	_ UnitOfWork = (*Store)(nil)
)
