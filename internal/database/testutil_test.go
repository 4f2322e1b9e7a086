package database

import (
	"context"
	"testing"

	"github.com/thenoetrevino/kanban/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *Store {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func createTestBoard(t *testing.T, q DataStore, id, name string) *models.Board {
	t.Helper()
	board := &models.Board{ID: id, Name: name}
	if err := q.CreateBoard(context.Background(), board); err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	return board
}

func createTestColumn(t *testing.T, q DataStore, id, boardID string, position int) *models.Column {
	t.Helper()
	column := &models.Column{ID: id, Name: "Column " + id, Position: position, BoardID: boardID}
	if err := q.CreateColumn(context.Background(), column); err != nil {
		t.Fatalf("Failed to create column: %v", err)
	}
	return column
}

func createTestTask(t *testing.T, q DataStore, id, columnID string, position int) *models.Task {
	t.Helper()
	task := &models.Task{ID: id, Name: "Task " + id, Position: position, ColumnID: columnID}
	if err := q.CreateTask(context.Background(), task); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	return task
}
