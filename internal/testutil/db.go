// Package testutil holds shared fixtures for tests that need a real store.
package testutil

import (
	"context"
	"sort"
	"testing"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// SetupTestStore creates an in-memory database with the full schema
func SetupTestStore(t *testing.T) *database.Store {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	store := database.NewStore(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// CreateTestBoard inserts a board directly and returns its ID
func CreateTestBoard(t *testing.T, store *database.Store, name string) string {
	t.Helper()
	board := &models.Board{ID: types.NewID(), Name: name}
	if err := store.Queries().CreateBoard(context.Background(), board); err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	return board.ID
}

// CreateTestColumn inserts a column directly and returns its ID
func CreateTestColumn(t *testing.T, store *database.Store, boardID, name string, position int) string {
	t.Helper()
	column := &models.Column{ID: types.NewID(), Name: name, Position: position, BoardID: boardID}
	if err := store.Queries().CreateColumn(context.Background(), column); err != nil {
		t.Fatalf("Failed to create test column: %v", err)
	}
	return column.ID
}

// CreateTestTask inserts a task directly and returns its ID
func CreateTestTask(t *testing.T, store *database.Store, columnID, name string, position int) string {
	t.Helper()
	task := &models.Task{ID: types.NewID(), Name: name, Position: position, ColumnID: columnID}
	if err := store.Queries().CreateTask(context.Background(), task); err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task.ID
}

// CreateTestTasks appends one task per name to a column and returns their IDs in order
func CreateTestTasks(t *testing.T, store *database.Store, columnID string, names ...string) []string {
	t.Helper()
	ids := make([]string, len(names))
	for i, name := range names {
		ids[i] = CreateTestTask(t, store, columnID, name, i)
	}
	return ids
}

// TaskOrder returns the task IDs of a column in position order
func TaskOrder(t *testing.T, store *database.Store, columnID string) []string {
	t.Helper()
	tasks, err := store.Queries().GetTasksByColumn(context.Background(), columnID)
	if err != nil {
		t.Fatalf("Failed to get tasks: %v", err)
	}
	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}

// AssertDensePositions fails the test unless the column's positions are exactly 0..n-1
func AssertDensePositions(t *testing.T, store *database.Store, columnID string) {
	t.Helper()
	tasks, err := store.Queries().GetTasksByColumn(context.Background(), columnID)
	if err != nil {
		t.Fatalf("Failed to get tasks: %v", err)
	}
	positions := make([]int, len(tasks))
	for i, task := range tasks {
		positions[i] = task.Position
	}
	sort.Ints(positions)
	for i, p := range positions {
		if p != i {
			t.Fatalf("Expected dense positions 0..%d in column %s, got %v", len(tasks)-1, columnID, positions)
		}
	}
}
