package database

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
)

// ============================================================================
// Task Operations
// ============================================================================

const taskColumns = `id, name, description, position, column_id`

// CreateTask inserts a task at the position the caller chose
func (q *Queries) CreateTask(ctx context.Context, task *models.Task) error {
	_, err := q.exec(ctx,
		`INSERT INTO tasks (id, name, description, position, column_id)
		 VALUES (?, ?, ?, ?, ?)`,
		task.ID, task.Name, task.Description, task.Position, task.ColumnID,
	)
	return err
}

// GetTasksByColumn retrieves all tasks for a specific column, ordered by position
func (q *Queries) GetTasksByColumn(ctx context.Context, columnID string) ([]*models.Task, error) {
	tasks := []*models.Task{}
	err := q.selectRows(ctx, &tasks,
		`SELECT `+taskColumns+`
		 FROM tasks
		 WHERE column_id = ?
		 ORDER BY position ASC, created_at ASC, id ASC`,
		columnID,
	)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTasksByBoard retrieves the tasks of every column of a board in one query,
// grouped by column and ordered by position within each column
func (q *Queries) GetTasksByBoard(ctx context.Context, boardID string) ([]*models.Task, error) {
	tasks := []*models.Task{}
	err := q.selectRows(ctx, &tasks,
		`SELECT t.id, t.name, t.description, t.position, t.column_id
		 FROM tasks t
		 JOIN columns c ON c.id = t.column_id
		 WHERE c.board_id = ?
		 ORDER BY t.column_id, t.position ASC, t.created_at ASC, t.id ASC`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTaskCountByColumn returns the number of tasks in a specific column
func (q *Queries) GetTaskCountByColumn(ctx context.Context, columnID string) (int, error) {
	var count int
	if err := q.get(ctx, &count, `SELECT COUNT(*) FROM tasks WHERE column_id = ?`, columnID); err != nil {
		return 0, err
	}
	return count, nil
}

// columnTaskRow is one row of the column/task join
type columnTaskRow struct {
	ColumnID        string  `db:"c_id"`
	ColumnName      string  `db:"c_name"`
	ColumnPosition  int     `db:"c_position"`
	BoardID         string  `db:"c_board_id"`
	TaskID          string  `db:"t_id"`
	TaskName        string  `db:"t_name"`
	TaskDescription *string `db:"t_description"`
	TaskPosition    int     `db:"t_position"`
	TaskColumnID    string  `db:"t_column_id"`
}

// GetColumnWithTask resolves a column and a task together with a single join.
// Returns sql.ErrNoRows if either side does not exist.
func (q *Queries) GetColumnWithTask(ctx context.Context, columnID, taskID string) (*models.Column, *models.Task, error) {
	var row columnTaskRow
	err := q.get(ctx, &row,
		`SELECT
			c.id AS c_id, c.name AS c_name, c.position AS c_position, c.board_id AS c_board_id,
			t.id AS t_id, t.name AS t_name, t.description AS t_description,
			t.position AS t_position, t.column_id AS t_column_id
		 FROM columns c
		 JOIN tasks t ON t.id = ?
		 WHERE c.id = ?`,
		taskID, columnID,
	)
	if err != nil {
		return nil, nil, err
	}

	column := &models.Column{
		ID:       row.ColumnID,
		Name:     row.ColumnName,
		Position: row.ColumnPosition,
		BoardID:  row.BoardID,
	}
	task := &models.Task{
		ID:          row.TaskID,
		Name:        row.TaskName,
		Description: row.TaskDescription,
		Position:    row.TaskPosition,
		ColumnID:    row.TaskColumnID,
	}
	return column, task, nil
}

// UpdateTaskPlacement writes a task's column and position, but only while the
// task still sits in expectedColumnID. Returns false when no row matched.
func (q *Queries) UpdateTaskPlacement(ctx context.Context, placement models.TaskPlacement, expectedColumnID string) (bool, error) {
	affected, err := q.exec(ctx,
		`UPDATE tasks
		 SET column_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND column_id = ?`,
		placement.ColumnID, placement.Position, placement.TaskID, expectedColumnID,
	)
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
