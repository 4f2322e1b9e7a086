package models

// Task represents a single task in a column.
// Position and ColumnID are rewritten by move and reorder operations.
type Task struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	Position    int     `db:"position" json:"position"`
	ColumnID    string  `db:"column_id" json:"column_id"`
}

// TaskPlacement is the column and position a task should be persisted at
type TaskPlacement struct {
	TaskID   string
	ColumnID string
	Position int
}

// GetID returns the task ID
func (t *Task) GetID() string { return t.ID }
