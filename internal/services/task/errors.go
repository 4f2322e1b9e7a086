package task

import (
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyName          = fmt.Errorf("%w: task name cannot be empty", models.ErrValidation)
	ErrNameTooLong        = fmt.Errorf("%w: task name cannot exceed %d characters", models.ErrValidation, models.MaxNameLength)
	ErrDescriptionTooLong = fmt.Errorf("%w: task description cannot exceed %d characters", models.ErrValidation, models.MaxDescriptionLength)
	ErrInvalidTaskID      = fmt.Errorf("%w: invalid task ID", models.ErrValidation)
	ErrInvalidColumnID    = fmt.Errorf("%w: invalid column ID", models.ErrValidation)
	ErrInvalidPosition    = fmt.Errorf("%w: invalid position: must be >= 0", models.ErrValidation)

	// Lookup errors
	ErrColumnNotFound       = fmt.Errorf("column %w", models.ErrNotFound)
	ErrSourceColumnNotFound = fmt.Errorf("source column %w", models.ErrNotFound)
	ErrMoveTargetNotFound   = fmt.Errorf("destination column or task %w", models.ErrNotFound)
)

// Ordering errors
var (
	// ErrIncompleteOrder indicates the order does not list every task of the column exactly once
	ErrIncompleteOrder = fmt.Errorf("%w: order is incomplete", models.ErrValidation)

	// ErrDuplicateInOrder indicates the same task appears twice in an order
	ErrDuplicateInOrder = fmt.Errorf("%w: order contains duplicate task IDs", models.ErrValidation)

	// ErrTaskNotInSource indicates the task does not sit in the given source column
	ErrTaskNotInSource = fmt.Errorf("%w: task is not in the source column", models.ErrValidation)

	// ErrConcurrentMove indicates another write changed the column while this one was applied
	ErrConcurrentMove = fmt.Errorf("%w: task was moved concurrently", models.ErrConflict)
)
