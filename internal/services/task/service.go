package task

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/kanban/internal/cache"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Service defines all task-related business operations
type Service interface {
	// Write operations
	AddTask(ctx context.Context, req AddTaskRequest) (*models.Task, error)

	// Task movements
	MoveTask(ctx context.Context, req MoveTaskRequest) error
	ReorderColumn(ctx context.Context, columnID string, order []string) error
}

// AddTaskRequest encapsulates all data needed to create a task.
// A nil Description is stored as NULL; a nil Position appends to the column.
type AddTaskRequest struct {
	ColumnID    string
	Name        string
	Description *string
	Position    *int
}

// MoveTaskRequest describes a move of one task to a position in a column.
// An empty SourceColumnID means the task's current column.
type MoveTaskRequest struct {
	TaskID              string
	SourceColumnID      string
	DestinationColumnID string
	Position            int
}

// service implements Service interface
type service struct {
	store database.UnitOfWork
	cache cache.BoardCache
	locks *columnLocks
}

// NewService creates a new task service. A nil cache disables caching.
func NewService(store database.UnitOfWork, boardCache cache.BoardCache) Service {
	if boardCache == nil {
		boardCache = cache.Nop{}
	}
	return &service{
		store: store,
		cache: boardCache,
		locks: newColumnLocks(),
	}
}

// AddTask creates a task in an existing column at the given position
func (s *service) AddTask(ctx context.Context, req AddTaskRequest) (*models.Task, error) {
	req.ColumnID = types.NormalizeID(req.ColumnID)
	req.Name = strings.TrimSpace(req.Name)
	if err := validateAddTask(req); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          types.NewID(),
		Name:        req.Name,
		Description: req.Description,
		ColumnID:    req.ColumnID,
	}

	unlock := s.locks.lock(req.ColumnID)
	defer unlock()

	var boardID string
	err := s.store.WithTx(ctx, func(q database.DataStore) error {
		column, err := q.GetColumnByID(ctx, req.ColumnID)
		if err != nil {
			if database.IsNoRows(err) {
				return ErrColumnNotFound
			}
			return fmt.Errorf("failed to get column: %w", err)
		}
		boardID = column.BoardID

		if req.Position != nil {
			task.Position = *req.Position
		} else {
			count, err := q.GetTaskCountByColumn(ctx, req.ColumnID)
			if err != nil {
				return fmt.Errorf("failed to count tasks: %w", err)
			}
			task.Position = count
		}

		if err := q.CreateTask(ctx, task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, boardID)
	return task, nil
}

// ReorderColumn rewrites the positions of a column's tasks to match order
func (s *service) ReorderColumn(ctx context.Context, columnID string, order []string) error {
	columnID = types.NormalizeID(columnID)
	if columnID == "" {
		return ErrInvalidColumnID
	}
	normalized := make([]string, len(order))
	for i, id := range order {
		normalized[i] = types.NormalizeID(id)
	}

	unlock := s.locks.lock(columnID)
	defer unlock()

	var boardID string
	err := s.store.WithTx(ctx, func(q database.DataStore) error {
		column, err := q.GetColumnByID(ctx, columnID)
		if err != nil {
			if database.IsNoRows(err) {
				return ErrColumnNotFound
			}
			return fmt.Errorf("failed to get column: %w", err)
		}
		boardID = column.BoardID

		tasks, err := q.GetTasksByColumn(ctx, columnID)
		if err != nil {
			return fmt.Errorf("failed to get tasks: %w", err)
		}

		changes, err := planReorder(columnID, tasks, normalized)
		if err != nil {
			return err
		}
		return apply(ctx, q, changes)
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, boardID)
	return nil
}

// MoveTask moves a task to a position in a column, renumbering the source and
// destination columns so both stay dense from zero
func (s *service) MoveTask(ctx context.Context, req MoveTaskRequest) error {
	req.TaskID = types.NormalizeID(req.TaskID)
	req.SourceColumnID = types.NormalizeID(req.SourceColumnID)
	req.DestinationColumnID = types.NormalizeID(req.DestinationColumnID)
	if err := validateMoveTask(req); err != nil {
		return err
	}

	sourceID := req.SourceColumnID
	if sourceID == "" {
		// The lock set needs the source column before the tx starts
		_, task, err := s.store.Queries().GetColumnWithTask(ctx, req.DestinationColumnID, req.TaskID)
		if err != nil {
			if database.IsNoRows(err) {
				return ErrMoveTargetNotFound
			}
			return fmt.Errorf("failed to resolve task: %w", err)
		}
		sourceID = task.ColumnID
	}

	unlock := s.locks.lock(sourceID, req.DestinationColumnID)
	defer unlock()

	var boardIDs []string
	err := s.store.WithTx(ctx, func(q database.DataStore) error {
		destination, task, err := q.GetColumnWithTask(ctx, req.DestinationColumnID, req.TaskID)
		if err != nil {
			if database.IsNoRows(err) {
				return ErrMoveTargetNotFound
			}
			return fmt.Errorf("failed to resolve move target: %w", err)
		}

		source, err := q.GetColumnByID(ctx, sourceID)
		if err != nil {
			if database.IsNoRows(err) {
				return ErrSourceColumnNotFound
			}
			return fmt.Errorf("failed to get source column: %w", err)
		}

		if task.ColumnID != source.ID {
			if req.SourceColumnID != "" {
				return ErrTaskNotInSource
			}
			// moved by someone else between the lookup and the lock
			return ErrConcurrentMove
		}

		sourceTasks, err := q.GetTasksByColumn(ctx, source.ID)
		if err != nil {
			return fmt.Errorf("failed to get source tasks: %w", err)
		}

		destinationTasks := sourceTasks
		if destination.ID != source.ID {
			destinationTasks, err = q.GetTasksByColumn(ctx, destination.ID)
			if err != nil {
				return fmt.Errorf("failed to get destination tasks: %w", err)
			}
		}

		changes := planMove(sourceTasks, destinationTasks, task, destination.ID, req.Position)
		if err := apply(ctx, q, changes); err != nil {
			return err
		}

		boardIDs = append(boardIDs, source.BoardID)
		if destination.BoardID != source.BoardID {
			boardIDs = append(boardIDs, destination.BoardID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, boardIDs...)
	return nil
}

// apply writes each change guarded by the column the row is expected to be in
func apply(ctx context.Context, q database.DataStore, changes []change) error {
	for _, c := range changes {
		ok, err := q.UpdateTaskPlacement(ctx, c.placement, c.from)
		if err != nil {
			return fmt.Errorf("failed to update task %s: %w", c.placement.TaskID, err)
		}
		if !ok {
			return ErrConcurrentMove
		}
	}
	return nil
}

// validateAddTask validates an AddTaskRequest
func validateAddTask(req AddTaskRequest) error {
	if req.ColumnID == "" {
		return ErrInvalidColumnID
	}
	if req.Name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(req.Name) > models.MaxNameLength {
		return ErrNameTooLong
	}
	if req.Description != nil && utf8.RuneCountInString(*req.Description) > models.MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if req.Position != nil && *req.Position < 0 {
		return ErrInvalidPosition
	}
	return nil
}

// validateMoveTask validates a MoveTaskRequest
func validateMoveTask(req MoveTaskRequest) error {
	if req.TaskID == "" {
		return ErrInvalidTaskID
	}
	if req.DestinationColumnID == "" {
		return ErrInvalidColumnID
	}
	if req.Position < 0 {
		return ErrInvalidPosition
	}
	return nil
}
