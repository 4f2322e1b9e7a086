package board

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

// Service defines all board and column business operations
type Service interface {
	// Read operations
	GetBoard(ctx context.Context, boardID string) (*models.BoardDetail, error)
	ListBoards(ctx context.Context) ([]*models.Board, error)

	// Write operations
	CreateBoard(ctx context.Context, name string) (*models.Board, error)
	AddColumn(ctx context.Context, req AddColumnRequest) (*models.Column, error)
}

// AddColumnRequest encapsulates data for creating a column.
// Position is trusted as given; callers normally pass the current column count.
type AddColumnRequest struct {
	BoardID  string
	Name     string
	Position int
}

type service struct {
	store database.UnitOfWork
	cache cache.BoardCache
}

// NewService creates a new board service. A nil cache disables caching.
func NewService(store database.UnitOfWork, boardCache cache.BoardCache) Service {
	if boardCache == nil {
		boardCache = cache.Nop{}
	}
	return &service{store: store, cache: boardCache}
}

// CreateBoard persists a new board with no columns
func (s *service) CreateBoard(ctx context.Context, name string) (*models.Board, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	board := &models.Board{ID: types.NewID(), Name: name}
	if err := s.store.Queries().CreateBoard(ctx, board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	return board, nil
}

// ListBoards returns every board, id and name only
func (s *service) ListBoards(ctx context.Context) ([]*models.Board, error) {
	boards, err := s.store.Queries().ListBoards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

// GetBoard returns the nested board projection
func (s *service) GetBoard(ctx context.Context, boardID string) (*models.BoardDetail, error) {
	boardID = types.NormalizeID(boardID)
	if boardID == "" {
		return nil, ErrInvalidBoardID
	}

	if detail, ok := s.cache.Get(ctx, boardID); ok {
		return detail, nil
	}
	// taken before the read so a write committing meanwhile voids the Set
	version := s.cache.Version(ctx, boardID)

	var detail *models.BoardDetail
	// Read board, columns and tasks from one snapshot
	err := s.store.WithTx(ctx, func(q database.DataStore) error {
		board, err := q.GetBoardByID(ctx, boardID)
		if err != nil {
			if database.IsNoRows(err) {
				return ErrBoardNotFound
			}
			return fmt.Errorf("failed to get board: %w", err)
		}

		columns, err := q.GetColumnsByBoard(ctx, boardID)
		if err != nil {
			return fmt.Errorf("failed to get columns: %w", err)
		}

		tasks, err := q.GetTasksByBoard(ctx, boardID)
		if err != nil {
			return fmt.Errorf("failed to get tasks: %w", err)
		}

		detail = buildDetail(board, columns, tasks)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, detail, version)
	return detail, nil
}

// AddColumn attaches a new column to an existing board
func (s *service) AddColumn(ctx context.Context, req AddColumnRequest) (*models.Column, error) {
	req.BoardID = types.NormalizeID(req.BoardID)
	req.Name = strings.TrimSpace(req.Name)
	if err := validateAddColumn(req); err != nil {
		return nil, err
	}

	column := &models.Column{
		ID:       types.NewID(),
		Name:     req.Name,
		Position: req.Position,
		BoardID:  req.BoardID,
	}

	err := s.store.WithTx(ctx, func(q database.DataStore) error {
		if _, err := q.GetBoardByID(ctx, req.BoardID); err != nil {
			if database.IsNoRows(err) {
				return ErrBoardNotFound
			}
			return fmt.Errorf("failed to get board: %w", err)
		}

		if err := q.CreateColumn(ctx, column); err != nil {
			return fmt.Errorf("failed to create column: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, req.BoardID)
	return column, nil
}

// buildDetail nests tasks under their columns. Both inputs arrive ordered by position.
func buildDetail(board *models.Board, columns []*models.Column, tasks []*models.Task) *models.BoardDetail {
	detail := &models.BoardDetail{
		ID:      board.ID,
		Name:    board.Name,
		Columns: make([]*models.ColumnDetail, 0, len(columns)),
	}

	byColumn := make(map[string]*models.ColumnDetail, len(columns))
	for _, c := range columns {
		cd := &models.ColumnDetail{
			ID:       c.ID,
			Name:     c.Name,
			Position: c.Position,
			Tasks:    []*models.TaskDetail{},
		}
		byColumn[c.ID] = cd
		detail.Columns = append(detail.Columns, cd)
	}

	for _, t := range tasks {
		cd, ok := byColumn[t.ColumnID]
		if !ok {
			continue
		}
		cd.Tasks = append(cd.Tasks, &models.TaskDetail{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Position:    t.Position,
		})
	}

	return detail
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > models.MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// validateAddColumn validates an AddColumnRequest
func validateAddColumn(req AddColumnRequest) error {
	if req.BoardID == "" {
		return ErrInvalidBoardID
	}
	if err := validateName(req.Name); err != nil {
		return err
	}
	if req.Position < 0 {
		return ErrInvalidPosition
	}
	return nil
}
