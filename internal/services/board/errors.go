package board

import (
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Board and column errors
var (
	// Validation errors
	ErrEmptyName       = fmt.Errorf("%w: name cannot be empty", models.ErrValidation)
	ErrNameTooLong     = fmt.Errorf("%w: name cannot exceed %d characters", models.ErrValidation, models.MaxNameLength)
	ErrInvalidBoardID  = fmt.Errorf("%w: board id cannot be empty", models.ErrValidation)
	ErrInvalidPosition = fmt.Errorf("%w: invalid position: must be >= 0", models.ErrValidation)

	// Lookup errors
	ErrBoardNotFound = fmt.Errorf("board %w", models.ErrNotFound)
)
