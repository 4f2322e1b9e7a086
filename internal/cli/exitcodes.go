package cli

import (
	"errors"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneral indicates a general error occurred.
	// Use for: Database errors, cache errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitGeneral = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested board, column or task was not found.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Empty or too long names, negative positions, incomplete orders.
	ExitValidation = 5
)

// ExitError carries the process exit code a command failed with
type ExitError struct {
	Code int
	Err  error

	// Reported is set once the error has been written to the user
	Reported bool
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an explicit exit code
func Exit(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// ExitCodeFor picks the exit code for an error returned by a command
func ExitCodeFor(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	default:
		return ExitGeneral
	}
}

// errorCode names the error kind in JSON output
func errorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitUsage:
		return "USAGE_ERROR"
	default:
		return "ERROR"
	}
}
