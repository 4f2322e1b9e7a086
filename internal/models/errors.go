package models

import "errors"

// Error kinds shared by all services. Service-specific errors wrap one of
// these so the transport layer can map them with errors.Is.
var (
	// ErrValidation marks missing or malformed input
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a board, column or task id that does not resolve
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a write that lost a race with a concurrent write
	ErrConflict = errors.New("conflict")
)

// Field limits enforced by the services
const (
	MaxNameLength        = 50
	MaxDescriptionLength = 250
)
