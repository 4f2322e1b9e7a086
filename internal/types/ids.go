// Package types holds identifier helpers shared across layers.
package types

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a new globally unique identifier for a board, column or task
func NewID() string {
	return uuid.NewString()
}

// NormalizeID trims surrounding whitespace from a client-supplied id.
// Ids are opaque, so no format is enforced beyond being non-empty.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}
