// Package cache provides an optional read-through cache for board projections.
package cache

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
)

// BoardCache stores nested board projections keyed by board id.
// Implementations must treat every failure as a miss.
//
// Readers take Version before loading a board from the store and pass it to
// Set. Invalidate moves the version, so a projection read before a write
// committed is never stored after that write invalidated it.
type BoardCache interface {
	Get(ctx context.Context, boardID string) (*models.BoardDetail, bool)
	Version(ctx context.Context, boardID string) int64
	Set(ctx context.Context, detail *models.BoardDetail, version int64)
	Invalidate(ctx context.Context, boardIDs ...string)
}

// Nop is a BoardCache that never stores anything
type Nop struct{}

func (Nop) Get(context.Context, string) (*models.BoardDetail, bool) { return nil, false }
func (Nop) Version(context.Context, string) int64                   { return 0 }
func (Nop) Set(context.Context, *models.BoardDetail, int64)         {}
func (Nop) Invalidate(context.Context, ...string)                   {}

var (
	_ BoardCache = Nop{}
	_ BoardCache = (*Redis)(nil)
)
