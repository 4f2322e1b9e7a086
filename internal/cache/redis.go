package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/thenoetrevino/kanban/internal/models"
)

const keyPrefix = "kanban:board:"

// NoVersion is returned by Version when redis cannot be read. Set never
// stores under it.
const NoVersion int64 = -1

var errStaleVersion = errors.New("board invalidated since read")

// Redis caches board projections in redis with a TTL
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps a redis client. A non-positive ttl stores entries without expiry.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl < 0 {
		ttl = 0
	}
	return &Redis{client: client, ttl: ttl}
}

// Connect parses a redis:// URL and checks the server answers
func Connect(ctx context.Context, url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewRedis(client, ttl), nil
}

func (r *Redis) Get(ctx context.Context, boardID string) (*models.BoardDetail, bool) {
	data, err := r.client.Get(ctx, boardKey(boardID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("board cache read failed", "board_id", boardID, "error", err)
		}
		return nil, false
	}

	var detail models.BoardDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		// drop the corrupt entry so the next read repopulates it
		if err := r.client.Del(ctx, boardKey(boardID)).Err(); err != nil {
			slog.Warn("board cache cleanup failed", "board_id", boardID, "error", err)
		}
		return nil, false
	}
	return &detail, true
}

// Version returns the board's invalidation counter, 0 before the first write
func (r *Redis) Version(ctx context.Context, boardID string) int64 {
	version, err := r.client.Get(ctx, versionKey(boardID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0
		}
		slog.Warn("board cache version read failed", "board_id", boardID, "error", err)
		return NoVersion
	}
	return version
}

// Set stores detail only while the board's version still equals version.
// The version key is watched, so an Invalidate racing the write wins.
func (r *Redis) Set(ctx context.Context, detail *models.BoardDetail, version int64) {
	if version < 0 {
		return
	}
	data, err := json.Marshal(detail)
	if err != nil {
		return
	}

	vkey := versionKey(detail.ID)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vkey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, boardKey(detail.ID), data, r.ttl)
			return nil
		})
		return err
	}, vkey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleVersion), errors.Is(err, redis.TxFailedErr):
		slog.Debug("board cache write skipped, board changed", "board_id", detail.ID)
	default:
		slog.Warn("board cache write failed", "board_id", detail.ID, "error", err)
	}
}

func (r *Redis) Invalidate(ctx context.Context, boardIDs ...string) {
	if len(boardIDs) == 0 {
		return
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range boardIDs {
			pipe.Incr(ctx, versionKey(id))
			pipe.Del(ctx, boardKey(id))
		}
		return nil
	})
	if err != nil {
		slog.Warn("board cache invalidation failed", "board_ids", boardIDs, "error", err)
	}
}

// Close closes the underlying client
func (r *Redis) Close() error {
	return r.client.Close()
}

func boardKey(boardID string) string {
	return keyPrefix + boardID
}

func versionKey(boardID string) string {
	return keyPrefix + boardID + ":version"
}
