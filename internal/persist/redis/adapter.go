// Package redis persists the bookmark set to a single Redis slot.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jdelcourt/marque/internal/domain"
	"github.com/jdelcourt/marque/internal/logger"
	"github.com/jdelcourt/marque/internal/persist"
)

// Adapter reads and writes the serialized bookmark array in one
// key-value slot. Load never fails: an absent or corrupt slot falls
// back to the seed set so the bookmarking workflow stays available.
type Adapter struct {
	client *redis.Client
	seed   []domain.Bookmark
	logger logger.Logger
}

func NewAdapter(client *redis.Client, seed []domain.Bookmark, log logger.Logger) *Adapter {
	return &Adapter{
		client: client,
		seed:   seed,
		logger: log,
	}
}

// Save serializes bookmarks and overwrites the slot. The entry has no
// TTL; the slot lives until the next save.
func (a *Adapter) Save(ctx context.Context, bookmarks []domain.Bookmark) error {
	data, err := persist.Encode(bookmarks)
	if err != nil {
		return fmt.Errorf("failed to serialize bookmarks: %w", err)
	}

	if err := a.client.Set(ctx, BookmarksSlotKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write bookmark slot: %w", err)
	}
	return nil
}

// Load reads the slot and deserializes it. An absent slot seeds the
// default set; a corrupt slot is logged and also recovered with the
// seed set, never propagated as a fatal error.
func (a *Adapter) Load(ctx context.Context) []domain.Bookmark {
	data, err := a.client.Get(ctx, BookmarksSlotKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			a.logger.Info("bookmark slot empty, starting from seed set",
				logger.Int("seed_count", len(a.seed)))
		} else {
			a.logger.Warn("failed to read bookmark slot, starting from seed set",
				logger.Error(err))
		}
		return a.seedCopy()
	}

	bookmarks, err := persist.Decode(data)
	if err != nil {
		a.logger.Warn("bookmark slot corrupt, starting from seed set",
			logger.Error(err))
		return a.seedCopy()
	}

	a.logger.Info("loaded bookmarks from slot",
		logger.Int("count", len(bookmarks)))
	return bookmarks
}

func (a *Adapter) seedCopy() []domain.Bookmark {
	out := make([]domain.Bookmark, len(a.seed))
	copy(out, a.seed)
	return out
}
