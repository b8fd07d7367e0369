// Package scheduler runs the periodic background passes of the
// service.
package scheduler

import (
	"context"
	"time"

	"github.com/jdelcourt/marque/internal/domain"
	"github.com/jdelcourt/marque/internal/enrich"
	"github.com/jdelcourt/marque/internal/logger"
	"github.com/jdelcourt/marque/internal/store"
)

// Backfiller periodically fills in missing enrichment metadata.
// Bookmarks can legitimately be created without a favicon or preview
// (enrichment failure is never fatal); the backfill pass retries those
// best-effort so the catalog converges toward complete metadata.
type Backfiller struct {
	store         *store.Store
	resolver      *enrich.Resolver
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewBackfiller creates an enrichment backfiller. manualTrigger lets
// the HTTP layer request an immediate pass.
func NewBackfiller(
	st *store.Store,
	resolver *enrich.Resolver,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *Backfiller {
	return &Backfiller{
		store:         st,
		resolver:      resolver,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic backfill. The first pass runs immediately;
// its failure is logged, never fatal.
func (bf *Backfiller) Start(ctx context.Context) {
	bf.Run(ctx)

	ticker := time.NewTicker(bf.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				bf.Run(ctx)
			case <-bf.manualTrigger:
				bf.logger.Info("manual enrichment backfill triggered")
				bf.Run(ctx)
			case <-bf.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the backfiller.
func (bf *Backfiller) Stop() {
	close(bf.stopCh)
}

// Run walks the bookmark set once and fills empty favicon/wallpaper
// fields. Each fix is applied through the store so it persists like
// any other edit.
func (bf *Backfiller) Run(ctx context.Context) {
	bookmarks := bf.store.Bookmarks()

	filled := 0
	for _, b := range bookmarks {
		if ctx.Err() != nil {
			return
		}
		if b.Favicon != "" && b.Wallpaper != "" {
			continue
		}

		patch := domain.Patch{}
		if b.Favicon == "" {
			if icon := domain.FaviconURL(b.URL); icon != "" {
				patch.Favicon = &icon
			}
		}
		if b.Wallpaper == "" {
			result := bf.resolver.Resolve(ctx, b.URL)
			patch.Wallpaper = &result.ImageURL
			bf.logger.Debug("backfilled preview image",
				logger.String("id", b.ID),
				logger.String("source", result.Source.String()))
		}

		if patch.Favicon == nil && patch.Wallpaper == nil {
			continue
		}
		bf.store.EditBookmark(b.ID, patch)
		filled++
	}

	if filled > 0 {
		bf.logger.Info("enrichment backfill pass finished",
			logger.Int("updated", filled),
			logger.Int("total", len(bookmarks)))
	}
}
