package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jdelcourt/marque/internal/domain"
	"github.com/jdelcourt/marque/internal/enrich"
	"github.com/jdelcourt/marque/internal/httpserver/deps"
	"github.com/jdelcourt/marque/internal/httpserver/routes"
	"github.com/jdelcourt/marque/internal/logger"
	"github.com/jdelcourt/marque/internal/store"
)

// newTestRouter builds the full API router against a fresh store. The
// resolver points at unreachable endpoints so enrichment always lands
// on the deterministic placeholder, without network access.
func newTestRouter(t *testing.T) (http.Handler, deps.Deps) {
	t.Helper()

	resolver := enrich.NewResolver(enrich.Config{
		MetadataEndpoint:   "http://127.0.0.1:1",
		ScreenshotEndpoint: "http://127.0.0.1:1",
		Timeout:            200 * time.Millisecond,
	}, logger.Nop())

	d := deps.Deps{
		Logger:          logger.Nop(),
		StartTime:       time.Now(),
		Version:         "test",
		TimeNow:         time.Now,
		Store:           store.New(),
		Resolver:        resolver,
		Tokens:          &enrich.Tokens{},
		BackfillTrigger: make(chan struct{}, 1),
	}

	r := chi.NewRouter()
	routes.RegisterAll(r, d)
	return r, d
}

func seedBookmark(t *testing.T, s *store.Store, title, url, collection string, pinned bool, tags ...string) domain.Bookmark {
	t.Helper()
	b := domain.NewBookmark(title, url)
	b.Collection = collection
	b.IsPinned = pinned
	b.Tags = tags
	if b.Tags == nil {
		b.Tags = []string{}
	}
	s.AddBookmark(b)
	return b
}
