package deps

import (
	"time"

	"github.com/jdelcourt/marque/internal/enrich"
	"github.com/jdelcourt/marque/internal/logger"
	"github.com/jdelcourt/marque/internal/store"
)

// Deps carries the shared dependencies handed to every route.
type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	AllowedHosts []string // Host headers allowed to access the server (empty = any)

	Store           *store.Store     // entity store, single owner of bookmark state
	Resolver        *enrich.Resolver // preview-image fallback chain
	Tokens          *enrich.Tokens   // generation counter for staleness checks
	BackfillTrigger chan struct{}    // channel to trigger a manual enrichment backfill
}
