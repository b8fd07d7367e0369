package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jdelcourt/marque/internal/config"
	"github.com/jdelcourt/marque/internal/domain"
	"github.com/jdelcourt/marque/internal/enrich"
	"github.com/jdelcourt/marque/internal/httpserver"
	"github.com/jdelcourt/marque/internal/httpserver/deps"
	"github.com/jdelcourt/marque/internal/logger"
	persistredis "github.com/jdelcourt/marque/internal/persist/redis"
	"github.com/jdelcourt/marque/internal/redis"
	"github.com/jdelcourt/marque/internal/scheduler"
	"github.com/jdelcourt/marque/internal/seed"
	"github.com/jdelcourt/marque/internal/store"
	"github.com/jdelcourt/marque/internal/version"

	goredis "github.com/redis/go-redis/v9"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	store       *store.Store
	backfiller  *scheduler.Backfiller
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDialTimeout,
		ReadTimeout:    cfg.RedisReadTimeout,
		WriteTimeout:   cfg.RedisWriteTimeout,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}

	// Collections are not persisted: every boot reseeds them, either
	// from the operator's seed file or from the built-in defaults.
	var collections []domain.Collection
	var seedBookmarks []domain.Bookmark
	if cfg.SeedFile != "" {
		collections, seedBookmarks, err = seed.Load(cfg.SeedFile)
		if err != nil {
			loggerClient.Errorf("Failed to load seed file %s: %v", cfg.SeedFile, err)
			os.Exit(1)
		}
		loggerClient.Info("seed file loaded",
			logger.String("file", cfg.SeedFile),
			logger.Int("collections", len(collections)),
			logger.Int("bookmarks", len(seedBookmarks)))
	} else {
		collections = seed.Collections()
		seedBookmarks = seed.Bookmarks()
	}

	adapter := persistredis.NewAdapter(redisClient, seedBookmarks, loggerClient)

	// Load durable state before wiring persistence, so the initial
	// replace does not immediately rewrite the slot it came from.
	st := store.New()
	for _, c := range collections {
		if _, ok := st.AddCollection(c.Name); !ok {
			loggerClient.Warn("skipping blank collection name from seed")
		}
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.PersistTimeout)
	st.SetBookmarks(adapter.Load(loadCtx))
	cancelLoad()

	// Persistence runs as a store subscriber: fire-and-forget from the
	// mutator caller's perspective, failures logged and swallowed.
	st.Subscribe(func(bookmarks []domain.Bookmark) {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.PersistTimeout)
		defer cancel()
		if err := adapter.Save(ctx, bookmarks); err != nil {
			loggerClient.Error("failed to persist bookmarks",
				logger.Int("count", len(bookmarks)),
				logger.Error(err))
		}
	})

	resolver := enrich.NewResolver(enrich.Config{
		MetadataEndpoint:   cfg.MetadataEndpoint,
		ScreenshotEndpoint: cfg.ScreenshotEndpoint,
		ScreenshotKey:      cfg.ScreenshotKey,
		Timeout:            cfg.EnrichTimeout,
	}, loggerClient)

	backfillTrigger := make(chan struct{}, 1)
	backfiller := scheduler.NewBackfiller(st, resolver, loggerClient, cfg.BackfillInterval, backfillTrigger)

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		AllowedHosts:    cfg.AllowedHosts,
		Store:           st,
		Resolver:        resolver,
		Tokens:          &enrich.Tokens{},
		BackfillTrigger: backfillTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		store:       st,
		backfiller:  backfiller,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting marque v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("marque %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.backfiller.Start(ctx)
	a.logger.Info("enrichment backfiller started",
		logger.Duration("interval", a.cfg.BackfillInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.backfiller.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		}
	}

	a.logger.Info("✅ marque stopped cleanly")
	return nil
}
