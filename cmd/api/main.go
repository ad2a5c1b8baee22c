// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Shelfmark HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) and run migrations.
//  4. Connect to Redis when configured.
//  5. Load the reading path catalog.
//  6. Wire domain services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/shelfmark/internal/api"
	"github.com/taibuivan/shelfmark/internal/insights"
	"github.com/taibuivan/shelfmark/internal/library"
	"github.com/taibuivan/shelfmark/internal/platform/config"
	"github.com/taibuivan/shelfmark/internal/platform/constants"
	"github.com/taibuivan/shelfmark/internal/platform/migration"
	pgstore "github.com/taibuivan/shelfmark/internal/platform/postgres"
	redisstore "github.com/taibuivan/shelfmark/internal/platform/redis"
	"github.com/taibuivan/shelfmark/internal/recommend"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("[Shelfmark] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	healthChecks := []api.HealthCheck{{
		Name:  "postgres",
		Check: func() error { return pgstore.Ping(context.Background(), pool) },
	}}

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var insightsCache insights.Cache
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, rdb)

		insightsCache = insights.NewRedisCache(rdb, cfg.InsightsCacheTTL)
		healthChecks = append(healthChecks, api.HealthCheck{
			Name:  "redis",
			Check: func() error { return redisstore.Ping(context.Background(), rdb) },
		})
	} else {
		log.Warn("redis_not_configured", slog.String("effect", "insights are recomputed on every request"))
	}

	// ── 5. Reading path catalog ───────────────────────────────────────────
	catalog, err := recommend.LoadCatalog(cfg.RecommendationCatalogPath)
	must(log, err, "load recommendation catalog")

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	libraryService := library.NewService(library.NewPostgresRepository(pool), log)
	insightsService := insights.NewService(libraryService, insightsCache, log)
	libraryService.OnChange(insightsService.Invalidate)
	recommendService := recommend.NewService(catalog, libraryService, log)

	liveness, readiness := api.NewHealthHandlers(healthChecks, log)

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Library:   library.NewHandler(libraryService),
		Insights:  insights.NewHandler(insightsService),
		Recommend: recommend.NewHandler(recommendService),
	})

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName), slog.String("version", constants.AppVersion))
	slog.SetDefault(log)
	return log
}

func closeRedis(log *slog.Logger, client *goredis.Client) {
	log.Info("closing redis client")
	if err := client.Close(); err != nil {
		log.Error("redis close error", slog.Any("error", err))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
