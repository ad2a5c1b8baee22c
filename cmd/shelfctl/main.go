// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command shelfctl reports on a Shelfmark collection from the terminal.
//
// It reads the same environment as the API server and connects to PostgreSQL
// directly. Insights are always recomputed; the Redis cache is not used.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/shelfmark/internal/cli"
	"github.com/taibuivan/shelfmark/internal/insights"
	"github.com/taibuivan/shelfmark/internal/library"
	"github.com/taibuivan/shelfmark/internal/platform/config"
	pgstore "github.com/taibuivan/shelfmark/internal/platform/postgres"
	"github.com/taibuivan/shelfmark/internal/recommend"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	catalog, err := recommend.LoadCatalog(cfg.RecommendationCatalogPath)
	if err != nil {
		return fmt.Errorf("load recommendation catalog: %w", err)
	}

	libraryService := library.NewService(library.NewPostgresRepository(pool), log)
	cli.SetServices(
		insights.NewService(libraryService, nil, log),
		recommend.NewService(catalog, libraryService, log),
	)

	return cli.Execute(ctx)
}
