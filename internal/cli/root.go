// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package cli implements the shelfctl command line interface.
//
// Commands read the collection through the same services the HTTP API uses.
// The services are injected with [SetServices] before [Execute] runs.
package cli

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/taibuivan/shelfmark/internal/insights"
	"github.com/taibuivan/shelfmark/internal/library"
	"github.com/taibuivan/shelfmark/internal/platform/constants"
	"github.com/taibuivan/shelfmark/internal/recommend"
)

// InsightsService computes collection insights.
type InsightsService interface {
	Collection(context context.Context, bookType *library.BookType) (*insights.CollectionInsights, error)
}

// PathService exposes the reading path catalog and path progress.
type PathService interface {
	ListPaths(bookType *library.BookType) []recommend.Path
	GetPath(id string) (*recommend.Path, error)
	Progress(context context.Context, id string) (*recommend.PathProgress, error)
}

var (
	insightsService InsightsService
	pathService     PathService
)

var rootCmd = &cobra.Command{
	Use:   "shelfctl",
	Short: "Inspect a Shelfmark collection",
	Long: `shelfctl reports on a Shelfmark collection from the command line.
It prints collection insights and progress along curated reading paths.`,
	Version:       constants.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetServices injects the services used by the commands.
func SetServices(insightsSvc InsightsService, pathSvc PathService) {
	insightsService = insightsSvc
	pathService = pathSvc
}

// Execute runs the root command.
func Execute(context context.Context) error {
	return rootCmd.ExecuteContext(context)
}

// parseTypeFlag converts the --type flag into an optional book type.
func parseTypeFlag(value string) (*library.BookType, error) {
	if value == "" {
		return nil, nil
	}
	bookType, ok := library.ParseBookType(value)
	if !ok {
		return nil, fmt.Errorf("invalid --type %q: must be one of %v", value, library.BookTypeNames())
	}
	return &bookType, nil
}

func outputJSON(cmd *cobra.Command, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
