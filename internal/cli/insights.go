package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/shelfmark/internal/insights"
	"github.com/taibuivan/shelfmark/internal/library"
)

var (
	insightsType string
	insightsJSON bool
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show collection insights",
	Long: `Prints reading statistics for the whole collection and the series
breakdown, optionally restricted to one book type.`,
	Args: cobra.NoArgs,
	RunE: runInsights,
}

func init() {
	insightsCmd.Flags().StringVarP(&insightsType, "type", "t", "", "restrict the series breakdown to a book type")
	insightsCmd.Flags().BoolVar(&insightsJSON, "json", false, "output insights as JSON")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	if insightsService == nil {
		return errors.New("insights service not configured")
	}

	bookType, err := parseTypeFlag(insightsType)
	if err != nil {
		return err
	}

	result, err := insightsService.Collection(commandContext(cmd), bookType)
	if err != nil {
		return fmt.Errorf("compute insights: %w", err)
	}

	if insightsJSON {
		return outputJSON(cmd, result)
	}

	stats := result.Stats
	cmd.Printf("Books: %d total, %d read, %d unread (%d%% read)\n",
		stats.Total, stats.Read, stats.Unread, stats.ReadPercentage)
	for _, bookType := range []library.BookType{library.TypeComic, library.TypeManga, library.TypeGraphicNovel} {
		typeStats := stats.ByType[bookType]
		cmd.Printf("  %-14s %d/%d\n", bookType, typeStats.Read, typeStats.Total)
	}

	printSeries(cmd, "Complete series", result.CompleteSeries)
	printSeries(cmd, "Incomplete series", result.IncompleteSeries)
	return nil
}

func printSeries(cmd *cobra.Command, heading string, series []insights.SeriesInsight) {
	cmd.Println()
	cmd.Printf("%s (%d):\n", heading, len(series))
	if len(series) == 0 {
		cmd.Println("  none")
		return
	}
	for _, insight := range series {
		line := fmt.Sprintf("  %s: %d/%d read (%d%%)",
			insight.SeriesName, insight.ReadVolumes, insight.OwnedVolumes, insight.CompletionPercentage)
		if len(insight.MissingVolumes) > 0 {
			line += " missing " + strings.Join(insight.MissingVolumes, ", ")
		}
		cmd.Println(line)
	}
}
