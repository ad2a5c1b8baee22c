package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var progressJSON bool

var progressCmd = &cobra.Command{
	Use:   "progress [pathID]",
	Short: "Show progress along a reading path",
	Long: `Prints owned and read counts per phase of a reading path and the
next recommendation to read.`,
	Args: cobra.ExactArgs(1),
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&progressJSON, "json", false, "output progress as JSON")
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	if pathService == nil {
		return errors.New("path service not configured")
	}

	path, err := pathService.GetPath(args[0])
	if err != nil {
		return fmt.Errorf("find path: %w", err)
	}

	result, err := pathService.Progress(commandContext(cmd), path.ID)
	if err != nil {
		return fmt.Errorf("compute path progress: %w", err)
	}

	if progressJSON {
		return outputJSON(cmd, result)
	}

	cmd.Printf("%s: %d/%d read, %d owned (%d%%)\n",
		path.Name, result.Overall.Read, result.Overall.Total, result.Overall.Owned, result.Overall.Percentage)
	for _, phase := range path.Phases {
		counts := result.PhaseProgress[phase.ID]
		cmd.Printf("  %-24s %d/%d read, %d owned\n", phase.Name, counts.Read, counts.Total, counts.Owned)
	}

	if result.NextToRead == nil {
		cmd.Println("Next: nothing left to read")
		return nil
	}

	cmd.Printf("Next: %s (%s)\n", result.NextToRead.Recommendation.Title, result.NextToRead.Phase.Name)
	return nil
}
