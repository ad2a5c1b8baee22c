package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	pathsType string
	pathsJSON bool
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List reading paths",
	Args:  cobra.NoArgs,
	RunE:  runPaths,
}

func init() {
	pathsCmd.Flags().StringVarP(&pathsType, "type", "t", "", "only list paths for a book type")
	pathsCmd.Flags().BoolVar(&pathsJSON, "json", false, "output paths as JSON")
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	if pathService == nil {
		return errors.New("path service not configured")
	}

	bookType, err := parseTypeFlag(pathsType)
	if err != nil {
		return err
	}

	paths := pathService.ListPaths(bookType)
	if pathsJSON {
		return outputJSON(cmd, paths)
	}

	if len(paths) == 0 {
		cmd.Println("No reading paths found.")
		return nil
	}
	for _, path := range paths {
		cmd.Printf("%s [%s] %s (%d phases)\n", path.ID, path.BookType, path.Name, len(path.Phases))
	}
	return nil
}
