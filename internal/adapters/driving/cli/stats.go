package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsIndexPath string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsIndexPath, "index", "", "index path (default ~/.mafteah/index.bleve)")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	indexPath, err := resolveIndexPath(statsIndexPath)
	if err != nil {
		return fmt.Errorf("resolving index path: %w", err)
	}

	engine, err := openEngine(indexPath)
	if err != nil {
		return err
	}
	defer engine.Close()

	count, err := engine.DocCount()
	if err != nil {
		return fmt.Errorf("reading document count: %w", err)
	}

	cmd.Printf("Index:     %s\n", indexPath)
	cmd.Printf("Documents: %d\n", count)
	return nil
}
