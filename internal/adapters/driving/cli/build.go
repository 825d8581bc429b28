package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sifria-labs/mafteah-cli/internal/core/services"
)

var (
	buildDBPath    string
	buildIndexPath string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the search index from the corpus database",
	Long: `Reads every book, category and content line from the corpus database
and writes a fresh search index. An existing index at the target path
is replaced only once the new one is complete.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildDBPath, "db", "", "corpus database path (default ~/.mafteah/toratemet.db)")
	buildCmd.Flags().StringVar(&buildIndexPath, "index", "", "index path (default ~/.mafteah/index.bleve)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	dbPath, err := resolveDBPath(buildDBPath)
	if err != nil {
		return fmt.Errorf("resolving database path: %w", err)
	}
	indexPath, err := resolveIndexPath(buildIndexPath)
	if err != nil {
		return fmt.Errorf("resolving index path: %w", err)
	}

	// The source opens first so a bad database path never touches an
	// existing index.
	source, err := openSource(dbPath)
	if err != nil {
		return err
	}
	defer source.Close()

	writer, err := createWriter(indexPath)
	if err != nil {
		return err
	}

	cmd.Printf("Building index from %s...\n", dbPath)

	builder := services.NewBuildService(source, writer)
	stats, err := builder.Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	cmd.Printf("Indexed %d lines from %d books (%d blank lines skipped) in %s.\n",
		stats.Documents, stats.Books, stats.SkippedBlank, stats.Elapsed.Round(time.Millisecond))
	cmd.Printf("Index written to %s.\n", indexPath)
	return nil
}
