package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sifria-labs/mafteah-cli/internal/adapters/driven/config/file"
	bleveindex "github.com/sifria-labs/mafteah-cli/internal/adapters/driven/index/bleve"
	sourcesqlite "github.com/sifria-labs/mafteah-cli/internal/adapters/driven/source/sqlite"
	"github.com/sifria-labs/mafteah-cli/internal/core/ports/driven"
	"github.com/sifria-labs/mafteah-cli/internal/logger"
)

// version is stamped by the release build.
var version = "dev"

var (
	verboseFlag bool
	configDir   string
)

// configStore is initialised before every command runs.
var configStore driven.ConfigStore

// Adapter constructors, swappable by tests.
var (
	openEngine = func(path string) (driven.SearchIndex, error) {
		return bleveindex.Open(path)
	}
	openReloadingEngine = func(path string) (driven.SearchIndex, error) {
		return bleveindex.NewReloader(path)
	}
	openSource = func(path string) (driven.SourceReader, error) {
		return sourcesqlite.NewReader(path)
	}
	createWriter = func(path string) (driven.IndexWriter, error) {
		return bleveindex.CreateWriter(path)
	}
)

var rootCmd = &cobra.Command{
	Use:   "mafteah",
	Short: "Full-text search over a Hebrew book corpus",
	Long: `mafteah indexes a relational Hebrew book corpus into a local search
index and answers ranked keyword and wildcard queries with highlighted
snippets, filtered by book title or category path.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.mafteah)")
}

// initConfig loads the config store and applies the logging level
// before any command runs.
func initConfig(_ *cobra.Command, _ []string) error {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = store

	if verboseFlag || store.GetBool(file.KeyVerbose) {
		logger.SetVerbose(true)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveIndexPath picks the index location: flag, then config, then
// the default under ~/.mafteah.
func resolveIndexPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if configStore != nil {
		if p := configStore.GetString(file.KeyIndexPath); p != "" {
			return p, nil
		}
	}
	dir, err := file.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "index.bleve"), nil
}

// resolveDBPath picks the corpus database location: flag, then config,
// then the default under ~/.mafteah.
func resolveDBPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if configStore != nil {
		if p := configStore.GetString(file.KeyDBPath); p != "" {
			return p, nil
		}
	}
	dir, err := file.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "toratemet.db"), nil
}

// resolveLimit picks the result limit: flag, then config. Zero falls
// through to the core default.
func resolveLimit(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if configStore != nil {
		return configStore.GetInt(file.KeyDefaultLimit)
	}
	return 0
}
