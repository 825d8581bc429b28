package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sifria-labs/mafteah-cli/internal/adapters/driving/tui"
	"github.com/sifria-labs/mafteah-cli/internal/core/services"
)

var tuiIndexPath string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Type a query and press Enter to search. Results show highlighted
snippets with their book and reference. The index is reopened
automatically when a rebuild replaces it.

Controls:
  ↑/k, ↓/j - Navigate results
  Enter    - Search
  ctrl+w   - Toggle wildcard mode
  /        - Edit the query
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiIndexPath, "index", "", "index path (default ~/.mafteah/index.bleve)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Recover so a panic surfaces with a stack trace instead of a
	// garbled alternate screen.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	indexPath, err := resolveIndexPath(tuiIndexPath)
	if err != nil {
		return fmt.Errorf("resolving index path: %w", err)
	}

	engine, err := openReloadingEngine(indexPath)
	if err != nil {
		return err
	}
	defer engine.Close()

	app := tui.NewApp(services.NewSearchService(engine))
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
