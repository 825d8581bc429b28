package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifria-labs/mafteah-cli/internal/adapters/driven/config/file"
	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
	"github.com/sifria-labs/mafteah-cli/internal/core/ports/driven"
)

// resetFlags restores every command flag to its default so one test's
// arguments never leak into the next.
func resetFlags() {
	verboseFlag = false
	configDir = ""
	buildDBPath = ""
	buildIndexPath = ""
	searchLimit = 0
	searchBook = ""
	searchCategory = ""
	searchWildcard = false
	searchIndexPath = ""
	searchFormat = "json"
	statsIndexPath = ""
	mcpIndexPath = ""
	tuiIndexPath = ""
	configStore = nil
	resetHelpFlags(rootCmd)
}

// resetHelpFlags clears cobra's built-in help flag on every command in
// the tree. The flag sticks between Execute calls on a shared command,
// so a prior --help run would otherwise short-circuit the next command
// into printing help instead of running it.
func resetHelpFlags(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("help"); f != nil && f.Changed {
		_ = f.Value.Set("false")
		f.Changed = false
	}
	for _, sub := range cmd.Commands() {
		resetHelpFlags(sub)
	}
}

// executeCommand runs the CLI with args and returns what it printed to
// stdout. HOME points at a scratch directory so config files and
// default paths never touch the real user directory.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags()

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// seedConfig writes one value into the config file at dir before a
// command runs against it.
func seedConfig(t *testing.T, dir, key string, value any) {
	t.Helper()
	store, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(key, value))
}

// stubEngine is a canned driven.SearchIndex for command tests.
type stubEngine struct {
	result   *domain.IndexResult
	err      error
	docCount uint64
	gotQuery domain.Query
	gotLimit int
	executed bool
	closed   bool
}

func (s *stubEngine) Execute(_ context.Context, q domain.Query, limit int) (*domain.IndexResult, error) {
	s.executed = true
	s.gotQuery = q
	s.gotLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	if s.result == nil {
		return &domain.IndexResult{}, nil
	}
	return s.result, nil
}

func (s *stubEngine) DocCount() (uint64, error) { return s.docCount, nil }

func (s *stubEngine) Close() error {
	s.closed = true
	return nil
}

// stubOpenEngine routes the search and stats commands to a canned
// engine. A non-nil openErr simulates a missing or unreadable index.
// The returned flag reports whether a command tried to open the index.
func stubOpenEngine(t *testing.T, engine driven.SearchIndex, openErr error) *bool {
	t.Helper()
	opened := false
	orig := openEngine
	openEngine = func(string) (driven.SearchIndex, error) {
		opened = true
		if openErr != nil {
			return nil, openErr
		}
		return engine, nil
	}
	t.Cleanup(func() { openEngine = orig })
	return &opened
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	want := []string{"build", "config", "mcp", "search", "stats", "tui", "version"}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "command %s should be registered", name)
	}
}

func TestResolveIndexPath_PrecedenceOrder(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { configStore = nil })

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = store

	// Nothing set: the default under ~/.mafteah.
	path, err := resolveIndexPath("")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join(".mafteah", "index.bleve")), "got %s", path)

	// Config overrides the default.
	require.NoError(t, store.Set(file.KeyIndexPath, "/srv/corpus/index.bleve"))
	path, err = resolveIndexPath("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/corpus/index.bleve", path)

	// The flag wins over config.
	path, err = resolveIndexPath("/tmp/other.bleve")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.bleve", path)
}

func TestResolveDBPath_PrecedenceOrder(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { configStore = nil })

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = store

	path, err := resolveDBPath("")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join(".mafteah", "toratemet.db")), "got %s", path)

	require.NoError(t, store.Set(file.KeyDBPath, "/srv/corpus/toratemet.db"))
	path, err = resolveDBPath("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/corpus/toratemet.db", path)

	path, err = resolveDBPath("/tmp/other.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", path)
}

func TestResolveLimit(t *testing.T) {
	t.Cleanup(func() { configStore = nil })

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = store

	// Unset everywhere: zero falls through to the core default.
	assert.Equal(t, 0, resolveLimit(0))

	require.NoError(t, store.Set(file.KeyDefaultLimit, 25))
	assert.Equal(t, 25, resolveLimit(0))

	// The flag wins over config.
	assert.Equal(t, 7, resolveLimit(7))
}
