// Package tui provides the interactive terminal search screen.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sifria-labs/mafteah-cli/internal/adapters/driving/tui/components/list"
	"github.com/sifria-labs/mafteah-cli/internal/adapters/driving/tui/components/status"
	"github.com/sifria-labs/mafteah-cli/internal/adapters/driving/tui/keymap"
	"github.com/sifria-labs/mafteah-cli/internal/adapters/driving/tui/messages"
	"github.com/sifria-labs/mafteah-cli/internal/adapters/driving/tui/styles"
	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
	"github.com/sifria-labs/mafteah-cli/internal/core/ports/driving"
)

// App is the interactive search screen following the Elm architecture.
// It implements tea.Model for use with Bubbletea. A single screen holds
// the query input, the result list and the status bar; focus moves
// between typing and navigating results.
type App struct {
	// search runs queries through the driving port.
	search driving.SearchService

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the active keybindings.
	keymap *keymap.KeyMap

	// input is the query line editor.
	input textinput.Model

	// list is the navigable result list.
	list *list.ResultList

	// statusbar shows state, totals and keybinding hints.
	statusbar *status.Bar

	// wildcard enables the * and ? operators on submitted queries.
	wildcard bool

	// focusInput is true while typing, false while navigating results.
	focusInput bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its dimensions.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI application around a search service.
func NewApp(search driving.SearchService) *App {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	ti := textinput.New()
	ti.Placeholder = "Enter a query..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &App{
		search:     search,
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		input:      ti,
		list:       list.NewResultList(s),
		statusbar:  status.NewBar(s, km),
		focusInput: true,
		width:      80,
		height:     24,
	}
}

// WithContext sets the context used for searches.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("mafteah"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.SearchCompleted:
		a.handleSearchCompleted(msg)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Everything else, cursor blinks included, goes to the input.
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	// ctrl+c and ctrl+w work in both modes; plain letters stay free
	// for typing while the input has focus.
	if k == "ctrl+c" {
		return a, tea.Quit
	}
	if keymap.Matches(k, a.keymap.Wildcard) {
		a.wildcard = !a.wildcard
		a.statusbar.SetWildcard(a.wildcard)
		return a, nil
	}

	if a.focusInput {
		return a.handleInputKey(msg)
	}
	return a.handleResultsKey(msg)
}

// handleInputKey processes keys while the query input has focus.
func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		query := a.input.Value()
		if strings.TrimSpace(query) == "" {
			return a, nil
		}
		a.statusbar.SetState(status.StateSearching)
		a.focusInput = false
		a.input.Blur()
		return a, a.performSearch(query)
	}

	if msg.Type == tea.KeyEsc {
		if !a.list.IsEmpty() {
			a.focusInput = false
			a.input.Blur()
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleResultsKey processes keys while navigating results.
func (a *App) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(k, a.keymap.Focus), keymap.Matches(k, a.keymap.Back):
		a.focusInput = true
		return a, a.input.Focus()

	case keymap.Matches(k, a.keymap.Up):
		a.list.MoveUp()
		return a, nil

	case keymap.Matches(k, a.keymap.Down):
		a.list.MoveDown()
		return a, nil

	case keymap.Matches(k, a.keymap.Search):
		// Enter re-runs the current query, picking up a toggled
		// wildcard mode without retyping.
		query := a.input.Value()
		if strings.TrimSpace(query) == "" {
			return a, nil
		}
		a.statusbar.SetState(status.StateSearching)
		return a, a.performSearch(query)
	}

	return a, nil
}

// performSearch runs the query through the search service off the UI
// loop and reports back as a SearchCompleted message.
func (a *App) performSearch(query string) tea.Cmd {
	req := domain.SearchRequest{
		Query:        query,
		WildcardMode: a.wildcard,
	}
	return func() tea.Msg {
		resp, err := a.search.Search(a.ctx, req)
		return messages.SearchCompleted{Response: resp, Err: err}
	}
}

// handleSearchCompleted folds a finished search into the model.
func (a *App) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		a.err = msg.Err
		a.statusbar.SetState(status.StateError)
		a.statusbar.SetMessage(msg.Err.Error())
		return
	}

	a.err = nil
	a.list.SetHits(msg.Response.Results)
	a.statusbar.SetState(status.StateResults)
	a.statusbar.SetResults(msg.Response.TotalHits, msg.Response.ElapsedMS)

	// Move to results mode so navigation keys work immediately.
	a.focusInput = false
	a.input.Blur()
}

// View implements tea.Model.
// It renders the screen as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := a.styles.Title.Render("Mafteah") + " " +
		a.styles.Muted.Render("Hebrew corpus search")
	sections = append(sections, header, "")

	label := a.styles.Subtitle.Render("Search: ")
	field := a.styles.InputField.Render(a.input.View())
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, label, field), "")

	if a.err != nil {
		sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()), "")
	}

	sections = append(sections, a.list.View())

	sections = append(sections, "", a.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	inputWidth := width - 14
	if inputWidth < 20 {
		inputWidth = 20
	}
	a.input.Width = inputWidth
	// Header, input and status bar take roughly eight rows.
	a.list.SetDimensions(width, height-8)
	a.statusbar.SetWidth(width)
}

// Query returns the current query text.
func (a *App) Query() string {
	return a.input.Value()
}

// SetQuery sets the query text.
func (a *App) SetQuery(query string) {
	a.input.SetValue(query)
}

// Results returns the current hits.
func (a *App) Results() []domain.Hit {
	return a.list.Hits()
}

// SelectedIndex returns the selected hit's index.
func (a *App) SelectedIndex() int {
	return a.list.Selected()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// InputFocused returns whether the query input has focus.
func (a *App) InputFocused() bool {
	return a.focusInput
}

// WildcardMode returns whether wildcard queries are enabled.
func (a *App) WildcardMode() bool {
	return a.wildcard
}
