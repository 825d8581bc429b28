// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sifria-labs/mafteah-cli/internal/adapters/driving/tui/keymap"
	"github.com/sifria-labs/mafteah-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateResults   State = "results"
	StateError     State = "error"
)

// Bar displays search progress, totals and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	total     int
	elapsedMS int64
	wildcard  bool
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// The bar is passive; state arrives through the Set methods.
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state half of the bar.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateSearching:
		return s.styles.Muted.Render("Searching...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateResults:
		return s.styles.Normal.Render(fmt.Sprintf("%d hits in %dms", s.total, s.elapsedMS))
	case StateReady:
	}
	return s.styles.Muted.Render("Ready")
}

// renderRight renders the wildcard indicator and keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state == StateResults {
		bindings = s.keymap.ResultsHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	right := s.styles.Muted.Render(strings.Join(hints, " | "))

	if s.wildcard {
		right = s.styles.Warning.Render("[wildcards]") + " " + right
	}
	return right
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the error message shown in the error state.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetResults records the totals of the last search.
func (s *Bar) SetResults(total int, elapsedMS int64) {
	s.total = total
	s.elapsedMS = elapsedMS
}

// Total returns the last search's full match count.
func (s *Bar) Total() int {
	return s.total
}

// ElapsedMS returns the last search's duration in milliseconds.
func (s *Bar) ElapsedMS() int64 {
	return s.elapsedMS
}

// SetWildcard toggles the wildcard mode indicator.
func (s *Bar) SetWildcard(on bool) {
	s.wildcard = on
}

// Wildcard returns whether the indicator is shown.
func (s *Bar) Wildcard() bool {
	return s.wildcard
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the bar, keeping the wildcard mode since it is a
// setting rather than a result.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.total = 0
	s.elapsedMS = 0
}
