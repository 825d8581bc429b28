// Package list provides the result list component for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sifria-labs/mafteah-cli/internal/adapters/driving/tui/styles"
	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
)

// ResultList displays ranked hits in a navigable list.
type ResultList struct {
	hits     []domain.Hit
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		hits:     nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.hits) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.hits)+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.hits)))
	lines = append(lines, header, "")

	// Each hit renders as a reference heading plus a snippet line.
	visibleCount := (r.height - 2) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.hits) {
		end = len(r.hits)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderHit(i, &r.hits[i]))
	}

	return strings.Join(lines, "\n")
}

// renderHit formats a single hit as a reference heading and its snippet.
func (r *ResultList) renderHit(index int, hit *domain.Hit) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	ref := hit.HeRef
	if ref == "" {
		ref = fmt.Sprintf("%s %d", hit.BookTitle, hit.LineIndex)
	}
	heading := fmt.Sprintf("%s%d. %s", indicator, hit.Rank, ref)
	score := fmt.Sprintf("%.2f", hit.Score)

	var headingLine string
	if index == r.selected {
		headingLine = r.styles.Selected.Render(heading) + "  " + r.styles.Muted.Render(score)
	} else {
		headingLine = r.styles.Normal.Render(heading) + "  " + r.styles.Muted.Render(score)
	}

	return headingLine + "\n    " + r.renderSnippet(hit.Snippet)
}

// renderSnippet styles the <mark> spans produced by the snippet
// builder and trims the text to the component width. The budget is in
// runes, not bytes, so Hebrew text clips cleanly.
func (r *ResultList) renderSnippet(snippet string) string {
	budget := r.width - 8
	if budget < 20 {
		budget = 20
	}

	var b strings.Builder
	rest := snippet
	for {
		plain, marked, found := strings.Cut(rest, "<mark>")
		if plain != "" {
			b.WriteString(r.styles.Muted.Render(clip(plain, &budget)))
		}
		if !found || budget == 0 {
			break
		}
		term, tail, _ := strings.Cut(marked, "</mark>")
		if term != "" {
			b.WriteString(r.styles.Mark.Render(clip(term, &budget)))
		}
		if budget == 0 {
			break
		}
		rest = tail
	}
	if budget == 0 {
		b.WriteString(r.styles.Muted.Render("..."))
	}
	return b.String()
}

// clip takes up to *budget runes from s, decrementing the budget by
// what it consumed.
func clip(s string, budget *int) string {
	runes := []rune(s)
	if len(runes) <= *budget {
		*budget -= len(runes)
		return s
	}
	clipped := runes[:*budget]
	*budget = 0
	return string(clipped)
}

// SetHits replaces the list contents and resets the selection.
func (r *ResultList) SetHits(hits []domain.Hit) {
	r.hits = hits
	r.selected = 0
}

// Hits returns the current hits.
func (r *ResultList) Hits() []domain.Hit {
	return r.hits
}

// Selected returns the index of the selected hit.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.hits) {
		r.selected = index
	}
}

// SelectedHit returns the currently selected hit, or nil if none.
func (r *ResultList) SelectedHit() *domain.Hit {
	if len(r.hits) == 0 || r.selected < 0 || r.selected >= len(r.hits) {
		return nil
	}
	return &r.hits[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.hits)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of hits.
func (r *ResultList) Count() int {
	return len(r.hits)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.hits) == 0
}
