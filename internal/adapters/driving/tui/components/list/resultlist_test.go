package list

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifria-labs/mafteah-cli/internal/adapters/driving/tui/styles"
	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
)

func sampleHits() []domain.Hit {
	return []domain.Hit{
		{
			Rank:      1,
			LineID:    101,
			BookTitle: "בראשית",
			HeRef:     "בראשית א׳:א׳",
			Snippet:   "בראשית <mark>ברא</mark> אלהים",
			Score:     12.5,
		},
		{
			Rank:      2,
			LineID:    205,
			BookTitle: "תהילים",
			HeRef:     "תהילים ק״ד:ל׳",
			Snippet:   "ובורא את הכל",
			Score:     9.25,
		},
		{
			Rank:      3,
			LineID:    310,
			BookTitle: "ישעיהו",
			LineIndex: 4,
			Snippet:   "דבר אחר",
			Score:     7,
		},
	}
}

func TestNewResultList(t *testing.T) {
	s := styles.DefaultStyles()
	list := NewResultList(s)

	require.NotNil(t, list)
	assert.Equal(t, 0, list.Selected())
	assert.True(t, list.IsEmpty())
}

func TestNewResultList_NilStyles(t *testing.T) {
	list := NewResultList(nil)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
}

func TestResultList_Init(t *testing.T) {
	list := NewResultList(nil)

	cmd := list.Init()

	assert.Nil(t, cmd)
}

func TestResultList_SetHits(t *testing.T) {
	list := NewResultList(nil)

	list.SetHits(sampleHits())

	assert.Equal(t, 3, list.Count())
	assert.False(t, list.IsEmpty())
	assert.Equal(t, 0, list.Selected())
}

func TestResultList_SetHits_ResetsSelection(t *testing.T) {
	list := NewResultList(nil)
	list.SetHits(sampleHits())
	list.SetSelected(2)

	list.SetHits(sampleHits()[:1])

	assert.Equal(t, 0, list.Selected())
}

func TestResultList_Hits(t *testing.T) {
	list := NewResultList(nil)
	hits := sampleHits()
	list.SetHits(hits)

	assert.Equal(t, hits, list.Hits())
}

func TestResultList_SetSelected_Valid(t *testing.T) {
	list := NewResultList(nil)
	list.SetHits(sampleHits())

	list.SetSelected(2)

	assert.Equal(t, 2, list.Selected())
}

func TestResultList_SetSelected_OutOfBounds(t *testing.T) {
	list := NewResultList(nil)
	list.SetHits(sampleHits())

	list.SetSelected(99)

	assert.Equal(t, 0, list.Selected()) // Unchanged
}

func TestResultList_SetSelected_Negative(t *testing.T) {
	list := NewResultList(nil)
	list.SetHits(sampleHits())

	list.SetSelected(-1)

	assert.Equal(t, 0, list.Selected()) // Unchanged
}

func TestResultList_SelectedHit(t *testing.T) {
	list := NewResultList(nil)
	list.SetHits(sampleHits())
	list.SetSelected(1)

	hit := list.SelectedHit()

	require.NotNil(t, hit)
	assert.Equal(t, int64(205), hit.LineID)
}

func TestResultList_SelectedHit_Empty(t *testing.T) {
	list := NewResultList(nil)

	assert.Nil(t, list.SelectedHit())
}

func TestResultList_MoveUp(t *testing.T) {
	list := NewResultList(nil)
	list.SetHits(sampleHits())
	list.SetSelected(1)

	list.MoveUp()

	assert.Equal(t, 0, list.Selected())
}

func TestResultList_MoveUp_AtTop(t *testing.T) {
	list := NewResultList(nil)
	list.SetHits(sampleHits())

	list.MoveUp()

	assert.Equal(t, 0, list.Selected()) // Stays at 0
}

func TestResultList_MoveDown(t *testing.T) {
	list := NewResultList(nil)
	list.SetHits(sampleHits())

	list.MoveDown()

	assert.Equal(t, 1, list.Selected())
}

func TestResultList_MoveDown_AtBottom(t *testing.T) {
	list := NewResultList(nil)
	list.SetHits(sampleHits())
	list.SetSelected(2)

	list.MoveDown()

	assert.Equal(t, 2, list.Selected()) // Stays at 2
}

func TestResultList_Update_ArrowKeys(t *testing.T) {
	list := NewResultList(nil)
	list.SetHits(sampleHits())

	updated, cmd := list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, list, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, list.Selected())

	list.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, list.Selected())
}

func TestResultList_Update_VimKeys(t *testing.T) {
	list := NewResultList(nil)
	list.SetHits(sampleHits())

	list.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, list.Selected())

	list.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, list.Selected())
}

func TestResultList_View_Empty(t *testing.T) {
	list := NewResultList(nil)

	view := list.View()

	assert.Contains(t, view, "No results")
}

func TestResultList_View_WithHits(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(80, 12)
	list.SetHits(sampleHits())

	view := list.View()

	assert.Contains(t, view, "Results (3)")
	assert.Contains(t, view, "בראשית א׳:א׳")
	assert.Contains(t, view, "12.50")
}

func TestResultList_View_SelectedIndicator(t *testing.T) {
	list := NewResultList(nil)
	list.SetHits(sampleHits())

	view := list.View()

	assert.Contains(t, view, ">")
}

func TestResultList_View_HighlightsMarkedTerms(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(80, 12)
	list.SetHits(sampleHits())

	view := list.View()

	assert.NotContains(t, view, "<mark>")
	assert.NotContains(t, view, "</mark>")
	assert.Contains(t, view, "ברא")
}

func TestResultList_View_MissingHeRef(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(80, 12)
	list.SetHits(sampleHits())
	list.SetSelected(2)

	view := list.View()

	// The third hit has no reference, so book title and line stand in.
	assert.Contains(t, view, "ישעיהו 4")
}

func TestResultList_View_LongSnippetTruncated(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(40, 10)
	long := strings.Repeat("א", 300)
	list.SetHits([]domain.Hit{{Rank: 1, HeRef: "ספר", Snippet: long, Score: 1}})

	view := list.View()

	assert.Contains(t, view, "...")
	assert.NotContains(t, view, long)
}

func TestResultList_View_ScrollsToSelection(t *testing.T) {
	list := NewResultList(nil)
	list.SetDimensions(80, 6) // Two hits visible at a time

	hits := make([]domain.Hit, 10)
	for i := range hits {
		hits[i] = domain.Hit{
			Rank:    i + 1,
			HeRef:   fmt.Sprintf("דף %d", i+1),
			Snippet: "טקסט",
			Score:   float64(10 - i),
		}
	}
	list.SetHits(hits)
	list.SetSelected(9)

	view := list.View()

	assert.Contains(t, view, "דף 10")
	assert.NotContains(t, view, "דף 2")
}

func TestResultList_SetDimensions(t *testing.T) {
	list := NewResultList(nil)

	list.SetDimensions(100, 20)

	assert.Equal(t, 100, list.Width())
	assert.Equal(t, 20, list.Height())
}

func TestResultList_Defaults(t *testing.T) {
	list := NewResultList(nil)

	assert.Equal(t, 80, list.Width())
	assert.Equal(t, 10, list.Height())
}

func TestResultList_Count(t *testing.T) {
	list := NewResultList(nil)

	assert.Equal(t, 0, list.Count())

	list.SetHits(sampleHits())
	assert.Equal(t, 3, list.Count())
}

func TestClip_RuneAware(t *testing.T) {
	budget := 2

	got := clip("שלום", &budget)

	assert.Equal(t, "של", got)
	assert.Equal(t, 0, budget)
}

func TestClip_UnderBudget(t *testing.T) {
	budget := 10

	got := clip("אב", &budget)

	assert.Equal(t, "אב", got)
	assert.Equal(t, 8, budget)
}
