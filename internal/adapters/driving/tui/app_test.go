package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifria-labs/mafteah-cli/internal/adapters/driving/tui/messages"
	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
)

// mockSearchService implements driving.SearchService for testing.
type mockSearchService struct {
	SearchFunc func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
}

func (m *mockSearchService) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, req)
	}
	return domain.NewSearchResponse(req.Query, 0, 0, nil), nil
}

func testResponse() *domain.SearchResponse {
	hits := []domain.Hit{
		{
			Rank:         1,
			LineID:       101,
			BookID:       1,
			BookTitle:    "בראשית",
			CategoryPath: "תנ\"ך/תורה",
			HeRef:        "בראשית א׳:א׳",
			Snippet:      "בראשית <mark>ברא</mark> אלהים את השמים",
			Score:        12.5,
		},
		{
			Rank:         2,
			LineID:       205,
			BookID:       7,
			LineIndex:    29,
			BookTitle:    "תהילים",
			CategoryPath: "תנ\"ך/כתובים",
			HeRef:        "תהילים ק״ד:ל׳",
			Snippet:      "תשלח רוחך <mark>יבראון</mark> ותחדש פני אדמה",
			Score:        9.25,
		},
	}
	return domain.NewSearchResponse("ברא", 2, 7, hits)
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewApp(t *testing.T) {
	app := NewApp(&mockSearchService{})

	require.NotNil(t, app)
	assert.False(t, app.Ready())
	assert.Empty(t, app.Query())
	assert.True(t, app.InputFocused())
	assert.False(t, app.WildcardMode())
	assert.Empty(t, app.Results())
	assert.NoError(t, app.Err())
}

func TestApp_WithContext(t *testing.T) {
	app := NewApp(&mockSearchService{})

	got := app.WithContext(context.Background())

	assert.Same(t, app, got)
}

func TestApp_Init(t *testing.T) {
	app := NewApp(&mockSearchService{})

	cmd := app.Init()

	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app := NewApp(&mockSearchService{})

	_, cmd := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_KeyEnter_RunsSearch(t *testing.T) {
	var captured domain.SearchRequest
	mock := &mockSearchService{
		SearchFunc: func(_ context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
			captured = req
			return testResponse(), nil
		},
	}
	app := NewApp(mock)
	app.SetQuery("ברא")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.False(t, app.InputFocused())

	msg := cmd()
	completed, ok := msg.(messages.SearchCompleted)
	require.True(t, ok)
	require.NoError(t, completed.Err)
	assert.Equal(t, "ברא", captured.Query)
	assert.False(t, captured.WildcardMode)
	assert.Equal(t, 2, completed.Response.TotalHits)
}

func TestApp_Update_KeyEnter_BlankQuery(t *testing.T) {
	app := NewApp(&mockSearchService{})
	app.SetQuery("   ")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, app.InputFocused())
}

func TestApp_Update_KeyEnter_ShowsSearching(t *testing.T) {
	app := NewApp(&mockSearchService{})
	app.SetDimensions(100, 30)
	app.SetQuery("ברא")

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, app.View(), "Searching")
}

func TestApp_Update_WildcardToggle(t *testing.T) {
	var captured domain.SearchRequest
	mock := &mockSearchService{
		SearchFunc: func(_ context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
			captured = req
			return testResponse(), nil
		},
	}
	app := NewApp(mock)

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	assert.True(t, app.WildcardMode())

	app.SetQuery("ברא*")
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_ = cmd()
	assert.True(t, captured.WildcardMode)

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	assert.False(t, app.WildcardMode())
}

func TestApp_Update_SearchCompleted(t *testing.T) {
	app := NewApp(&mockSearchService{})

	_, cmd := app.Update(messages.SearchCompleted{Response: testResponse()})

	assert.Nil(t, cmd)
	assert.Len(t, app.Results(), 2)
	assert.False(t, app.InputFocused())
	assert.NoError(t, app.Err())
}

func TestApp_Update_SearchCompleted_Error(t *testing.T) {
	app := NewApp(&mockSearchService{})

	_, _ = app.Update(messages.SearchCompleted{Err: errors.New("index not found")})

	require.Error(t, app.Err())
	assert.Empty(t, app.Results())
}

func TestApp_Update_SearchCompleted_ClearsError(t *testing.T) {
	app := NewApp(&mockSearchService{})

	_, _ = app.Update(messages.SearchCompleted{Err: errors.New("index not found")})
	require.Error(t, app.Err())

	_, _ = app.Update(messages.SearchCompleted{Response: testResponse()})

	assert.NoError(t, app.Err())
	assert.Len(t, app.Results(), 2)
}

func TestApp_Update_Navigation(t *testing.T) {
	app := NewApp(&mockSearchService{})
	_, _ = app.Update(messages.SearchCompleted{Response: testResponse()})
	require.False(t, app.InputFocused())

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, app.SelectedIndex())

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, app.SelectedIndex())

	_, _ = app.Update(keyRunes('j'))
	assert.Equal(t, 1, app.SelectedIndex())

	_, _ = app.Update(keyRunes('k'))
	assert.Equal(t, 0, app.SelectedIndex())
}

func TestApp_Update_FocusKey(t *testing.T) {
	app := NewApp(&mockSearchService{})
	_, _ = app.Update(messages.SearchCompleted{Response: testResponse()})
	require.False(t, app.InputFocused())

	_, cmd := app.Update(keyRunes('/'))

	assert.True(t, app.InputFocused())
	assert.NotNil(t, cmd)
}

func TestApp_Update_TypingWhileFocused(t *testing.T) {
	app := NewApp(&mockSearchService{})
	_, _ = app.Update(messages.SearchCompleted{Response: testResponse()})

	_, _ = app.Update(keyRunes('/'))
	require.True(t, app.InputFocused())
	app.SetQuery("")

	_, _ = app.Update(keyRunes('j'))

	assert.Equal(t, "j", app.Query())
	assert.Equal(t, 0, app.SelectedIndex())
}

func TestApp_Update_EscLeavesInput(t *testing.T) {
	app := NewApp(&mockSearchService{})
	_, _ = app.Update(messages.SearchCompleted{Response: testResponse()})
	_, _ = app.Update(keyRunes('/'))
	require.True(t, app.InputFocused())

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, app.InputFocused())
}

func TestApp_Update_EscWithoutResults(t *testing.T) {
	app := NewApp(&mockSearchService{})

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, app.InputFocused())
}

func TestApp_Update_CtrlC_Quits(t *testing.T) {
	app := NewApp(&mockSearchService{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Update_KeyQ_QuitsInResultsMode(t *testing.T) {
	app := NewApp(&mockSearchService{})
	_, _ = app.Update(messages.SearchCompleted{Response: testResponse()})
	require.False(t, app.InputFocused())

	_, cmd := app.Update(keyRunes('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Update_KeyQ_TypesWhileFocused(t *testing.T) {
	app := NewApp(&mockSearchService{})
	require.True(t, app.InputFocused())

	_, _ = app.Update(keyRunes('q'))

	assert.Equal(t, "q", app.Query())
	assert.True(t, app.InputFocused())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	app := NewApp(&mockSearchService{})

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Update_KeyEnter_RerunsFromResultsMode(t *testing.T) {
	calls := 0
	var captured domain.SearchRequest
	mock := &mockSearchService{
		SearchFunc: func(_ context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
			calls++
			captured = req
			return testResponse(), nil
		},
	}
	app := NewApp(mock)
	app.SetQuery("ברא")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, _ = app.Update(cmd())
	require.False(t, app.InputFocused())

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_ = cmd()

	assert.Equal(t, 2, calls)
	assert.True(t, captured.WildcardMode)
}

func TestApp_View_NotReady(t *testing.T) {
	app := NewApp(&mockSearchService{})

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_View_Ready(t *testing.T) {
	app := NewApp(&mockSearchService{})
	app.SetDimensions(100, 30)

	view := app.View()

	assert.Contains(t, view, "Mafteah")
	assert.Contains(t, view, "Search")
	assert.Contains(t, view, "Ready")
}

func TestApp_View_WithResults(t *testing.T) {
	app := NewApp(&mockSearchService{})
	app.SetDimensions(120, 40)
	_, _ = app.Update(messages.SearchCompleted{Response: testResponse()})

	view := app.View()

	assert.Contains(t, view, "בראשית א׳:א׳")
	assert.Contains(t, view, "2 hits in 7ms")
	assert.NotContains(t, view, "<mark>")
}

func TestApp_View_WithError(t *testing.T) {
	app := NewApp(&mockSearchService{})
	app.SetDimensions(100, 30)
	_, _ = app.Update(messages.SearchCompleted{Err: errors.New("index not found")})

	view := app.View()

	assert.Contains(t, view, "Error")
	assert.Contains(t, view, "index not found")
}

func TestApp_View_WildcardIndicator(t *testing.T) {
	app := NewApp(&mockSearchService{})
	app.SetDimensions(100, 30)

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlW})

	assert.Contains(t, app.View(), "[wildcards]")
}

func TestApp_SetDimensions(t *testing.T) {
	app := NewApp(&mockSearchService{})

	app.SetDimensions(140, 50)

	assert.True(t, app.Ready())
	assert.NotContains(t, app.View(), "Initialising")
}

func TestApp_SetQuery(t *testing.T) {
	app := NewApp(&mockSearchService{})

	app.SetQuery("שלום")

	assert.Equal(t, "שלום", app.Query())
}

func TestApp_ContextPropagation(t *testing.T) {
	type ctxKey string
	var gotValue any
	mock := &mockSearchService{
		SearchFunc: func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
			gotValue = ctx.Value(ctxKey("trace"))
			return domain.NewSearchResponse(req.Query, 0, 0, nil), nil
		},
	}
	ctx := context.WithValue(context.Background(), ctxKey("trace"), "tui-test")
	app := NewApp(mock).WithContext(ctx)
	app.SetQuery("ברא")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_ = cmd()

	assert.Equal(t, "tui-test", gotValue)
}
