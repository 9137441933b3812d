package list

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/styles"
	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

func sampleResults() []domain.RankedArticle {
	return []domain.RankedArticle{
		{Article: domain.Article{Title: "Article One", Slug: "guides/one", Content: "First article body."}, Distance: 0.12},
		{Article: domain.Article{Title: "Article Two", Slug: "guides/two", Content: "Second article body."}, Distance: 0.34},
		{Article: domain.Article{Title: "Article Three", Slug: "api/three", Content: "Third article body."}, Distance: 0.56},
	}
}

func TestNewResultList(t *testing.T) {
	list := NewResultList(styles.DefaultStyles())

	require.NotNil(t, list)
	assert.True(t, list.IsEmpty())
	assert.Equal(t, 0, list.Count())
	assert.Equal(t, 0, list.Selected())
}

func TestNewResultList_NilStylesFallsBack(t *testing.T) {
	list := NewResultList(nil)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
}

func TestResultList_SetResults(t *testing.T) {
	list := NewResultList(nil)

	list.SetResults(sampleResults())

	assert.Equal(t, 3, list.Count())
	assert.False(t, list.IsEmpty())
	assert.Equal(t, sampleResults(), list.Results())
}

func TestResultList_SetResults_RewindsCursor(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())
	list.SetSelected(2)

	list.SetResults(sampleResults())

	assert.Equal(t, 0, list.Selected())
}

func TestResultList_CursorBounds(t *testing.T) {
	tests := []struct {
		name string
		move func(*ResultList)
		want int
	}{
		{"set valid index", func(l *ResultList) { l.SetSelected(2) }, 2},
		{"set past end ignored", func(l *ResultList) { l.SetSelected(99) }, 0},
		{"set negative ignored", func(l *ResultList) { l.SetSelected(-1) }, 0},
		{"move up stops at top", func(l *ResultList) { l.MoveUp() }, 0},
		{"move down advances", func(l *ResultList) { l.MoveDown() }, 1},
		{
			name: "move down stops at bottom",
			move: func(l *ResultList) {
				l.SetSelected(2)
				l.MoveDown()
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewResultList(nil)
			list.SetResults(sampleResults())
			tt.move(list)
			assert.Equal(t, tt.want, list.Selected())
		})
	}
}

func TestResultList_Update_NavigationKeys(t *testing.T) {
	tests := []struct {
		name  string
		start int
		msg   tea.KeyMsg
		want  int
	}{
		{"arrow up", 1, tea.KeyMsg{Type: tea.KeyUp}, 0},
		{"arrow down", 0, tea.KeyMsg{Type: tea.KeyDown}, 1},
		{"vim k", 1, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, 0},
		{"vim j", 0, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewResultList(nil)
			list.SetResults(sampleResults())
			list.SetSelected(tt.start)

			updated, cmd := list.Update(tt.msg)

			assert.Equal(t, list, updated)
			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, list.Selected())
		})
	}
}

func TestResultList_SelectedResult(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())

	result := list.SelectedResult()

	require.NotNil(t, result)
	assert.Equal(t, "Article One", result.Title)
	assert.Equal(t, "guides/one", result.Slug)
}

func TestResultList_SelectedResult_EmptyList(t *testing.T) {
	list := NewResultList(nil)

	assert.Nil(t, list.SelectedResult())
}

func TestResultList_View_Empty(t *testing.T) {
	list := NewResultList(nil)

	assert.Contains(t, list.View(), "No results")
}

func TestResultList_View_WithResults(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(sampleResults())

	view := list.View()

	assert.Contains(t, view, "Results (3)")
	assert.Contains(t, view, "Article One")
	assert.Contains(t, view, "0.120")
	assert.Contains(t, view, "guides/one")
	assert.Contains(t, view, ">")
}

func TestResultList_View_CollapsesPreviewToOneLine(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults([]domain.RankedArticle{
		{Article: domain.Article{Title: "Article", Slug: "a", Content: "Line one.\nLine two."}, Distance: 0.1},
	})

	assert.Contains(t, list.View(), "Line one. Line two.")
}

func TestResultList_View_WindowsAroundCursor(t *testing.T) {
	results := make([]domain.RankedArticle, 6)
	for i := range results {
		results[i] = domain.RankedArticle{
			Article:  domain.Article{Title: fmt.Sprintf("Article %d", i+1), Slug: fmt.Sprintf("a/%d", i+1)},
			Distance: float64(i) / 10,
		}
	}

	list := NewResultList(nil)
	list.SetDimensions(80, 10) // room for two results
	list.SetResults(results)
	list.SetSelected(5)

	view := list.View()

	assert.Contains(t, view, "Article 6")
	assert.Contains(t, view, "Article 5")
	assert.NotContains(t, view, "Article 1")
}

func TestResultList_View_UntitledArticle(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults([]domain.RankedArticle{
		{Article: domain.Article{Title: ""}, Distance: 0.5},
	})

	assert.Contains(t, list.View(), "(Untitled)")
}

func TestResultList_View_TruncatesLongTitle(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults([]domain.RankedArticle{
		{Article: domain.Article{
			Title: "This is a very long article title that should be truncated when displayed in the list view",
		}, Distance: 0.5},
	})

	assert.Contains(t, list.View(), "...")
}

func TestResultList_SetDimensions(t *testing.T) {
	list := NewResultList(nil)

	list.SetDimensions(100, 20)

	assert.Equal(t, 100, list.width)
	assert.Equal(t, 20, list.height)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly", truncate("exactly", 7))
	assert.Equal(t, "long st...", truncate("long string here", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
