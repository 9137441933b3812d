// Package list renders ranked search results as a navigable list.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/styles"
	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// Each result occupies three rendered lines: title, slug, preview.
const linesPerResult = 3

// ResultList tracks the ranked results and the cursor over them.
type ResultList struct {
	results  []domain.RankedArticle
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates an empty result list.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &ResultList{styles: s, width: 80, height: 10}
}

// Init implements the component contract; the list needs no startup
// command.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update moves the cursor on arrow or vim keys.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the window of results around the cursor.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.results)*linesPerResult+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results))), "")

	start, end := r.visibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// visibleRange windows the results so the cursor stays on screen.
func (r *ResultList) visibleRange() (start, end int) {
	visible := (r.height - 4) / linesPerResult
	if visible < 1 {
		visible = 1
	}

	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end = start + visible
	if end > len(r.results) {
		end = len(r.results)
	}
	return start, end
}

// renderResult formats one result as title, slug, and a one-line
// preview of the body.
func (r *ResultList) renderResult(index int, result *domain.RankedArticle) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := result.Title
	if title == "" {
		title = "(Untitled)"
	}
	maxTitleLen := r.width - 20
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	title = truncate(title, maxTitleLen)

	distance := fmt.Sprintf("%.3f", result.Distance)

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, distance))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			r.styles.Muted.Render(distance)
	}

	slugLine := r.styles.Subtitle.Render("    " + result.Slug)

	preview := strings.Join(strings.Fields(result.Content), " ")
	maxPreviewLen := r.width - 6
	if maxPreviewLen < 20 {
		maxPreviewLen = 20
	}
	previewLine := r.styles.Muted.Render("    " + truncate(preview, maxPreviewLen))

	return titleLine + "\n" + slugLine + "\n" + previewLine
}

// truncate shortens s to at most max runes, appending an ellipsis when
// cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// SetResults replaces the results and rewinds the cursor.
func (r *ResultList) SetResults(results []domain.RankedArticle) {
	r.results = results
	r.selected = 0
}

// SetSelected moves the cursor, ignoring out-of-range indexes.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the result under the cursor, or nil.
func (r *ResultList) SelectedResult() *domain.RankedArticle {
	if r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves the cursor towards the top.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves the cursor towards the bottom.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions resizes the rendered window.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Results returns the current results.
func (r *ResultList) Results() []domain.RankedArticle { return r.results }

// Selected returns the cursor index.
func (r *ResultList) Selected() int { return r.selected }

// Count returns the number of results.
func (r *ResultList) Count() int { return len(r.results) }

// IsEmpty reports whether the list has no results.
func (r *ResultList) IsEmpty() bool { return len(r.results) == 0 }
