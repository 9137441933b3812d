// Package input wraps the bubbles text input for query entry.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/styles"
)

const (
	defaultFieldWidth = 50
	minFieldWidth     = 20
	queryCharLimit    = 256
)

// QueryInput is the single-line query field at the top of the search
// view.
type QueryInput struct {
	field  textinput.Model
	styles *styles.Styles
}

// NewQueryInput creates a query input with keyboard focus.
func NewQueryInput(s *styles.Styles) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.Placeholder = "Search your articles..."
	field.CharLimit = queryCharLimit
	field.Width = defaultFieldWidth
	field.Focus()

	return &QueryInput{field: field, styles: s}
}

// Init starts the cursor blink.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards messages to the underlying text input.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	var cmd tea.Cmd
	q.field, cmd = q.field.Update(msg)
	return q, cmd
}

// View renders the labelled input row.
func (q *QueryInput) View() string {
	label := q.styles.Title.Render("Search: ")
	field := q.styles.InputField.Render(q.field.View())
	//nolint:misspell // lipgloss constant
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current query text.
func (q *QueryInput) Value() string {
	return q.field.Value()
}

// SetValue replaces the query text.
func (q *QueryInput) SetValue(value string) {
	q.field.SetValue(value)
}

// Focus gives the field keyboard focus.
func (q *QueryInput) Focus() tea.Cmd {
	return q.field.Focus()
}

// Blur removes keyboard focus.
func (q *QueryInput) Blur() {
	q.field.Blur()
}

// Focused reports whether the field has keyboard focus.
func (q *QueryInput) Focused() bool {
	return q.field.Focused()
}

// SetWidth resizes the field, leaving room for the label.
func (q *QueryInput) SetWidth(width int) {
	fieldWidth := width - 10
	if fieldWidth < minFieldWidth {
		fieldWidth = minFieldWidth
	}
	q.field.Width = fieldWidth
}
