// Package status renders the bottom status line of the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/keymap"
	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/styles"
)

// State selects what the left side of the bar reports.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateResults   State = "results"
	StateReading   State = "reading"
	StateError     State = "error"
)

// Bar is the passive status line under the search view. The view pushes
// state into it through the setters; the bar issues no commands of its
// own.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	message     string
	resultCount int
	width       int
}

// NewBar creates a status bar in the ready state.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: StateReady, width: 80}
}

// SetState selects what the bar reports.
func (b *Bar) SetState(state State) { b.state = state }

// SetMessage overrides the default text for the current state.
func (b *Bar) SetMessage(message string) { b.message = message }

// SetResultCount records how many results the last search returned.
func (b *Bar) SetResultCount(count int) { b.resultCount = count }

// SetWidth resizes the bar.
func (b *Bar) SetWidth(width int) { b.width = width }

// View renders status text on the left and key hints on the right,
// padded out to the full width.
func (b *Bar) View() string {
	left := b.statusText()
	right := b.hintText()

	gap := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) statusText() string {
	switch b.state {
	case StateSearching:
		return b.styles.Muted.Render("Searching...")
	case StateError:
		if b.message != "" {
			return b.styles.Error.Render("Error: " + b.message)
		}
		return b.styles.Error.Render("Error")
	case StateReading:
		if b.message != "" {
			return b.styles.Normal.Render(b.message)
		}
		return b.styles.Normal.Render("Reading")
	case StateResults, StateReady:
		if b.resultCount > 0 {
			return b.styles.Normal.Render(fmt.Sprintf("%d results", b.resultCount))
		}
	}
	return b.styles.Muted.Render("Ready")
}

func (b *Bar) hintText() string {
	bindings := b.keymap.ShortHelp()
	if b.state == StateResults && b.resultCount > 0 {
		bindings = b.keymap.ResultsHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		hints = append(hints, fmt.Sprintf("[%s] %s", help.Key, help.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, "  "))
}
