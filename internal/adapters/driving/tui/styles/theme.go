// Package styles defines the colour palette and shared lipgloss styles
// for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette colours. Greens carry the canopy accent; the rest stays
// neutral so result lists remain readable on dark terminals.
var (
	ColourAccent    = lipgloss.Color("#69DB7C") // leaf green
	ColourHighlight = lipgloss.Color("#38D9A9") // teal
	ColourText      = lipgloss.Color("#CDD6F4")
	ColourFaint     = lipgloss.Color("#6C7086")
	ColourAlert     = lipgloss.Color("#F38BA8")
	ColourFrame     = lipgloss.Color("#45475A")
	ColourBackdrop  = lipgloss.Color("#181825")
)

// Styles bundles the lipgloss styles shared by the TUI views and
// components. Build one with DefaultStyles and pass it down; the
// components never construct their own.
type Styles struct {
	// Title renders view headers.
	Title lipgloss.Style

	// Subtitle renders secondary headers and result slugs.
	Subtitle lipgloss.Style

	// Normal renders regular text.
	Normal lipgloss.Style

	// Muted renders previews, hints, and other low-priority text.
	Muted lipgloss.Style

	// Selected highlights the focused result row.
	Selected lipgloss.Style

	// Error renders failure messages.
	Error lipgloss.Style

	// InputField frames the search input.
	InputField lipgloss.Style

	// StatusBar renders the bottom status line.
	StatusBar lipgloss.Style

	// Help renders key hints.
	Help lipgloss.Style
}

// DefaultStyles returns the style set used throughout the TUI.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColourAccent),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColourHighlight),

		Normal: lipgloss.NewStyle().
			Foreground(ColourText),

		Muted: lipgloss.NewStyle().
			Foreground(ColourFaint),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColourText).
			Background(ColourAccent),

		Error: lipgloss.NewStyle().
			Foreground(ColourAlert),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColourFrame).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(ColourFaint).
			Background(ColourBackdrop).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(ColourFaint),
	}
}
