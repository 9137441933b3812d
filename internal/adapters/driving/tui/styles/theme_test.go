package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette_ColoursAreDistinct(t *testing.T) {
	palette := []lipgloss.Color{
		ColourAccent,
		ColourHighlight,
		ColourText,
		ColourFaint,
		ColourAlert,
		ColourFrame,
		ColourBackdrop,
	}

	seen := make(map[string]bool)
	for _, c := range palette {
		s := string(c)
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "duplicate colour: %s", s)
		seen[s] = true
	}
}

func TestDefaultStyles_AllStylesInitialised(t *testing.T) {
	styles := DefaultStyles()
	require.NotNil(t, styles)

	zero := lipgloss.Style{}
	assert.NotEqual(t, zero, styles.Title)
	assert.NotEqual(t, zero, styles.Subtitle)
	assert.NotEqual(t, zero, styles.Normal)
	assert.NotEqual(t, zero, styles.Muted)
	assert.NotEqual(t, zero, styles.Selected)
	assert.NotEqual(t, zero, styles.Error)
	assert.NotEqual(t, zero, styles.InputField)
	assert.NotEqual(t, zero, styles.StatusBar)
	assert.NotEqual(t, zero, styles.Help)
}

func TestDefaultStyles_AccentIsGreen(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#69DB7C"), ColourAccent)
}

func TestStyles_CanRenderText(t *testing.T) {
	styles := DefaultStyles()

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Title", styles.Title},
		{"Subtitle", styles.Subtitle},
		{"Normal", styles.Normal},
		{"Muted", styles.Muted},
		{"Selected", styles.Selected},
		{"Error", styles.Error},
		{"Help", styles.Help},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.style.Render("guides/intro"))
		})
	}
}
