// Package keymap defines keybindings for the TUI.
package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding the TUI dispatches on.
type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Search and Select share enter; which one fires depends on whether
	// the query input or the result list has focus.
	Search key.Binding
	Select key.Binding

	Up   key.Binding
	Down key.Binding

	// NewSearch returns to the query prompt from the results.
	NewSearch key.Binding
}

// bind builds a binding whose help entry shows the given key label.
func bind(label, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit:      bind("q", "quit", "q", "ctrl+c"),
		Back:      bind("esc", "back", "esc"),
		Search:    bind("enter", "search", "enter"),
		Select:    bind("enter", "open", "enter"),
		Up:        bind("↑/k", "up", "up", "k"),
		Down:      bind("↓/j", "down", "down", "j"),
		NewSearch: bind("n", "new search", "n"),
	}
}

// ShortHelp returns the bindings shown in the status bar while typing a
// query.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Quit}
}

// ResultsHelp returns the bindings shown while results are on screen.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.NewSearch, k.Up, k.Select, k.Back}
}

// FullHelp returns every binding, grouped for a help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Search, k.Back, k.NewSearch},
		{k.Quit},
	}
}

// Matches reports whether the pressed key is one of the binding's keys.
func Matches(pressed string, binding key.Binding) bool {
	return slices.Contains(binding.Keys(), pressed)
}
