// Package keymap holds the TUI key bindings.
package keymap

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap groups every binding the views react to.
type KeyMap struct {
	Quit, Help, Back     key.Binding
	Ask, Select          key.Binding
	Up, Down             key.Binding
	Language             key.Binding
	ScrollUp, ScrollDown key.Binding
}

func bind(helpKey, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc))
}

func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit:       bind("q", "quit", "q", "ctrl+c"),
		Help:       bind("?", "help", "?"),
		Back:       bind("esc", "back", "esc"),
		Ask:        bind("enter", "ask", "enter"),
		Select:     bind("enter", "select", "enter"),
		Up:         bind("↑/k", "up", "up", "k"),
		Down:       bind("↓/j", "down", "down", "j"),
		Language:   bind("ctrl+l", "en/es", "ctrl+l"),
		ScrollUp:   bind("pgup", "scroll up", "pgup"),
		ScrollDown: bind("pgdn", "scroll down", "pgdown"),
	}
}

// ShortHelp is shown while a request is in flight or failed.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// AskHelp is shown on the ask view when idle.
func (k *KeyMap) AskHelp() []key.Binding {
	return []key.Binding{k.Ask, k.Language, k.ScrollDown, k.Back}
}

// MenuHelp is shown under the main menu.
func (k *KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// Matches reports whether keyStr, as produced by tea.KeyMsg.String, is one
// of binding's keys.
func Matches(keyStr string, binding key.Binding) bool {
	return slices.Contains(binding.Keys(), keyStr)
}

// Hints renders bindings as "key: desc | key: desc".
func Hints(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, " | ")
}
