package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_Keys(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"Quit", km.Quit, []string{"q", "ctrl+c"}},
		{"Back", km.Back, []string{"esc"}},
		{"Ask", km.Ask, []string{"enter"}},
		{"Up", km.Up, []string{"up", "k"}},
		{"Down", km.Down, []string{"down", "j"}},
		{"Language", km.Language, []string{"ctrl+l"}},
		{"ScrollDown", km.ScrollDown, []string{"pgdown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("k", km.Up))
	assert.False(t, Matches("l", km.Language))
	assert.False(t, Matches("down", km.Up))
}

func TestHints(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, "enter: ask | ctrl+l: en/es | pgdn: scroll down | esc: back", Hints(km.AskHelp()))
	assert.Equal(t, "esc: back | q: quit", Hints(km.ShortHelp()))
	assert.Contains(t, Hints(km.MenuHelp()), "↑/k: up")
	assert.Empty(t, Hints(nil))
}
