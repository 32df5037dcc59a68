package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

func runes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewView_Defaults(t *testing.T) {
	view := NewView(nil, nil)

	assert.NotNil(t, view.styles)
	assert.NotNil(t, view.keymap)
	assert.Len(t, view.items, 4)
	assert.Nil(t, view.Init())
	assert.Contains(t, view.View(), "Initialising")
}

func TestView_WindowSize(t *testing.T) {
	view := NewView(nil, nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Same(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
}

func TestView_NavigateClamps(t *testing.T) {
	view := NewView(nil, nil)

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.Selected())

	for range 6 {
		view.Update(runes('j'))
	}
	assert.Equal(t, 3, view.Selected())

	view.Update(runes('k'))
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, view.Selected())
}

func TestView_Enter(t *testing.T) {
	for i, want := range []messages.ViewType{messages.ViewAsk, messages.ViewPlaybooks, messages.ViewHelp} {
		t.Run(want.String(), func(t *testing.T) {
			view := NewView(nil, nil)
			view.selected = i

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

			require.NotNil(t, cmd)
			assert.Equal(t, messages.ViewChanged{View: want}, cmd())
		})
	}
}

func TestView_QuitPaths(t *testing.T) {
	view := NewView(nil, nil)
	_, cmd := view.Update(runes('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	view.selected = 3
	_, cmd = view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_QuestionMarkOpensHelp(t *testing.T) {
	_, cmd := NewView(nil, nil).Update(runes('?'))

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHelp}, cmd())
}

func TestView_Render(t *testing.T) {
	view := NewView(nil, nil)
	view.SetDimensions(100, 24)

	out := view.View()

	assert.Contains(t, out, "Launchpad Assist")
	assert.Contains(t, out, "> Ask a question")
	assert.Contains(t, out, "route a question")
	assert.NotContains(t, out, "browse the canned guidance")
	assert.Contains(t, out, "enter: select")
	assert.NotContains(t, out, "Knowledge base:")

	view.SetStats(domain.CorpusStats{Documents: 4, Chunks: 37})
	assert.Contains(t, view.View(), "Knowledge base: 4 documents, 37 chunks")
}
