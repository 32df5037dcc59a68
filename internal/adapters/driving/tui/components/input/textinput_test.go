package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

func TestNewQuestionInput(t *testing.T) {
	input := NewQuestionInput(styles.DefaultStyles())

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.True(t, input.Focused())
	assert.Equal(t, domain.LocaleEN, input.Locale())
}

func TestNewQuestionInput_NilStyles(t *testing.T) {
	input := NewQuestionInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestQuestionInput_Init(t *testing.T) {
	input := NewQuestionInput(nil)

	// Blink command should be returned
	assert.NotNil(t, input.Init())
}

func TestQuestionInput_Update(t *testing.T) {
	input := NewQuestionInput(nil)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	updated, _ := input.Update(msg)

	assert.Equal(t, input, updated)
	assert.Equal(t, "a", input.Value())
}

func TestQuestionInput_View(t *testing.T) {
	input := NewQuestionInput(nil)

	view := input.View()

	assert.Contains(t, view, "Ask [en]")
}

func TestQuestionInput_ToggleLocale(t *testing.T) {
	input := NewQuestionInput(nil)

	assert.Equal(t, domain.LocaleES, input.ToggleLocale())
	assert.Contains(t, input.View(), "Ask [es]")
	assert.Equal(t, domain.LocaleEN, input.ToggleLocale())
}

func TestQuestionInput_SetLocaleUnknownDefaultsToEnglish(t *testing.T) {
	input := NewQuestionInput(nil)

	input.SetLocale(domain.Locale("fr"))

	assert.Equal(t, domain.LocaleEN, input.Locale())
}

func TestQuestionInput_ValueAndReset(t *testing.T) {
	input := NewQuestionInput(nil)

	input.SetValue("tiles missing")
	assert.Equal(t, "tiles missing", input.Value())

	input.Reset()
	assert.Equal(t, "", input.Value())
}

func TestQuestionInput_FocusBlur(t *testing.T) {
	input := NewQuestionInput(nil)

	input.Blur()
	assert.False(t, input.Focused())

	input.Focus()
	assert.True(t, input.Focused())
}

func TestQuestionInput_SetWidth(t *testing.T) {
	input := NewQuestionInput(nil)

	input.SetWidth(100)
	assert.Equal(t, 100, input.Width())
	assert.Equal(t, 86, input.textinput.Width)

	input.SetWidth(10)
	assert.Equal(t, 20, input.textinput.Width)
}
