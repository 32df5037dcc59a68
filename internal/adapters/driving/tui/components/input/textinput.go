// Package input provides text input components for the TUI.
package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// CharLimit bounds the length of a question.
const CharLimit = 500

var placeholders = map[domain.Locale]string{
	domain.LocaleEN: "Describe the launchpad problem...",
	domain.LocaleES: "Describe el problema del launchpad...",
}

// QuestionInput wraps a bubbles textinput with a language-aware label.
type QuestionInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	locale    domain.Locale
	width     int
}

// NewQuestionInput creates a new question input component.
func NewQuestionInput(s *styles.Styles) *QuestionInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholders[domain.LocaleEN]
	ti.Focus()
	ti.CharLimit = CharLimit
	ti.Width = 50

	return &QuestionInput{
		textinput: ti,
		styles:    s,
		locale:    domain.LocaleEN,
		width:     50,
	}
}

// Init initialises the input.
func (q *QuestionInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (q *QuestionInput) Update(msg tea.Msg) (*QuestionInput, tea.Cmd) {
	var cmd tea.Cmd
	q.textinput, cmd = q.textinput.Update(msg)
	return q, cmd
}

// View renders the input.
func (q *QuestionInput) View() string {
	label := q.styles.Title.Render(fmt.Sprintf("Ask [%s]: ", q.locale))
	field := q.styles.InputField.Render(q.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (q *QuestionInput) Value() string {
	return q.textinput.Value()
}

// SetValue sets the input value.
func (q *QuestionInput) SetValue(value string) {
	q.textinput.SetValue(value)
}

// Locale returns the answer language.
func (q *QuestionInput) Locale() domain.Locale {
	return q.locale
}

// SetLocale changes the answer language and the placeholder with it.
func (q *QuestionInput) SetLocale(l domain.Locale) {
	q.locale = domain.LocaleOrDefault(string(l))
	q.textinput.Placeholder = placeholders[q.locale]
}

// ToggleLocale switches between English and Spanish.
func (q *QuestionInput) ToggleLocale() domain.Locale {
	if q.locale == domain.LocaleES {
		q.SetLocale(domain.LocaleEN)
	} else {
		q.SetLocale(domain.LocaleES)
	}
	return q.locale
}

// Focus sets focus on the input.
func (q *QuestionInput) Focus() tea.Cmd {
	return q.textinput.Focus()
}

// Blur removes focus from the input.
func (q *QuestionInput) Blur() {
	q.textinput.Blur()
}

// Focused returns whether the input is focused.
func (q *QuestionInput) Focused() bool {
	return q.textinput.Focused()
}

// SetWidth sets the width of the input.
func (q *QuestionInput) SetWidth(width int) {
	q.width = width
	// Account for label and padding
	inputWidth := width - 14
	if inputWidth < 20 {
		inputWidth = 20
	}
	q.textinput.Width = inputWidth
}

// Width returns the current width.
func (q *QuestionInput) Width() int {
	return q.width
}

// Reset clears the input.
func (q *QuestionInput) Reset() {
	q.textinput.Reset()
}
