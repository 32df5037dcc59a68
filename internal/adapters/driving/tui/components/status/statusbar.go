// Package status renders the one-line footer of the ask view.
package status

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// State drives what the left side of the bar shows.
type State string

const (
	StateReady    State = "ready"
	StateThinking State = "thinking"
	StateAnswered State = "answered"
	StateError    State = "error"
)

// Bar is a passive component: views push state into it and call View.
// The left side shows the request state, the right side key hints and the
// answer language.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	width  int

	state      State
	message    string
	intent     domain.Intent
	confidence float64
	locale     domain.Locale
}

func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: StateReady, locale: domain.LocaleEN, width: 80}
}

func (b *Bar) View() string {
	left, right := b.status(), b.hints()
	gap := max(1, b.width-lipgloss.Width(left)-lipgloss.Width(right))
	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) status() string {
	switch b.state {
	case StateThinking:
		return b.styles.Muted.Render("Thinking...")
	case StateError:
		if b.message == "" {
			return b.styles.Error.Render("Error")
		}
		return b.styles.Error.Render("Error: " + b.message)
	case StateAnswered:
		return b.intent.String() + " " + b.styles.Confidence(b.confidence)
	}
	if b.message != "" {
		return b.styles.Normal.Render(b.message)
	}
	return b.styles.Muted.Render("Ready")
}

func (b *Bar) hints() string {
	bindings := b.keymap.ShortHelp()
	if b.state == StateReady || b.state == StateAnswered {
		bindings = b.keymap.AskHelp()
	}
	return b.styles.Muted.Render(keymap.Hints(bindings) + " [" + b.locale.String() + "]")
}

func (b *Bar) SetState(state State) { b.state = state }
func (b *Bar) State() State         { return b.state }

func (b *Bar) SetMessage(message string) { b.message = message }
func (b *Bar) Message() string           { return b.message }

// SetLocale sets the answer language shown next to the hints.
func (b *Bar) SetLocale(l domain.Locale) { b.locale = l }

// SetAnswer switches to the answered state for the given classification.
func (b *Bar) SetAnswer(intent domain.Intent, confidence float64) {
	b.intent = intent
	b.confidence = confidence
	b.state = StateAnswered
}

func (b *Bar) Intent() domain.Intent { return b.intent }

func (b *Bar) SetWidth(width int) { b.width = width }
func (b *Bar) Width() int         { return b.width }

// Clear returns to the ready state. The locale is kept.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.intent = ""
	b.confidence = 0
}
