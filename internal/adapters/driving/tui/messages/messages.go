// Package messages holds the tea.Msg types passed between the TUI views.
package messages

import "github.com/custodia-labs/launchpad-assist/internal/core/domain"

// ViewType identifies a top-level screen.
type ViewType int

const (
	ViewMenu ViewType = iota
	ViewAsk
	ViewPlaybooks
	ViewHelp
)

var viewNames = [...]string{"menu", "ask", "playbooks", "help"}

func (v ViewType) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return "unknown"
	}
	return viewNames[v]
}

// ViewChanged asks the app to switch screens.
type ViewChanged struct {
	View ViewType
}

// AnswerReceived is the result of an ask command. Exactly one of Response
// and Err is set.
type AnswerReceived struct {
	Question string
	Locale   domain.Locale
	Response *domain.HybridResponse
	Err      error
}

// PlaybookLoaded is the result of loading one playbook.
type PlaybookLoaded struct {
	Playbook *domain.PlaybookView
	Err      error
}

// ErrorOccurred reports a failure outside a request, e.g. a missing service.
type ErrorOccurred struct {
	Err error
}
