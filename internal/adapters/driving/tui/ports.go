// Package tui is the interactive terminal front end: a menu, an ask screen
// with a scrollable answer and a playbook browser.
package tui

import (
	"errors"

	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driving"
)

var (
	ErrInvalidPorts      = errors.New("tui: invalid ports configuration")
	ErrMissingAskService = errors.New("tui: ask service is required")
)

// Ports are the services behind the screens. Playbooks is optional; the
// playbook browser then shows an error instead of content.
type Ports struct {
	Ask       driving.AskService
	Playbooks driving.PlaybookService
}

func (p *Ports) Validate() error {
	switch {
	case p == nil:
		return ErrInvalidPorts
	case p.Ask == nil:
		return ErrMissingAskService
	}
	return nil
}
