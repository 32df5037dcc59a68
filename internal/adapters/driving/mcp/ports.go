package mcp

import "github.com/custodia-labs/launchpad-assist/internal/core/ports/driving"

// Ports are the services the MCP server exposes. Playbooks may be nil, in
// which case playbook resources answer not found.
type Ports struct {
	Ask       driving.AskService
	Playbooks driving.PlaybookService
}

func (p *Ports) Validate() error {
	if p == nil || p.Ask == nil {
		return ErrMissingAskService
	}
	return nil
}
