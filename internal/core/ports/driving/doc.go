// Package driving declares what the outside world may ask of the
// assistant: routed answers, playbooks, trace history and settings. The
// CLI, TUI, HTTP API and MCP adapters depend on these interfaces only.
package driving
