// Package services wires the router, the corpus cache and the stores into
// the driving ports used by the CLI, TUI, HTTP API and MCP server.
// Routing decisions live in services/router and BM25 ranking in
// services/retrieval; this package only orchestrates.
package services
