// Package memory provides in-memory stores for tests and ephemeral runs.
package memory
