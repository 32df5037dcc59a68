// Package logger provides verbose and event logging for launchpad-assist.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow the routing pipeline.
// Event lines ([ask], [trace]) are printed when events are enabled,
// which the API server does by default.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	events  bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetEvents enables or disables structured event lines.
func SetEvents(v bool) {
	mu.Lock()
	defer mu.Unlock()
	events = v
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
	}
}

// Error prints an error message regardless of verbose mode.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, "[ERROR] "+format+"\n", args...)
}

// Event prints "[tag] {json}" when events or verbose mode are enabled.
// Fields that cannot be encoded are reported with their Go syntax instead.
func Event(tag string, fields any) {
	mu.RLock()
	defer mu.RUnlock()
	if !events && !verbose {
		return
	}
	data, err := json.Marshal(fields)
	if err != nil {
		fmt.Fprintf(output, "[%s] %#v\n", tag, fields)
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", tag, data)
}

// TraceFields is the payload of a [trace] event.
type TraceFields struct {
	Intent    string `json:"intent"`
	Route     string `json:"route"`
	KBChunks  int    `json:"kbChunks"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	LatencyMs int64  `json:"latencyMs"`
}

// Trace prints the per-question trace line.
func Trace(f TraceFields) {
	Event("trace", f)
}
