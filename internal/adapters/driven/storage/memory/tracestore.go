package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
)

// Ensure TraceStore implements the interface.
var _ driven.TraceStore = (*TraceStore)(nil)

// DefaultTraceCapacity bounds a TraceStore created with capacity <= 0.
const DefaultTraceCapacity = 1000

// TraceStore is an in-memory ring of the most recent traces.
type TraceStore struct {
	mu       sync.RWMutex
	traces   []domain.Trace
	capacity int
}

// NewTraceStore creates a store that keeps at most capacity traces.
func NewTraceStore(capacity int) *TraceStore {
	if capacity <= 0 {
		capacity = DefaultTraceCapacity
	}
	return &TraceStore{capacity: capacity}
}

// Save appends a trace, evicting the oldest when full. Saving an
// existing ID replaces it in place.
func (s *TraceStore) Save(_ context.Context, trace domain.Trace) error {
	if trace.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.traces {
		if s.traces[i].ID == trace.ID {
			s.traces[i] = trace
			return nil
		}
	}
	s.traces = append(s.traces, trace)
	if len(s.traces) > s.capacity {
		s.traces = s.traces[len(s.traces)-s.capacity:]
	}
	return nil
}

// List returns traces newest first. limit <= 0 returns all.
func (s *TraceStore) List(_ context.Context, limit int) ([]domain.Trace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.traces)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Trace, 0, n)
	for i := len(s.traces) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.traces[i])
	}
	return out, nil
}

// CountByIntent aggregates the retained traces per intent.
func (s *TraceStore) CountByIntent(_ context.Context) (map[domain.Intent]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[domain.Intent]int)
	for _, t := range s.traces {
		counts[t.Intent]++
	}
	return counts, nil
}

// Close releases resources.
func (s *TraceStore) Close() error {
	return nil
}
