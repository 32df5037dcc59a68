package services

import (
	"cmp"
	"context"
	"slices"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driving"
)

// Ensure TraceService implements the interface.
var _ driving.TraceService = (*TraceService)(nil)

// DefaultTraceLimit applies when Recent is called with limit <= 0.
const DefaultTraceLimit = 20

// TraceService reads traces from a store.
type TraceService struct {
	store driven.TraceStore
}

// NewTraceService creates a trace reader. store may be nil when tracing is off.
func NewTraceService(store driven.TraceStore) *TraceService {
	return &TraceService{store: store}
}

// Recent returns up to limit traces, newest first.
func (s *TraceService) Recent(ctx context.Context, limit int) ([]domain.Trace, error) {
	if s.store == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultTraceLimit
	}
	return s.store.List(ctx, limit)
}

// Counts returns per-intent totals ordered by count, then intent name.
func (s *TraceService) Counts(ctx context.Context) ([]domain.IntentCount, error) {
	if s.store == nil {
		return []domain.IntentCount{}, nil
	}
	counts, err := s.store.CountByIntent(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.IntentCount, 0, len(counts))
	for intent, n := range counts {
		out = append(out, domain.IntentCount{Intent: intent, Count: n})
	}
	slices.SortFunc(out, func(a, b domain.IntentCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Intent, b.Intent)
	})
	return out, nil
}
