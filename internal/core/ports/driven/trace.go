package driven

import (
	"context"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// TraceStore persists one record per answered question.
type TraceStore interface {
	// Save stores a trace. IDs are assigned by the caller.
	Save(ctx context.Context, trace domain.Trace) error

	// List returns the most recent traces first. limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]domain.Trace, error)

	// CountByIntent aggregates every stored trace by classified intent.
	CountByIntent(ctx context.Context) (map[domain.Intent]int, error)

	// Close releases resources.
	Close() error
}
