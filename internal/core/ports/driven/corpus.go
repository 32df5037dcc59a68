package driven

import (
	"context"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// CorpusSource lists the markdown documents of a knowledge base.
// Implementations include a local directory and a remote index served over HTTP.
type CorpusSource interface {
	// ID identifies the source in logs and stats, e.g. its path or base URL.
	ID() string

	// List returns every document of the source. A missing or empty
	// source yields an empty slice and no error.
	List(ctx context.Context) ([]domain.SourceDocument, error)
}
