package driving

import (
	"context"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// AskService answers troubleshooting questions for external actors
// (HTTP API, MCP tools, CLI, TUI).
type AskService interface {
	// Ask routes a question and returns the hybrid response. Only input
	// validation fails; routing problems are reported inside the response.
	Ask(ctx context.Context, question string, locale domain.Locale) (*domain.HybridResponse, error)

	// Retrieve returns the best matching chunks for query.
	Retrieve(ctx context.Context, query string, topK int) ([]domain.ScoredChunk, error)

	// Stats describes the loaded knowledge base.
	Stats(ctx context.Context) (domain.CorpusStats, error)

	// Documents lists the loaded documents.
	Documents(ctx context.Context) ([]domain.DocumentSummary, error)
}

// PlaybookService exposes the static per-intent guidance.
type PlaybookService interface {
	// Intents lists every intent in classification order.
	Intents() []domain.Intent

	// Get renders the playbook of the named intent in locale, with the
	// documents it may cite. Unknown names fail with domain.ErrUnknownIntent.
	Get(name string, locale domain.Locale) (*domain.PlaybookView, error)

	// Suggest returns intent names close to a mistyped name, best first.
	Suggest(name string) []string
}

// TraceService reads the answered-question history.
type TraceService interface {
	// Recent returns up to limit traces, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Trace, error)

	// Counts reports how often each intent was answered, most frequent first.
	Counts(ctx context.Context) ([]domain.IntentCount, error)
}
