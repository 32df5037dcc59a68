package driven

import (
	"context"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// Normaliser transforms knowledge base documents into retrievable chunks.
type Normaliser interface {
	// SupportedExtensions returns the lower-case file extensions handled.
	SupportedExtensions() []string

	// Accepts reports whether a document name is handled by this normaliser.
	Accepts(name string) bool

	// Normalise splits a document into chunks.
	Normalise(ctx context.Context, doc domain.SourceDocument) ([]domain.Chunk, error)
}
