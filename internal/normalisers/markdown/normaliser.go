// Package markdown chunks markdown knowledge base documents.
package markdown

import (
	"context"
	"strings"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Markdown documents.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".md"}
}

// Accepts reports whether name is a markdown document. Matching is case-insensitive.
func (n *Normaliser) Accepts(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range n.SupportedExtensions() {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Normalise splits the document into chunks.
func (n *Normaliser) Normalise(_ context.Context, doc domain.SourceDocument) ([]domain.Chunk, error) {
	if doc.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	return Chunk(doc.Content, doc.Name), nil
}
