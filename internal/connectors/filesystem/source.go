// Package filesystem reads a knowledge base from a local directory.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
	"github.com/custodia-labs/launchpad-assist/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CorpusSource = (*Source)(nil)

// Source lists the markdown files directly inside a directory.
// Subdirectories and hidden files are ignored.
type Source struct {
	root string
}

// New creates a source for root, which may be a path or a file:// URI.
func New(root string) *Source {
	return &Source{root: ResolvePath(root)}
}

// ID returns the directory path.
func (s *Source) ID() string {
	return s.root
}

// Root returns the directory path.
func (s *Source) Root() string {
	return s.root
}

// List reads every markdown file in the directory. A missing directory
// yields no documents. Unreadable files are skipped.
func (s *Source) List(ctx context.Context) ([]domain.SourceDocument, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("knowledge base directory %s does not exist", s.root)
			return []domain.SourceDocument{}, nil
		}
		return nil, fmt.Errorf("read knowledge base directory: %w", err)
	}

	docs := make([]domain.SourceDocument, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if entry.IsDir() || !IsMarkdown(name) {
			continue
		}
		content, err := os.ReadFile(filepath.Join(s.root, name))
		if err != nil {
			logger.Warn("skipping %s: %v", name, err)
			continue
		}
		docs = append(docs, domain.SourceDocument{Name: name, Content: string(content)})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// IsMarkdown reports whether name is a visible .md file.
func IsMarkdown(name string) bool {
	base := filepath.Base(name)
	return !strings.HasPrefix(base, ".") && strings.HasSuffix(strings.ToLower(base), ".md")
}
