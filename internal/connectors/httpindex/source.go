// Package httpindex reads a knowledge base published as static files:
// a JSON array of file names at <base>/index.json next to the files.
package httpindex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
	"github.com/custodia-labs/launchpad-assist/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CorpusSource = (*Source)(nil)

const (
	// IndexFile lists the documents relative to the base URL.
	IndexFile = "index.json"

	// DefaultConcurrency bounds parallel document fetches.
	DefaultConcurrency = 4

	// DefaultTimeout applies to the whole listing.
	DefaultTimeout = 30 * time.Second

	maxDocumentBytes = 4 << 20
)

// Config configures a Source.
type Config struct {
	BaseURL     string
	HTTPClient  *http.Client
	Concurrency int
}

// Source fetches markdown documents listed by a remote index.
type Source struct {
	baseURL     string
	client      *http.Client
	concurrency int
}

// New creates a remote source.
func New(cfg Config) *Source {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Source{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		client:      client,
		concurrency: concurrency,
	}
}

// ID returns the base URL.
func (s *Source) ID() string {
	return s.baseURL
}

// List fetches the index and then every markdown file it names. Entries
// that are not strings or not .md files are ignored; documents that fail
// to download are skipped.
func (s *Source) List(ctx context.Context) ([]domain.SourceDocument, error) {
	names, err := s.index(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]*domain.SourceDocument, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, name := range names {
		g.Go(func() error {
			content, err := s.get(gctx, s.baseURL+"/"+name)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				logger.Warn("skipping %s: %v", name, err)
				return nil
			}
			docs[i] = &domain.SourceDocument{Name: name, Content: string(content)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.SourceDocument, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (s *Source) index(ctx context.Context) ([]string, error) {
	body, err := s.get(ctx, s.baseURL+"/"+IndexFile)
	if err != nil {
		return nil, fmt.Errorf("fetch knowledge base index: %w", err)
	}

	var entries []any
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decode knowledge base index: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name, ok := e.(string)
		if !ok || !strings.HasSuffix(strings.ToLower(name), ".md") {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func (s *Source) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
}
