package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
	"github.com/custodia-labs/launchpad-assist/internal/logger"
)

// LoadCorpus reads every document of source through normaliser and builds
// the retrieval corpus. Documents the normaliser does not accept are
// skipped. A source without documents yields an empty corpus.
func LoadCorpus(ctx context.Context, source driven.CorpusSource, normaliser driven.Normaliser) (*domain.Corpus, error) {
	logger.Section("Knowledge Base")
	logger.Debug("Source: %s", source.ID())

	docs, err := source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorpusUnavailable, err)
	}
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })

	var chunks []domain.Chunk
	files := 0
	for _, doc := range docs {
		if !normaliser.Accepts(doc.Name) {
			logger.Debug("Skipping %s", doc.Name)
			continue
		}
		docChunks, err := normaliser.Normalise(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("normalise %s: %w", doc.Name, err)
		}
		files++
		chunks = append(chunks, docChunks...)
	}

	if files == 0 {
		logger.Warn("no markdown documents found in %s", source.ID())
		return domain.EmptyCorpus(), nil
	}

	corpus := domain.NewCorpus(chunks, files)
	logger.Event("kb", map[string]any{"source": source.ID(), "files": files, "chunks": corpus.ChunkCount})
	return corpus, nil
}

// CorpusCache loads the corpus once and serves it until invalidated.
// Concurrent callers share a single load.
type CorpusCache struct {
	source     driven.CorpusSource
	normaliser driven.Normaliser

	group singleflight.Group

	mu         sync.RWMutex
	corpus     *domain.Corpus
	generation uint64
}

// NewCorpusCache creates a cache over source.
func NewCorpusCache(source driven.CorpusSource, normaliser driven.Normaliser) *CorpusCache {
	return &CorpusCache{source: source, normaliser: normaliser}
}

// Get returns the cached corpus, loading it when needed.
// Empty corpora are not cached so that documents added later are picked up.
func (c *CorpusCache) Get(ctx context.Context) (*domain.Corpus, error) {
	c.mu.RLock()
	corpus, gen := c.corpus, c.generation
	c.mu.RUnlock()
	if corpus != nil {
		return corpus, nil
	}

	// The load is shared, so one caller's cancellation must not fail the others.
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(strconv.FormatUint(gen, 10), func() (any, error) {
		loaded, err := LoadCorpus(loadCtx, c.source, c.normaliser)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.generation == gen && !loaded.IsEmpty() {
			c.corpus = loaded
		}
		c.mu.Unlock()
		return loaded, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.Corpus), nil
	}
}

// Invalidate drops the cached corpus. Loads already in flight are not cached.
func (c *CorpusCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.corpus = nil
	c.generation++
	logger.Debug("knowledge base cache invalidated (generation %d)", c.generation)
}

// Source returns the ID of the underlying source.
func (c *CorpusCache) Source() string {
	return c.source.ID()
}
