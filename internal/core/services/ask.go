package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driving"
	"github.com/custodia-labs/launchpad-assist/internal/core/services/retrieval"
	"github.com/custodia-labs/launchpad-assist/internal/core/services/router"
	"github.com/custodia-labs/launchpad-assist/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// CorpusProvider supplies the current corpus.
type CorpusProvider interface {
	Get(ctx context.Context) (*domain.Corpus, error)
	Source() string
}

// AskService answers questions with the router and records a trace per answer.
type AskService struct {
	router   *router.Router
	corpus   CorpusProvider
	traces   driven.TraceStore
	provider domain.AIProvider
	now      func() time.Time
}

// NewAskService creates a new ask service. traces may be nil.
func NewAskService(r *router.Router, corpus CorpusProvider, traces driven.TraceStore, provider domain.AIProvider) *AskService {
	return &AskService{
		router:   r,
		corpus:   corpus,
		traces:   traces,
		provider: provider,
		now:      time.Now,
	}
}

// Ask routes question and returns the response.
func (s *AskService) Ask(ctx context.Context, question string, locale domain.Locale) (*domain.HybridResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.ErrEmptyQuestion
	}
	locale = domain.LocaleOrDefault(string(locale))

	corpus := s.loadCorpus(ctx)
	d := s.router.Decide(ctx, question, locale, corpus)

	logger.Trace(logger.TraceFields{
		Intent:    d.Response.Intent.String(),
		Route:     d.Route.String(),
		KBChunks:  corpus.ChunkCount,
		Provider:  s.provider.String(),
		Model:     s.router.ModelName(),
		LatencyMs: d.Latency.Milliseconds(),
	})
	s.record(ctx, question, locale, corpus, d)

	return &d.Response, nil
}

// Retrieve returns the best chunks for query.
func (s *AskService) Retrieve(ctx context.Context, query string, topK int) ([]domain.ScoredChunk, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrInvalidInput)
	}
	corpus, err := s.corpus.Get(ctx)
	if err != nil {
		return nil, err
	}
	return retrieval.Retrieve(corpus, query, topK), nil
}

// Stats describes the loaded knowledge base.
func (s *AskService) Stats(ctx context.Context) (domain.CorpusStats, error) {
	corpus, err := s.corpus.Get(ctx)
	if err != nil {
		return domain.CorpusStats{Source: s.corpus.Source()}, err
	}
	return corpus.Stats(s.corpus.Source()), nil
}

// Documents lists the loaded documents.
func (s *AskService) Documents(ctx context.Context) ([]domain.DocumentSummary, error) {
	corpus, err := s.corpus.Get(ctx)
	if err != nil {
		return nil, err
	}
	return corpus.Documents(), nil
}

// loadCorpus never fails: an unreadable knowledge base is answered like an empty one.
func (s *AskService) loadCorpus(ctx context.Context) *domain.Corpus {
	corpus, err := s.corpus.Get(ctx)
	if err != nil {
		logger.Error("load knowledge base: %v", err)
		return domain.EmptyCorpus()
	}
	if corpus == nil {
		return domain.EmptyCorpus()
	}
	return corpus
}

func (s *AskService) record(ctx context.Context, question string, locale domain.Locale, corpus *domain.Corpus, d router.Decision) {
	if s.traces == nil {
		return
	}
	trace := domain.Trace{
		ID:         uuid.NewString(),
		Question:   question,
		Locale:     locale,
		Intent:     d.Response.Intent,
		Route:      d.Route,
		Confidence: d.Response.Confidence,
		KBChunks:   corpus.ChunkCount,
		Provider:   s.provider.String(),
		Model:      s.router.ModelName(),
		LatencyMs:  d.Latency.Milliseconds(),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.traces.Save(ctx, trace); err != nil {
		logger.Warn("save trace: %v", err)
	}
}
