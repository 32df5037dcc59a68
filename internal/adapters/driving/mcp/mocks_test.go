package mcp

import (
	"context"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// mockAskService is a mock implementation of driving.AskService.
type mockAskService struct {
	response  *domain.HybridResponse
	chunks    []domain.ScoredChunk
	stats     domain.CorpusStats
	documents []domain.DocumentSummary
	err       error

	question string
	locale   domain.Locale
	topK     int
}

func (m *mockAskService) Ask(_ context.Context, question string, locale domain.Locale) (*domain.HybridResponse, error) {
	m.question = question
	m.locale = locale
	return m.response, m.err
}

func (m *mockAskService) Retrieve(_ context.Context, _ string, topK int) ([]domain.ScoredChunk, error) {
	m.topK = topK
	return m.chunks, m.err
}

func (m *mockAskService) Stats(_ context.Context) (domain.CorpusStats, error) {
	return m.stats, m.err
}

func (m *mockAskService) Documents(_ context.Context) ([]domain.DocumentSummary, error) {
	return m.documents, m.err
}

// mockPlaybookService is a mock implementation of driving.PlaybookService.
type mockPlaybookService struct {
	view   *domain.PlaybookView
	err    error
	name   string
	locale domain.Locale
}

func (m *mockPlaybookService) Intents() []domain.Intent {
	return domain.AllIntents()
}

func (m *mockPlaybookService) Get(name string, locale domain.Locale) (*domain.PlaybookView, error) {
	m.name = name
	m.locale = locale
	return m.view, m.err
}

func (m *mockPlaybookService) Suggest(string) []string {
	return nil
}
