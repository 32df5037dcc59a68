package ask

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

type fakeAsk struct {
	response *domain.HybridResponse
	err      error
	question string
	locale   domain.Locale
}

func (f *fakeAsk) Ask(_ context.Context, question string, locale domain.Locale) (*domain.HybridResponse, error) {
	f.question = question
	f.locale = locale
	return f.response, f.err
}

func (f *fakeAsk) Retrieve(context.Context, string, int) ([]domain.ScoredChunk, error) {
	return nil, nil
}

func (f *fakeAsk) Stats(context.Context) (domain.CorpusStats, error) {
	return domain.CorpusStats{}, nil
}

func (f *fakeAsk) Documents(context.Context) ([]domain.DocumentSummary, error) {
	return nil, nil
}

func readyView(svc *fakeAsk) *View {
	v := NewView(nil, nil, svc)
	v.SetDimensions(100, 30)
	return v
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil)

	require.NotNil(t, v)
	assert.False(t, v.Ready())
	assert.Equal(t, domain.LocaleEN, v.Locale())
	assert.Contains(t, v.View(), "Initialising")
}

func TestView_EnterWithEmptyInputDoesNothing(t *testing.T) {
	v := readyView(&fakeAsk{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, v.Thinking())
}

func TestView_EnterStartsThinking(t *testing.T) {
	v := readyView(&fakeAsk{})
	v.SetQuestion("tiles missing")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, cmd)
	assert.True(t, v.Thinking())
	assert.Contains(t, v.View(), "tiles missing")
}

func TestView_PerformAskUsesLocale(t *testing.T) {
	svc := &fakeAsk{response: &domain.HybridResponse{Intent: domain.IntentCacheIndexing}}
	v := readyView(svc)
	v.Update(tea.KeyMsg{Type: tea.KeyCtrlL})

	msg := v.performAsk("la cache no se limpia", v.Locale())()

	answer, ok := msg.(messages.AnswerReceived)
	require.True(t, ok)
	assert.Equal(t, domain.LocaleES, svc.locale)
	assert.Equal(t, "la cache no se limpia", svc.question)
	assert.Equal(t, domain.LocaleES, answer.Locale)
}

func TestView_PerformAskWithoutService(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.SetDimensions(100, 30)

	msg := v.performAsk("q", domain.LocaleEN)()

	errMsg, ok := msg.(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, ErrNoAskService)
}

func TestView_AnswerReceived(t *testing.T) {
	v := readyView(&fakeAsk{})
	v.SetQuestion("tiles stale")
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	resp := &domain.HybridResponse{
		Intent:             domain.IntentCacheIndexing,
		Confidence:         0.8,
		RecommendedActions: []string{"Run the cache invalidation report"},
	}
	v.Update(messages.AnswerReceived{Question: "tiles stale", Locale: domain.LocaleEN, Response: resp})

	assert.False(t, v.Thinking())
	assert.Equal(t, resp, v.Response())
	assert.Equal(t, status.StateAnswered, v.statusbar.State())
	assert.Contains(t, v.View(), "cache_indexing")
}

func TestView_AnswerError(t *testing.T) {
	v := readyView(&fakeAsk{})
	v.thinking = true

	v.Update(messages.AnswerReceived{Err: errors.New("boom")})

	assert.False(t, v.Thinking())
	assert.EqualError(t, v.Err(), "boom")
	assert.Contains(t, v.View(), "Error: boom")
}

func TestView_EscGoesToMenu(t *testing.T) {
	v := readyView(&fakeAsk{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_TypingFillsInput(t *testing.T) {
	v := readyView(&fakeAsk{})

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})

	assert.Equal(t, "hi", v.input.Value())
}

func TestView_Reset(t *testing.T) {
	v := readyView(&fakeAsk{})
	v.Update(messages.AnswerReceived{Response: &domain.HybridResponse{Intent: domain.IntentOther}})

	v.Reset()

	assert.Nil(t, v.Response())
	assert.Equal(t, status.StateReady, v.statusbar.State())
}
