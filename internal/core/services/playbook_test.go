package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

func TestPlaybookService_Intents(t *testing.T) {
	assert.Equal(t, domain.AllIntents(), NewPlaybookService().Intents())
}

func TestPlaybookService_Get(t *testing.T) {
	svc := NewPlaybookService()

	en, err := svc.Get("Apps_Not_Visible", domain.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, domain.IntentAppsNotVisible, en.Intent)
	assert.NotEmpty(t, en.StarterActions)
	assert.NotEmpty(t, en.CitationFiles)

	es, err := svc.Get("apps_not_visible", domain.LocaleES)
	require.NoError(t, err)
	assert.NotEqual(t, en.StarterActions, es.StarterActions)
	assert.Equal(t, en.CitationFiles, es.CitationFiles)
}

func TestPlaybookService_Get_InvalidLocaleDefaultsToEnglish(t *testing.T) {
	svc := NewPlaybookService()

	fr, err := svc.Get("cache_indexing", domain.Locale("fr"))
	require.NoError(t, err)
	en, err := svc.Get("cache_indexing", domain.LocaleEN)
	require.NoError(t, err)

	assert.Equal(t, en, fr)
}

func TestPlaybookService_Get_Unknown(t *testing.T) {
	_, err := NewPlaybookService().Get("printer_jam", domain.LocaleEN)

	assert.ErrorIs(t, err, domain.ErrUnknownIntent)
}

func TestPlaybookService_Suggest(t *testing.T) {
	svc := NewPlaybookService()

	suggestions := svc.Suggest("cache")
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "cache_indexing", suggestions[0])
	assert.LessOrEqual(t, len(svc.Suggest("a")), maxSuggestions)
	assert.Empty(t, svc.Suggest("zzzz"))
}
