package services

import (
	"github.com/sahilm/fuzzy"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driving"
	"github.com/custodia-labs/launchpad-assist/internal/core/services/router"
)

// Ensure PlaybookService implements the interface.
var _ driving.PlaybookService = (*PlaybookService)(nil)

// maxSuggestions caps Suggest results.
const maxSuggestions = 3

// PlaybookService serves the router's playbook registry.
type PlaybookService struct{}

// NewPlaybookService creates a new playbook service.
func NewPlaybookService() *PlaybookService {
	return &PlaybookService{}
}

// Intents lists every intent in classification order.
func (s *PlaybookService) Intents() []domain.Intent {
	return domain.AllIntents()
}

// Get renders the playbook of the named intent.
func (s *PlaybookService) Get(name string, locale domain.Locale) (*domain.PlaybookView, error) {
	intent, err := domain.ParseIntent(name)
	if err != nil {
		return nil, err
	}
	view := router.PlaybookFor(intent).View(intent, domain.LocaleOrDefault(string(locale)), router.CitationFiles(intent))
	return &view, nil
}

// Suggest ranks intent names by fuzzy match against name.
func (s *PlaybookService) Suggest(name string) []string {
	intents := domain.AllIntents()
	names := make([]string, len(intents))
	for i, intent := range intents {
		names[i] = intent.String()
	}

	matches := fuzzy.Find(name, names)
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
