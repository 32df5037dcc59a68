package driving

import "github.com/custodia-labs/launchpad-assist/internal/core/domain"

// SettingsService reads and edits the persisted configuration. Values taken
// from environment variables or .env show through Get but are never
// written back by Save.
type SettingsService interface {
	Get() (*domain.Settings, error)
	Save(settings *domain.Settings) error

	// SetLLMProvider replaces the whole llm section in one write.
	SetLLMProvider(provider domain.AIProvider, model, apiKey, baseURL string) error

	// SetKnowledgeBasePath accepts a directory or an http(s) index URL.
	SetKnowledgeBasePath(path string) error

	// Validate reports the first invalid setting, wrapping domain.ErrInvalidSetting.
	Validate() error

	GetDefaults() domain.Settings

	// ValidateLLMConfig pings the configured provider.
	ValidateLLMConfig() error
}
