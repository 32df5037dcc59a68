package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyKnowledgeBasePath  = "knowledge_base.path"
	KeyKnowledgeBaseWatch = "knowledge_base.watch"
	KeyLLMProvider        = "llm.provider"
	KeyLLMModel           = "llm.model"
	KeyLLMBaseURL         = "llm.base_url"
	KeyLLMAPIKey          = "llm.api_key"
	KeyMaxSteps           = "router.max_steps"
	KeyMinChunkChars      = "router.min_chunk_chars"
	KeyMinTokenOverlap    = "router.min_token_overlap"
	KeyServerPort         = "server.port"
	KeyAllowedOrigins     = "server.allowed_origins"
	KeyWebOrigin          = "server.web_origin"
	KeyRateLimit          = "server.rate_limit"
	KeyRateBurst          = "server.rate_burst"
	KeyTraceEnabled       = "trace.enabled"
	KeyTracePath          = "trace.path"
)

// DefaultOllamaURL is used when Ollama is selected without a base URL.
const DefaultOllamaURL = "http://localhost:11434"

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		KnowledgeBase: domain.KnowledgeBaseSettings{
			Path:  s.getString(KeyKnowledgeBasePath, defaults.KnowledgeBase.Path),
			Watch: s.getBool(KeyKnowledgeBaseWatch, defaults.KnowledgeBase.Watch),
		},
		LLM: domain.LLMSettings{
			Provider: s.getProvider(defaults.LLM.Provider),
			BaseURL:  s.configStore.GetString(KeyLLMBaseURL),
			APIKey:   s.configStore.GetString(KeyLLMAPIKey),
		},
		Router: domain.RouterSettings{
			MaxSteps:        s.getInt(KeyMaxSteps, defaults.Router.MaxSteps),
			MinChunkChars:   s.getInt(KeyMinChunkChars, defaults.Router.MinChunkChars),
			MinTokenOverlap: s.getInt(KeyMinTokenOverlap, defaults.Router.MinTokenOverlap),
		},
		Server: domain.ServerSettings{
			Port:           s.getInt(KeyServerPort, defaults.Server.Port),
			AllowedOrigins: s.getOrigins(defaults.Server.AllowedOrigins),
			RateLimit:      s.getFloat(KeyRateLimit, defaults.Server.RateLimit),
			RateBurst:      s.getInt(KeyRateBurst, defaults.Server.RateBurst),
		},
		Trace: domain.TraceSettings{
			Enabled: s.getBool(KeyTraceEnabled, defaults.Trace.Enabled),
			Path:    s.configStore.GetString(KeyTracePath),
		},
	}
	settings.LLM.Model = s.getString(KeyLLMModel, domain.DefaultLLMModels()[settings.LLM.Provider])

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	values := []struct {
		key   string
		value any
	}{
		{KeyKnowledgeBasePath, settings.KnowledgeBase.Path},
		{KeyKnowledgeBaseWatch, settings.KnowledgeBase.Watch},
		{KeyLLMProvider, settings.LLM.Provider.String()},
		{KeyLLMModel, settings.LLM.Model},
		{KeyLLMBaseURL, settings.LLM.BaseURL},
		{KeyMaxSteps, settings.Router.MaxSteps},
		{KeyMinChunkChars, settings.Router.MinChunkChars},
		{KeyMinTokenOverlap, settings.Router.MinTokenOverlap},
		{KeyServerPort, settings.Server.Port},
		{KeyAllowedOrigins, settings.Server.AllowedOrigins},
		{KeyRateLimit, settings.Server.RateLimit},
		{KeyRateBurst, settings.Server.RateBurst},
		{KeyTraceEnabled, settings.Trace.Enabled},
		{KeyTracePath, settings.Trace.Path},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(KeyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}

	return nil
}

// SetLLMProvider configures the LLM provider.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey, baseURL string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: llm provider %q", domain.ErrInvalidSetting, provider)
	}

	// Validate API key if required
	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("%w: API key required for %s", domain.ErrInvalidSetting, provider)
	}
	if provider.RequiresBaseURL() && baseURL == "" {
		return fmt.Errorf("%w: base URL required for %s", domain.ErrInvalidSetting, provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider

	// Set model - use provided or default
	if model != "" {
		settings.LLM.Model = model
	} else {
		settings.LLM.Model = domain.DefaultLLMModels()[provider]
	}

	switch {
	case baseURL != "":
		settings.LLM.BaseURL = baseURL
	case provider == domain.AIProviderOllama:
		settings.LLM.BaseURL = DefaultOllamaURL
	default:
		settings.LLM.BaseURL = ""
	}

	settings.LLM.APIKey = apiKey

	return s.Save(settings)
}

// SetKnowledgeBasePath points the router at a directory or index URL.
func (s *SettingsService) SetKnowledgeBasePath(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: knowledge base path is empty", domain.ErrInvalidSetting)
	}
	return s.configStore.Set(KeyKnowledgeBasePath, path)
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateLLM(&settings.LLM)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	switch v := val.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return defaultVal
	}
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getProvider(defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(KeyLLMProvider)
	if val == "" {
		return defaultVal
	}
	provider := domain.AIProvider(strings.ToLower(val))
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}

// getOrigins merges the configured origins with the optional web origin.
func (s *SettingsService) getOrigins(defaultVal []string) []string {
	origins := s.configStore.GetStringSlice(KeyAllowedOrigins)
	if len(origins) == 0 {
		origins = append([]string(nil), defaultVal...)
	}
	web := strings.TrimSpace(s.configStore.GetString(KeyWebOrigin))
	if web == "" {
		return origins
	}
	for _, o := range origins {
		if o == web {
			return origins
		}
	}
	return append(origins, web)
}
