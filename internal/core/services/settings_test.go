package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// mockValidator records the LLM settings it was asked to validate.
type mockValidator struct {
	err  error
	seen *domain.LLMSettings
}

func (m *mockValidator) ValidateLLM(config *domain.LLMSettings) error {
	m.seen = config
	return m.err
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(), nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyKnowledgeBasePath, "/srv/kb")
	_ = store.Set(KeyLLMProvider, "OpenAI")
	_ = store.Set(KeyMaxSteps, int64(8))
	_ = store.Set(KeyRateLimit, 2.5)
	_ = store.Set(KeyTraceEnabled, false)
	_ = store.Set(KeyWebOrigin, "https://assist.example.com")

	settings, err := NewSettingsService(store, nil).Get()

	require.NoError(t, err)
	assert.Equal(t, "/srv/kb", settings.KnowledgeBase.Path)
	assert.Equal(t, domain.AIProviderOpenAI, settings.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", settings.LLM.Model, "model defaults per provider")
	assert.Equal(t, 8, settings.Router.MaxSteps)
	assert.InDelta(t, 2.5, settings.Server.RateLimit, 1e-9)
	assert.False(t, settings.Trace.Enabled)
	assert.Equal(t, []string{domain.DefaultOrigin, "https://assist.example.com"}, settings.Server.AllowedOrigins)
}

func TestSettingsService_Get_InvalidProviderReturnsDefault(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyLLMProvider, "watson")

	settings, err := NewSettingsService(store, nil).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderMock, settings.LLM.Provider)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	want := domain.DefaultSettings()
	want.KnowledgeBase.Path = "https://kb.example.com"
	want.LLM = domain.LLMSettings{Provider: domain.AIProviderAnthropic, Model: "claude", APIKey: "sk-ant"}
	want.Router.MaxSteps = 20
	want.Server.AllowedOrigins = []string{"http://localhost:5173"}

	require.NoError(t, service.Save(&want))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestSettingsService_SaveSkipsEmptyAPIKey(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyLLMAPIKey, "kept")
	service := NewSettingsService(store, nil)

	settings := domain.DefaultSettings()
	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "kept", store.GetString(KeyLLMAPIKey))
}

func TestSettingsService_SetLLMProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider domain.AIProvider
		model    string
		apiKey   string
		baseURL  string
		wantErr  bool
		wantURL  string
		wantMod  string
	}{
		{name: "openai default model", provider: domain.AIProviderOpenAI, apiKey: "sk", wantMod: "gpt-4o-mini"},
		{name: "openai missing key", provider: domain.AIProviderOpenAI, wantErr: true},
		{name: "ollama default url", provider: domain.AIProviderOllama, model: "mistral", wantURL: DefaultOllamaURL, wantMod: "mistral"},
		{name: "genaihub needs url", provider: domain.AIProviderGenAIHub, apiKey: "k", wantErr: true},
		{name: "genaihub", provider: domain.AIProviderGenAIHub, apiKey: "k", baseURL: "https://hub.example.com", wantURL: "https://hub.example.com", wantMod: "gpt-4o-mini"},
		{name: "invalid", provider: "watson", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore(), nil)

			err := service.SetLLMProvider(tt.provider, tt.model, tt.apiKey, tt.baseURL)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidSetting)
				return
			}
			require.NoError(t, err)

			settings, err := service.Get()
			require.NoError(t, err)
			assert.Equal(t, tt.provider, settings.LLM.Provider)
			assert.Equal(t, tt.wantMod, settings.LLM.Model)
			assert.Equal(t, tt.wantURL, settings.LLM.BaseURL)
			assert.Equal(t, tt.apiKey, settings.LLM.APIKey)
		})
	}
}

func TestSettingsService_SetKnowledgeBasePath(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetKnowledgeBasePath("  ./kb "))
	assert.Equal(t, "./kb", store.GetString(KeyKnowledgeBasePath))
	assert.ErrorIs(t, service.SetKnowledgeBasePath(" "), domain.ErrInvalidSetting)
}

func TestSettingsService_Validate(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)
	require.NoError(t, service.Validate())

	_ = store.Set(KeyServerPort, 70000)
	assert.ErrorIs(t, service.Validate(), domain.ErrInvalidSetting)
}

func TestSettingsService_ValidateLLMConfig(t *testing.T) {
	assert.NoError(t, NewSettingsService(memory.NewConfigStore(), nil).ValidateLLMConfig())

	validator := &mockValidator{err: errors.New("unreachable")}
	store := memory.NewConfigStore()
	_ = store.Set(KeyLLMProvider, "ollama")
	service := NewSettingsService(store, validator)

	assert.EqualError(t, service.ValidateLLMConfig(), "unreachable")
	require.NotNil(t, validator.seen)
	assert.Equal(t, domain.AIProviderOllama, validator.seen.Provider)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(), nil)
	assert.Equal(t, domain.DefaultSettings(), service.GetDefaults())
}
