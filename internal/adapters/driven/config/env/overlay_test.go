package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/services"
)

func lookupFrom(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestOverlay_FallsThroughWhenUnset(t *testing.T) {
	inner := memory.NewConfigStoreFrom(map[string]any{
		services.KeyKnowledgeBasePath: "/srv/kb",
		services.KeyMaxSteps:          7,
	})
	o := NewWithLookup(inner, lookupFrom(nil))

	assert.Equal(t, "/srv/kb", o.GetString(services.KeyKnowledgeBasePath))
	assert.Equal(t, 7, o.GetInt(services.KeyMaxSteps))
	assert.Empty(t, o.Applied())
}

func TestOverlay_OverridesStoredValues(t *testing.T) {
	inner := memory.NewConfigStoreFrom(map[string]any{
		services.KeyKnowledgeBasePath: "/srv/kb",
		services.KeyServerPort:        4000,
	})
	o := NewWithLookup(inner, lookupFrom(map[string]string{
		VarKnowledgeBasePath: " ./kb ",
		VarPort:              "8080",
		VarMaxSteps:          "9",
		VarWebOrigin:         "https://portal.example.com",
	}))

	assert.Equal(t, "./kb", o.GetString(services.KeyKnowledgeBasePath))
	assert.Equal(t, 8080, o.GetInt(services.KeyServerPort))
	assert.Equal(t, 9, o.GetInt(services.KeyMaxSteps))
	assert.Equal(t, "https://portal.example.com", o.GetString(services.KeyWebOrigin))

	v, ok := o.Get(services.KeyServerPort)
	assert.True(t, ok)
	assert.Equal(t, 8080, v)
}

func TestOverlay_InvalidIntegerIgnored(t *testing.T) {
	inner := memory.NewConfigStoreFrom(map[string]any{services.KeyMaxSteps: 5})
	o := NewWithLookup(inner, lookupFrom(map[string]string{VarMaxSteps: "many", VarPort: "-1"}))

	assert.Equal(t, 5, o.GetInt(services.KeyMaxSteps))
	assert.Equal(t, 0, o.GetInt(services.KeyServerPort))
}

func TestOverlay_ProviderSpecificVariables(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		stored   map[string]any
		provider string
		apiKey   string
		model    string
		baseURL  string
	}{
		{
			name:     "openai key alone selects openai",
			vars:     map[string]string{VarOpenAIKey: "sk", VarOpenAIModel: "gpt-4o"},
			provider: "openai",
			apiKey:   "sk",
			model:    "gpt-4o",
		},
		{
			name: "genaihub variables",
			vars: map[string]string{
				VarLLMProvider:   "GenAIHub",
				VarGenAIHubKey:   "hub-key",
				VarGenAIHubURL:   "https://hub",
				VarGenAIHubModel: "gpt-4o",
				VarOpenAIKey:     "ignored",
			},
			provider: "genaihub",
			apiKey:   "hub-key",
			model:    "gpt-4o",
			baseURL:  "https://hub",
		},
		{
			name:     "stored provider picks matching key",
			vars:     map[string]string{VarAnthropicKey: "ak", VarOpenAIKey: "sk"},
			stored:   map[string]any{services.KeyLLMProvider: "anthropic", services.KeyLLMModel: "claude"},
			provider: "anthropic",
			apiKey:   "ak",
			model:    "claude",
		},
		{
			name:     "ollama base url",
			vars:     map[string]string{VarLLMProvider: "ollama", VarOllamaBaseURL: "http://gpu:11434"},
			provider: "ollama",
			baseURL:  "http://gpu:11434",
		},
		{
			name:     "mock ignores keys",
			vars:     map[string]string{VarLLMProvider: "mock", VarOpenAIKey: "sk"},
			provider: "mock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewWithLookup(memory.NewConfigStoreFrom(tt.stored), lookupFrom(tt.vars))

			assert.Equal(t, tt.provider, o.GetString(services.KeyLLMProvider))
			assert.Equal(t, tt.apiKey, o.GetString(services.KeyLLMAPIKey))
			assert.Equal(t, tt.model, o.GetString(services.KeyLLMModel))
			assert.Equal(t, tt.baseURL, o.GetString(services.KeyLLMBaseURL))
		})
	}
}

func TestOverlay_SetDoesNotPersistEnvironment(t *testing.T) {
	inner := memory.NewConfigStore()
	o := NewWithLookup(inner, lookupFrom(map[string]string{VarOpenAIKey: "sk"}))

	require.NoError(t, o.Set(services.KeyKnowledgeBasePath, "kb"))

	assert.Equal(t, "kb", inner.GetString(services.KeyKnowledgeBasePath))
	_, stored := inner.Get(services.KeyLLMAPIKey)
	assert.False(t, stored)
	assert.Equal(t, ":memory:", o.Path())
	assert.NoError(t, o.Save())
	assert.NoError(t, o.Load())
}

func TestOverlay_FeedsSettingsService(t *testing.T) {
	o := NewWithLookup(memory.NewConfigStore(), lookupFrom(map[string]string{
		VarLLMProvider: "genaihub",
		VarGenAIHubKey: "k",
		VarGenAIHubURL: "https://hub",
		VarWebOrigin:   "https://portal",
		VarMaxSteps:    "6",
	}))

	settings, err := services.NewSettingsService(o, nil).Get()
	require.NoError(t, err)

	assert.Equal(t, domain.AIProviderGenAIHub, settings.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", settings.LLM.Model)
	assert.True(t, settings.LLM.IsConfigured())
	assert.Equal(t, 6, settings.Router.MaxSteps)
	assert.Contains(t, settings.Server.AllowedOrigins, "https://portal")
}

func TestOverlay_SavingSettingsSkipsEnvironmentValues(t *testing.T) {
	inner := memory.NewConfigStore()
	o := NewWithLookup(inner, lookupFrom(map[string]string{
		VarLLMProvider:  "anthropic",
		VarAnthropicKey: "secret",
		VarWebOrigin:    "https://portal",
	}))
	svc := services.NewSettingsService(o, nil)

	settings, err := svc.Get()
	require.NoError(t, err)
	settings.Router.MaxSteps = 8
	require.NoError(t, svc.Save(settings))

	_, keyStored := inner.Get(services.KeyLLMAPIKey)
	_, providerStored := inner.Get(services.KeyLLMProvider)
	assert.False(t, keyStored)
	assert.False(t, providerStored)
	assert.Equal(t, 8, inner.GetInt(services.KeyMaxSteps))
	assert.NotContains(t, inner.GetStringSlice(services.KeyAllowedOrigins), "https://portal")
}

func TestOverlay_Applied(t *testing.T) {
	o := NewWithLookup(memory.NewConfigStore(), lookupFrom(map[string]string{
		VarPort:        "80",
		VarOpenAIKey:   "sk",
		VarOpenAIModel: "  ",
	}))

	assert.Equal(t, []string{VarOpenAIKey, VarPort}, o.Applied())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("ASSIST_TEST_DOTENV=from-file\nASSIST_TEST_PRESET=from-file\n"), 0600))
	t.Setenv("ASSIST_TEST_PRESET", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("ASSIST_TEST_DOTENV") })

	LoadDotEnv(path, filepath.Join(dir, "missing.env"))

	assert.Equal(t, "from-file", os.Getenv("ASSIST_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("ASSIST_TEST_PRESET"))
}
