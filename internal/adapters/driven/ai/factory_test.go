package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
)

func TestInitResult_Close(t *testing.T) {
	t.Run("close with nil services", func(t *testing.T) {
		result := &InitResult{}
		// Should not panic
		result.Close()
	})
}

func TestCreateLLMService(t *testing.T) {
	tests := []struct {
		name      string
		settings  *domain.LLMSettings
		wantNil   bool
		wantModel string
	}{
		{
			name:     "nil settings returns nil",
			settings: nil,
			wantNil:  true,
		},
		{
			name:     "unconfigured settings returns nil",
			settings: &domain.LLMSettings{},
			wantNil:  true,
		},
		{
			name:     "openai without key returns nil",
			settings: &domain.LLMSettings{Provider: domain.AIProviderOpenAI},
			wantNil:  true,
		},
		{
			name:     "genaihub without base url returns nil",
			settings: &domain.LLMSettings{Provider: domain.AIProviderGenAIHub, APIKey: "k"},
			wantNil:  true,
		},
		{
			name:      "ollama provider creates service",
			settings:  &domain.LLMSettings{Provider: domain.AIProviderOllama, Model: "llama3.2"},
			wantModel: "llama3.2",
		},
		{
			name:      "openai provider creates service",
			settings:  &domain.LLMSettings{Provider: domain.AIProviderOpenAI, APIKey: "k", Model: "gpt-4o-mini"},
			wantModel: "gpt-4o-mini",
		},
		{
			name: "genaihub provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderGenAIHub,
				APIKey:   "k",
				BaseURL:  "https://hub.example.com",
				Model:    "gpt-4o",
			},
			wantModel: "gpt-4o",
		},
		{
			name:      "anthropic provider creates service",
			settings:  &domain.LLMSettings{Provider: domain.AIProviderAnthropic, APIKey: "k", Model: "claude"},
			wantModel: "claude",
		},
		{
			name:      "mock provider creates service",
			settings:  &domain.LLMSettings{Provider: domain.AIProviderMock},
			wantModel: "mock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateLLMService(tt.settings)

			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, svc)
				return
			}
			require.NotNil(t, svc)
			assert.Equal(t, tt.wantModel, svc.ModelName())
			assert.NoError(t, svc.Close())
		})
	}
}

func TestInitLLM_Configured(t *testing.T) {
	result := InitLLM(&domain.LLMSettings{Provider: domain.AIProviderOpenAI, APIKey: "k", Model: "gpt-4o-mini"})
	defer result.Close()

	assert.False(t, result.FellBack)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, domain.AIProviderOpenAI, result.Provider)
	assert.Equal(t, "gpt-4o-mini", result.LLMService.ModelName())
}

func TestInitLLM_FallsBackToMock(t *testing.T) {
	tests := []struct {
		name     string
		settings *domain.LLMSettings
		warning  string
	}{
		{"nil settings", nil, "no provider configured"},
		{"openai without key", &domain.LLMSettings{Provider: domain.AIProviderOpenAI}, "openai API key not set"},
		{"genaihub without url", &domain.LLMSettings{Provider: domain.AIProviderGenAIHub, APIKey: "k"}, "genaihub base URL not set"},
		{"unknown provider", &domain.LLMSettings{Provider: "bard"}, `unsupported provider "bard"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InitLLM(tt.settings)

			assert.True(t, result.FellBack)
			assert.Equal(t, []string{tt.warning}, result.Warnings)
			assert.Equal(t, domain.AIProviderMock, result.Provider)
			require.NotNil(t, result.LLMService)
			assert.Equal(t, "mock", result.LLMService.ModelName())
		})
	}
}

func TestCreateAndValidateLLMService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc, err := CreateAndValidateLLMService(&domain.LLMSettings{Provider: domain.AIProviderOllama, BaseURL: srv.URL})
	require.NoError(t, err)
	require.NotNil(t, svc)

	svc, err = CreateAndValidateLLMService(nil)
	assert.NoError(t, err)
	assert.Nil(t, svc)
}

func TestCreateAndValidateLLMService_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := CreateAndValidateLLMService(&domain.LLMSettings{Provider: domain.AIProviderOllama, BaseURL: srv.URL})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderNotConfigured)
}

func TestCreateLLMService_SingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc, err := CreateLLMService(&domain.LLMSettings{
		Provider: domain.AIProviderOpenAI,
		APIKey:   "sk-test",
		BaseURL:  srv.URL,
		Model:    "gpt-test",
	})
	require.NoError(t, err)
	defer svc.Close()

	_, err = svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
