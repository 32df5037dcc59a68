// Package ai provides factory functions for creating generation provider adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	anthropicllm "github.com/custodia-labs/launchpad-assist/internal/adapters/driven/llm/anthropic"
	mockllm "github.com/custodia-labs/launchpad-assist/internal/adapters/driven/llm/mock"
	ollamallm "github.com/custodia-labs/launchpad-assist/internal/adapters/driven/llm/ollama"
	openaillm "github.com/custodia-labs/launchpad-assist/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
	"github.com/custodia-labs/launchpad-assist/internal/logger"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// noRetries makes every generation call a single attempt. A failed call
// is degraded by the router, never repeated.
const noRetries = -1

// InitResult contains the result of provider initialisation.
type InitResult struct {
	LLMService driven.LLMService
	Provider   domain.AIProvider
	Warnings   []string // Non-fatal issues that caused fallback.
	FellBack   bool     // True if fell back to the mock provider.
}

// Close releases all resources held by InitResult.
func (r *InitResult) Close() {
	if r.LLMService != nil {
		r.LLMService.Close()
	}
}

// InitLLM returns a usable provider for the settings. A provider with
// missing credentials, or one that cannot be built, is replaced by the
// mock provider and the reason recorded as a warning.
func InitLLM(settings *domain.LLMSettings) *InitResult {
	result := &InitResult{}

	fallback := func(reason string) *InitResult {
		logger.Warn("llm: %s; using mock provider", reason)
		result.Warnings = append(result.Warnings, reason)
		result.FellBack = true
		result.Provider = domain.AIProviderMock
		result.LLMService = mockllm.NewLLMService()
		return result
	}

	if settings == nil {
		return fallback("no provider configured")
	}
	if !settings.IsConfigured() {
		return fallback(missingReason(settings))
	}

	svc, err := CreateLLMService(settings)
	if err != nil {
		return fallback(err.Error())
	}

	result.LLMService = svc
	result.Provider = settings.Provider
	logger.Debug("llm: provider %s model %s", settings.Provider, svc.ModelName())
	return result
}

// missingReason explains why settings are not usable.
func missingReason(settings *domain.LLMSettings) string {
	switch {
	case !settings.Provider.IsValid():
		return fmt.Sprintf("unsupported provider %q", settings.Provider)
	case settings.Provider.RequiresAPIKey() && settings.APIKey == "":
		return fmt.Sprintf("%s API key not set", settings.Provider)
	case settings.Provider.RequiresBaseURL() && settings.BaseURL == "":
		return fmt.Sprintf("%s base URL not set", settings.Provider)
	default:
		return fmt.Sprintf("%s not configured", settings.Provider)
	}
}

// CreateAndValidateLLMService creates an LLM service and validates connectivity.
// Returns the service if successful, or an error with guidance.
func CreateAndValidateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	svc, err := CreateLLMService(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'assist settings show' to check",
			domain.ErrProviderNotConfigured, err)
	}

	if svc == nil {
		return nil, nil
	}

	// Validate connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w)",
			domain.ErrProviderNotConfigured, err)
	}

	return svc, nil
}

// CreateLLMService creates the appropriate LLM service based on settings.
// Returns nil if the provider is not configured.
func CreateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.AIProviderOllama:
		return createOllamaLLM(settings), nil

	case domain.AIProviderOpenAI:
		return createOpenAILLM(settings)

	case domain.AIProviderGenAIHub:
		return createGenAIHubLLM(settings)

	case domain.AIProviderAnthropic:
		return createAnthropicLLM(settings)

	case domain.AIProviderMock:
		return mockllm.NewLLMService(), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.Provider)
	}
}

// createOllamaLLM creates an Ollama LLM service.
func createOllamaLLM(settings *domain.LLMSettings) driven.LLMService {
	return ollamallm.NewLLMService(ollamallm.LLMConfig{
		BaseURL:    settings.BaseURL,
		Model:      settings.Model,
		MaxRetries: noRetries,
	})
}

// createOpenAILLM creates an OpenAI LLM service.
func createOpenAILLM(settings *domain.LLMSettings) (driven.LLMService, error) {
	return openaillm.NewLLMService(openaillm.LLMConfig{
		APIKey:     settings.APIKey,
		BaseURL:    settings.BaseURL,
		Model:      settings.Model,
		MaxRetries: noRetries,
	})
}

// createGenAIHubLLM creates a GenAI Hub service over the OpenAI wire format.
func createGenAIHubLLM(settings *domain.LLMSettings) (driven.LLMService, error) {
	cfg := openaillm.GenAIHubConfig(settings.APIKey, settings.BaseURL, settings.Model)
	cfg.MaxRetries = noRetries
	return openaillm.NewLLMService(cfg)
}

// createAnthropicLLM creates an Anthropic LLM service.
func createAnthropicLLM(settings *domain.LLMSettings) (driven.LLMService, error) {
	return anthropicllm.NewLLMService(anthropicllm.Config{
		APIKey:     settings.APIKey,
		BaseURL:    settings.BaseURL,
		Model:      settings.Model,
		MaxRetries: noRetries,
	})
}
