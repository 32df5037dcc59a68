package driven

import "github.com/custodia-labs/launchpad-assist/internal/core/domain"

// AIConfigValidator builds a throwaway client for an LLM configuration and
// pings it, so `assist settings llm` can reject bad keys before saving.
// The mock provider and an empty provider always pass.
type AIConfigValidator interface {
	ValidateLLM(config *domain.LLMSettings) error
}
