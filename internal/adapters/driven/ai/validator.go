package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
)

var _ driven.AIConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator pings a candidate LLM configuration before it is saved.
type ConfigValidator struct {
	timeout time.Duration
	create  func(*domain.LLMSettings) (driven.LLMService, error)
}

// NewConfigValidator uses the same five second budget as startup pings.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{timeout: pingTimeout, create: CreateLLMService}
}

// WithTimeout overrides the ping budget.
func (v *ConfigValidator) WithTimeout(d time.Duration) *ConfigValidator {
	v.timeout = d
	return v
}

// ValidateLLM returns nil for nil or incomplete settings: there is nothing
// to contact yet, and Validate on the settings service reports what is missing.
func (v *ConfigValidator) ValidateLLM(config *domain.LLMSettings) error {
	if config == nil || !config.IsConfigured() {
		return nil
	}

	svc, err := v.create(config)
	if err != nil {
		return err
	}
	if svc == nil {
		return nil
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()
	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%s unreachable: %w", config.Provider, err)
	}
	return nil
}
