package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
)

// slowLLM blocks in Ping until the context ends.
type slowLLM struct{ closed bool }

func (s *slowLLM) Generate(context.Context, string, driven.GenerateOptions) (string, error) {
	return "", nil
}
func (s *slowLLM) ModelName() string { return "slow" }
func (s *slowLLM) Ping(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}
func (s *slowLLM) Close() error {
	s.closed = true
	return nil
}

func TestConfigValidator_NothingToValidate(t *testing.T) {
	tests := map[string]*domain.LLMSettings{
		"nil":            nil,
		"missing key":    {Provider: domain.AIProviderOpenAI, Model: "m"},
		"mock":           {Provider: domain.AIProviderMock},
		"empty provider": {},
	}

	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, NewConfigValidator().ValidateLLM(cfg))
		})
	}
}

func TestConfigValidator_Unauthorised(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := NewConfigValidator().ValidateLLM(&domain.LLMSettings{
		Provider: domain.AIProviderOpenAI,
		APIKey:   "bad",
		BaseURL:  srv.URL,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai unreachable")
	assert.Contains(t, err.Error(), "status 401")
}

func TestConfigValidator_Timeout(t *testing.T) {
	slow := &slowLLM{}
	v := NewConfigValidator().WithTimeout(10 * time.Millisecond)
	v.create = func(*domain.LLMSettings) (driven.LLMService, error) { return slow, nil }

	err := v.ValidateLLM(&domain.LLMSettings{Provider: domain.AIProviderOllama})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, slow.closed)
}

func TestConfigValidator_CreateError(t *testing.T) {
	v := NewConfigValidator()
	v.create = func(*domain.LLMSettings) (driven.LLMService, error) { return nil, errors.New("bad provider") }

	err := v.ValidateLLM(&domain.LLMSettings{Provider: domain.AIProviderOllama})

	assert.EqualError(t, err, "bad provider")
}
