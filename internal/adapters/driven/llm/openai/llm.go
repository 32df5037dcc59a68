// Package openai talks to the OpenAI chat completions API and to gateways
// that speak the same wire format, such as GenAI Hub.
package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driven/llm/httpclient"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
)

var _ driven.LLMService = (*LLMService)(nil)

const (
	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultLLMModel   = "gpt-4o-mini"
	DefaultLLMTimeout = 120 * time.Second
)

// LLMConfig configures the adapter. Only APIKey is required.
type LLMConfig struct {
	APIKey string

	// BaseURL includes the version segment, e.g. https://api.openai.com/v1.
	BaseURL string
	Model   string
	Timeout time.Duration

	// Name prefixes error messages (default: openai).
	Name string

	// MaxRetries for 429 and 5xx replies; zero takes the client default.
	MaxRetries int
}

// GenAIHubConfig points the adapter at a GenAI Hub gateway, which serves
// the chat API under <baseURL>/v1.
func GenAIHubConfig(apiKey, baseURL, model string) LLMConfig {
	return LLMConfig{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/") + "/v1",
		Model:   model,
		Name:    "genaihub",
	}
}

// LLMService is a driven.LLMService over chat completions.
type LLMService struct {
	http    *httpclient.Client
	baseURL string
	model   string
	name    string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	Stop        []string      `json:"stop,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewLLMService validates cfg and fills defaults.
func NewLLMService(cfg LLMConfig) (*LLMService, error) {
	if cfg.Name == "" {
		cfg.Name = "openai"
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: API key is required", cfg.Name)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultLLMTimeout
	}

	return &LLMService{
		http: httpclient.New(httpclient.Config{
			Provider:   cfg.Name,
			Timeout:    cfg.Timeout,
			Headers:    map[string]string{"Authorization": "Bearer " + cfg.APIKey},
			MaxRetries: cfg.MaxRetries,
		}),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		name:    cfg.Name,
	}, nil
}

// Generate sends the system instruction (if any) and the prompt as one
// completion and returns the first choice, trimmed.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if opts.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: opts.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	var resp chatResponse
	err := s.http.PostJSON(ctx, s.baseURL+"/chat/completions", chatRequest{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		Stop:        opts.StopWords,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("%s error: %s", s.name, resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *LLMService) ModelName() string {
	return s.model
}

// Ping lists models, which checks the key without spending tokens.
func (s *LLMService) Ping(ctx context.Context) error {
	return s.http.Get(ctx, s.baseURL+"/models")
}

func (s *LLMService) Close() error {
	return nil
}
