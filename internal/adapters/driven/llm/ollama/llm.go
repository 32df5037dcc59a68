// Package ollama talks to a local Ollama server.
package ollama

import (
	"context"
	"strings"
	"time"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driven/llm/httpclient"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
)

var _ driven.LLMService = (*LLMService)(nil)

const (
	DefaultBaseURL    = "http://localhost:11434"
	DefaultLLMModel   = "llama3.2"
	DefaultLLMTimeout = 120 * time.Second
)

// LLMConfig configures the adapter. Everything is optional.
type LLMConfig struct {
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// LLMService is a driven.LLMService over /api/generate.
type LLMService struct {
	http    *httpclient.Client
	baseURL string
	model   string
}

type generateRequest struct {
	Model   string   `json:"model"`
	Prompt  string   `json:"prompt"`
	System  string   `json:"system,omitempty"`
	Format  string   `json:"format,omitempty"`
	Stream  bool     `json:"stream"`
	Options *options `json:"options,omitempty"`
}

type options struct {
	NumPredict  int      `json:"num_predict,omitempty"`
	Temperature float64  `json:"temperature,omitempty"`
	Stop        []string `json:"stop,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func NewLLMService(cfg LLMConfig) *LLMService {
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
			Provider:   "ollama",
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
		}),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
	}
}

// Generate runs a non-streaming completion in JSON mode; every caller
// parses the reply as a JSON object.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	req := generateRequest{
		Model:  s.model,
		Prompt: prompt,
		System: opts.System,
		Format: "json",
	}
	if opts.MaxTokens > 0 || opts.Temperature > 0 || len(opts.StopWords) > 0 {
		req.Options = &options{
			NumPredict:  opts.MaxTokens,
			Temperature: opts.Temperature,
			Stop:        opts.StopWords,
		}
	}

	var resp generateResponse
	if err := s.http.PostJSON(ctx, s.baseURL+"/api/generate", req, &resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Response), nil
}

func (s *LLMService) ModelName() string {
	return s.model
}

// Ping hits /api/tags, which answers as soon as the server is up.
func (s *LLMService) Ping(ctx context.Context) error {
	return s.http.Get(ctx, s.baseURL+"/api/tags")
}

func (s *LLMService) Close() error {
	return nil
}
