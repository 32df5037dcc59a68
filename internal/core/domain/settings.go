package domain

import (
	"fmt"
	"strings"
)

const unknownDescription = "Unknown"

// AIProvider identifies a generation provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"

	// AIProviderGenAIHub is an OpenAI-compatible enterprise gateway.
	AIProviderGenAIHub AIProvider = "genaihub"

	// AIProviderMock builds deterministic answers from the prompt sources.
	AIProviderMock AIProvider = "mock"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic, AIProviderGenAIHub, AIProviderMock:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic || p == AIProviderGenAIHub
}

// RequiresBaseURL returns true if this provider has no usable default endpoint.
func (p AIProvider) RequiresBaseURL() bool {
	return p == AIProviderGenAIHub
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama || p == AIProviderMock
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	case AIProviderGenAIHub:
		return "GenAI Hub (OpenAI-compatible gateway)"
	case AIProviderMock:
		return "Mock (deterministic, offline)"
	default:
		return unknownDescription
	}
}

// AllLLMProviders returns every supported provider.
func AllLLMProviders() []AIProvider {
	return []AIProvider{
		AIProviderOllama,
		AIProviderOpenAI,
		AIProviderAnthropic,
		AIProviderGenAIHub,
		AIProviderMock,
	}
}

// DefaultLLMModels returns default models for each LLM provider.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama:    "llama3.2",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
		AIProviderGenAIHub:  "gpt-4o-mini",
		AIProviderMock:      "mock",
	}
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL is the API endpoint (for Ollama and GenAI Hub).
	BaseURL string

	// APIKey is the API key (for OpenAI/Anthropic/GenAI Hub).
	APIKey string
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	if l.Provider.RequiresBaseURL() && l.BaseURL == "" {
		return false
	}
	return true
}

// KnowledgeBaseSettings locates the markdown corpus.
type KnowledgeBaseSettings struct {
	// Path is a directory of .md files or an http(s) base URL serving index.json.
	Path string

	// Watch invalidates the cached corpus when files in Path change.
	Watch bool
}

// IsRemote reports whether Path is an http(s) URL.
func (k KnowledgeBaseSettings) IsRemote() bool {
	lower := strings.ToLower(k.Path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// RouterSettings tunes the hybrid router.
type RouterSettings struct {
	// MaxSteps caps an explicitly requested number of actions.
	MaxSteps int

	// MinChunkChars is the shortest top chunk trusted for generation.
	MinChunkChars int

	// MinTokenOverlap is the minimum number of tokens shared by question and top chunk.
	MinTokenOverlap int
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	// Port is the listen port.
	Port int

	// AllowedOrigins are the CORS origins accepted by the API.
	AllowedOrigins []string

	// RateLimit is the sustained number of /ask requests per second.
	RateLimit float64

	// RateBurst is the number of requests allowed above RateLimit in a burst.
	RateBurst int
}

// TraceSettings configures persistence of answered questions.
type TraceSettings struct {
	// Enabled stores one record per answered question.
	Enabled bool

	// Path is the SQLite database file.
	Path string
}

// Settings holds all application settings.
type Settings struct {
	KnowledgeBase KnowledgeBaseSettings
	LLM           LLMSettings
	Router        RouterSettings
	Server        ServerSettings
	Trace         TraceSettings
}

// Default values.
const (
	DefaultKnowledgeBasePath = "knowledge-base"
	DefaultMaxSteps          = 12
	DefaultMinChunkChars     = 120
	DefaultMinTokenOverlap   = 2
	DefaultPort              = 4000
	DefaultOrigin            = "http://localhost:3000"
	DefaultRateLimit         = 5
	DefaultRateBurst         = 10
)

// DefaultSettings returns settings with sensible defaults.
// The mock provider is selected until a real provider is configured.
func DefaultSettings() Settings {
	return Settings{
		KnowledgeBase: KnowledgeBaseSettings{
			Path:  DefaultKnowledgeBasePath,
			Watch: true,
		},
		LLM: LLMSettings{
			Provider: AIProviderMock,
			Model:    DefaultLLMModels()[AIProviderMock],
		},
		Router: RouterSettings{
			MaxSteps:        DefaultMaxSteps,
			MinChunkChars:   DefaultMinChunkChars,
			MinTokenOverlap: DefaultMinTokenOverlap,
		},
		Server: ServerSettings{
			Port:           DefaultPort,
			AllowedOrigins: []string{DefaultOrigin},
			RateLimit:      DefaultRateLimit,
			RateBurst:      DefaultRateBurst,
		},
		Trace: TraceSettings{
			Enabled: true,
		},
	}
}

// Validate checks settings for values the router cannot work with.
func (s Settings) Validate() error {
	if !s.LLM.Provider.IsValid() {
		return fmt.Errorf("%w: llm provider %q", ErrInvalidSetting, s.LLM.Provider)
	}
	if s.Router.MaxSteps < 1 {
		return fmt.Errorf("%w: max steps must be positive, got %d", ErrInvalidSetting, s.Router.MaxSteps)
	}
	if s.Router.MinChunkChars < 0 || s.Router.MinTokenOverlap < 0 {
		return fmt.Errorf("%w: grounding thresholds must not be negative", ErrInvalidSetting)
	}
	if s.Server.Port < 0 || s.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidSetting, s.Server.Port)
	}
	if s.Server.RateLimit < 0 || s.Server.RateBurst < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidSetting)
	}
	return nil
}
