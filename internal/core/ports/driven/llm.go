package driven

import "context"

// LLMService completes prompts for the RAG route and for intent
// classification when rules do not match. A nil LLMService is valid: the
// router then answers RAG questions with the clarify response.
type LLMService interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName is recorded in traces and shown by `assist settings`.
	ModelName() string

	// Ping checks credentials and reachability without running a completion.
	Ping(ctx context.Context) error

	Close() error
}

// GenerateOptions tunes one completion. Zero values leave provider defaults.
type GenerateOptions struct {
	System      string
	MaxTokens   int
	Temperature float64
	StopWords   []string
}
