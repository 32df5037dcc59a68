package router

import (
	"context"
	"time"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
	"github.com/custodia-labs/launchpad-assist/internal/logger"
)

// Config tunes a Router.
type Config struct {
	// Grounding gates the RAG route.
	Grounding Grounding

	// MaxSteps caps explicitly requested step counts. Values above
	// MaxStepsLimit are clamped to it.
	MaxSteps int
}

// MaxStepsLimit is the largest step count every playbook can fill with
// distinct actions in both locales; checkRegistry enforces it.
const MaxStepsLimit = domain.DefaultMaxSteps

// DefaultConfig returns the calibrated router configuration.
func DefaultConfig() Config {
	return Config{Grounding: DefaultGrounding(), MaxSteps: domain.DefaultMaxSteps}
}

// ConfigFromSettings builds a Config from persisted router settings.
// Zero values keep their defaults.
func ConfigFromSettings(s domain.RouterSettings) Config {
	cfg := DefaultConfig()
	if s.MaxSteps > 0 {
		cfg.MaxSteps = min(s.MaxSteps, MaxStepsLimit)
	}
	if s.MinChunkChars > 0 {
		cfg.Grounding.MinChunkChars = s.MinChunkChars
	}
	if s.MinTokenOverlap > 0 {
		cfg.Grounding.MinTokenOverlap = s.MinTokenOverlap
	}
	return cfg
}

// Router answers troubleshooting questions with rules, retrieval and an
// optional LLM. It is safe for concurrent use.
type Router struct {
	llm driven.LLMService
	cfg Config
}

// New creates a Router. llm may be nil.
func New(llm driven.LLMService, cfg Config) *Router {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = domain.DefaultMaxSteps
	}
	cfg.MaxSteps = min(cfg.MaxSteps, MaxStepsLimit)
	return &Router{llm: llm, cfg: cfg}
}

// Config returns the router's configuration.
func (r *Router) Config() Config {
	return r.cfg
}

// Decision is a response together with how it was produced.
type Decision struct {
	Response       domain.HybridResponse
	Route          domain.Route
	Classification domain.Classification
	Global         bool
	Latency        time.Duration
}

// Ask answers question against corpus. It never returns an error and never panics.
func (r *Router) Ask(ctx context.Context, question string, locale domain.Locale, corpus *domain.Corpus) domain.HybridResponse {
	return r.Decide(ctx, question, locale, corpus).Response
}

// Decide answers question and reports the route taken.
func (r *Router) Decide(ctx context.Context, question string, locale domain.Locale, corpus *domain.Corpus) (d Decision) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			logger.Error("router: recovered from panic: %v", p)
			d = r.failure(question, locale)
		}
		d.Latency = time.Since(start)
	}()

	locale = domain.LocaleOrDefault(string(locale))
	class := Classify(question)
	global := DetectGlobalScope(question)
	route := DecideRoute(class.Intent, class.Confidence)

	logger.Event("ask", map[string]any{
		"question":     question,
		"locale":       locale,
		"intent":       class.Intent,
		"confidence":   class.Confidence,
		"route":        route,
		"globalScope":  global,
		"requestSteps": requestedSteps(question),
	})

	if corpus.IsEmpty() {
		logger.Warn("router: knowledge base is empty")
		return Decision{
			Response:       *r.KnowledgeBaseUnavailable(question, locale, class.Intent),
			Route:          domain.RouteClarify,
			Classification: domain.Classification{Intent: domain.IntentClarify, Confidence: FailureConfidence},
			Global:         global,
		}
	}

	req := Request{Question: question, Locale: locale, Corpus: corpus, Classification: class, Global: global}
	pb := PlaybookFor(class.Intent)

	if global && pb.GlobalEligible {
		if len(ruleCitations(corpus, question, class.Intent)) > 0 {
			return Decision{Response: *r.RulesOnlyResponse(req), Route: domain.RouteRulesOnly, Classification: class, Global: true}
		}
		return Decision{Response: *r.ClarifyResponse(req), Route: domain.RouteClarify, Classification: class, Global: true}
	}

	switch route {
	case domain.RouteRulesOnly:
		return Decision{Response: *r.RulesOnlyResponse(req), Route: route, Classification: class, Global: global}
	case domain.RouteRAGLLM:
		resp, taken, err := r.RAGResponse(ctx, req)
		if err != nil {
			logger.Error("router: %v", err)
			return r.failure(question, locale)
		}
		return Decision{Response: *resp, Route: taken, Classification: class, Global: global}
	default:
		return Decision{Response: *r.ClarifyResponse(req), Route: domain.RouteClarify, Classification: class, Global: global}
	}
}

func (r *Router) failure(question string, locale domain.Locale) Decision {
	return Decision{
		Response:       *TechnicalFailure(question, domain.LocaleOrDefault(string(locale))),
		Route:          domain.RouteClarify,
		Classification: domain.Classification{Intent: domain.IntentClarify, Confidence: FailureConfidence},
	}
}

// ModelName returns the configured model, or "" when no provider is set.
func (r *Router) ModelName() string {
	if r.llm == nil {
		return ""
	}
	return r.llm.ModelName()
}

func requestedSteps(question string) any {
	if n, ok := ExtractRequestedSteps(question); ok {
		return n
	}
	return nil
}
