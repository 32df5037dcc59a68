package router

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
	"github.com/custodia-labs/launchpad-assist/internal/core/services/retrieval"
	"github.com/custodia-labs/launchpad-assist/internal/logger"
	"github.com/custodia-labs/launchpad-assist/internal/normalisers/tokens"
)

// Retrieval and citation sizes used by the builders.
const (
	RAGTopK            = retrieval.DefaultTopK
	CitationCandidates = 8
	MaxRuleCitations   = 3
	MaxRAGCitations    = 4
	FailureConfidence  = 0.1
	GenerationTemp     = 0.2
	GenerationSystem   = "You answer strictly from provided sources and return JSON only."
)

// contextKeywords name technical objects; a question mentioning one
// already carries enough context for the rules-only path.
var contextKeywords = []string{
	"role", "catalog", "space", "page", "tile", "app", "pfcg", "client", "cliente",
	"launchpad", "odata", "sicf", "401", "403", "theme", "tema", "ui2", "flp",
}

// Grounding gates whether retrieved text may back a generation call.
type Grounding struct {
	// MinChunkChars is the minimum length of the top chunk's text.
	MinChunkChars int

	// MinTokenOverlap is the minimum number of distinct tokens shared
	// by the question and the top chunk.
	MinTokenOverlap int
}

// DefaultGrounding returns the calibrated grounding thresholds.
func DefaultGrounding() Grounding {
	return Grounding{
		MinChunkChars:   domain.DefaultMinChunkChars,
		MinTokenOverlap: domain.DefaultMinTokenOverlap,
	}
}

// Grounded reports whether top is a trustworthy basis for answering question.
func (g Grounding) Grounded(question string, top domain.Chunk) bool {
	if utf8.RuneCountInString(top.Text) < g.MinChunkChars {
		return false
	}
	return tokens.Overlap(tokens.Tokenize(question), tokens.Tokenize(top.Text)) >= g.MinTokenOverlap
}

// Request carries everything a builder needs for one question.
type Request struct {
	Question       string
	Locale         domain.Locale
	Corpus         *domain.Corpus
	Classification domain.Classification
	Global         bool
}

// ClarifyResponse asks for more context. It never panics: an internal
// failure degrades to the general playbook.
func (r *Router) ClarifyResponse(req Request) (resp *domain.HybridResponse) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error("clarify builder failed: %v", p)
			resp = GenericClarify(req.Question, req.Locale)
		}
	}()

	pb := PlaybookFor(req.Classification.Intent)
	actions := actionList(pb, req.Locale, req.Question, r.cfg.MaxSteps)
	questions := clarifyQuestions(pb, req.Locale)

	return (&domain.HybridResponse{
		Intent:               domain.IntentClarify,
		Confidence:           req.Classification.Confidence,
		MissingInfoQuestions: questions,
		RecommendedActions:   actions,
		Citations:            ruleCitations(req.Corpus, req.Question, req.Classification.Intent),
		EscalationSummary:    EscalationSummary(playbookSummary(pb, req.Locale), req.Question, actions, questions, req.Locale),
	}).Normalise()
}

// RulesOnlyResponse answers from the intent's playbook. Clarifying
// questions are only added when the question names no technical object,
// the intent is not global-eligible and the question is not flagged global.
func (r *Router) RulesOnlyResponse(req Request) *domain.HybridResponse {
	intent := req.Classification.Intent
	pb := PlaybookFor(intent)
	actions := actionList(pb, req.Locale, req.Question, r.cfg.MaxSteps)

	questions := []string{}
	if needsContext(req.Question, pb, req.Global) {
		questions = clarifyQuestions(pb, req.Locale)
	}

	return (&domain.HybridResponse{
		Intent:               intent,
		Confidence:           req.Classification.Confidence,
		MissingInfoQuestions: questions,
		RecommendedActions:   actions,
		Citations:            ruleCitations(req.Corpus, req.Question, intent),
		EscalationSummary:    EscalationSummary(playbookSummary(pb, req.Locale), req.Question, actions, questions, req.Locale),
	}).Normalise()
}

// RAGResponse grounds one generation call on the best chunks. When the
// corpus cannot ground the question it returns the clarify response and
// RouteClarify without calling the provider. Provider errors are returned.
func (r *Router) RAGResponse(ctx context.Context, req Request) (*domain.HybridResponse, domain.Route, error) {
	if req.Corpus.IsEmpty() || r.llm == nil {
		return r.ClarifyResponse(req), domain.RouteClarify, nil
	}
	chunks := retrieval.Retrieve(req.Corpus, req.Question, RAGTopK)
	if len(chunks) == 0 {
		logger.Debug("rag: no chunk matches the question")
		return r.ClarifyResponse(req), domain.RouteClarify, nil
	}
	if !r.cfg.Grounding.Grounded(req.Question, chunks[0].Chunk) {
		logger.Debug("rag: top chunk %s fails grounding", chunks[0].Chunk.ID)
		return r.ClarifyResponse(req), domain.RouteClarify, nil
	}

	prompt := BuildPrompt(req.Question, chunks, req.Locale)
	raw, err := r.llm.Generate(ctx, prompt, driven.GenerateOptions{
		Temperature: GenerationTemp,
		System:      GenerationSystem,
	})
	if err != nil {
		return nil, domain.RouteRAGLLM, fmt.Errorf("generate: %w", err)
	}

	parsed := ParseGeneration(raw, req.Locale)
	if parsed.Fallback {
		logger.Warn("rag: provider output was not JSON, using fallback payload")
	}
	actions := uniqueStrings(parsed.RecommendedActions)
	missing := uniqueStrings(parsed.MissingInfoQuestions)
	pb := PlaybookFor(req.Classification.Intent)

	return (&domain.HybridResponse{
		Intent:               req.Classification.Intent,
		Confidence:           req.Classification.Confidence,
		MissingInfoQuestions: missing,
		RecommendedActions:   actions,
		Citations:            chunkCitations(chunks, MaxRAGCitations),
		EscalationSummary:    EscalationSummary(playbookSummary(pb, req.Locale), req.Question, actions, missing, req.Locale),
	}).Normalise(), domain.RouteRAGLLM, nil
}

// KnowledgeBaseUnavailable is returned for every question while the corpus is empty.
func (r *Router) KnowledgeBaseUnavailable(question string, locale domain.Locale, intent domain.Intent) *domain.HybridResponse {
	pb := PlaybookFor(intent)
	intentQuestions := clarifyQuestions(pb, locale)
	actions := actionList(pb, locale, question, r.cfg.MaxSteps)

	notice := []string{
		"Knowledge base is not loaded. Verify KNOWLEDGE_BASE_PATH.",
		"Can you confirm the knowledge base path?",
	}
	if locale == domain.LocaleES {
		notice = []string{
			"La base de conocimiento no está cargada. Verificá la ruta configurada.",
			"¿Podés confirmar la ruta configurada de la base de conocimiento?",
		}
	}

	return (&domain.HybridResponse{
		Intent:               domain.IntentClarify,
		Confidence:           FailureConfidence,
		MissingInfoQuestions: append(notice, intentQuestions...),
		RecommendedActions:   actions,
		Citations:            []domain.Citation{},
		EscalationSummary:    EscalationSummary(playbookSummary(pb, locale), question, actions, intentQuestions, locale),
	}).Normalise()
}

// GenericClarify is the clarify response built from the general playbook
// when a builder fails.
func GenericClarify(question string, locale domain.Locale) *domain.HybridResponse {
	actions := uniqueStrings(generalPlaybook.StarterActions.Get(locale))
	questions := clarifyQuestions(generalPlaybook, locale)

	summary, step := "Technical failure generating response.", "Review logs and configuration."
	if locale == domain.LocaleES {
		summary, step = "Falla técnica al generar respuesta.", "Revisar logs y configuración."
	}

	return (&domain.HybridResponse{
		Intent:               domain.IntentClarify,
		Confidence:           FailureConfidence,
		MissingInfoQuestions: questions,
		RecommendedActions:   actions,
		Citations:            []domain.Citation{},
		EscalationSummary:    EscalationSummary(summary, question, []string{step}, nil, locale),
	}).Normalise()
}

// TechnicalFailure is the last-resort response for any unexpected error.
func TechnicalFailure(question string, locale domain.Locale) *domain.HybridResponse {
	resp := &domain.HybridResponse{
		Intent:     domain.IntentClarify,
		Confidence: FailureConfidence,
		MissingInfoQuestions: []string{
			"I could not reach the knowledge base (KB) or retrieval failed.",
			"Verify KNOWLEDGE_BASE_PATH and that .md files exist.",
		},
		RecommendedActions: []string{
			"Review the configured knowledge base path.",
			"Check the logs for loaded chunks.",
			"Restart the API with the knowledge base available.",
		},
		Citations: []domain.Citation{},
	}
	summary := "Technical failure in KB/retrieval: review backend logs and the knowledge base path."
	if locale == domain.LocaleES {
		resp.MissingInfoQuestions = []string{
			"No pude acceder a la base de conocimiento (KB) o falló el retrieval.",
			"Verificá KNOWLEDGE_BASE_PATH y que existan archivos .md.",
		}
		resp.RecommendedActions = []string{
			"Revisar la ruta configurada de la base de conocimiento.",
			"Verificar en logs que haya chunks cargados.",
			"Reiniciar la API con la KB disponible.",
		}
		summary = "Falla técnica en KB/retrieval: revisar logs del backend y path de knowledge base."
	}
	resp.EscalationSummary = EscalationSummary(summary, question, resp.RecommendedActions, nil, locale)
	return resp
}

func needsContext(question string, pb domain.Playbook, global bool) bool {
	if pb.GlobalEligible || global {
		return false
	}
	text := tokens.Normalize(question)
	for _, kw := range contextKeywords {
		if strings.Contains(text, kw) {
			return false
		}
	}
	return true
}

// ruleCitations cites the allow-listed documents of intent, preferring
// chunks that match the question and falling back to the first chunk of
// each allowed document.
func ruleCitations(corpus *domain.Corpus, question string, intent domain.Intent) []domain.Citation {
	if corpus.IsEmpty() {
		return []domain.Citation{}
	}
	allowed := make(map[string]struct{})
	files := CitationFiles(intent)
	for _, f := range files {
		allowed[f] = struct{}{}
	}

	var matched []domain.ScoredChunk
	for _, sc := range retrieval.Retrieve(corpus, question, CitationCandidates) {
		if _, ok := allowed[sc.Chunk.SourceID]; ok {
			matched = append(matched, sc)
		}
	}
	if len(matched) > 0 {
		return chunkCitations(matched, MaxRuleCitations)
	}

	out := []domain.Citation{}
	for _, f := range files {
		for _, c := range corpus.Chunks {
			if c.SourceID == f {
				out = append(out, domain.CitationFromChunk(c))
				break
			}
		}
		if len(out) >= MaxRuleCitations {
			break
		}
	}
	return out
}

func chunkCitations(chunks []domain.ScoredChunk, max int) []domain.Citation {
	out := make([]domain.Citation, 0, len(chunks))
	for i, sc := range chunks {
		if i == max {
			break
		}
		out = append(out, domain.CitationFromChunk(sc.Chunk))
	}
	return out
}
