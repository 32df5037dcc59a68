package router

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// Markers delimiting the sources block of a prompt.
const (
	SourcesStart = "SOURCES_START"
	SourcesEnd   = "SOURCES_END"
)

// BuildPrompt asks the provider for the three JSON fields, grounded on chunks.
func BuildPrompt(question string, chunks []domain.ScoredChunk, locale domain.Locale) string {
	sources := make([]string, 0, len(chunks))
	for i, sc := range chunks {
		sources = append(sources, fmt.Sprintf("[%d] %s :: %s\n%s", i+1, sc.Chunk.SourceID, sc.Chunk.Heading, sc.Chunk.Text))
	}

	language := "Respond in English."
	if locale == domain.LocaleES {
		language = "Respond in Spanish."
	}

	return strings.Join([]string{
		"You are a troubleshooting assistant that answers using ONLY the provided sources.",
		language,
		"Return ONLY valid JSON with keys:",
		"recommended_actions (array of short steps, ordered by priority),",
		"missing_info_questions (array of short questions),",
		"escalation_summary (ticket-ready short block).",
		"Do not include markdown or extra text.",
		"Do NOT provide explanations or hypotheses.",
		"Order steps as: verification/measurement, corrective action, re-test.",
		"Prefix steps with Verificar/Acción/Validar (or Verify/Action/Validate) when clear.",
		"Avoid repeating the same information in steps and missing_info_questions.",
		"Steps must be actionable and grounded in the sources only.",
		"Escalation summary must include: symptom, suggested actions, missing info, and when to escalate.",
		"",
		"Question: " + question,
		"",
		SourcesStart,
		strings.Join(sources, "\n\n"),
		SourcesEnd,
	}, "\n")
}
