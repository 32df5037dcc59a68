package router

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// Generation is the payload a provider is asked to return.
type Generation struct {
	RecommendedActions   []string `json:"recommended_actions"`
	MissingInfoQuestions []string `json:"missing_info_questions"`
	EscalationSummary    string   `json:"escalation_summary"`
}

// ParseResult tells whether a generation came from the provider or the fallback.
type ParseResult struct {
	Generation
	// Fallback is true when the raw output could not be parsed at all.
	Fallback bool
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ParseGeneration extracts a Generation from raw provider output. It
// accepts a bare JSON object or the outermost {...} found in surrounding
// text. Fields with the wrong type are replaced individually by the
// locale fallback; unparseable output yields the whole fallback.
func ParseGeneration(raw string, locale domain.Locale) ParseResult {
	fallback := FallbackGeneration(locale)

	text := strings.TrimSpace(raw)
	if text == "" {
		return ParseResult{Generation: fallback, Fallback: true}
	}
	if !strings.HasPrefix(text, "{") {
		if m := jsonObjectPattern.FindString(raw); m != "" {
			text = m
		}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil || fields == nil {
		return ParseResult{Generation: fallback, Fallback: true}
	}

	g := Generation{
		RecommendedActions:   stringList(fields["recommended_actions"], fallback.RecommendedActions),
		MissingInfoQuestions: stringList(fields["missing_info_questions"], fallback.MissingInfoQuestions),
		EscalationSummary:    fallback.EscalationSummary,
	}
	if raw, ok := fields["escalation_summary"]; ok {
		var summary *string
		if err := json.Unmarshal(raw, &summary); err == nil && summary != nil {
			g.EscalationSummary = *summary
		}
	}
	return ParseResult{Generation: g}
}

// stringList decodes a JSON array keeping only its string elements.
// Anything other than an array yields fallback.
func stringList(raw json.RawMessage, fallback []string) []string {
	if raw == nil {
		return fallback
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return fallback
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// FallbackGeneration is used when the provider output cannot be trusted.
func FallbackGeneration(locale domain.Locale) Generation {
	if locale == domain.LocaleES {
		return Generation{
			RecommendedActions: []string{
				"Confirmar rol de negocio efectivo del usuario.",
				"Validar catálogo y mapeos de destino.",
				"Revisar caché/personalización y revalidar.",
			},
			MissingInfoQuestions: []string{
				"¿Qué rol de negocio está asignado?",
				"¿Qué app específica falta?",
			},
			EscalationSummary: EscalationSummary(
				"Faltan datos para continuar el diagnóstico.",
				"Consulta sin contexto suficiente",
				[]string{"Confirmar rol de negocio efectivo", "Validar catálogo y mapeos de destino"},
				[]string{"rol de negocio asignado", "app afectada"},
				locale,
			),
		}
	}
	return Generation{
		RecommendedActions: []string{
			"Confirm the user's effective business role.",
			"Validate the catalog has target mappings for the app.",
			"Verify space/page assignments for the role.",
			"Review cache/personalization and retest.",
		},
		MissingInfoQuestions: []string{
			"Which business role is assigned?",
			"Which specific app is missing?",
		},
		EscalationSummary: EscalationSummary(
			"More details are needed to continue.",
			"Insufficient context in request",
			[]string{"Confirm effective business role", "Validate catalog target mappings"},
			[]string{"assigned business role", "affected app"},
			locale,
		),
	}
}
