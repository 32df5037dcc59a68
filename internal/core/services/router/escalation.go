package router

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// Escalation summary limits.
const (
	maxEscalationActions = 5
	maxEscalationMissing = 2
)

type escalationLabels struct {
	summary, symptom, actions, noActions, missing, none, closing string
}

var escalationCopy = domain.Localized[escalationLabels]{
	EN: escalationLabels{
		summary:   "Summary:",
		symptom:   "Symptom:",
		actions:   "Suggested actions:",
		noActions: "1) No suggested actions.",
		missing:   "Missing info:",
		none:      "None",
		closing:   "Escalate with: screenshots, logs, and check results",
	},
	ES: escalationLabels{
		summary:   "Resumen:",
		symptom:   "Síntoma:",
		actions:   "Acciones sugeridas:",
		noActions: "1) Sin acciones sugeridas.",
		missing:   "Datos faltantes:",
		none:      "Ninguno",
		closing:   "Escalar con: capturas, logs y resultado de los checks",
	},
}

// EscalationSummary renders the ticket block attached to every response.
// UI ticket export depends on this exact layout.
func EscalationSummary(summary, question string, actions, missing []string, locale domain.Locale) string {
	l := escalationCopy.Get(locale)

	lines := []string{
		l.summary + " " + summary,
		l.symptom + " " + question,
		l.actions,
	}
	if len(actions) == 0 {
		lines = append(lines, l.noActions)
	}
	for i, a := range actions {
		if i == maxEscalationActions {
			break
		}
		lines = append(lines, fmt.Sprintf("%d) %s", i+1, a))
	}

	missingText := l.none
	if len(missing) > 0 {
		missingText = strings.Join(limit(missing, maxEscalationMissing), "; ")
	}
	lines = append(lines, l.missing+" "+missingText, l.closing)
	return strings.Join(lines, "\n")
}

func playbookSummary(pb domain.Playbook, locale domain.Locale) string {
	if s := strings.TrimSpace(pb.Summary.Get(locale)); s != "" {
		return s
	}
	if locale == domain.LocaleES {
		return "Necesitamos verificaciones básicas."
	}
	return "Basic checks are needed."
}
