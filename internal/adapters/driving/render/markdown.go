// Package render turns hybrid responses into markdown for terminal display.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// DefaultWidth is the wrap width used when the terminal size is unknown.
const DefaultWidth = 80

type labels struct {
	intent    string
	actions   string
	questions string
	sources   string
	summary   string
	none      string
}

var localized = map[domain.Locale]labels{
	domain.LocaleEN: {
		intent:    "Intent",
		actions:   "Recommended actions",
		questions: "Missing information",
		sources:   "Sources",
		summary:   "Escalation summary",
		none:      "No recommended actions.",
	},
	domain.LocaleES: {
		intent:    "Intención",
		actions:   "Acciones recomendadas",
		questions: "Información faltante",
		sources:   "Fuentes",
		summary:   "Resumen para escalar",
		none:      "Sin acciones recomendadas.",
	},
}

// ResponseMarkdown formats resp as a markdown document with headings in locale.
func ResponseMarkdown(resp *domain.HybridResponse, locale domain.Locale) string {
	l, ok := localized[locale]
	if !ok {
		l = localized[domain.LocaleEN]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s:** `%s` (%.2f)\n\n", l.intent, resp.Intent, resp.Confidence)

	fmt.Fprintf(&b, "## %s\n\n", l.actions)
	if len(resp.RecommendedActions) == 0 {
		fmt.Fprintf(&b, "%s\n\n", l.none)
	} else {
		for i, a := range resp.RecommendedActions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, a)
		}
		b.WriteString("\n")
	}

	if len(resp.MissingInfoQuestions) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", l.questions)
		for _, q := range resp.MissingInfoQuestions {
			fmt.Fprintf(&b, "- %s\n", q)
		}
		b.WriteString("\n")
	}

	if len(resp.Citations) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", l.sources)
		for _, c := range resp.Citations {
			fmt.Fprintf(&b, "- %s", c.File)
			if c.Heading != "" {
				fmt.Fprintf(&b, " :: %s", c.Heading)
			}
			if c.Anchor != "" {
				fmt.Fprintf(&b, " (#%s)", c.Anchor)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if resp.EscalationSummary != "" {
		fmt.Fprintf(&b, "## %s\n\n", l.summary)
		for _, line := range strings.Split(resp.EscalationSummary, "\n") {
			fmt.Fprintf(&b, "> %s\n", line)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Terminal renders markdown with terminal styling wrapped at width.
// The raw markdown is returned when styling fails.
func Terminal(md string, width int) string {
	if md == "" {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n ") + "\n"
}
