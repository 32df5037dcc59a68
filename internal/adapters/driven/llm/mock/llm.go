// Package mock provides a deterministic offline LLM service. It reads the
// sources block of a prompt and answers with checklist JSON built from
// keyword hints, so the full pipeline can run without credentials.
package mock

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// ModelName is reported for traces.
const ModelName = "mock"

const (
	sourcesStart = "SOURCES_START"
	sourcesEnd   = "SOURCES_END"

	maxSteps     = 5
	maxFollowUps = 3
)

var sourceHeader = regexp.MustCompile(`\n\[\d+\]\s`)

// LLMService answers every prompt locally.
type LLMService struct{}

// NewLLMService creates a mock LLM service.
func NewLLMService() *LLMService {
	return &LLMService{}
}

type hybridReply struct {
	RecommendedActions   []string `json:"recommended_actions"`
	MissingInfoQuestions []string `json:"missing_info_questions"`
	EscalationSummary    string   `json:"escalation_summary"`
}

type hints struct {
	roles  bool
	cache  bool
	client bool
	auth   bool
}

// Generate builds the reply from the prompt alone. It never fails unless
// the context is done.
func (s *LLMService) Generate(ctx context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	spanish := strings.Contains(prompt, "Respond in Spanish.")
	sources := parseSources(prompt)

	var reply hybridReply
	if len(sources) == 0 {
		reply = emptyReply(spanish)
	} else {
		h := extractHints(sources)
		steps := buildSteps(h, spanish)
		reply = hybridReply{
			RecommendedActions:   steps,
			MissingInfoQuestions: buildFollowUps(h, spanish),
			EscalationSummary:    buildEscalation(steps, spanish),
		}
	}

	out, err := json.Marshal(reply)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ModelName returns the mock model name.
func (s *LLMService) ModelName() string {
	return ModelName
}

// Ping always succeeds.
func (s *LLMService) Ping(context.Context) error {
	return nil
}

// Close releases resources.
func (s *LLMService) Close() error {
	return nil
}

// parseSources returns the body text of each [n] block between the markers.
func parseSources(prompt string) []string {
	start := strings.Index(prompt, sourcesStart)
	end := strings.Index(prompt, sourcesEnd)
	if start == -1 || end == -1 || end <= start {
		return nil
	}
	raw := strings.TrimSpace(prompt[start+len(sourcesStart) : end])
	if raw == "" {
		return nil
	}

	raw = "\n" + raw
	idx := sourceHeader.FindAllStringIndex(raw, -1)
	var blocks []string
	for i, loc := range idx {
		stop := len(raw)
		if i+1 < len(idx) {
			stop = idx[i+1][0]
		}
		block := strings.TrimSpace(raw[loc[0]:stop])
		// The first line is the "[n] source :: heading" header.
		if nl := strings.IndexByte(block, '\n'); nl >= 0 {
			blocks = append(blocks, strings.Join(strings.Fields(block[nl+1:]), " "))
		} else {
			blocks = append(blocks, "")
		}
	}
	return blocks
}

func extractHints(sources []string) hints {
	text := strings.ToLower(strings.Join(sources, " "))
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	}
	return hints{
		roles:  has("role", "catalog", "space"),
		cache:  has("cache", "index"),
		client: has("client", "alias"),
		auth:   has("authorization", "trace"),
	}
}

func buildSteps(h hints, spanish bool) []string {
	var steps []string
	if spanish {
		if h.roles {
			steps = append(steps,
				"Verifica que el usuario tenga el rol de negocio correcto y el catálogo requerido.",
				"Confirma que la asignación de espacio/página en Launchpad esté activa y en el mismo rol de negocio.")
		}
		if h.cache {
			steps = append(steps, "Revisa caché e indexación de contenido en Launchpad; prueba con una sesión nueva.")
		}
		if h.auth {
			steps = append(steps, "Ejecuta una traza de autorizaciones (STAUTHTRACE) durante la prueba.")
		}
		steps = append(steps, "Si aplica, restablece la personalización de la interfaz de usuario y vuelve a validar.")
		if h.client {
			steps = append(steps, "Confirma cliente, alias de sistema e ID de usuario usados en la prueba.")
		}
	} else {
		if h.roles {
			steps = append(steps,
				"Verify the user has the correct business role and required catalog.",
				"Confirm the Launchpad space/page assignment is active and in the same role.")
		}
		if h.cache {
			steps = append(steps, "Check cache and content indexing; retest with a fresh session.")
		}
		if h.auth {
			steps = append(steps, "Run an authorization trace (STAUTHTRACE) while reproducing.")
		}
		steps = append(steps, "If applicable, reset the user's UI personalization and validate again.")
		if h.client {
			steps = append(steps, "Confirm client, system alias, and user ID used for testing.")
		}
	}
	if len(steps) > maxSteps {
		steps = steps[:maxSteps]
	}
	return steps
}

func buildFollowUps(h hints, spanish bool) []string {
	var questions []string
	if h.client {
		questions = append(questions, pick(spanish,
			"Which client and system alias are you using?",
			"¿Qué cliente y alias de sistema estás usando?"))
	}
	if h.roles {
		questions = append(questions, pick(spanish,
			"What business role or PFCG role is assigned to the user?",
			"¿Qué rol de negocio o PFCG está asignado al usuario?"))
	}
	questions = append(questions, pick(spanish,
		"Which exact app tile or target mapping is missing?",
		"¿Qué aplicación o mapeo de destino específico falta?"))
	if len(questions) > maxFollowUps {
		questions = questions[:maxFollowUps]
	}
	return questions
}

func buildEscalation(steps []string, spanish bool) string {
	top := steps
	if len(top) > 3 {
		top = top[:3]
	}
	actions := strings.Join(top, "; ")
	if spanish {
		if actions == "" {
			actions = "No aplica"
		}
		return strings.Join([]string{
			"Texto para ticket:",
			"- Síntoma: problema de Launchpad",
			"- Acciones sugeridas: " + actions,
			"- Información faltante: No aplica",
			"- Escalar si: el problema persiste tras validar los pasos",
		}, "\n")
	}
	if actions == "" {
		actions = "Not applicable"
	}
	return strings.Join([]string{
		"Ticket text:",
		"- Symptom: Launchpad issue",
		"- Suggested actions: " + actions,
		"- Missing info: Not applicable",
		"- Escalate if: issue persists after validations",
	}, "\n")
}

func emptyReply(spanish bool) hybridReply {
	if spanish {
		return hybridReply{
			RecommendedActions:   []string{},
			MissingInfoQuestions: []string{"¿Qué aplicación específica falta?", "¿Qué rol está asignado?"},
			EscalationSummary: strings.Join([]string{
				"Para ticket:",
				"- Síntoma: falta información para diagnosticar",
				"- Acciones sugeridas: No aplica",
				"- Información faltante: rol/cliente",
				"- Próximos pasos: pedir más contexto",
			}, "\n"),
		}
	}
	return hybridReply{
		RecommendedActions:   []string{},
		MissingInfoQuestions: []string{"Which specific app or tile is missing?", "Which role is assigned?"},
		EscalationSummary: strings.Join([]string{
			"For ticket:",
			"- Symptom: insufficient information to diagnose",
			"- Suggested actions: Not applicable",
			"- Missing info: role/client",
			"- Next steps: ask for more context",
		}, "\n"),
	}
}

func pick(spanish bool, en, es string) string {
	if spanish {
		return es
	}
	return en
}
