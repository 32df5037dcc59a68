package router

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/normalisers/tokens"
)

// Fixed classifier confidences.
const (
	TooShortConfidence = 0.2
	NoMatchConfidence  = 0.45
	MinQuestionTokens  = 3
)

// anyOf matches when at least one pattern matches.
type anyOf []*regexp.Regexp

func (a anyOf) match(text string) bool {
	for _, re := range a {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func patterns(exprs ...string) anyOf {
	out := make(anyOf, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// rule is one row of the classification table. All groups must match.
type rule struct {
	name             string
	intent           domain.Intent
	confidence       float64
	globalConfidence float64
	requireGlobal    bool
	all              []anyOf
}

func (r rule) matches(text string, global bool) bool {
	if r.requireGlobal && !global {
		return false
	}
	for _, group := range r.all {
		if !group.match(text) {
			return false
		}
	}
	return true
}

func (r rule) score(global bool) float64 {
	if global && r.globalConfidence > 0 {
		return r.globalConfidence
	}
	return r.confidence
}

// Patterns run against tokens.Normalize output: lower-case ASCII words
// separated by single spaces, so "/UI2/FLP_ACTIVATE_SERVICES" reads
// "ui2 flp activate services".
var (
	launchpadTerms  = patterns(`launchpad`, `flp`, `fiori launchpad`)
	blankTerms      = patterns(`blanco`, `pagina en blanco`, `blank page`, `white screen`, `pantalla blanca`, `blank`)
	activationTerms = patterns(`activar`, `activate`, `activacion`, `activation`, `servicios`, `services`, `ui2`, `sicf`)
)

// rules is evaluated top to bottom; the first match wins. Specific
// platform failures come before generic role or cache mentions.
var rules = []rule{
	{
		name:          "global blank launchpad after activation",
		intent:        domain.IntentFLPBlankAfterActivation,
		confidence:    0.84,
		requireGlobal: true,
		all:           []anyOf{launchpadTerms, blankTerms, activationTerms},
	},
	{
		name:             "ui2 service activation",
		intent:           domain.IntentUI2ServicesMissing,
		confidence:       0.78,
		globalConfidence: 0.86,
		all: []anyOf{patterns(
			`ui2 flp activate services`,
			`ui2 activate flp`,
			`flp activate services`,
			`icf`,
			`activate flp`,
			`activar flp`,
		)},
	},
	{
		name:       "activate services with ui2 or flp",
		intent:     domain.IntentUI2ServicesMissing,
		confidence: 0.72,
		all: []anyOf{
			patterns(`activate services`, `activar servicios`),
			patterns(`ui2`, `flp`),
		},
	},
	{
		name:             "blank page",
		intent:           domain.IntentFLPBlankAfterActivation,
		confidence:       0.8,
		globalConfidence: 0.86,
		all: []anyOf{patterns(
			`pagina en blanco`,
			`blank page`,
			`white screen`,
			`flp en blanco`,
			`launchpad blank`,
		)},
	},
	{
		name:             "theme",
		intent:           domain.IntentThemeIssue,
		confidence:       0.74,
		globalConfidence: 0.8,
		all: []anyOf{
			patterns(`\bthemes?\b`, `\btemas?\b`, `theming`),
			patterns(
				`quartz`, `belize`, `sap fiori 3`, `fiori 3`, `shell bar`, `css`,
				`sapui5`, `ui5 theme`, `theming`, `visual`, `glitch`,
			),
		},
	},
	{
		name:             "odata 401/403",
		intent:           domain.IntentOData401403,
		confidence:       0.8,
		globalConfidence: 0.84,
		all: []anyOf{
			patterns(`odata`),
			patterns(`\b401\b`, `\b403\b`, `forbidden`, `unauthorized`, `iwfnd`, `su53`),
		},
	},
	{
		name:       "incomplete transport",
		intent:     domain.IntentTransportIncompleteFiori,
		confidence: 0.76,
		all: []anyOf{
			patterns(`transport`, `stms`),
			patterns(
				`incomplete`, `no llego`, `faltan`, `missing`, `no aparece en destino`,
				`catalog not in target`, `objects not arrived`, `role not in target`,
			),
		},
	},
	{
		name:       "apps not visible",
		intent:     domain.IntentAppsNotVisible,
		confidence: 0.82,
		all: []anyOf{patterns(
			`no veo (la|las) app`,
			`no aparecen? tiles?`,
			`no ve (los )?tiles`,
			`no ve apps`,
			`no ve aplicaciones`,
			`no le aparecen (tiles|apps)`,
			`no ve nada en launchpad`,
			`a un usuario`,
			`otros si`,
			`(cannot|can t|cant|can not|don t|do not|unable to) see (the |my |any |our )?(app|tile|fiori app)`,
			`(apps?|tiles?) (is |are )?(not|no longer) (visible|showing|shown|displayed|appearing)`,
			`(apps?|tiles?) (is |are )?missing`,
			`missing (apps?|tiles?)`,
			`launchpad.*(vacio|empty)`,
		)},
	},
	{
		name:       "role, catalog, space or page",
		intent:     domain.IntentRoleCatalogSpace,
		confidence: 0.75,
		all:        []anyOf{patterns(`catalog`, `space`, `page`, `business role`, `pfcg`)},
	},
	{
		name:       "cache or index",
		intent:     domain.IntentCacheIndexing,
		confidence: 0.7,
		all:        []anyOf{patterns(`cache`, `index`)},
	},
	{
		name:       "transport",
		intent:     domain.IntentTransport,
		confidence: 0.72,
		all:        []anyOf{patterns(`transport`)},
	},
	{
		name:       "authorization",
		intent:     domain.IntentAuthorization,
		confidence: 0.68,
		all:        []anyOf{patterns(`authoriz`, `autoriz`, `trace`)},
	},
}

// globalSignals are phrases meaning the problem affects every user.
var globalSignals = []string{
	"para todos",
	"todos los usuarios",
	"everyone",
	"all users",
	"global",
	"a todos",
	"every user",
}

// DetectGlobalScope reports whether question says the problem affects all users.
func DetectGlobalScope(question string) bool {
	text := tokens.Normalize(question)
	for _, s := range globalSignals {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// Classify maps a question to an intent and a fixed rule confidence.
func Classify(question string) domain.Classification {
	text := tokens.Normalize(question)
	if len(strings.Fields(text)) < MinQuestionTokens {
		return domain.Classification{Intent: domain.IntentClarify, Confidence: TooShortConfidence}
	}

	global := DetectGlobalScope(question)
	if r, ok := matchRule(text, global); ok {
		return domain.Classification{Intent: r.intent, Confidence: r.score(global)}
	}
	return domain.Classification{Intent: domain.IntentOther, Confidence: NoMatchConfidence}
}

// MatchedRule returns the name of the rule that classifies question, or "".
func MatchedRule(question string) string {
	text := tokens.Normalize(question)
	if r, ok := matchRule(text, DetectGlobalScope(question)); ok {
		return r.name
	}
	return ""
}

func matchRule(text string, global bool) (rule, bool) {
	for _, r := range rules {
		if r.matches(text, global) {
			return r, true
		}
	}
	return rule{}, false
}
