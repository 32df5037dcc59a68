package domain

import (
	"fmt"
	"strings"
)

// Intent is the category of problem a question describes.
type Intent string

// The closed set of intents. Every intent has exactly one playbook.
const (
	IntentAppsNotVisible           Intent = "apps_not_visible"
	IntentRoleCatalogSpace         Intent = "role_catalog_space"
	IntentCacheIndexing            Intent = "cache_indexing"
	IntentTransport                Intent = "transport"
	IntentAuthorization            Intent = "authorization"
	IntentFLPBlankAfterActivation  Intent = "flp_blank_page_after_activation"
	IntentUI2ServicesMissing       Intent = "ui2_services_missing"
	IntentThemeIssue               Intent = "theme_issue_launchpad"
	IntentOData401403              Intent = "odata_401_403"
	IntentTransportIncompleteFiori Intent = "transport_incomplete_fiori"
	IntentClarify                  Intent = "clarify"
	IntentOther                    Intent = "other"
)

// AllIntents returns every intent in declaration order.
func AllIntents() []Intent {
	return []Intent{
		IntentAppsNotVisible,
		IntentRoleCatalogSpace,
		IntentCacheIndexing,
		IntentTransport,
		IntentAuthorization,
		IntentFLPBlankAfterActivation,
		IntentUI2ServicesMissing,
		IntentThemeIssue,
		IntentOData401403,
		IntentTransportIncompleteFiori,
		IntentClarify,
		IntentOther,
	}
}

// IsValid returns true if the intent is part of the closed set.
func (i Intent) IsValid() bool {
	for _, known := range AllIntents() {
		if i == known {
			return true
		}
	}
	return false
}

// IsRuleBacked returns true for intents a playbook can answer on its own.
func (i Intent) IsRuleBacked() bool {
	return i.IsValid() && i != IntentClarify && i != IntentOther
}

// String returns the wire representation.
func (i Intent) String() string {
	return string(i)
}

// ParseIntent converts a wire name into an Intent.
func ParseIntent(s string) (Intent, error) {
	intent := Intent(strings.TrimSpace(strings.ToLower(s)))
	if !intent.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownIntent, s)
	}
	return intent, nil
}

// Route is the answering strategy chosen for a question.
type Route string

// Available routes.
const (
	// RouteRulesOnly answers from the intent's playbook without generation.
	RouteRulesOnly Route = "RULES_ONLY"

	// RouteRAGLLM grounds a generation call on retrieved chunks.
	RouteRAGLLM Route = "RAG_LLM"

	// RouteClarify asks the user for more information.
	RouteClarify Route = "CLARIFY"
)

// String returns the string representation.
func (r Route) String() string {
	return string(r)
}

// Locale selects one of the two parallel string tables.
type Locale string

// Supported locales.
const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

// IsValid returns true for en and es.
func (l Locale) IsValid() bool {
	return l == LocaleEN || l == LocaleES
}

// String returns the string representation.
func (l Locale) String() string {
	return string(l)
}

// ParseLocale converts a language code into a Locale.
// Regional variants such as "es-AR" map to their base language.
func ParseLocale(s string) (Locale, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	l := Locale(code)
	if !l.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocale, s)
	}
	return l, nil
}

// LocaleOrDefault parses s and falls back to English.
func LocaleOrDefault(s string) Locale {
	l, err := ParseLocale(s)
	if err != nil {
		return LocaleEN
	}
	return l
}
