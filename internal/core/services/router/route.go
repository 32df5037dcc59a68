package router

import "github.com/custodia-labs/launchpad-assist/internal/core/domain"

// Route thresholds. DecideRoute is the only place they are applied.
const (
	ClarifyThreshold = 0.35
	RulesThreshold   = 0.70
)

// DecideRoute picks the answering strategy for a classification.
func DecideRoute(intent domain.Intent, confidence float64) domain.Route {
	if intent == domain.IntentClarify || confidence <= ClarifyThreshold {
		return domain.RouteClarify
	}
	if intent.IsRuleBacked() && confidence >= RulesThreshold {
		return domain.RouteRulesOnly
	}
	return domain.RouteRAGLLM
}
