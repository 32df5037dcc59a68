package domain

// Localized holds one value per supported locale.
type Localized[T any] struct {
	EN T
	ES T
}

// Get returns the value for l, defaulting to English.
func (v Localized[T]) Get(l Locale) T {
	if l == LocaleES {
		return v.ES
	}
	return v.EN
}

// Playbook is the static guidance attached to an intent.
// Playbooks are built at process start and never mutated.
type Playbook struct {
	// Summary is a one-sentence diagnosis used in the escalation summary.
	Summary Localized[string]

	// StarterActions are the ordered first checks.
	StarterActions Localized[[]string]

	// ExtendedActions continue StarterActions when more steps are requested.
	ExtendedActions Localized[[]string]

	// ClarifyQuestions are asked when context is missing.
	ClarifyQuestions Localized[[]string]

	// EscalationHint lists the evidence support needs.
	EscalationHint Localized[string]

	// GlobalEligible marks intents that commonly affect every user at once.
	GlobalEligible bool
}

// PlaybookView is a playbook rendered for one locale, as shown to users.
type PlaybookView struct {
	Intent           Intent   `json:"intent" yaml:"intent"`
	Summary          string   `json:"summary" yaml:"summary"`
	StarterActions   []string `json:"starter_actions" yaml:"starter_actions"`
	ExtendedActions  []string `json:"extended_actions,omitempty" yaml:"extended_actions,omitempty"`
	ClarifyQuestions []string `json:"clarify_questions" yaml:"clarify_questions"`
	EscalationHint   string   `json:"escalation_hint" yaml:"escalation_hint"`
	GlobalEligible   bool     `json:"global_eligible" yaml:"global_eligible"`
	CitationFiles    []string `json:"citation_files" yaml:"citation_files"`
}

// View renders the playbook in locale l.
func (p Playbook) View(intent Intent, l Locale, citationFiles []string) PlaybookView {
	return PlaybookView{
		Intent:           intent,
		Summary:          p.Summary.Get(l),
		StarterActions:   p.StarterActions.Get(l),
		ExtendedActions:  p.ExtendedActions.Get(l),
		ClarifyQuestions: p.ClarifyQuestions.Get(l),
		EscalationHint:   p.EscalationHint.Get(l),
		GlobalEligible:   p.GlobalEligible,
		CitationFiles:    citationFiles,
	}
}
