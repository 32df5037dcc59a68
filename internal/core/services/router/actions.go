package router

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/normalisers/tokens"
)

// Action list limits.
const (
	// MinPlaybookActions is the fewest starter actions used before falling
	// back to the general playbook.
	MinPlaybookActions = 3

	// MaxActions caps the action list when no step count was requested.
	MaxActions = 6

	// MaxClarifyQuestions caps the clarifying questions of any response.
	MaxClarifyQuestions = 2
)

var requestedStepsPattern = regexp.MustCompile(`\b(\d{1,3}) (steps?|pasos?|acciones|actions|checks)\b`)

// ExtractRequestedSteps returns the number of steps a question asks for,
// as in "give me 6 steps" or "dame 7 pasos".
func ExtractRequestedSteps(question string) (int, bool) {
	m := requestedStepsPattern.FindStringSubmatch(tokens.Normalize(question))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// PlaybookActions returns the actions of pb for question.
//
// Without a requested step count it returns the starter actions, or the
// general playbook's when pb has fewer than MinPlaybookActions. With a
// requested count it returns that many distinct actions drawn from pb's
// starter and extended actions and then the general playbook, clamped to
// maxSteps.
func PlaybookActions(pb domain.Playbook, locale domain.Locale, question string, maxSteps int) []string {
	n, requested := ExtractRequestedSteps(question)
	if !requested {
		actions := pb.StarterActions.Get(locale)
		if len(actions) < MinPlaybookActions {
			actions = generalPlaybook.StarterActions.Get(locale)
		}
		return append([]string(nil), actions...)
	}

	if maxSteps > 0 && n > maxSteps {
		n = maxSteps
	}
	pool := uniqueStrings(concat(stepPool(pb, locale), stepPool(generalPlaybook, locale)))
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

// stepPool lists the distinct starter and extended actions of pb.
func stepPool(pb domain.Playbook, locale domain.Locale) []string {
	return uniqueStrings(concat(pb.StarterActions.Get(locale), pb.ExtendedActions.Get(locale)))
}

// actionList applies deduplication and, unless a count was requested, MaxActions.
func actionList(pb domain.Playbook, locale domain.Locale, question string, maxSteps int) []string {
	actions := uniqueStrings(PlaybookActions(pb, locale, question, maxSteps))
	if _, requested := ExtractRequestedSteps(question); !requested && len(actions) > MaxActions {
		actions = actions[:MaxActions]
	}
	return actions
}

func clarifyQuestions(pb domain.Playbook, locale domain.Locale) []string {
	return limit(pb.ClarifyQuestions.Get(locale), MaxClarifyQuestions)
}

// uniqueStrings drops blanks and case-insensitive duplicates, keeping first occurrences.
func uniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func limit(values []string, n int) []string {
	if len(values) > n {
		values = values[:n]
	}
	return append([]string{}, values...)
}
