// Package tokens provides the text normalisation shared by indexing and querying.
//
// Every function is pure and total: empty input yields empty output and
// nothing here returns an error.
package tokens

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinTokenLength is the shortest token kept by Tokenize.
const MinTokenLength = 2

// fold lower-cases s and strips combining marks after canonical decomposition.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// words splits folded text on every run of characters outside [a-z0-9].
func words(s string) []string {
	return strings.FieldsFunc(fold(s), func(r rune) bool { return !isWordRune(r) })
}

// Tokenize returns the retrieval tokens of text: folded, split on
// non-alphanumeric runs, dropping tokens shorter than MinTokenLength.
func Tokenize(text string) []string {
	ws := words(text)
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		if len(w) >= MinTokenLength {
			out = append(out, w)
		}
	}
	return out
}

// Normalize returns the folded text with punctuation replaced by single
// spaces. Unlike Tokenize it keeps one-character words, which the intent
// rules rely on ("a un usuario").
func Normalize(text string) string {
	return strings.Join(words(text), " ")
}

// Slugify converts a heading into a kebab-case anchor.
func Slugify(text string) string {
	return strings.Join(words(text), "-")
}

// Overlap counts the distinct tokens present in both a and b.
func Overlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, tok := range a {
		set[tok] = struct{}{}
	}
	count := 0
	seen := make(map[string]struct{}, len(b))
	for _, tok := range b {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if _, ok := set[tok]; ok {
			count++
		}
	}
	return count
}
