// Package justify checks the free-text justification attached to an
// operator decision. Near-empty strings and known boilerplate templates are
// rejected so the audit trail carries real reasoning, not filler.
package justify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/occkernel/internal/model"
)

// Rules holds the configurable justification requirements.
type Rules struct {
	MinLength        int      `yaml:"min_length"`
	MinDistinctWords int      `yaml:"min_distinct_words"`
	Templates        []string `yaml:"templates"`
}

// DefaultRules returns the built-in justification requirements.
func DefaultRules() Rules {
	return Rules{
		MinLength:        20,
		MinDistinctWords: 4,
		Templates:        DefaultTemplates,
	}
}

// DefaultTemplates is the built-in denylist of boilerplate justifications.
// Matching is against the normalized text (lowercase, collapsed whitespace,
// trailing punctuation stripped).
var DefaultTemplates = []string{
	"approved as per policy",
	"approved per policy",
	"approved per standard procedure",
	"routine approval",
	"standard override",
	"as discussed",
	"see ticket",
	"per management request",
	"business as usual",
	"n/a",
	"none",
	"test",
	"ok to proceed",
	"looks good to me",
	"lgtm",
}

// Check validates a justification against the rules. A nil return means the
// justification is acceptable.
func (r Rules) Check(justification string) error {
	normalized := Normalize(justification)

	if normalized == "" {
		return &model.JustificationRejectedError{Reason: "justification is empty"}
	}
	// Length is in runes, not bytes: non-ASCII text must not get a head start.
	if n := utf8.RuneCountInString(normalized); n < r.MinLength {
		return &model.JustificationRejectedError{
			Reason: fmt.Sprintf("justification is %d characters, minimum is %d", n, r.MinLength),
		}
	}

	for _, t := range r.Templates {
		if normalized == Normalize(t) {
			return &model.JustificationRejectedError{
				Reason: fmt.Sprintf("justification matches known template %q", t),
			}
		}
	}

	if r.MinDistinctWords > 0 && distinctWords(normalized) < r.MinDistinctWords {
		return &model.JustificationRejectedError{
			Reason: fmt.Sprintf("justification has fewer than %d distinct words", r.MinDistinctWords),
		}
	}

	return nil
}

// Normalize lowercases, collapses whitespace, and strips trailing
// punctuation for template comparison.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimRight(s, ".!,;:")
}

func distinctWords(normalized string) int {
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(normalized) {
		seen[w] = struct{}{}
	}
	return len(seen)
}
