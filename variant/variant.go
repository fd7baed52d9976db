// Package variant implements the prefix modifiers (hover:, md:, dark:) that
// wrap a utility in a selector rewrite or an at-rule.
package variant

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned while building an engine.
var (
	ErrInvalidSpec      = errors.New("invalid variant")
	ErrDuplicateVariant = errors.New("duplicate variant")
)

// Spec describes one variant.
type Spec struct {
	Name string
	// Selector rewrites the rule selector; "&" stands for the selector being
	// wrapped. Empty means "&".
	Selector string
	// AtRule wraps the rule, e.g. "@media (min-width: 768px)". Optional.
	AtRule string
	// Rank orders variant-wrapped rules in the output.
	Rank int
}

// Validate checks the spec is usable.
func (s Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSpec)
	}
	if strings.ContainsAny(s.Name, ": \t\n") {
		return fmt.Errorf("%w %q: name contains a separator", ErrInvalidSpec, s.Name)
	}
	if s.Selector == "" && s.AtRule == "" {
		return fmt.Errorf("%w %q: needs a selector or an at-rule", ErrInvalidSpec, s.Name)
	}
	if s.Selector != "" && !strings.Contains(s.Selector, "&") {
		return fmt.Errorf("%w %q: selector %q has no &", ErrInvalidSpec, s.Name, s.Selector)
	}
	if s.AtRule != "" && !strings.HasPrefix(s.AtRule, "@") {
		return fmt.Errorf("%w %q: at-rule %q must start with @", ErrInvalidSpec, s.Name, s.AtRule)
	}
	return nil
}

// Rewrite applies the selector pattern to selector. Both may be selector
// lists: every branch of selector is substituted into every branch of the
// pattern, so ".a:hover, .a:focus" under ".dark &" keeps both branches
// inside the dark condition.
func (s Spec) Rewrite(selector string) string {
	if s.Selector == "" {
		return selector
	}

	patterns := SplitList(s.Selector)
	branches := SplitList(selector)
	out := make([]string, 0, len(patterns)*len(branches))
	for _, branch := range branches {
		for _, pattern := range patterns {
			out = append(out, strings.ReplaceAll(pattern, "&", branch))
		}
	}
	return strings.Join(out, ", ")
}

// SplitList splits a selector list at commas outside parentheses, brackets
// and escapes. Branches are trimmed.
func SplitList(selector string) []string {
	var branches []string
	depth := 0
	start := 0
	for i := 0; i < len(selector); i++ {
		switch selector[i] {
		case '\\':
			i++
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				branches = append(branches, strings.TrimSpace(selector[start:i]))
				start = i + 1
			}
		}
	}
	return append(branches, strings.TrimSpace(selector[start:]))
}

// Expansion is a token split into its variants and core utility.
type Expansion struct {
	Variants  []Spec // left to right as written
	Core      string // utility token without variants or important marker
	Important bool
}

// Apply wraps base in every variant, leftmost first. It returns the final
// selector and the at-rule chain, outermost first.
func (e Expansion) Apply(base string) (string, []string) {
	selector := base
	var atRules []string
	for _, v := range e.Variants {
		selector = v.Rewrite(selector)
		if v.AtRule != "" {
			atRules = append(atRules, v.AtRule)
		}
	}
	return selector, atRules
}

// Ranks returns the rank of each variant, left to right.
func (e Expansion) Ranks() []int {
	if len(e.Variants) == 0 {
		return nil
	}
	ranks := make([]int, len(e.Variants))
	for i, v := range e.Variants {
		ranks[i] = v.Rank
	}
	return ranks
}

// Split separates a token at each ':' that is not inside brackets or
// parentheses.
func Split(token string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '\\':
			i++
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				parts = append(parts, token[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, token[start:])
}
