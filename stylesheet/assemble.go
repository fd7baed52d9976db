package stylesheet

import (
	"fmt"
	"slices"
	"strings"
)

// Options controls serialization.
type Options struct {
	Minify bool   // One block per line, no indentation
	Banner string // Optional comment emitted before the first rule
}

// AssemblyError reports a rule that violates the rule invariants. It
// indicates a defect in a generator or plugin, not bad user input.
type AssemblyError struct {
	Selector string
	Reason   string
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("assemble rule %q: %s", e.Selector, e.Reason)
}

// Assemble deduplicates, orders and serializes rules.
//
// Output order is fixed: base utilities, then variant-wrapped utilities, then
// plugin rules. Each layer starts a new block, separated by a blank line.
// Within a layer rules are ordered by variant rank, utility rank, selector
// and declaration text, so identical inputs always produce byte-identical
// output regardless of the order rules arrive in.
func Assemble(rules []Rule, opts Options) (string, error) {
	for _, r := range rules {
		if err := validate(r); err != nil {
			return "", err
		}
	}

	unique := Dedup(rules)
	Sort(unique)

	var b strings.Builder
	if opts.Banner != "" {
		writeBanner(&b, opts)
	}

	for i := 0; i < len(unique); {
		// Group consecutive rules of one layer sharing the same wrapper chain
		j := i + 1
		for j < len(unique) && unique[j].Layer == unique[i].Layer &&
			slices.Equal(unique[j].AtRules, unique[i].AtRules) {
			j++
		}
		if b.Len() > 0 && !opts.Minify {
			b.WriteByte('\n')
		}
		writeGroup(&b, unique[i:j], opts)
		i = j
	}

	return b.String(), nil
}

// Dedup drops rules whose wrappers, selector and declarations repeat an
// earlier rule. The first occurrence wins. The input is not modified.
func Dedup(rules []Rule) []Rule {
	seen := make(map[string]bool, len(rules))
	unique := make([]Rule, 0, len(rules))
	for _, r := range rules {
		key := r.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, r.Clone())
	}
	return unique
}

// Sort orders rules in place using the fixed output order.
func Sort(rules []Rule) {
	slices.SortStableFunc(rules, compareRules)
}

func compareRules(a, b Rule) int {
	if a.Layer != b.Layer {
		return int(a.Layer) - int(b.Layer)
	}
	if c := slices.Compare(a.VariantRank, b.VariantRank); c != 0 {
		return c
	}
	if a.UtilityRank != b.UtilityRank {
		return a.UtilityRank - b.UtilityRank
	}
	if c := slices.Compare(a.AtRules, b.AtRules); c != 0 {
		return c
	}
	if c := strings.Compare(a.Selector, b.Selector); c != 0 {
		return c
	}
	return strings.Compare(a.body(), b.body())
}

func validate(r Rule) error {
	if strings.TrimSpace(r.Selector) == "" {
		return &AssemblyError{Selector: r.Selector, Reason: "empty selector"}
	}
	if len(r.Declarations) == 0 {
		return &AssemblyError{Selector: r.Selector, Reason: "no declarations"}
	}
	for _, d := range r.Declarations {
		if d.Property == "" || strings.TrimSpace(d.Value) == "" {
			return &AssemblyError{Selector: r.Selector, Reason: fmt.Sprintf("malformed declaration %q", d.String())}
		}
	}
	for _, at := range r.AtRules {
		if !strings.HasPrefix(at, "@") {
			return &AssemblyError{Selector: r.Selector, Reason: fmt.Sprintf("malformed at-rule %q", at)}
		}
	}
	return nil
}

func writeBanner(b *strings.Builder, opts Options) {
	b.WriteString("/* ")
	b.WriteString(strings.ReplaceAll(opts.Banner, "*/", "* /"))
	b.WriteString(" */\n")
}

// writeGroup writes rules that share one at-rule chain.
func writeGroup(b *strings.Builder, group []Rule, opts Options) {
	atRules := group[0].AtRules

	if opts.Minify {
		for _, at := range atRules {
			b.WriteString(at)
			b.WriteByte('{')
		}
		for _, r := range group {
			b.WriteString(r.Selector)
			b.WriteByte('{')
			for i, d := range r.Declarations {
				if i > 0 {
					b.WriteByte(';')
				}
				b.WriteString(d.Property)
				b.WriteByte(':')
				b.WriteString(d.Value)
				if d.Important {
					b.WriteString("!important")
				}
			}
			b.WriteByte('}')
		}
		b.WriteString(strings.Repeat("}", len(atRules)))
		b.WriteByte('\n')
		return
	}

	depth := 0
	for _, at := range atRules {
		writeIndent(b, depth)
		b.WriteString(at)
		b.WriteString(" {\n")
		depth++
	}
	for _, r := range group {
		writeIndent(b, depth)
		b.WriteString(r.Selector)
		b.WriteString(" {\n")
		for _, d := range r.Declarations {
			writeIndent(b, depth+1)
			b.WriteString(d.String())
			b.WriteString(";\n")
		}
		writeIndent(b, depth)
		b.WriteString("}\n")
	}
	for depth > 0 {
		depth--
		writeIndent(b, depth)
		b.WriteString("}\n")
	}
}

func writeIndent(b *strings.Builder, depth int) {
	for range depth {
		b.WriteString("  ")
	}
}
