// Package stylesheet holds the generated rule model and the assembler that
// turns a set of rules into one deterministic stylesheet.
package stylesheet

import (
	"slices"
	"strings"
)

// Layer orders rules in the final output.
type Layer int

// Layers in output priority order.
const (
	LayerBase    Layer = iota // plain utilities
	LayerVariant              // utilities wrapped by one or more variants
	LayerPlugin               // rules contributed by plugins
)

// String returns the layer name used in reports.
func (l Layer) String() string {
	switch l {
	case LayerBase:
		return "base"
	case LayerVariant:
		return "variant"
	case LayerPlugin:
		return "plugin"
	default:
		return "unknown"
	}
}

// Declaration is a single property: value pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// String renders the declaration without the trailing semicolon.
func (d Declaration) String() string {
	if d.Important {
		return d.Property + ": " + d.Value + " !important"
	}
	return d.Property + ": " + d.Value
}

// Decl is shorthand for building a Declaration.
func Decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// Rule is a generated CSS rule. Rules are values and are never mutated after
// the generator returns them.
type Rule struct {
	Selector     string        // ".md\:flex"
	AtRules      []string      // "@media (min-width: 768px)", outermost first
	Declarations []Declaration // in emission order
	Layer        Layer

	// VariantRank orders variant-wrapped rules: the rank of each applied
	// variant, left to right.
	VariantRank []int
	// UtilityRank orders rules within a layer: built-in family index or
	// plugin registration index.
	UtilityRank int
	// Candidate is the token that produced the rule.
	Candidate string
}

// Key identifies a rule for deduplication: wrappers, selector and
// declarations. Layer and ranks do not participate.
func (r Rule) Key() string {
	var b strings.Builder
	for _, at := range r.AtRules {
		b.WriteString(at)
		b.WriteByte('\x00')
	}
	b.WriteByte('\x01')
	b.WriteString(r.Selector)
	b.WriteByte('\x01')
	b.WriteString(r.body())
	return b.String()
}

// body renders the declarations as "a: b; c: d".
func (r Rule) body() string {
	parts := make([]string, len(r.Declarations))
	for i, d := range r.Declarations {
		parts[i] = d.String()
	}
	return strings.Join(parts, "; ")
}

// Clone returns a deep copy so callers can hold the rule without sharing
// slices with the generator.
func (r Rule) Clone() Rule {
	r.AtRules = slices.Clone(r.AtRules)
	r.Declarations = slices.Clone(r.Declarations)
	r.VariantRank = slices.Clone(r.VariantRank)
	return r
}

// Properties returns the declared property names in order.
func (r Rule) Properties() []string {
	props := make([]string, len(r.Declarations))
	for i, d := range r.Declarations {
		props[i] = d.Property
	}
	return props
}
