// Package generator turns candidate tokens into stylesheet rules using the
// resolved theme, the variant engine and the plugin registry.
package generator

import (
	"slices"
	"unicode/utf8"

	"github.com/yacobolo/utilcss/plugin"
	"github.com/yacobolo/utilcss/stylesheet"
	"github.com/yacobolo/utilcss/theme"
	"github.com/yacobolo/utilcss/variant"
)

// Generator maps tokens to rules. It holds no mutable state and is safe for
// concurrent use once constructed.
type Generator struct {
	theme     theme.Table
	variants  *variant.Engine
	plugins   *plugin.Registry
	utilities []utility
}

// New returns a generator. plugins may be nil.
func New(t theme.Table, variants *variant.Engine, plugins *plugin.Registry) *Generator {
	return &Generator{
		theme:     t,
		variants:  variants,
		plugins:   plugins,
		utilities: builtins(),
	}
}

// Generate returns the rule for a token. Tokens that use an unknown variant,
// name no utility or are not valid UTF-8 report false; that is the normal
// outcome for most scanned text, not an error.
//
// Built-in utilities are consulted before plugins, and plugins in
// registration order, so the first match wins.
func (g *Generator) Generate(token string) (stylesheet.Rule, bool) {
	if !utf8.ValidString(token) {
		return stylesheet.Rule{}, false
	}

	exp, ok := g.variants.Expand(token)
	if !ok {
		return stylesheet.Rule{}, false
	}

	decls, rank, layer, ok := g.resolve(exp.Core)
	if !ok {
		return stylesheet.Rule{}, false
	}

	decls = slices.Clone(decls)
	if exp.Important {
		for i := range decls {
			decls[i].Important = true
		}
	}

	selector, atRules := exp.Apply(stylesheet.ClassSelector(token))
	if layer == stylesheet.LayerBase && len(exp.Variants) > 0 {
		layer = stylesheet.LayerVariant
	}

	return stylesheet.Rule{
		Selector:     selector,
		AtRules:      atRules,
		Declarations: decls,
		Layer:        layer,
		VariantRank:  exp.Ranks(),
		UtilityRank:  rank,
		Candidate:    token,
	}, true
}

func (g *Generator) resolve(core string) ([]stylesheet.Declaration, int, stylesheet.Layer, bool) {
	for i, u := range g.utilities {
		if decls, ok := u.match(core, g.theme); ok && len(decls) > 0 {
			return decls, i, stylesheet.LayerBase, true
		}
	}

	if g.plugins != nil {
		if m, ok := g.plugins.Lookup(core, g.theme); ok {
			return m.Declarations, m.Index, stylesheet.LayerPlugin, true
		}
	}
	return nil, 0, 0, false
}
