package variant

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yacobolo/utilcss/theme"
)

// Rank bands. Variants within a band keep their definition order.
const (
	rankPseudoClass   = 100
	rankPseudoElement = 200
	rankRelational    = 300
	rankArbitrary     = 400
	rankMedia         = 500
	rankDark          = 600
	rankScreen        = 700
	rankPlugin        = 1000
)

// Engine resolves variant prefixes. It is immutable after NewEngine and safe
// for concurrent use.
type Engine struct {
	specs map[string]Spec
	names []string // definition order
}

// NewEngine builds an engine from the built-in variants, the responsive
// variants of the theme's screens, the dark mode strategy and any extra
// variants (typically from plugins), in that order.
func NewEngine(t theme.Table, dark DarkMode, extra ...Spec) (*Engine, error) {
	e := &Engine{specs: make(map[string]Spec)}

	for i, s := range pseudoClasses {
		e.add(Spec{Name: s.name, Selector: s.selector, Rank: rankPseudoClass + i})
	}
	for i, s := range pseudoElements {
		e.add(Spec{Name: s.name, Selector: s.selector, Rank: rankPseudoElement + i})
	}
	for i, s := range relational {
		e.add(Spec{Name: s.name, Selector: s.selector, Rank: rankRelational + i})
	}
	for i, s := range mediaVariants {
		e.add(Spec{Name: s.name, AtRule: s.atRule, Rank: rankMedia + i})
	}
	e.add(dark.Spec(rankDark))
	for i, s := range screenSpecs(t) {
		s.Rank = rankScreen + i
		e.add(s)
	}

	for i, s := range extra {
		if s.Rank == 0 {
			s.Rank = rankPlugin + i
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, exists := e.specs[s.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariant, s.Name)
		}
		e.add(s)
	}

	return e, nil
}

// add defines a variant; a later definition of the same name replaces the
// earlier one.
func (e *Engine) add(s Spec) {
	if _, exists := e.specs[s.Name]; !exists {
		e.names = append(e.names, s.Name)
	}
	e.specs[s.Name] = s
}

// Lookup returns a named variant.
func (e *Engine) Lookup(name string) (Spec, bool) {
	s, ok := e.specs[name]
	return s, ok
}

// Names returns the variant names in definition order.
func (e *Engine) Names() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

// Expand splits a token into its variants and core utility. Variant prefixes
// are stripped left to right. A token with an unknown variant, an empty
// segment or no core reports false.
func (e *Engine) Expand(token string) (Expansion, bool) {
	parts := Split(token)
	core := parts[len(parts)-1]

	var exp Expansion
	for _, name := range parts[:len(parts)-1] {
		spec, ok := e.resolve(name)
		if !ok {
			return Expansion{}, false
		}
		exp.Variants = append(exp.Variants, spec)
	}

	if strings.HasPrefix(core, "!") {
		exp.Important = true
		core = core[1:]
	}
	if core == "" {
		return Expansion{}, false
	}
	exp.Core = core
	return exp, true
}

func (e *Engine) resolve(name string) (Spec, bool) {
	if name == "" {
		return Spec{}, false
	}
	if s, ok := e.specs[name]; ok {
		return s, true
	}
	return arbitrary(name)
}

// arbitrary parses "[&:nth-child(3)]" or "[@supports(display:grid)]".
// Underscores stand for spaces.
func arbitrary(name string) (Spec, bool) {
	if len(name) < 3 || name[0] != '[' || name[len(name)-1] != ']' {
		return Spec{}, false
	}
	body := strings.ReplaceAll(name[1:len(name)-1], "_", " ")
	if strings.ContainsAny(body, "{};") {
		return Spec{}, false
	}

	spec := Spec{Name: name, Rank: rankArbitrary}
	switch {
	case strings.HasPrefix(body, "@"):
		spec.AtRule = body
	case strings.Contains(body, "&"):
		spec.Selector = body
	default:
		return Spec{}, false
	}
	return spec, true
}

// screenSpecs turns the screens category into min-width variants ordered by
// width. Values that are not plain lengths sort last by name.
func screenSpecs(t theme.Table) []Spec {
	type screen struct {
		name  string
		value string
		width float64
		ok    bool
	}

	var screens []screen
	for _, name := range t.Keys("screens") {
		v, ok := t.LookupString("screens", name)
		if !ok || v == "" {
			continue
		}
		w, wok := lengthInPx(v)
		screens = append(screens, screen{name: name, value: v, width: w, ok: wok})
	}

	sort.SliceStable(screens, func(i, j int) bool {
		a, b := screens[i], screens[j]
		if a.ok != b.ok {
			return a.ok
		}
		if a.width != b.width {
			return a.width < b.width
		}
		return a.name < b.name
	})

	specs := make([]Spec, 0, len(screens))
	for _, s := range screens {
		specs = append(specs, Spec{Name: s.name, AtRule: "@media (min-width: " + s.value + ")"})
	}
	return specs
}

func lengthInPx(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	scale := 1.0
	switch {
	case strings.HasSuffix(v, "rem"):
		v, scale = strings.TrimSuffix(v, "rem"), 16
	case strings.HasSuffix(v, "em"):
		v, scale = strings.TrimSuffix(v, "em"), 16
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n * scale, true
}
