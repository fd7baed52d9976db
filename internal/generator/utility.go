package generator

import (
	"slices"
	"strings"

	"github.com/yacobolo/utilcss/stylesheet"
	"github.com/yacobolo/utilcss/theme"
)

// utility is one built-in utility family. Families are tried in order and
// their position is the rule's utility rank.
type utility interface {
	match(core string, t theme.Table) ([]stylesheet.Declaration, bool)
}

// static maps exact class names to fixed declarations.
type static map[string][]stylesheet.Declaration

func (s static) match(core string, _ theme.Table) ([]stylesheet.Declaration, bool) {
	decls, ok := s[core]
	return decls, ok
}

// declFunc builds declarations from a resolved value. extra carries the
// remaining entries of a list-valued theme token (a font size's line height,
// the fallbacks of a font stack).
type declFunc func(value string, extra []string) []stylesheet.Declaration

// props sets every listed property to the value.
func props(names ...string) declFunc {
	return func(value string, _ []string) []stylesheet.Declaration {
		decls := make([]stylesheet.Declaration, len(names))
		for i, n := range names {
			decls[i] = stylesheet.Decl(n, value)
		}
		return decls
	}
}

// family is a functional utility: prefix-value, e.g. "p-4" or "bg-red-500".
type family struct {
	prefix   string
	category string            // theme category; "" when values are not themed
	keywords map[string]string // fixed values checked before the theme
	accepts  []valueType       // types accepted for arbitrary values; nil accepts all

	negative  bool // "-m-4"
	fractions bool // "w-1/2"
	color     bool // "/50" opacity modifiers

	// integer formats bare integer values ("order-3"); nil disables them.
	integer func(n string) string

	decls declFunc
}

func (f *family) match(core string, t theme.Table) ([]stylesheet.Declaration, bool) {
	body := core
	neg := false
	if f.negative && strings.HasPrefix(core, "-") {
		body, neg = core[1:], true
	}

	var rest string
	switch {
	case body == f.prefix:
		if neg {
			return nil, false
		}
		rest = theme.DefaultKey
	case strings.HasPrefix(body, f.prefix+"-"):
		rest = body[len(f.prefix)+1:]
	default:
		return nil, false
	}
	if rest == "" {
		return nil, false
	}

	value, extra, ok := f.resolve(rest, t)
	if !ok {
		return nil, false
	}
	if neg {
		if value, ok = negate(value); !ok {
			return nil, false
		}
	}
	return f.decls(value, extra), true
}

func (f *family) resolve(rest string, t theme.Table) (string, []string, bool) {
	if rest == theme.DefaultKey {
		if f.category == "" {
			return "", nil, false
		}
		return themeValue(t, f.category, rest)
	}

	if v, ok := f.keywords[rest]; ok {
		return v, nil, true
	}

	if strings.HasPrefix(rest, "[") {
		a, ok := parseArbitrary(rest)
		if ok && f.accept(a.typ) {
			return a.value, nil, true
		}
		if !f.color {
			return "", nil, false
		}
		// fall through: "[#123]/50"
	} else if f.category != "" {
		if v, extra, ok := themeValue(t, f.category, rest); ok {
			return v, extra, true
		}
	}

	if f.fractions {
		if v, ok := fraction(rest); ok {
			return v, nil, true
		}
	}
	if f.integer != nil && isInteger(rest) {
		return f.integer(rest), nil, true
	}

	if f.color {
		if i := strings.LastIndex(rest, "/"); i > 0 && i < len(rest)-1 {
			return f.withAlpha(rest[:i], rest[i+1:], t)
		}
	}
	return "", nil, false
}

// withAlpha resolves "red-500/50" style color values.
func (f *family) withAlpha(base, alpha string, t theme.Table) (string, []string, bool) {
	var color string
	if v, ok := f.keywords[base]; ok {
		color = v
	} else if strings.HasPrefix(base, "[") {
		a, ok := parseArbitrary(base)
		if !ok || !f.accept(a.typ) {
			return "", nil, false
		}
		color = a.value
	} else {
		v, _, ok := themeValue(t, f.category, base)
		if !ok {
			return "", nil, false
		}
		color = v
	}

	a, ok := parseAlpha(alpha, func(key string) (string, bool) {
		return t.LookupString("opacity", key)
	})
	if !ok {
		return "", nil, false
	}
	return withOpacity(color, a), nil, true
}

func (f *family) accept(typ valueType) bool {
	return f.accepts == nil || slices.Contains(f.accepts, typ)
}

// themeValue looks a key up and flattens list values into value plus extra.
func themeValue(t theme.Table, category, key string) (string, []string, bool) {
	v, ok := t.Lookup(category, key)
	if !ok {
		return "", nil, false
	}
	switch val := v.(type) {
	case string:
		return val, nil, val != ""
	case []any:
		var parts []string
		for _, item := range val {
			if s, isString := item.(string); isString && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", nil, false
		}
		return parts[0], parts[1:], true
	default:
		return "", nil, false
	}
}

// arbitraryProperty handles "[mask-type:luminance]".
type arbitraryProperty struct{}

func (arbitraryProperty) match(core string, _ theme.Table) ([]stylesheet.Declaration, bool) {
	if len(core) < 5 || core[0] != '[' || core[len(core)-1] != ']' {
		return nil, false
	}
	prop, raw, ok := strings.Cut(core[1:len(core)-1], ":")
	if !ok || !validProperty(prop) {
		return nil, false
	}
	value := strings.TrimSpace(decodeUnderscores(raw))
	if !validValue(value) {
		return nil, false
	}
	return []stylesheet.Declaration{stylesheet.Decl(prop, value)}, true
}

func validProperty(p string) bool {
	name := strings.TrimLeft(p, "-")
	if name == "" || len(p)-len(name) > 2 {
		return false
	}
	if c := name[0]; !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-') {
			return false
		}
	}
	return true
}
