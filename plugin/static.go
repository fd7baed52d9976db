package plugin

import (
	"sort"

	"github.com/yacobolo/utilcss/stylesheet"
	"github.com/yacobolo/utilcss/theme"
	"github.com/yacobolo/utilcss/variant"
)

type staticMapper map[string][]stylesheet.Declaration

func (m staticMapper) MapUtility(core string, _ theme.Table) ([]stylesheet.Declaration, bool) {
	decls, ok := m[core]
	return decls, ok
}

// Static returns an entry mapping fixed class names to fixed declarations.
// Declarations are emitted sorted by property name.
func Static(name string, utilities map[string]map[string]string) Entry {
	m := make(staticMapper, len(utilities))
	for class, props := range utilities {
		keys := make([]string, 0, len(props))
		for p := range props {
			keys = append(keys, p)
		}
		sort.Strings(keys)

		decls := make([]stylesheet.Declaration, 0, len(keys))
		for _, p := range keys {
			decls = append(decls, stylesheet.Decl(p, props[p]))
		}
		m[class] = decls
	}
	return Entry{Name: name, Mapper: m}
}

// Func returns an entry backed by a mapping function.
func Func(name string, fn func(core string, t theme.Table) ([]stylesheet.Declaration, bool)) Entry {
	return Entry{Name: name, Mapper: MapperFunc(fn)}
}

// Variants returns an entry that contributes variants only.
func Variants(name string, specs ...variant.Spec) Entry {
	return Entry{Name: name, Variants: specs}
}
