package theme

import (
	"sort"
	"strings"

	kmaps "github.com/knadh/koanf/maps"
)

// Resolve merges an extension over a base table and returns a new table.
//
// Keys present in both take the extension's value; keys only in the base are
// kept; the extension may add new categories. A top-level key may be a
// dotted path such as "colors.brand", creating the group when missing.
// Nested maps present on both sides merge recursively, while lists are
// replaced whole. Neither input is modified.
func Resolve(base Table, extension map[string]any) Table {
	merged := copyData(base.data)
	if len(extension) == 0 {
		return Table{data: merged}
	}
	kmaps.Merge(expandPaths(normalizeMap(extension)), merged)
	return Table{data: merged}
}

// expandPaths nests top-level keys written as dotted paths, so
// "colors.brand" extends the colors category. Only the first dot splits:
// value keys such as "0.5" keep their dots.
func expandPaths(extension map[string]any) map[string]any {
	keys := make([]string, 0, len(extension))
	for k := range extension {
		keys = append(keys, k)
	}
	// Plain category keys sort before their dotted paths, so paths win
	sort.Strings(keys)

	out := make(map[string]any, len(extension))
	for _, k := range keys {
		v := extension[k]
		category, rest, found := strings.Cut(k, ".")
		if found && category != "" && rest != "" {
			v = map[string]any{rest: v}
			k = category
		}
		kmaps.Merge(map[string]any{k: v}, out)
	}
	return out
}

// Override replaces whole top-level categories of the base table. A category
// set in replace discards every key the base held for it.
func Override(base Table, replace map[string]any) Table {
	out := copyData(base.data)
	for category, v := range normalizeMap(replace) {
		out[category] = v
	}
	return Table{data: out}
}

// Chain applies a sequence of extensions left to right. Later entries win.
func Chain(base Table, extensions ...map[string]any) Table {
	t := base
	for _, ext := range extensions {
		t = Resolve(t, ext)
	}
	return t
}

func copyData(data map[string]any) map[string]any {
	if data == nil {
		return map[string]any{}
	}
	return kmaps.Copy(data)
}
