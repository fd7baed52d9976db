// Package theme holds the design-token table consulted when utilities resolve
// their values, and the resolver that merges user extensions over defaults.
package theme

import (
	"reflect"
	"sort"
	"strings"

	kmaps "github.com/knadh/koanf/maps"
	"github.com/spf13/cast"
)

// DefaultKey is the entry used when a utility is written without a value,
// e.g. "rounded" or "border".
const DefaultKey = "DEFAULT"

// Table is an immutable design-token table. Values are strings, []any (kept
// whole, never merged element-wise) or nested maps.
type Table struct {
	data map[string]any
}

// New builds a Table from raw data. The input is copied and normalized:
// nested maps become map[string]any and scalar leaves become strings.
func New(data map[string]any) Table {
	return Table{data: normalizeMap(data)}
}

// Categories returns the top-level category names in sorted order.
func (t Table) Categories() []string {
	keys := make([]string, 0, len(t.data))
	for k := range t.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether a category is present.
func (t Table) Has(category string) bool {
	_, ok := t.data[category]
	return ok
}

// Keys returns the keys of a category in sorted order. Nested groups are
// reported by their own key, not flattened.
func (t Table) Keys(category string) []string {
	m, ok := t.data[category].(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two tables hold the same tokens.
func (t Table) Equal(other Table) bool {
	if len(t.data) == 0 && len(other.data) == 0 {
		return true
	}
	return reflect.DeepEqual(t.data, other.data)
}

// Lookup resolves a utility value key inside a category.
//
// Keys are matched exactly first. A key that names a nested group resolves
// to the group's DEFAULT entry. Otherwise the key is split at each hyphen so
// that "red-500" finds colors.red.500. Absent values report false; Lookup
// never fails.
func (t Table) Lookup(category, key string) (any, bool) {
	m, ok := t.data[category].(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := lookupKey(m, key)
	if !ok {
		return nil, false
	}
	return copyValue(v), true
}

// LookupString is Lookup restricted to scalar values.
func (t Table) LookupString(category, key string) (string, bool) {
	v, ok := t.Lookup(category, key)
	if !ok {
		return "", false
	}
	s, isString := v.(string)
	return s, isString
}

// Get resolves a dotted path such as "colors.primary" or "spacing.0.5".
// Keys that contain dots themselves are matched greedily.
func (t Table) Get(path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	v, ok := getPath(t.data, strings.Split(path, "."))
	if !ok {
		return nil, false
	}
	return copyValue(v), true
}

func lookupKey(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		if group, isGroup := v.(map[string]any); isGroup {
			d, hasDefault := group[DefaultKey]
			return d, hasDefault
		}
		return v, true
	}

	for i := 0; i < len(key); i++ {
		if key[i] != '-' {
			continue
		}
		group, ok := m[key[:i]].(map[string]any)
		if !ok {
			continue
		}
		if v, ok := lookupKey(group, key[i+1:]); ok {
			return v, true
		}
	}

	return nil, false
}

func getPath(m map[string]any, parts []string) (any, bool) {
	// Longest key first so "spacing.0.5" prefers the "0.5" key
	for i := len(parts); i >= 1; i-- {
		key := strings.Join(parts[:i], ".")
		v, ok := m[key]
		if !ok {
			continue
		}
		if i == len(parts) {
			return v, true
		}
		if sub, isMap := v.(map[string]any); isMap {
			if found, ok := getPath(sub, parts[i:]); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// normalizeMap deep-copies a map converting nested maps with non-string keys
// (as produced by YAML decoders) and scalar leaves.
func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return normalizeMap(val)
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[cast.ToString(k)] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}
		return out
	case string:
		return val
	case nil:
		return ""
	default:
		s, err := cast.ToStringE(val)
		if err != nil {
			return ""
		}
		return s
	}
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return kmaps.Copy(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
