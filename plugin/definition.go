package plugin

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/yacobolo/utilcss/variant"
)

// Definition is the declarative form of a plugin as written in a config
// file. Exactly the parts that are set are contributed.
type Definition struct {
	Name string `koanf:"name" yaml:"name"`
	// Utilities maps class names to property: value pairs.
	Utilities map[string]map[string]string `koanf:"utilities" yaml:"utilities"`
	// CSS is a stylesheet path whose single-class rules become utilities.
	CSS string `koanf:"css" yaml:"css"`
	// Variants maps variant names to a selector pattern containing "&" or
	// an at-rule starting with "@".
	Variants map[string]string `koanf:"variants" yaml:"variants"`
}

// Entry converts the definition. CSS paths are read from fsys.
func (d Definition) Entry(fsys fs.FS) (Entry, error) {
	if d.Name == "" {
		return Entry{}, fmt.Errorf("%w: empty name", ErrInvalidEntry)
	}
	if d.CSS != "" && len(d.Utilities) > 0 {
		return Entry{}, fmt.Errorf("%w %q: set either utilities or css, not both", ErrInvalidEntry, d.Name)
	}

	entry := Entry{Name: d.Name}

	switch {
	case len(d.Utilities) > 0:
		entry.Mapper = Static(d.Name, d.Utilities).Mapper
	case d.CSS != "":
		if fsys == nil {
			return Entry{}, fmt.Errorf("%w %q: no filesystem to read %s", ErrInvalidEntry, d.Name, d.CSS)
		}
		src, err := fs.ReadFile(fsys, strings.TrimPrefix(d.CSS, "./"))
		if err != nil {
			return Entry{}, fmt.Errorf("plugin %q: read css: %w", d.Name, err)
		}
		fromCSS, err := FromCSS(d.Name, string(src))
		if err != nil {
			return Entry{}, err
		}
		entry.Mapper = fromCSS.Mapper
	}

	names := make([]string, 0, len(d.Variants))
	for name := range d.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entry.Variants = append(entry.Variants, ParseVariant(name, d.Variants[name]))
	}

	if err := entry.Validate(); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// ParseVariant builds a variant from its config form: values starting with
// "@" are at-rules, anything else a selector pattern.
func ParseVariant(name, value string) variant.Spec {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "@") {
		return variant.Spec{Name: name, AtRule: value}
	}
	return variant.Spec{Name: name, Selector: value}
}
