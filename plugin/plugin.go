// Package plugin implements the ordered registry through which external code
// contributes utilities and variants to a build.
package plugin

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/yacobolo/utilcss/stylesheet"
	"github.com/yacobolo/utilcss/theme"
	"github.com/yacobolo/utilcss/variant"
)

// Registry errors.
var (
	ErrSealed       = errors.New("plugin registry is sealed")
	ErrInvalidEntry = errors.New("invalid plugin entry")
)

// Mapper maps a core utility token (variants already stripped) to
// declarations. It reports false when the token is not one of its utilities.
// Implementations must be deterministic and safe for concurrent use.
type Mapper interface {
	MapUtility(core string, t theme.Table) ([]stylesheet.Declaration, bool)
}

// MapperFunc adapts a function to Mapper.
type MapperFunc func(core string, t theme.Table) ([]stylesheet.Declaration, bool)

// MapUtility calls f.
func (f MapperFunc) MapUtility(core string, t theme.Table) ([]stylesheet.Declaration, bool) {
	return f(core, t)
}

// Entry is one registered plugin.
type Entry struct {
	Name     string
	Mapper   Mapper         // optional
	Variants []variant.Spec // optional
}

// Validate checks the entry can be registered.
func (e Entry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidEntry)
	}
	if e.Mapper == nil && len(e.Variants) == 0 {
		return fmt.Errorf("%w %q: contributes neither utilities nor variants", ErrInvalidEntry, e.Name)
	}
	for _, v := range e.Variants {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidEntry, e.Name, err)
		}
	}
	return nil
}

// Match is the result of a successful lookup.
type Match struct {
	Plugin       string
	Index        int // registration index, used to order plugin rules
	Declarations []stylesheet.Declaration
}

// Registry holds plugins in registration order. Registration order is the
// tie-break: when two plugins map the same token, the first registered wins.
// The registry is append-only and becomes read-only after Seal.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	names   map[string]struct{}
	sealed  bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register appends an entry.
func (r *Registry) Register(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("register %q: %w", e.Name, ErrSealed)
	}
	if _, dup := r.names[e.Name]; dup {
		return fmt.Errorf("%w %q: already registered", ErrInvalidEntry, e.Name)
	}

	e.Variants = slices.Clone(e.Variants)
	r.entries = append(r.entries, e)
	r.names[e.Name] = struct{}{}
	return nil
}

// Seal makes the registry read-only. It is called once configuration load
// finishes; sealing twice is harmless.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Sealed reports whether Seal was called.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Lookup returns the declarations of the first registered plugin that maps
// core. Later plugins are not consulted.
func (r *Registry) Lookup(core string, t theme.Table) (Match, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, e := range r.entries {
		if e.Mapper == nil {
			continue
		}
		decls, ok := e.Mapper.MapUtility(core, t)
		if !ok || len(decls) == 0 {
			continue
		}
		return Match{Plugin: e.Name, Index: i, Declarations: slices.Clone(decls)}, true
	}
	return Match{}, false
}

// Variants returns every plugin variant in registration order.
func (r *Registry) Variants() []variant.Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []variant.Spec
	for _, e := range r.entries {
		out = append(out, e.Variants...)
	}
	return out
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Names returns entry names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Name
	}
	return out
}
