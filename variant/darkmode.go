package variant

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDarkMode is returned for a dark mode setting that is neither a
// known strategy nor a usable marker class.
var ErrInvalidDarkMode = errors.New("invalid dark mode")

// Strategy selects how the dark variant is expressed.
type Strategy int

const (
	// StrategyMedia follows the operating system preference.
	StrategyMedia Strategy = iota
	// StrategyClass applies when an ancestor carries the marker class.
	StrategyClass
)

// DefaultMarker is the marker class used by the class strategy.
const DefaultMarker = "dark"

// DarkMode is the single dark mode strategy of a build.
type DarkMode struct {
	Strategy Strategy
	Marker   string // class name without the leading dot; class strategy only
}

// ParseDarkMode reads a dark mode setting: "" or "media", "class", or a
// custom marker class such as "theme-dark" (a leading "." is accepted).
func ParseDarkMode(s string) (DarkMode, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "media":
		return DarkMode{Strategy: StrategyMedia}, nil
	case "class":
		return DarkMode{Strategy: StrategyClass, Marker: DefaultMarker}, nil
	}

	marker := strings.TrimPrefix(s, ".")
	if !isIdentifier(marker) {
		return DarkMode{}, fmt.Errorf("%w: %q (want media, class or a marker class name)", ErrInvalidDarkMode, s)
	}
	return DarkMode{Strategy: StrategyClass, Marker: marker}, nil
}

// String returns the setting in the form ParseDarkMode accepts.
func (d DarkMode) String() string {
	if d.Strategy == StrategyMedia {
		return "media"
	}
	if d.Marker == "" || d.Marker == DefaultMarker {
		return "class"
	}
	return d.Marker
}

// Spec returns the dark variant for this strategy.
func (d DarkMode) Spec(rank int) Spec {
	if d.Strategy == StrategyClass {
		marker := d.Marker
		if marker == "" {
			marker = DefaultMarker
		}
		return Spec{Name: "dark", Selector: "." + marker + " &", Rank: rank}
	}
	return Spec{Name: "dark", AtRule: "@media (prefers-color-scheme: dark)", Rank: rank}
}

// isIdentifier reports whether s is a plain CSS class name that needs no
// escaping.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r == '-':
			if len(s) == 1 {
				return false
			}
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
