package utilcss

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/yacobolo/utilcss/plugin"
)

// Config holds build configuration. The zero value builds the default theme
// with media-query dark mode from an empty content set.
type Config struct {
	DarkMode string   // "media" (default), "class", or a marker class name
	Content  []string // Glob patterns for source files, e.g. "web/**/*.{html,templ}"
	Theme    ThemeConfig
	Plugins  []plugin.Entry // Registration order is tie-break order
	Safelist []string       // Candidates generated whether or not they appear in content

	Minify bool   // Single-line output per block
	Banner string // Header comment, omitted when empty

	Concurrency int // Worker bound for scanning and generation (default: GOMAXPROCS)

	Walker Walker       // Content expansion (default: GlobWalker over the working directory)
	Loader Loader       // Source reading (default: OSLoader)
	Logger *slog.Logger // Debug/warn logging (default: discard)
}

// ThemeConfig describes how the build theme is derived from the defaults.
// Presets are applied first, then Override, then Extend.
type ThemeConfig struct {
	Presets  []string       // Theme files (.yaml, .json, .toml) merged in order
	Override map[string]any // Replaces whole top-level categories
	Extend   map[string]any // Merged key-wise; extension wins on conflict
}

// withDefaults fills unset collaborators without mutating the caller's value.
func (c Config) withDefaults() Config {
	if c.Concurrency <= 0 {
		c.Concurrency = runtime.GOMAXPROCS(0)
	}
	if c.Walker == nil {
		c.Walker = NewOSWalker(".")
	}
	if c.Loader == nil {
		c.Loader = OSLoader{}
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}
