package utilcss

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/yacobolo/utilcss/internal/generator"
	"github.com/yacobolo/utilcss/internal/scanner"
	"github.com/yacobolo/utilcss/plugin"
	"github.com/yacobolo/utilcss/stylesheet"
	"github.com/yacobolo/utilcss/theme"
	"github.com/yacobolo/utilcss/variant"
)

// generateBatch is the number of candidates one generation task handles.
const generateBatch = 256

// BuildResult contains the stylesheet and build stats.
type BuildResult struct {
	CSS        string
	Stats      ScanStats
	Candidates int      // Unique candidates, safelist included
	Rules      int      // Rules emitted after deduplication
	Unresolved []string // Candidates that named no utility, sorted
	Warnings   []error  // UnreadableSourceError values, sorted by path
	Layers     []LayerCount
	Categories []CategoryCount
	Duration   time.Duration
}

// LayerCount is the number of emitted rules in one layer.
type LayerCount struct {
	Layer stylesheet.Layer
	Rules int
}

// ScanResult is the outcome of scanning content without generating rules.
type ScanResult struct {
	Candidates []string // Sorted, unique
	Stats      ScanStats
	Warnings   []error
}

// Build is the main entry point: it resolves configuration, scans content
// and returns the assembled stylesheet. Configuration errors abort before
// any file is read. Unreadable files become warnings.
func Build(ctx context.Context, config Config) (*BuildResult, error) {
	start := time.Now()
	config = config.withDefaults()

	gen, err := newGenerator(config)
	if err != nil {
		return nil, err
	}

	scanned, err := scanContent(ctx, config)
	if err != nil {
		return nil, err
	}
	scanned.tokens.Merge(scanner.NewSet(config.Safelist...))

	result, err := generate(ctx, config, gen, scanned.tokens.Sorted())
	if err != nil {
		return nil, err
	}
	result.Stats = scanned.stats
	result.Warnings = scanned.warnings
	result.Duration = time.Since(start)
	return result, nil
}

// Compile generates a stylesheet from an explicit candidate list instead of
// scanning content. The safelist is still applied.
func Compile(ctx context.Context, config Config, candidates []string) (*BuildResult, error) {
	start := time.Now()
	config = config.withDefaults()

	gen, err := newGenerator(config)
	if err != nil {
		return nil, err
	}

	tokens := scanner.NewSet(candidates...)
	tokens.Merge(scanner.NewSet(config.Safelist...))

	result, err := generate(ctx, config, gen, tokens.Sorted())
	if err != nil {
		return nil, err
	}
	result.Duration = time.Since(start)
	return result, nil
}

// Scan expands the content globs and extracts candidate tokens without
// resolving the theme or generating rules.
func Scan(ctx context.Context, config Config) (*ScanResult, error) {
	config = config.withDefaults()

	scanned, err := scanContent(ctx, config)
	if err != nil {
		return nil, err
	}
	return &ScanResult{
		Candidates: scanned.tokens.Sorted(),
		Stats:      scanned.stats,
		Warnings:   scanned.warnings,
	}, nil
}

// ResolveTheme derives the build theme: defaults, then presets, then
// overrides, then extensions.
func ResolveTheme(config ThemeConfig) (theme.Table, error) {
	presets := make([]map[string]any, 0, len(config.Presets))
	for i, preset := range config.Presets {
		data, err := theme.LoadFile(preset)
		if err != nil {
			return theme.Table{}, &ConfigurationError{Field: fmt.Sprintf("theme.presets[%d]", i), Err: err}
		}
		presets = append(presets, data)
	}

	t := theme.Chain(theme.Default(), presets...)
	if len(config.Override) > 0 {
		t = theme.Override(t, config.Override)
	}
	return theme.Resolve(t, config.Extend), nil
}

// newGenerator validates configuration and wires theme, plugins and
// variants into a rule generator.
func newGenerator(config Config) (*generator.Generator, error) {
	dark, err := variant.ParseDarkMode(config.DarkMode)
	if err != nil {
		return nil, &ConfigurationError{Field: "darkMode", Err: err}
	}

	t, err := ResolveTheme(config.Theme)
	if err != nil {
		return nil, err
	}

	registry := plugin.NewRegistry()
	for i, entry := range config.Plugins {
		if err := registry.Register(entry); err != nil {
			return nil, &ConfigurationError{Field: fmt.Sprintf("plugins[%d]", i), Err: err}
		}
	}
	registry.Seal()

	variants, err := variant.NewEngine(t, dark, registry.Variants()...)
	if err != nil {
		return nil, &ConfigurationError{Field: "plugins", Err: err}
	}

	config.Logger.Debug("configuration resolved",
		"darkMode", dark.String(),
		"themeCategories", len(t.Categories()),
		"plugins", registry.Len(),
		"variants", len(variants.Names()))

	return generator.New(t, variants, registry), nil
}

type scanOutcome struct {
	tokens   scanner.Set
	stats    ScanStats
	warnings []error
}

type fileScan struct {
	tokens scanner.Set
	err    error
}

// scanContent expands the globs and scans every file in a bounded pool.
// Per-file sets are unioned after all workers finish.
func scanContent(ctx context.Context, config Config) (scanOutcome, error) {
	files, stats, err := expand(config.Walker, config.Content)
	if err != nil {
		return scanOutcome{}, &ConfigurationError{Field: "content", Err: err}
	}
	config.Logger.Debug("content expanded",
		"files", stats.FilesScanned,
		"skipped", stats.FilesSkipped)

	p := pool.NewWithResults[fileScan]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(config.Concurrency)
	for _, file := range files {
		p.Go(func(ctx context.Context) (fileScan, error) {
			if err := ctx.Err(); err != nil {
				return fileScan{}, err
			}
			text, err := config.Loader.Read(file)
			if err != nil {
				return fileScan{err: &UnreadableSourceError{Path: file, Err: err}}, nil
			}
			return fileScan{tokens: scanner.Scan(text)}, nil
		})
	}
	scans, err := p.Wait()
	if err != nil {
		return scanOutcome{}, fmt.Errorf("scan content: %w", err)
	}

	out := scanOutcome{tokens: scanner.NewSet(), stats: stats}
	for _, s := range scans {
		if s.err != nil {
			config.Logger.Warn("skipping unreadable source", "error", s.err)
			out.warnings = append(out.warnings, s.err)
			out.stats.FilesFailed++
			continue
		}
		out.tokens.Merge(s.tokens)
	}
	slices.SortFunc(out.warnings, func(a, b error) int {
		return cmp.Compare(a.Error(), b.Error())
	})
	return out, nil
}

func expand(w Walker, globs []string) ([]string, ScanStats, error) {
	if sw, ok := w.(StatsWalker); ok {
		return sw.ExpandWithStats(globs)
	}
	files, err := w.Expand(globs)
	if err != nil {
		return nil, ScanStats{}, err
	}
	return files, ScanStats{FilesDiscovered: len(files), FilesScanned: len(files)}, nil
}

type generated struct {
	rules      []stylesheet.Rule
	unresolved []string
}

// generate maps sorted candidates to rules in a bounded pool, then
// deduplicates, orders and serializes them.
func generate(ctx context.Context, config Config, gen *generator.Generator, tokens []string) (*BuildResult, error) {
	p := pool.NewWithResults[generated]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(config.Concurrency)
	for batch := range slices.Chunk(tokens, generateBatch) {
		p.Go(func(ctx context.Context) (generated, error) {
			var out generated
			for _, tok := range batch {
				if err := ctx.Err(); err != nil {
					return generated{}, err
				}
				if rule, ok := gen.Generate(tok); ok {
					out.rules = append(out.rules, rule)
				} else {
					out.unresolved = append(out.unresolved, tok)
				}
			}
			return out, nil
		})
	}
	batches, err := p.Wait()
	if err != nil {
		return nil, fmt.Errorf("generate rules: %w", err)
	}

	var rules []stylesheet.Rule
	var unresolved []string
	for _, b := range batches {
		rules = append(rules, b.rules...)
		unresolved = append(unresolved, b.unresolved...)
	}
	slices.Sort(unresolved)

	unique := stylesheet.Dedup(rules)
	css, err := stylesheet.Assemble(unique, stylesheet.Options{
		Minify: config.Minify,
		Banner: config.Banner,
	})
	if err != nil {
		return nil, fmt.Errorf("assemble stylesheet: %w", err)
	}

	config.Logger.Debug("stylesheet assembled",
		"candidates", len(tokens),
		"rules", len(unique),
		"unresolved", len(unresolved))

	return &BuildResult{
		CSS:        css,
		Candidates: len(tokens),
		Rules:      len(unique),
		Unresolved: unresolved,
		Layers:     countLayers(unique),
		Categories: countCategories(unique),
	}, nil
}

// countLayers tallies rules per layer in output order, omitting empty layers.
func countLayers(rules []stylesheet.Rule) []LayerCount {
	counts := make(map[stylesheet.Layer]int)
	for _, r := range rules {
		counts[r.Layer]++
	}
	var result []LayerCount
	for _, l := range []stylesheet.Layer{stylesheet.LayerBase, stylesheet.LayerVariant, stylesheet.LayerPlugin} {
		if counts[l] > 0 {
			result = append(result, LayerCount{Layer: l, Rules: counts[l]})
		}
	}
	return result
}
