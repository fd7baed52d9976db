package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/yacobolo/utilcss"
	"github.com/yacobolo/utilcss/plugin"
)

const defaultConfigPath = ".utilcss.yaml"

var (
	k = koanf.New(".")

	// configPath is the config file that was loaded, "" when none exists.
	configPath string
)

// defaultContent is scanned when neither flags nor the config file name
// content globs.
var defaultContent = []string{"**/*.{html,templ}"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = defaultConfigPath
	}

	if err := loadConfigFromPath(path); err != nil {
		return err
	}

	// Flags have the highest precedence. Unchanged flags only fill keys
	// that no other source set.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(path string) error {
	configPath = ""
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", path, err)
		}
		configPath = path
	}

	// UTILCSS_DARK_MODE -> dark-mode, UTILCSS_MINIFY -> minify
	if err := k.Load(env.Provider("UTILCSS_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "UTILCSS_")),
			"_", "-",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// themeSection is decoded straight from the config file. Theme keys such
// as "0.5" contain the koanf delimiter, so they cannot round-trip through k.
type themeSection struct {
	Theme struct {
		Presets  []string       `yaml:"presets"`
		Override map[string]any `yaml:"override"`
		Extend   map[string]any `yaml:"extend"`
	} `yaml:"theme"`
}

// configDir is the directory config-relative paths resolve against.
func configDir() string {
	if configPath == "" {
		return "."
	}
	return filepath.Dir(configPath)
}

func loadThemeSection() (themeSection, error) {
	var section themeSection
	if configPath == "" {
		return section, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return section, fmt.Errorf("reading config file %s: %w", configPath, err)
	}
	if err := yamlv3.Unmarshal(data, &section); err != nil {
		return section, fmt.Errorf("decoding theme in %s: %w", configPath, err)
	}
	return section, nil
}

// buildThemeConfig merges file presets (relative to the config file) with
// --preset flags (relative to the working directory).
func buildThemeConfig() (utilcss.ThemeConfig, error) {
	section, err := loadThemeSection()
	if err != nil {
		return utilcss.ThemeConfig{}, err
	}

	var presets []string
	for _, p := range section.Theme.Presets {
		if !filepath.IsAbs(p) {
			p = filepath.Join(configDir(), p)
		}
		presets = append(presets, p)
	}
	presets = append(presets, k.Strings("preset")...)

	return utilcss.ThemeConfig{
		Presets:  presets,
		Override: section.Theme.Override,
		Extend:   section.Theme.Extend,
	}, nil
}

// buildPlugins converts the plugins section into registry entries, in file
// order. CSS plugin paths resolve against the config file's directory.
func buildPlugins(fsys fs.FS) ([]plugin.Entry, error) {
	if !k.Exists("plugins") {
		return nil, nil
	}

	var defs []plugin.Definition
	if err := k.Unmarshal("plugins", &defs); err != nil {
		return nil, fmt.Errorf("decoding plugins: %w", err)
	}

	entries := make([]plugin.Entry, 0, len(defs))
	for i, def := range defs {
		entry, err := def.Entry(fsys)
		if err != nil {
			return nil, &utilcss.ConfigurationError{Field: fmt.Sprintf("plugins[%d]", i), Err: err}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig(logger *slog.Logger) (utilcss.Config, error) {
	themeConfig, err := buildThemeConfig()
	if err != nil {
		return utilcss.Config{}, err
	}

	plugins, err := buildPlugins(os.DirFS(configDir()))
	if err != nil {
		return utilcss.Config{}, err
	}

	return utilcss.Config{
		DarkMode:    getStringWithDefault("dark-mode", "media"),
		Content:     getStringsWithDefault("content", defaultContent),
		Theme:       themeConfig,
		Plugins:     plugins,
		Safelist:    k.Strings("safelist"),
		Minify:      getBoolWithDefault("minify", false),
		Banner:      k.String("banner"),
		Concurrency: getIntWithDefault("concurrency", 0),
		Logger:      logger,
	}, nil
}

// newLogger builds the stderr logger from --log-level and --verbose.
func newLogger() (*slog.Logger, error) {
	level := slog.LevelWarn
	if getBoolWithDefault("verbose", false) {
		level = slog.LevelDebug
	}
	if name := k.String("log-level"); name != "" {
		if err := level.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

// getStringWithDefault returns the value at key, or the default when unset or empty.
func getStringWithDefault(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithDefault returns the list at key, or the default when unset or empty.
func getStringsWithDefault(key string, defaultVal []string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithDefault returns the value at key, or the default when unset.
func getBoolWithDefault(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getIntWithDefault returns the value at key, or the default when unset.
func getIntWithDefault(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
