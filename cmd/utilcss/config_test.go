package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime/debug"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/utilcss"
	"github.com/yacobolo/utilcss/theme"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
	configPath = ""
}

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	path := filepath.Join(dir, ".utilcss.yaml")
	content := `
dark-mode: class
minify: true
concurrency: 4
banner: generated
content:
  - "src/**/*.templ"
safelist:
  - hidden
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, loadConfigFromPath(path))

	config, err := buildConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "class", config.DarkMode)
	assert.True(t, config.Minify)
	assert.Equal(t, 4, config.Concurrency)
	assert.Equal(t, "generated", config.Banner)
	assert.Equal(t, []string{"src/**/*.templ"}, config.Content)
	assert.Equal(t, []string{"hidden"}, config.Safelist)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config: should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.utilcss.yaml"))

	config, err := buildConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "media", config.DarkMode)
	assert.Equal(t, defaultContent, config.Content)
	assert.False(t, config.Minify)
	assert.Zero(t, config.Concurrency)
	assert.Empty(t, config.Plugins)
	assert.Empty(t, config.Theme.Presets)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	path := filepath.Join(dir, ".utilcss.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dark-mode: media\nminify: false\n"), 0o644))

	t.Setenv("UTILCSS_DARK_MODE", "theme-dark")
	t.Setenv("UTILCSS_MINIFY", "true")

	require.NoError(t, loadConfigFromPath(path))

	config, err := buildConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "theme-dark", config.DarkMode)
	assert.True(t, config.Minify)
}

func TestThemeSection_KeepsDottedKeys(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	path := filepath.Join(dir, ".utilcss.yaml")
	content := `
theme:
  presets:
    - presets/brand.toml
  override:
    screens:
      tablet: 800px
  extend:
    spacing:
      "0.5": 0.125rem
    colors:
      brand:
        DEFAULT: "#1da1f2"
        dark: "#0c7abf"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, loadConfigFromPath(path))

	config, err := buildConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "presets", "brand.toml")}, config.Theme.Presets)
	assert.Equal(t, map[string]any{"tablet": "800px"}, config.Theme.Override["screens"])
	assert.Equal(t, map[string]any{"0.5": "0.125rem"}, config.Theme.Extend["spacing"])
	assert.Equal(t, map[string]any{"DEFAULT": "#1da1f2", "dark": "#0c7abf"},
		config.Theme.Extend["colors"].(map[string]any)["brand"])
}

func TestPluginsSection(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "styles"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles", "legacy.css"),
		[]byte(".btn { padding: 0.5rem 1rem; border-radius: 4px }"), 0o644))

	path := filepath.Join(dir, ".utilcss.yaml")
	content := `
plugins:
  - name: scrollbars
    utilities:
      no-scrollbar:
        scrollbar-width: none
  - name: legacy
    css: ./styles/legacy.css
    variants:
      hocus: "&:hover, &:focus"
      supports-grid: "@supports (display: grid)"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, loadConfigFromPath(path))

	entries, err := buildPlugins(os.DirFS(configDir()))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "scrollbars", entries[0].Name)
	assert.Equal(t, "legacy", entries[1].Name)
	require.Len(t, entries[1].Variants, 2)
	assert.Equal(t, "hocus", entries[1].Variants[0].Name)
	assert.Equal(t, "@supports (display: grid)", entries[1].Variants[1].AtRule)

	decls, ok := entries[1].Mapper.MapUtility("btn", theme.Table{})
	require.True(t, ok)
	assert.Len(t, decls, 2)
}

func TestPluginsSection_Invalid(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	path := filepath.Join(dir, ".utilcss.yaml")
	content := `
plugins:
  - name: ok
    utilities:
      a:
        color: red
  - name: broken
    css: ./missing.css
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, loadConfigFromPath(path))

	_, err := buildConfig(nil)
	var cfgErr *utilcss.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "plugins[1]", cfgErr.Field)
	assert.Equal(t, 2, exitCode(err))
	assert.Equal(t, 1, exitCode(errors.New("other")))
}

func TestNewLogger(t *testing.T) {
	resetKoanf()
	_, err := newLogger()
	require.NoError(t, err)

	require.NoError(t, k.Set("log-level", "shouting"))
	_, err = newLogger()
	assert.Error(t, err)
}

func TestGetWithDefault(t *testing.T) {
	resetKoanf()

	// No keys set: should return default
	assert.Equal(t, "default", getStringWithDefault("missing", "default"))
	assert.Equal(t, []string{"a"}, getStringsWithDefault("missing", []string{"a"}))
	assert.True(t, getBoolWithDefault("missing", true))
	assert.Equal(t, 42, getIntWithDefault("missing", 42))

	require.NoError(t, k.Set("present", false))
	assert.False(t, getBoolWithDefault("present", true))
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	resetKoanf()
	chdir(t, t.TempDir())

	rootCmd.SetArgs([]string{"init"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(".utilcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "content:")
	assert.Contains(t, string(data), "dark-mode: media")

	// The generated file must load cleanly.
	require.NoError(t, loadConfigFromPath(".utilcss.yaml"))
	config, err := buildConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"web/**/*.{html,templ}"}, config.Content)
	assert.Equal(t, map[string]any{"brand": "#1da1f2"}, config.Theme.Extend["colors"])
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	resetKoanf()
	chdir(t, t.TempDir())

	// Create existing file
	require.NoError(t, os.WriteFile(".utilcss.yaml", []byte("existing"), 0o644))

	rootCmd.SetArgs([]string{"init"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	resetKoanf()
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(".utilcss.yaml", []byte("existing"), 0o644))

	rootCmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(".utilcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "# utilcss configuration")
}

func TestBuildCommand_WritesStylesheet(t *testing.T) {
	resetKoanf()
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("index.html", []byte(`<div class="flex dark:hidden"></div>`), 0o644))

	rootCmd.SetArgs([]string{"build",
		"--config", "none.yaml",
		"--content", "*.html",
		"--dark-mode", "class",
		"--output", "out/app.css",
		"--quiet",
	})
	require.NoError(t, rootCmd.Execute())

	css, err := os.ReadFile(filepath.Join("out", "app.css"))
	require.NoError(t, err)
	assert.Equal(t, ".flex {\n  display: flex;\n}\n\n.dark .dark\\:hidden {\n  display: none;\n}\n", string(css))

	written, err := writeStylesheet(filepath.Join("out", "app.css"), string(css))
	require.NoError(t, err)
	assert.False(t, written, "unchanged output is not rewritten")
}

func TestScanCommand(t *testing.T) {
	resetKoanf()
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("index.html", []byte(`<div class="flex dark:hidden"></div>`), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	rootCmd.SetArgs([]string{"scan", "--config", "none.yaml", "--content", "*.html"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "/div\nclass\ndark:hidden\ndiv\nflex\n", out.String())

	out.Reset()
	resetKoanf()
	rootCmd.SetArgs([]string{"scan", "--config", "none.yaml", "--content", "*.html", "--unresolved"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "/div\nclass\ndiv\n", out.String())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	info, _ := debug.ReadBuildInfo()
	assert.Equal(t, versionString(version, info)+"\n", out.String())
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		name    string
		version string
		info    *debug.BuildInfo
		want    string
	}{
		{
			name:    "no build info",
			version: "dev",
			want:    "utilcss dev",
		},
		{
			name:    "ldflags version wins",
			version: "1.2.0",
			info:    &debug.BuildInfo{GoVersion: "go1.23.4", Main: debug.Module{Version: "v0.9.0"}},
			want:    "utilcss 1.2.0 (go1.23.4)",
		},
		{
			name:    "go install module version",
			version: "dev",
			info:    &debug.BuildInfo{GoVersion: "go1.23.4", Main: debug.Module{Version: "v0.9.0"}},
			want:    "utilcss v0.9.0 (go1.23.4)",
		},
		{
			name:    "devel build keeps dev",
			version: "dev",
			info:    &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want:    "utilcss dev",
		},
		{
			name:    "vcs revision is shortened",
			version: "dev",
			info: &debug.BuildInfo{
				GoVersion: "go1.23.4",
				Main:      debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "5f936abd7ae8e1c2d3"},
					{Key: "vcs.modified", Value: "false"},
				},
			},
			want: "utilcss dev (5f936abd7ae8, go1.23.4)",
		},
		{
			name:    "modified working tree",
			version: "dev",
			info: &debug.BuildInfo{
				GoVersion: "go1.23.4",
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: "utilcss dev (abc123, modified, go1.23.4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, versionString(tt.version, tt.info))
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		_ = completionCmd.Flags().Set("no-descriptions", "false")
	})

	rootCmd.SetArgs([]string{"completion", "bash"})
	require.NoError(t, rootCmd.Execute())
	withDesc := out.String()
	assert.Contains(t, withDesc, "utilcss")

	out.Reset()
	rootCmd.SetArgs([]string{"completion", "bash", "--no-descriptions"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "utilcss")
	assert.NotEqual(t, withDesc, out.String())

	rootCmd.SetArgs([]string{"completion", "tcsh"})
	assert.Error(t, rootCmd.Execute())
}
