package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format identifies a theme file encoding.
type Format string

// Supported theme file formats.
const (
	FormatAuto Format = ""
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for theme files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported theme format")

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads a theme map from disk. The result is suitable as an
// extension for Resolve.
func LoadFile(path string) (map[string]any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	raw, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}

// Parse decodes a theme map. FormatAuto treats input starting with '{' as
// JSON and anything else as YAML.
func Parse(data []byte, format Format) (map[string]any, error) {
	if format == FormatAuto {
		format = FormatYAML
		if isLikelyJSON(data) {
			format = FormatJSON
		}
	}

	var raw map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if doc == nil {
			return map[string]any{}, nil
		}
		m, ok := normalizeValue(doc).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("YAML root must be a mapping")
		}
		return m, nil
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if raw == nil {
		return map[string]any{}, nil
	}
	return normalizeMap(raw), nil
}

func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r', 0xEF, 0xBB, 0xBF:
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
