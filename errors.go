package utilcss

import "fmt"

// ConfigurationError reports invalid configuration detected before any
// content is scanned: a malformed dark mode, a bad plugin entry, an
// unreadable theme preset or an invalid content glob.
type ConfigurationError struct {
	Field string // "darkMode", "plugins[2]", "theme.presets[0]", "content"
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// UnreadableSourceError reports a content file that could not be read. It
// never aborts a build; the file contributes no candidates.
type UnreadableSourceError struct {
	Path string
	Err  error
}

func (e *UnreadableSourceError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *UnreadableSourceError) Unwrap() error { return e.Err }
