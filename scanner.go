package utilcss

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Walker expands content globs into an ordered list of file paths.
type Walker interface {
	Expand(globs []string) ([]string, error)
}

// Loader reads a content file as plain text.
type Loader interface {
	Read(path string) (string, error)
}

// StatsWalker is a Walker that also reports how many files it skipped.
type StatsWalker interface {
	Walker
	ExpandWithStats(globs []string) ([]string, ScanStats, error)
}

// ScanStats tracks file discovery statistics.
type ScanStats struct {
	FilesDiscovered int // Files matched by the glob patterns
	FilesScanned    int // Files handed to the scanner
	FilesSkipped    int // Files dropped by the ignore rules
	FilesFailed     int // Files the loader could not read
}

// GlobWalker expands doublestar patterns ("**", brace sets) against a file
// system. Directories never match and ignored paths are skipped.
type GlobWalker struct {
	FS     fs.FS             // Relative patterns are matched here
	Root   string            // OS directory backing FS; enables absolute patterns when set
	Ignore *ignore.GitIgnore // Optional; nil skips nothing
}

// NewOSWalker returns a walker rooted at dir that honours dir/.gitignore
// when one exists.
func NewOSWalker(dir string) *GlobWalker {
	w := &GlobWalker{FS: os.DirFS(dir), Root: dir}
	if gi, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore")); err == nil {
		w.Ignore = gi
	}
	return w
}

// NewFSWalker returns a walker over fsys that honours a root .gitignore file
// when one exists.
func NewFSWalker(fsys fs.FS) *GlobWalker {
	w := &GlobWalker{FS: fsys}
	if data, err := fs.ReadFile(fsys, ".gitignore"); err == nil {
		w.Ignore = ignore.CompileIgnoreLines(strings.Split(string(data), "\n")...)
	}
	return w
}

// Expand implements Walker.
func (w *GlobWalker) Expand(globs []string) ([]string, error) {
	files, _, err := w.ExpandWithStats(globs)
	return files, err
}

// ExpandWithStats expands the patterns and reports discovery statistics.
// Output is sorted and free of duplicates.
func (w *GlobWalker) ExpandWithStats(globs []string) ([]string, ScanStats, error) {
	var stats ScanStats
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range globs {
		matches, err := w.glob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if w.shouldSkip(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	slices.Sort(files)
	return files, stats, nil
}

func (w *GlobWalker) glob(pattern string) ([]string, error) {
	if filepath.IsAbs(pattern) {
		if w.Root == "" {
			return nil, errors.New("absolute pattern on a virtual file system")
		}
		return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	}

	pattern = path.Clean(strings.TrimPrefix(filepath.ToSlash(pattern), "./"))
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	if w.FS == nil {
		return nil, errors.New("walker has no file system")
	}
	return doublestar.Glob(w.FS, pattern, doublestar.WithFilesOnly())
}

// shouldSkip applies the ignore rules. Absolute paths are outside the
// project and are never ignored.
func (w *GlobWalker) shouldSkip(p string) bool {
	if w.Ignore == nil || filepath.IsAbs(p) {
		return false
	}
	return w.Ignore.MatchesPath(p)
}

// FSLoader reads files from an fs.FS.
type FSLoader struct {
	FS fs.FS
}

// Read implements Loader.
func (l FSLoader) Read(p string) (string, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// OSLoader reads files from the operating system. Relative paths resolve
// against Root, or the working directory when Root is empty.
type OSLoader struct {
	Root string
}

// Read implements Loader.
func (l OSLoader) Read(p string) (string, error) {
	if !filepath.IsAbs(p) && l.Root != "" {
		p = filepath.Join(l.Root, filepath.FromSlash(p))
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
