// Package scanner extracts candidate class tokens from arbitrary source text.
//
// The scanner has no knowledge of the host language. It over-approximates:
// every maximal run of class-name characters becomes a candidate, and
// candidates that name no utility are dropped later by the generator.
package scanner

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTokenLen caps the byte length of a candidate. Longer runs are almost
// always minified data, URLs or base64 and are dropped.
const MaxTokenLen = 256

// Set is an unordered set of candidate tokens keyed by their literal text.
type Set map[string]struct{}

// NewSet returns a set holding the given tokens.
func NewSet(tokens ...string) Set {
	s := make(Set, len(tokens))
	for _, t := range tokens {
		s.Add(t)
	}
	return s
}

// Add inserts a token. Empty tokens are ignored.
func (s Set) Add(token string) {
	if token == "" {
		return
	}
	s[token] = struct{}{}
}

// Merge adds every token of other to s.
func (s Set) Merge(other Set) {
	for t := range other {
		s[t] = struct{}{}
	}
}

// Has reports whether token is in the set.
func (s Set) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Len returns the number of tokens.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the tokens in byte order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Scan returns the candidate tokens found in text. It never fails; text
// without candidates yields an empty set.
func Scan(text string) Set {
	set := make(Set)
	ScanInto(set, text)
	return set
}

// ScanInto adds the candidates found in text to set.
func ScanInto(set Set, text string) {
	var (
		start = -1 // byte offset of the current run, -1 outside a run
		depth = 0  // open '[' count inside the current run
	)

	flush := func(end int) {
		if start >= 0 {
			raw := text[start:end]
			if tok, ok := clean(raw); ok {
				set.Add(tok)
			}
			// Quotes only survive inside brackets. Also emit the runs they
			// delimit so "styles['bg-red-500']" yields bg-red-500.
			if strings.ContainsRune(raw, '\'') {
				ScanInto(set, strings.ReplaceAll(raw, "'", " "))
			}
		}
		start, depth = -1, 0
	}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		if r == '\\' && start >= 0 {
			// Escaped character: keep both, whatever follows
			i += size
			if i < len(text) {
				_, next := utf8.DecodeRuneInString(text[i:])
				i += next
			}
			continue
		}

		switch {
		case r == '[':
			if start < 0 {
				start = i
			}
			depth++
		case r == ']' && depth > 0:
			depth--
		case depth > 0 && inBracket(r):
		case isClassRune(r):
			if start < 0 {
				start = i
			}
		default:
			flush(i)
		}

		i += size
	}
	flush(len(text))
}

// isClassRune reports whether r may appear in a candidate outside brackets.
func isClassRune(r rune) bool {
	if r < utf8.RuneSelf {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return true
		}
		return strings.ContainsRune("-_:/%.#!@&", r)
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// inBracket reports whether r may appear inside an arbitrary value. Quotes,
// parens and commas are allowed there; whitespace and the string delimiters
// of most host languages still end the run.
func inBracket(r rune) bool {
	if unicode.IsSpace(r) {
		return false
	}
	switch r {
	case '"', '`', '<', '{', '}', ';':
		return false
	}
	return true
}

// clean trims trailing sentence punctuation and applies the acceptance rules.
func clean(tok string) (string, bool) {
	tok = strings.TrimRight(tok, ".:")
	if tok == "" || len(tok) > MaxTokenLen || !utf8.ValidString(tok) {
		return "", false
	}
	if !strings.ContainsFunc(tok, unicode.IsLetter) {
		return "", false
	}
	return tok, true
}
