package generator

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// valueType is the inferred CSS type of an arbitrary value.
type valueType int

const (
	typeOther valueType = iota
	typeLength
	typeNumber
	typeColor
	typeFamily
	typeURL
	typeVar
)

// hints lets an arbitrary value force its type: "text-[length:var(--size)]".
var hints = map[string]valueType{
	"length":     typeLength,
	"percentage": typeLength,
	"number":     typeNumber,
	"color":      typeColor,
	"family":     typeFamily,
	"url":        typeURL,
	"any":        typeOther,
}

// arbitrary is a decoded bracket value.
type arbitrary struct {
	value string
	typ   valueType
	hint  bool // typ came from an explicit hint
}

// parseArbitrary decodes "[...]" into a CSS value. Underscores become
// spaces (escape with "\_"), and the value must lex as CSS without braces,
// semicolons or unbalanced brackets.
func parseArbitrary(s string) (arbitrary, bool) {
	if len(s) < 3 || s[0] != '[' || s[len(s)-1] != ']' {
		return arbitrary{}, false
	}
	raw := decodeUnderscores(s[1 : len(s)-1])

	var a arbitrary
	if name, rest, found := strings.Cut(raw, ":"); found {
		if typ, ok := hints[name]; ok {
			a.typ, a.hint = typ, true
			raw = rest
		}
	}

	raw = strings.TrimSpace(raw)
	if !validValue(raw) {
		return arbitrary{}, false
	}
	a.value = raw
	if !a.hint {
		a.typ = inferType(raw)
	}
	return a, true
}

func decodeUnderscores(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '_':
			b.WriteByte('_')
			i++
		case s[i] == '_':
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// validValue reports whether v is safe to emit as a declaration value.
func validValue(v string) bool {
	if v == "" || strings.ContainsAny(v, ";{}") {
		return false
	}

	var stack []byte
	l := css.NewLexer(parse.NewInputString(v))
	for {
		tt, text := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return false
			}
			return len(stack) == 0
		case css.BadStringToken, css.BadURLToken:
			return false
		case css.FunctionToken, css.LeftParenthesisToken:
			stack = append(stack, ')')
		case css.LeftBracketToken:
			stack = append(stack, ']')
		case css.RightParenthesisToken, css.RightBracketToken:
			if len(stack) == 0 || stack[len(stack)-1] != text[0] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// inferType classifies a value by its first significant token.
func inferType(v string) valueType {
	l := css.NewLexer(parse.NewInputString(v))
	tt, text := l.Next()
	for tt == css.WhitespaceToken {
		tt, text = l.Next()
	}

	switch tt {
	case css.DimensionToken, css.PercentageToken:
		return typeLength
	case css.NumberToken:
		if n, err := strconv.ParseFloat(string(text), 64); err == nil && n == 0 {
			return typeLength
		}
		return typeNumber
	case css.StringToken:
		return typeFamily
	case css.URLToken:
		return typeURL
	case css.HashToken:
		if isColor(v) {
			return typeColor
		}
	case css.FunctionToken:
		switch strings.ToLower(string(text)) {
		case "calc(", "clamp(", "min(", "max(":
			return typeLength
		case "var(":
			return typeVar
		case "url(":
			return typeURL
		}
		if isColor(v) {
			return typeColor
		}
	case css.IdentToken:
		if isColor(v) {
			return typeColor
		}
		if strings.Contains(v, ",") {
			return typeFamily
		}
	}
	return typeOther
}

func isColor(v string) bool {
	if v == "currentColor" || v == "currentcolor" {
		return true
	}
	_, err := csscolorparser.Parse(v)
	return err == nil
}

// withOpacity applies an alpha factor in [0,1] to a color value. Colors the
// parser understands become rgb() with an alpha channel; anything else
// (custom properties, keywords) falls back to color-mix.
func withOpacity(color string, alpha float64) string {
	if !isKeywordColor(color) && !strings.HasPrefix(color, "var(") {
		if c, err := csscolorparser.Parse(color); err == nil {
			r, g, b, _ := c.RGBA255()
			return "rgb(" + strconv.Itoa(int(r)) + " " + strconv.Itoa(int(g)) + " " + strconv.Itoa(int(b)) +
				" / " + formatFloat(c.A*alpha) + ")"
		}
	}
	return "color-mix(in srgb, " + color + " " + formatFloat(alpha*100) + "%, transparent)"
}

func isKeywordColor(v string) bool {
	switch strings.ToLower(v) {
	case "currentcolor", "inherit", "initial", "unset":
		return true
	}
	return false
}

// parseAlpha reads an opacity modifier: a theme opacity key ("50"), a bare
// percentage number, or an arbitrary value ("[.35]", "[35%]").
func parseAlpha(s string, lookup func(string) (string, bool)) (float64, bool) {
	if strings.HasPrefix(s, "[") {
		a, ok := parseArbitrary(s)
		if !ok {
			return 0, false
		}
		s = a.value
		if pct, isPct := strings.CutSuffix(s, "%"); isPct {
			return ratio(pct, 100)
		}
		return ratio(s, 1)
	}
	if v, ok := lookup(s); ok {
		return ratio(v, 1)
	}
	return ratio(s, 100)
}

func ratio(s string, div float64) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	n /= div
	if n < 0 || n > 1 {
		return 0, false
	}
	return n, true
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// negate returns the negative of a length, using calc() when the value is
// not a plain number. Keywords such as "auto" cannot be negated.
func negate(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	if strings.HasPrefix(v, "-") {
		return v[1:], true
	}
	if c := v[0]; (c < '0' || c > '9') && c != '.' {
		if !strings.Contains(v, "(") {
			return "", false
		}
		return "calc(" + v + " * -1)", true
	}

	end := strings.IndexFunc(v, func(r rune) bool { return (r < '0' || r > '9') && r != '.' })
	if end < 0 {
		end = len(v)
	}
	if n, err := strconv.ParseFloat(v[:end], 64); err == nil && n == 0 {
		return v, true
	}
	return "-" + v, true
}

// fraction turns "1/2" into "50%".
func fraction(s string) (string, bool) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return "", false
	}
	a, err := strconv.Atoi(num)
	if err != nil || a < 0 {
		return "", false
	}
	b, err := strconv.Atoi(den)
	if err != nil || b <= 0 {
		return "", false
	}
	pct := strconv.FormatFloat(float64(a)/float64(b)*100, 'f', 6, 64)
	pct = strings.TrimSuffix(strings.TrimRight(pct, "0"), ".")
	return pct + "%", true
}

func isInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
