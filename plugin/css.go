package plugin

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/utilcss/stylesheet"
)

// FromCSS returns an entry whose utilities are the single-class rules of a
// stylesheet, e.g. ".no-scrollbar { scrollbar-width: none; }". Rules inside
// @layer blocks are included; rules with compound selectors, pseudo-classes
// or other at-rules are ignored. Declaration order is preserved and a later
// rule for the same class overrides earlier properties.
func FromCSS(name, src string) (Entry, error) {
	p := &cssParser{
		lexer:   css.NewLexer(parse.NewInputString(src)),
		classes: make(staticMapper),
	}
	if err := p.parse(); err != nil {
		return Entry{}, fmt.Errorf("plugin %q: %w", name, err)
	}
	if len(p.classes) == 0 {
		return Entry{}, fmt.Errorf("%w %q: no single-class rules in stylesheet", ErrInvalidEntry, name)
	}
	return Entry{Name: name, Mapper: p.classes}, nil
}

type cssToken struct {
	tt   css.TokenType
	text string
}

// cssParser maintains context while reading plugin CSS
type cssParser struct {
	lexer   *css.Lexer
	classes staticMapper
}

func (p *cssParser) next() cssToken {
	for {
		tt, text := p.lexer.Next()
		if tt == css.CommentToken {
			continue
		}
		return cssToken{tt: tt, text: string(text)}
	}
}

func (p *cssParser) parse() error {
	var prelude []cssToken

	for {
		tok := p.next()
		switch tok.tt {
		case css.ErrorToken:
			if err := p.lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil

		case css.SemicolonToken:
			// @import, @charset and the like
			prelude = nil

		case css.RightBraceToken:
			// End of an @layer block
			prelude = nil

		case css.LeftBraceToken:
			sel := trimWhitespace(prelude)
			prelude = nil

			switch {
			case len(sel) > 0 && sel[0].tt == css.AtKeywordToken && sel[0].text == "@layer":
				// Descend: the layer's rules are read at this level
			case len(sel) == 2 && sel[0].tt == css.DelimToken && sel[0].text == "." && sel[1].tt == css.IdentToken:
				p.addClass(unescapeIdent(sel[1].text), p.declarations())
			default:
				p.skipBlock()
			}

		default:
			prelude = append(prelude, tok)
		}
	}
}

// declarations reads property: value pairs until the closing brace.
func (p *cssParser) declarations() []stylesheet.Declaration {
	var (
		decls []stylesheet.Declaration
		prop  string
		value []cssToken
		seen  bool // colon seen for the current declaration
	)

	flush := func() {
		if prop != "" && seen {
			if d, ok := buildDeclaration(prop, value); ok {
				decls = append(decls, d)
			}
		}
		prop, value, seen = "", nil, false
	}

	for {
		tok := p.next()
		switch {
		case tok.tt == css.ErrorToken || tok.tt == css.RightBraceToken:
			flush()
			return decls
		case tok.tt == css.LeftBraceToken:
			// Nested rule; not a declaration
			p.skipBlock()
			prop, value, seen = "", nil, false
		case tok.tt == css.SemicolonToken:
			flush()
		case !seen && (tok.tt == css.IdentToken || tok.tt == css.CustomPropertyNameToken) && prop == "":
			prop = tok.text
		case !seen && tok.tt == css.ColonToken && prop != "":
			seen = true
		case seen:
			value = append(value, tok)
		}
	}
}

func buildDeclaration(prop string, value []cssToken) (stylesheet.Declaration, bool) {
	value = trimWhitespace(value)

	important := false
	if n := len(value); n >= 2 && value[n-1].tt == css.IdentToken &&
		strings.EqualFold(value[n-1].text, "important") &&
		value[n-2].tt == css.DelimToken && value[n-2].text == "!" {
		important = true
		value = trimWhitespace(value[:n-2])
	}

	var b strings.Builder
	for _, tok := range value {
		if tok.tt == css.WhitespaceToken {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(tok.text)
	}

	v := strings.TrimSpace(b.String())
	if v == "" {
		return stylesheet.Declaration{}, false
	}
	return stylesheet.Declaration{Property: prop, Value: v, Important: important}, true
}

func (p *cssParser) addClass(class string, decls []stylesheet.Declaration) {
	if len(decls) == 0 {
		return
	}
	existing := p.classes[class]
	for _, d := range decls {
		replaced := false
		for i := range existing {
			if existing[i].Property == d.Property {
				existing[i] = d
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, d)
		}
	}
	p.classes[class] = existing
}

// skipBlock consumes tokens up to the brace matching one already read.
func (p *cssParser) skipBlock() {
	depth := 1
	for depth > 0 {
		switch p.next().tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}
}

func trimWhitespace(toks []cssToken) []cssToken {
	for len(toks) > 0 && toks[0].tt == css.WhitespaceToken {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].tt == css.WhitespaceToken {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// unescapeIdent drops the backslash of simple escapes ("w-1\/2" → "w-1/2").
// Hex escapes are decoded.
func unescapeIdent(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		j := i + 1
		for j < len(s) && j-i <= 6 && isHex(s[j]) {
			j++
		}
		if j == i+1 {
			b.WriteByte(s[j])
			i = j
			continue
		}
		var r rune
		for _, c := range s[i+1 : j] {
			r = r*16 + hexValue(byte(c))
		}
		b.WriteRune(r)
		if j < len(s) && s[j] == ' ' {
			j++
		}
		i = j - 1
	}
	return b.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) rune {
	switch {
	case c >= '0' && c <= '9':
		return rune(c - '0')
	case c >= 'a' && c <= 'f':
		return rune(c-'a') + 10
	default:
		return rune(c-'A') + 10
	}
}
