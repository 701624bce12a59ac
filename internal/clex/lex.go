// Package clex is a minimal, hand-written scanner for the CLI's demo
// "parse" command. It exists only so `clr1c parse` has something to feed
// the parser; it recognizes just enough of the grammar's terminals to
// drive real input through the table, and makes no attempt at a general
// lexical-specification compiler.
package clex

import (
	"fmt"
	"unicode"

	"github.com/cgrammar/clr1c/token"
)

var keywords = map[string]bool{
	"void": true, "char": true, "short": true, "int": true, "long": true,
	"float": true, "double": true, "signed": true, "unsigned": true,
	"auto": true, "register": true, "static": true, "extern": true,
	"typedef": true, "goto": true, "continue": true, "break": true,
	"return": true, "for": true, "do": true, "while": true, "if": true,
	"else": true, "switch": true, "case": true, "default": true,
	"enum": true, "struct": true, "union": true, "const": true,
	"volatile": true,
}

// punctuators is ordered longest-match-first so a greedy scan never stops
// at a prefix of a longer operator (e.g. "<<" before "<"). Limited to the
// punctuators the grammar's terminal alphabet actually defines.
var punctuators = []string{
	"...",
	"++", "--", "+=", "-=", "->", "*=", "/=", "%=", "&&", "||",
	"==", "!=", "<=", ">=", "<<", ">>",
	"+", "-", "*", "/", "%", "&", "|", "^", "?", ":", ";", ",",
	"(", ")", "[", "]", "{", "}", "=", "<", ">",
}

// Lexer is a simple rune-at-a-time scanner over an in-memory source
// string.
type Lexer struct {
	src      []rune
	pos      int
	row, col int
}

// New returns a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: []rune(src), row: 1, col: 1}
}

var _ token.Stream = (*Lexer)(nil)

// Next returns the next token, or the EOF sentinel token once the source
// is exhausted.
func (l *Lexer) Next() (token.Token, error) {
	l.skipTrivia()

	if l.pos >= len(l.src) {
		return token.EOF(l.row, l.col), nil
	}

	row, col := l.row, l.col
	c := l.src[l.pos]

	switch {
	case unicode.IsLetter(c) || c == '_':
		text := l.scanWhile(func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' })
		if keywords[text] {
			return token.New(text, text, row, col), nil
		}
		return token.New("id", text, row, col), nil

	case unicode.IsDigit(c):
		text := l.scanWhile(unicode.IsDigit)
		return token.New("int_const", text, row, col), nil

	case c == '"':
		text, err := l.scanDelimited('"')
		if err != nil {
			return nil, err
		}
		return token.New("string_const", text, row, col), nil

	case c == '\'':
		text, err := l.scanDelimited('\'')
		if err != nil {
			return nil, err
		}
		return token.New("char_const", text, row, col), nil

	default:
		for _, p := range punctuators {
			if l.hasPrefix(p) {
				l.advance(len(p))
				return token.New(p, p, row, col), nil
			}
		}
		return nil, fmt.Errorf("%d:%d: unrecognized character %q", row, col, c)
	}
}

func (l *Lexer) skipTrivia() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case unicode.IsSpace(c):
			l.advance(1)
		case l.hasPrefix("//"):
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance(1)
			}
		case l.hasPrefix("/*"):
			l.advance(2)
			for l.pos < len(l.src) && !l.hasPrefix("*/") {
				l.advance(1)
			}
			l.advance(2)
		default:
			return
		}
	}
}

func (l *Lexer) scanWhile(keep func(rune) bool) string {
	start := l.pos
	for l.pos < len(l.src) && keep(l.src[l.pos]) {
		l.advance(1)
	}
	return string(l.src[start:l.pos])
}

func (l *Lexer) scanDelimited(delim rune) (string, error) {
	start := l.pos
	l.advance(1) // opening delimiter
	for {
		if l.pos >= len(l.src) {
			return "", fmt.Errorf("%d:%d: unterminated literal", l.row, l.col)
		}
		c := l.src[l.pos]
		if c == '\\' && l.pos+1 < len(l.src) {
			l.advance(2)
			continue
		}
		l.advance(1)
		if c == delim {
			break
		}
	}
	return string(l.src[start:l.pos]), nil
}

func (l *Lexer) hasPrefix(s string) bool {
	if l.pos+len(s) > len(l.src) {
		return false
	}
	return string(l.src[l.pos:l.pos+len(s)]) == s
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.src); i++ {
		if l.src[l.pos] == '\n' {
			l.row++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}
