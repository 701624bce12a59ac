// Package token defines the seam between a scanner and the parser driver.
// Scanning is out of this engine's scope, so Token and Stream are the only
// contract a concrete lexer needs to satisfy, decoupled from any one lexer
// implementation.
package token

// Token is a single lexical unit handed to the parser one at a time.
// Terminal names must match the names registered with grammar.NewGrammar.
type Token interface {
	Terminal() string
	Lexeme() string
	Position() (row, col int)
	EOF() bool
}

// Stream produces Tokens on demand.
type Stream interface {
	Next() (Token, error)
}

type simpleToken struct {
	terminal string
	lexeme   string
	row, col int
	eof      bool
}

func (t *simpleToken) Terminal() string     { return t.terminal }
func (t *simpleToken) Lexeme() string       { return t.lexeme }
func (t *simpleToken) Position() (int, int) { return t.row, t.col }
func (t *simpleToken) EOF() bool            { return t.eof }

// New builds an ordinary, non-EOF Token.
func New(terminal, lexeme string, row, col int) Token {
	return &simpleToken{terminal: terminal, lexeme: lexeme, row: row, col: col}
}

// EOF builds the sentinel end-of-input Token.
func EOF(row, col int) Token {
	return &simpleToken{terminal: "$", row: row, col: col, eof: true}
}
