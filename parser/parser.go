// Package parser implements the table-driven shift-reduce driver: it walks
// a token.Stream against a built grammar.Grammar's parse table, producing a
// concrete syntax tree. It never attempts error recovery; it halts and
// reports a *SyntaxError on the first unexpected token.
package parser

import (
	"fmt"

	"github.com/cgrammar/clr1c/grammar"
	"github.com/cgrammar/clr1c/token"
)

// Parser drives a single grammar's parse table over a token stream.
type Parser struct {
	g     *grammar.Grammar
	table *grammar.ParsingTable
	src   string
}

// New builds a Parser over g, building g's automaton and parse table on
// first use if that has not happened already.
func New(g *grammar.Grammar) (*Parser, error) {
	table, _, err := g.Build()
	if err != nil {
		return nil, err
	}
	return &Parser{g: g, table: table}, nil
}

// WithSource attaches the original input text so a *SyntaxError can quote
// the offending source line. Optional; omitting it just omits the quote.
func (p *Parser) WithSource(src string) *Parser {
	p.src = src
	return p
}

type frame struct {
	node  *Node
	state grammar.StateNum
}

// Parse drives ts to completion, returning the root of the concrete syntax
// tree it built. It returns a *SyntaxError on the first unexpected token.
func (p *Parser) Parse(ts token.Stream) (*Node, error) {
	stack := []frame{{state: p.table.InitialState}}

	tok, err := ts.Next()
	if err != nil {
		return nil, err
	}

	for {
		top := stack[len(stack)-1]

		sym, ok := p.terminalSymbol(tok)
		if !ok {
			return nil, p.unexpected(top.state, tok)
		}

		act := p.table.ActionAt(top.state, sym)
		switch act.Type {
		case grammar.ActionShift:
			row, col := tok.Position()
			stack = append(stack, frame{
				node:  &Node{Symbol: tok.Terminal(), Text: tok.Lexeme(), Row: row, Col: col},
				state: act.State,
			})
			tok, err = ts.Next()
			if err != nil {
				return nil, err
			}

		case grammar.ActionReduce:
			n := len(act.Prod.RHS)
			children := make([]*Node, n)
			for i := 0; i < n; i++ {
				children[i] = stack[len(stack)-n+i].node
			}
			stack = stack[:len(stack)-n]

			lhsText, _ := p.g.SymbolText(act.Prod.LHS)
			below := stack[len(stack)-1].state
			next, ok := p.table.GoTo(below, act.Prod.LHS)
			if !ok {
				return nil, fmt.Errorf("no goto entry from state %d on %v", below.Int(), lhsText)
			}
			stack = append(stack, frame{
				node:  &Node{Symbol: lhsText, Children: children},
				state: next,
			})

		case grammar.ActionAccept:
			return stack[len(stack)-1].node, nil

		default:
			return nil, p.unexpected(top.state, tok)
		}
	}
}

func (p *Parser) terminalSymbol(tok token.Token) (grammar.Symbol, bool) {
	if tok.EOF() {
		return grammar.SymbolEOF, true
	}
	return p.g.Terminal(tok.Terminal())
}

// unexpected builds the SyntaxError reported when no action exists for
// (state, tok), listing every terminal the table would have accepted
// instead.
func (p *Parser) unexpected(state grammar.StateNum, tok token.Token) *SyntaxError {
	row, col := tok.Position()

	var expected []string
	for _, sym := range p.g.Terminals() {
		if p.table.ActionAt(state, sym).Type != grammar.ActionError {
			text, _ := p.g.SymbolText(sym)
			expected = append(expected, text)
		}
	}

	name := tok.Terminal()
	if tok.EOF() {
		name = "<eof>"
	}

	return &SyntaxError{
		Row:               row,
		Col:               col,
		Token:             name,
		Lexeme:            tok.Lexeme(),
		ExpectedTerminals: expected,
		SourceLine:        sourceLine(p.src, row),
	}
}
