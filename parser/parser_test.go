package parser

import (
	"strings"
	"testing"

	"github.com/cgrammar/clr1c/grammar"
	"github.com/cgrammar/clr1c/token"
)

// fakeStream replays a fixed token slice, appending an EOF token at the
// end, the way a real scanner's final token always would.
type fakeStream struct {
	toks []token.Token
	pos  int
}

func newFakeStream(terminals ...string) *fakeStream {
	fs := &fakeStream{}
	for i, t := range terminals {
		fs.toks = append(fs.toks, token.New(t, t, 1, i+1))
	}
	fs.toks = append(fs.toks, token.EOF(1, len(terminals)+1))
	return fs
}

func (fs *fakeStream) Next() (token.Token, error) {
	tok := fs.toks[fs.pos]
	fs.pos++
	return tok, nil
}

// arithGrammar is a small left-recursive expression grammar exercising
// shift, reduce, and goto on non-trivial handles (two precedence levels).
func arithGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.NewGrammar(
		"expr",
		[]string{"+", "*", "(", ")", "num"},
		[]grammar.Rule{
			{LHS: "expr", RHS: []string{"expr", "+", "term"}},
			{LHS: "expr", RHS: []string{"term"}},
			{LHS: "term", RHS: []string{"term", "*", "factor"}},
			{LHS: "term", RHS: []string{"factor"}},
			{LHS: "factor", RHS: []string{"(", "expr", ")"}},
			{LHS: "factor", RHS: []string{"num"}},
		},
	)
	if err != nil {
		t.Fatalf("NewGrammar: %v", err)
	}
	return g
}

func TestParseBuildsTreeShape(t *testing.T) {
	g := arithGrammar(t)
	p, err := New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	root, err := p.Parse(newFakeStream("num", "+", "num", "*", "num"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if root.Symbol != "expr" {
		t.Fatalf("root.Symbol = %q, want %q", root.Symbol, "expr")
	}
	if len(root.Children) != 3 {
		t.Fatalf("root has %d children, want 3 (expr + term)", len(root.Children))
	}

	var buf strings.Builder
	PrintTree(&buf, root)
	out := buf.String()
	for _, want := range []string{"expr", "term", "factor", "num"} {
		if !strings.Contains(out, want) {
			t.Errorf("printed tree missing %q:\n%v", want, out)
		}
	}
}

func TestParseSingleToken(t *testing.T) {
	g := arithGrammar(t)
	p, err := New(g)
	if err != nil {
		t.Fatal(err)
	}
	root, err := p.Parse(newFakeStream("num"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Symbol != "expr" {
		t.Fatalf("root.Symbol = %q, want expr", root.Symbol)
	}
}

func TestParseParenthesizedExpression(t *testing.T) {
	g := arithGrammar(t)
	p, err := New(g)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Parse(newFakeStream("(", "num", "+", "num", ")", "*", "num")); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

func TestParseReportsSyntaxError(t *testing.T) {
	g := arithGrammar(t)
	p, err := New(g)
	if err != nil {
		t.Fatal(err)
	}
	p = p.WithSource("num + + num")

	_, err = p.Parse(newFakeStream("num", "+", "+", "num"))
	if err == nil {
		t.Fatalf("expected a syntax error")
	}
	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("error type = %T, want *SyntaxError", err)
	}
	if synErr.Token != "+" {
		t.Errorf("Token = %q, want %q", synErr.Token, "+")
	}
	if len(synErr.ExpectedTerminals) == 0 {
		t.Errorf("ExpectedTerminals should not be empty")
	}
	if synErr.SourceLine == "" {
		t.Errorf("SourceLine should be populated when WithSource was used")
	}
}

func TestParseRejectsEmptyInput(t *testing.T) {
	g := arithGrammar(t)
	p, err := New(g)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Parse(newFakeStream()); err == nil {
		t.Fatalf("expected a syntax error on empty input")
	}
}

func TestParseRejectsUnregisteredTerminal(t *testing.T) {
	g := arithGrammar(t)
	p, err := New(g)
	if err != nil {
		t.Fatal(err)
	}
	fs := &fakeStream{toks: []token.Token{token.New("unknown", "?", 1, 1)}}
	if _, err := p.Parse(fs); err == nil {
		t.Fatalf("expected an error for a terminal the grammar never registered")
	}
}
