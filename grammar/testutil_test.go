package grammar

import (
	"fmt"
	"testing"
)

// newClassicCLR1Grammar builds the textbook grammar used to distinguish
// canonical LR(1) from LALR(1) (Aho, Sethi & Ullman's ambiguous-lookahead
// example): merging the two "A -> e ." / "B -> e ." states that an LALR(1)
// builder would unify under one kernel introduces a reduce/reduce conflict
// on both "c" and "d" that does not exist in the canonical automaton, where
// the two states stay distinct because their lookaheads differ.
//
//	S -> a A c | a B d | b A d | b B c
//	A -> e
//	B -> e
func newClassicCLR1Grammar(t *testing.T) *Grammar {
	t.Helper()
	g, err := NewGrammar(
		"S",
		[]string{"a", "b", "c", "d", "e"},
		[]Rule{
			{LHS: "S", RHS: []string{"a", "A", "c"}},
			{LHS: "S", RHS: []string{"a", "B", "d"}},
			{LHS: "S", RHS: []string{"b", "A", "d"}},
			{LHS: "S", RHS: []string{"b", "B", "c"}},
			{LHS: "A", RHS: []string{"e"}},
			{LHS: "B", RHS: []string{"e"}},
		},
	)
	if err != nil {
		t.Fatalf("NewGrammar: %v", err)
	}
	return g
}

// simulate drives a built ParsingTable's action/goto cells over input (a
// sequence of terminal texts, EOF implied) exactly the way parser.Parser
// will, without building a parse tree, so grammar-level tests can assert
// acceptance/rejection directly against the table.
func simulate(t *testing.T, g *Grammar, table *ParsingTable, input []string) error {
	t.Helper()

	states := []StateNum{table.InitialState}
	pos := 0
	nextTerminal := func() (Symbol, string) {
		if pos >= len(input) {
			return SymbolEOF, "$"
		}
		text := input[pos]
		sym, ok := g.Terminal(text)
		if !ok {
			t.Fatalf("unknown terminal %q", text)
		}
		return sym, text
	}

	for {
		cur := states[len(states)-1]
		sym, text := nextTerminal()
		act := table.ActionAt(cur, sym)
		switch act.Type {
		case ActionShift:
			states = append(states, act.State)
			pos++
		case ActionReduce:
			n := len(act.Prod.RHS)
			states = states[:len(states)-n]
			top := states[len(states)-1]
			next, ok := table.GoTo(top, act.Prod.LHS)
			if !ok {
				return fmt.Errorf("no goto from state %d on %v", top.Int(), act.Prod.LHS)
			}
			states = append(states, next)
		case ActionAccept:
			return nil
		default:
			return fmt.Errorf("no action for state %d on %q", cur.Int(), text)
		}
	}
}
