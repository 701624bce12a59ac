package grammar

import "testing"

func TestParsingTableAcceptsValidSentences(t *testing.T) {
	g := newClassicCLR1Grammar(t)
	table, _, err := g.Build()
	if err != nil {
		t.Fatal(err)
	}

	valid := [][]string{
		{"a", "e", "c"}, // S -> a A c
		{"a", "e", "d"}, // S -> a B d
		{"b", "e", "d"}, // S -> b A d
		{"b", "e", "c"}, // S -> b B c
	}
	for _, input := range valid {
		if err := simulate(t, g, table, input); err != nil {
			t.Errorf("simulate(%v) = %v, want accept", input, err)
		}
	}
}

func TestParsingTableRejectsInvalidSentences(t *testing.T) {
	g := newClassicCLR1Grammar(t)
	table, _, err := g.Build()
	if err != nil {
		t.Fatal(err)
	}

	invalid := [][]string{
		{"a", "e", "e"},
		{"c"},
		{"a", "e"},
		{},
	}
	for _, input := range invalid {
		if err := simulate(t, g, table, input); err == nil {
			t.Errorf("simulate(%v) accepted, want a parse error", input)
		}
	}
}

func TestShiftReduceConflictResolvesToShift(t *testing.T) {
	// A tiny dangling-else-shaped grammar: "if" "x" "then" S can either
	// shift a trailing "else" S or reduce, an ambiguity this table resolves
	// by always shifting.
	g, err := NewGrammar(
		"S",
		[]string{"if", "x", "then", "else", "y"},
		[]Rule{
			{LHS: "S", RHS: []string{"if", "x", "then", "S", "else", "S"}},
			{LHS: "S", RHS: []string{"if", "x", "then", "S"}},
			{LHS: "S", RHS: []string{"y"}},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	table, conflicts, err := g.Build()
	if err != nil {
		t.Fatal(err)
	}

	var sawShiftReduce bool
	for _, c := range conflicts {
		if c.Kind == ConflictShiftReduce {
			sawShiftReduce = true
			if c.ResolvedBy != ResolvedByShift {
				t.Errorf("shift/reduce conflict resolved by %v, want ResolvedByShift", c.ResolvedBy)
			}
		}
	}
	if !sawShiftReduce {
		t.Fatalf("expected a shift/reduce conflict on the dangling else")
	}

	// "if x then if x then y else y" should parse (else binds to the
	// nearest if), proving the shift-wins policy took effect end to end.
	nested := []string{"if", "x", "then", "if", "x", "then", "y", "else", "y"}
	if err := simulate(t, g, table, nested); err != nil {
		t.Errorf("simulate(%v) = %v, want accept", nested, err)
	}
}

func TestReduceReduceConflictResolvesToEarliestProduction(t *testing.T) {
	g, err := NewGrammar(
		"S",
		[]string{"x"},
		[]Rule{
			{LHS: "S", RHS: []string{"A"}},
			{LHS: "S", RHS: []string{"B"}},
			{LHS: "A", RHS: []string{"x"}},
			{LHS: "B", RHS: []string{"x"}},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	_, conflicts, err := g.Build()
	if err != nil {
		t.Fatal(err)
	}

	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %v, want exactly one reduce/reduce conflict", conflicts)
	}
	c := conflicts[0]
	if c.Kind != ConflictReduceReduce {
		t.Fatalf("conflict kind = %v, want ConflictReduceReduce", c.Kind)
	}
	if c.ResolvedBy != ResolvedByEarliestProduction {
		t.Fatalf("resolved by %v, want ResolvedByEarliestProduction", c.ResolvedBy)
	}
	if c.Winner.Num >= c.Loser.Num {
		t.Fatalf("winner %v should have a lower production number than loser %v", c.Winner.Num, c.Loser.Num)
	}
}
