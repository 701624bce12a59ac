package grammar

import "testing"

func TestSymbolBitPacking(t *testing.T) {
	tab := newSymbolTable()

	a, err := tab.registerTerminal("a")
	if err != nil {
		t.Fatalf("registerTerminal: %v", err)
	}
	if !a.IsTerminal() || a.IsNonTerminal() || a.IsStart() || a.IsEOF() {
		t.Fatalf("terminal %v misclassified", a)
	}

	n, err := tab.registerNonTerminal("N")
	if err != nil {
		t.Fatalf("registerNonTerminal: %v", err)
	}
	if !n.IsNonTerminal() || n.IsTerminal() {
		t.Fatalf("non-terminal %v misclassified", n)
	}

	if !SymbolEOF.IsTerminal() || !SymbolEOF.IsEOF() {
		t.Fatalf("SymbolEOF misclassified")
	}
	if !SymbolStart.IsNonTerminal() || !SymbolStart.IsStart() {
		t.Fatalf("SymbolStart misclassified")
	}
	if SymbolNil.IsTerminal() || SymbolNil.IsNonTerminal() || SymbolNil.IsStart() || SymbolNil.IsEOF() {
		t.Fatalf("SymbolNil misclassified")
	}
}

func TestSymbolTableInterning(t *testing.T) {
	tab := newSymbolTable()

	a1, err := tab.registerTerminal("a")
	if err != nil {
		t.Fatal(err)
	}
	a2, err := tab.registerTerminal("a")
	if err != nil {
		t.Fatal(err)
	}
	if a1 != a2 {
		t.Fatalf("registering the same terminal text twice produced different symbols: %v != %v", a1, a2)
	}

	text, ok := tab.toText(a1)
	if !ok || text != "a" {
		t.Fatalf("toText(%v) = %q, %v; want \"a\", true", a1, text, ok)
	}

	if _, ok := tab.toSymbol("nope"); ok {
		t.Fatalf("toSymbol found a symbol for an unregistered name")
	}
}

func TestSymbolNumbersAreDense(t *testing.T) {
	tab := newSymbolTable()
	names := []string{"a", "b", "c"}
	var syms []Symbol
	for _, n := range names {
		s, err := tab.registerTerminal(n)
		if err != nil {
			t.Fatal(err)
		}
		syms = append(syms, s)
	}
	for i, s := range syms {
		if got, want := s.num().Int(), terminalNumMin.Int()+i; got != want {
			t.Errorf("symbol %d: num() = %d, want %d", i, got, want)
		}
	}
}
