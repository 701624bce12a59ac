package grammar

import "testing"

func TestGenFirstSet(t *testing.T) {
	tab := newSymbolTable()
	plus, err := tab.registerTerminal("+")
	if err != nil {
		t.Fatal(err)
	}
	num, err := tab.registerTerminal("num")
	if err != nil {
		t.Fatal(err)
	}
	tab.registerStart("E")
	termNonStart, err := tab.registerNonTerminal("T")
	if err != nil {
		t.Fatal(err)
	}
	e, _ := tab.toSymbol("E")

	ps := newProductionSet()
	// E -> E + T | T
	p1, err := newProduction(e, []Symbol{e, plus, termNonStart})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ps.append(p1); err != nil {
		t.Fatal(err)
	}
	p2, err := newProduction(e, []Symbol{termNonStart})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ps.append(p2); err != nil {
		t.Fatal(err)
	}
	// T -> num
	p3, err := newProduction(termNonStart, []Symbol{num})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ps.append(p3); err != nil {
		t.Fatal(err)
	}

	fst := genFirstSet(ps, tab.terminalCount())

	firstE := fst.of(e)
	if !firstE.has(num) {
		t.Errorf("FIRST(E) should contain num")
	}
	if firstE.has(plus) {
		t.Errorf("FIRST(E) should not contain +")
	}

	firstT := fst.of(termNonStart)
	if !firstT.has(num) {
		t.Errorf("FIRST(T) should contain num")
	}
}

func TestFirstOfSeqFallsBackWhenEmpty(t *testing.T) {
	tab := newSymbolTable()
	term, err := tab.registerTerminal("t")
	if err != nil {
		t.Fatal(err)
	}
	fst := &firstSet{termCount: 1, set: map[Symbol]*lookaheadSet{}}

	fallback := newLookaheadSet(1)
	fallback.add(term)

	got := firstOfSeq(fst, nil, fallback)
	if !got.equals(fallback) {
		t.Errorf("firstOfSeq with an empty sequence should return the fallback set")
	}
}
