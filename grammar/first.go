package grammar

// firstSet maps each non-terminal to the set of terminals that may begin
// some derivation of it. This grammar has no epsilon productions, so FIRST
// never needs to propagate through a nullable prefix, and a plain
// lookaheadSet (no "empty" flag) suffices per non-terminal.
type firstSet struct {
	termCount int
	set       map[Symbol]*lookaheadSet
}

func newFirstSet(prods *productionSet, termCount int) *firstSet {
	fst := &firstSet{termCount: termCount, set: map[Symbol]*lookaheadSet{}}
	for _, prod := range prods.productions() {
		if _, ok := fst.set[prod.LHS]; !ok {
			fst.set[prod.LHS] = newLookaheadSet(termCount)
		}
	}
	return fst
}

func (fst *firstSet) of(sym Symbol) *lookaheadSet {
	if sym.IsTerminal() {
		s := newLookaheadSet(fst.termCount)
		s.add(sym)
		return s
	}
	return fst.set[sym]
}

// genFirstSet computes FIRST(N) for every non-terminal N by fixed-point
// iteration: for each production N → rhs, inspect rhs[0]; if terminal, add
// it; if non-terminal M != N, recursively merge FIRST(M).
// Re-entry into a symbol under active computation is handled implicitly by
// the fixed-point: its entry simply hasn't converged yet, so contributions
// through it are deferred to a later pass rather than special-cased.
func genFirstSet(prods *productionSet, termCount int) *firstSet {
	fst := newFirstSet(prods, termCount)
	for {
		changed := false
		for _, prod := range prods.productions() {
			if len(prod.RHS) == 0 {
				continue
			}
			head := prod.RHS[0]
			dst := fst.set[prod.LHS]
			if head.IsTerminal() {
				if dst.add(head) {
					changed = true
				}
				continue
			}
			if dst.addAll(fst.set[head]) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return fst
}

// firstOfSeq computes FIRST of the symbol sequence seq (the suffix of a
// production's RHS following the dot), falling back to fallback when seq is
// empty. It is invoked on rhs[cursor+1:] when extending a lookahead across
// the dot; since this grammar has no epsilon productions, only seq[0] is
// ever consulted.
func firstOfSeq(fst *firstSet, seq []Symbol, fallback *lookaheadSet) *lookaheadSet {
	if len(seq) == 0 {
		return fallback
	}
	return fst.of(seq[0])
}
