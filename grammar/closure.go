package grammar

// closure computes the LR(1) closure of a seed item set: for every item
// [A → α•Bβ, a] in the working set with B a non-terminal, add [B → •γ, b]
// for every production B → γ and every b in FIRST(β) (or {a} when β is
// empty), until a fixed point is reached.
//
// This is an iterative worklist rather than the textbook's recursive
// formulation, avoiding deep recursion for a grammar with many productions.
func closure(seed []*item, prods *productionSet, fst *firstSet, termCount int) *itemSet {
	items := newItemSet()
	var worklist []*item
	for _, it := range seed {
		if items.add(it) {
			worklist = append(worklist, it)
		}
	}

	for len(worklist) > 0 {
		var next []*item
		for _, it := range worklist {
			if it.dottedSymbol.isNil() || it.dottedSymbol.IsTerminal() {
				continue
			}

			la := firstOfSeq(fst, restOf(prods, it), it.lookahead)

			for _, prod := range prods.findByLHS(it.dottedSymbol) {
				newItem := newItem(prod, 0, la)
				if items.add(newItem) {
					next = append(next, newItem)
				}
			}
		}
		worklist = next
	}

	return items
}

// restOf returns the RHS symbols strictly following the dot of its
// current production: β in [A → α•Bβ, a].
func restOf(prods *productionSet, it *item) []Symbol {
	prod := prods.byID[it.prod]
	if it.dot+1 >= len(prod.RHS) {
		return nil
	}
	return prod.RHS[it.dot+1:]
}

// gotoSet computes GOTO(S, X): advance the dot past X in every item of S
// whose dotted symbol is X, then take the closure.
func gotoSet(s *itemSet, x Symbol, prods *productionSet, fst *firstSet, termCount int) *itemSet {
	var seed []*item
	for _, it := range s.items() {
		if it.dottedSymbol != x {
			continue
		}
		seed = append(seed, it.advance(prods))
	}
	if len(seed) == 0 {
		return nil
	}
	return closure(seed, prods, fst, termCount)
}
