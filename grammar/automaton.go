package grammar

import "fmt"

// MaxStates bounds the number of states the automaton builder will
// register before giving up. The K&R grammar this engine ships with needs
// on the order of a few hundred states; this bound is generous headroom,
// not a tight fit.
const MaxStates = 20000

// ErrTooManyStates is returned instead of aborting the process, so a caller
// can report the failure rather than crash.
var ErrTooManyStates = fmt.Errorf("state count exceeds the limit of %d", MaxStates)

// Automaton is the canonical LR(1) state machine: every reachable state,
// deduplicated by item-set equality, plus the GOTO relation between them.
type Automaton struct {
	Start  StateNum
	States []*State

	byID map[stateID]*State
}

// genAutomaton builds the canonical LR(1) automaton by worklist:
//
//  1. S0 = closure({[S' → •translation-unit, $]}).
//  2. For each state in the worklist and each symbol X appearing after a
//     dot in some item, compute GOTO(S, X).
//  3. Reuse a registered state with an equal item-set, or register a fresh
//     one and enqueue it.
//  4. Record S --X--> T.
//  5. Terminate when no state has unexplored outgoing edges.
//
// Lookaheads are never merged across otherwise-equal kernels: state
// identity is computed over the full closed item set, which already
// includes the lookaheads, so two states an LALR builder would unify are
// kept distinct whenever their lookaheads differ.
func genAutomaton(g *Grammar) (*Automaton, error) {
	prods := g.prods
	fst := g.first
	termCount := g.symTab.terminalCount()

	startProd := prods.findByLHS(SymbolStart)[0]
	startLA := newLookaheadSet(termCount)
	startLA.add(SymbolEOF)
	startItems := closure([]*item{newItem(startProd, 0, startLA)}, prods, fst, termCount)

	auto := &Automaton{byID: map[stateID]*State{}}

	startState := registerState(auto, startItems)
	auto.Start = startState.Num

	worklist := []*State{startState}
	for len(worklist) > 0 {
		var next []*State
		for _, s := range worklist {
			succs, err := expand(auto, s, prods, fst, termCount)
			if err != nil {
				return nil, err
			}
			next = append(next, succs...)
		}
		worklist = next
	}

	return auto, nil
}

// expand computes every GOTO successor of s, registering new states as
// needed, and returns the freshly-registered ones (for the worklist).
func expand(auto *Automaton, s *State, prods *productionSet, fst *firstSet, termCount int) ([]*State, error) {
	nextSymbols := map[Symbol]bool{}
	for _, it := range s.Items {
		if !it.dottedSymbol.isNil() {
			nextSymbols[it.dottedSymbol] = true
		}
	}

	s.transitions = map[Symbol]stateID{}
	s.reducible = map[Symbol][]*Production{}
	for _, it := range s.Items {
		if !it.reducible {
			continue
		}
		prod := prods.byID[it.prod]
		for _, la := range it.lookahead.symbols() {
			s.reducible[la] = append(s.reducible[la], prod)
		}
	}

	var fresh []*State
	for x := range nextSymbols {
		succItems := gotoSet(newItemSetFrom(s.Items), x, prods, fst, termCount)
		if succItems == nil {
			continue
		}

		id := genStateID(succItems.items())
		if existing, ok := auto.byID[id]; ok {
			s.transitions[x] = existing.id
			continue
		}

		if len(auto.States) >= MaxStates {
			return nil, ErrTooManyStates
		}

		succ := registerState(auto, succItems)
		s.transitions[x] = succ.id
		fresh = append(fresh, succ)
	}

	return fresh, nil
}

func registerState(auto *Automaton, items *itemSet) *State {
	sorted := items.items()
	id := genStateID(sorted)
	if existing, ok := auto.byID[id]; ok {
		return existing
	}
	s := &State{
		id:    id,
		Num:   StateNum(len(auto.States)),
		Items: sorted,
	}
	auto.byID[id] = s
	auto.States = append(auto.States, s)
	return s
}

func newItemSetFrom(items []*item) *itemSet {
	s := newItemSet()
	for _, it := range items {
		s.add(it)
	}
	return s
}

// stateByID resolves a successor stateID, recorded in a State's
// transitions map, back to its registered *State.
func (a *Automaton) stateByID(id stateID) *State {
	return a.byID[id]
}
