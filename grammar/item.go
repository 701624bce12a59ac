package grammar

import (
	"crypto/sha256"
	"encoding/binary"
	"sort"
)

// itemID identifies an LR(1) item by production + dot position + lookahead
// set: two items are equal iff they share a production, a cursor position,
// and a set-equal lookahead. Folding the lookahead bitset into the hash
// means item equality is a single comparison.
type itemID [32]byte

// item is an LR(1) item: [production, dot, lookahead].
type item struct {
	id   itemID
	prod productionID

	dot          int
	dottedSymbol Symbol // SymbolNil when dot == len(rhs)

	reducible bool

	lookahead *lookaheadSet
}

func newItem(prod *Production, dot int, la *lookaheadSet) *item {
	dottedSymbol := SymbolNil
	if dot < prod.rhsLen {
		dottedSymbol = prod.RHS[dot]
	}

	id := genItemID(prod.id, dot, la)

	return &item{
		id:           id,
		prod:         prod.id,
		dot:          dot,
		dottedSymbol: dottedSymbol,
		reducible:    dot == prod.rhsLen,
		lookahead:    la,
	}
}

func genItemID(prod productionID, dot int, la *lookaheadSet) itemID {
	b := make([]byte, 0, 32+8+la.bits.Count()*2)
	b = append(b, prod[:]...)
	dotBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(dotBytes, uint64(dot))
	b = append(b, dotBytes...)
	b = append(b, la.hashBytes()...)
	return itemID(sha256.Sum256(b))
}

// advance returns the item obtained by moving the dot past dottedSymbol,
// keeping the same lookahead set. Used by GOTO.
func (it *item) advance(prods *productionSet) *item {
	prod := prods.byID[it.prod]
	return newItem(prod, it.dot+1, it.lookahead)
}

// itemSet is an unordered collection of items, deduplicated by itemID. Used
// both for a state's full (closed) item set and, transiently, while
// building kernels/GOTO successors.
type itemSet struct {
	byID map[itemID]*item
}

func newItemSet() *itemSet {
	return &itemSet{byID: map[itemID]*item{}}
}

func (s *itemSet) add(it *item) bool {
	if _, ok := s.byID[it.id]; ok {
		return false
	}
	s.byID[it.id] = it
	return true
}

func (s *itemSet) has(it *item) bool {
	_, ok := s.byID[it.id]
	return ok
}

func (s *itemSet) items() []*item {
	out := make([]*item, 0, len(s.byID))
	for _, it := range s.byID {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return lessItemID(out[i].id, out[j].id) })
	return out
}

func lessItemID(a, b itemID) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// stateID identifies a State by its full, closed item set: no two distinct
// registered states share equal item sets. Because canonical LR(1) never
// merges kernels with differing lookaheads, identity is taken over the whole
// closed set rather than a kernel-only subset, so two states an LALR builder
// would consider "the same kernel" but with different lookaheads hash to
// different stateIDs here.
type stateID [32]byte

func genStateID(items []*item) stateID {
	sorted := make([]*item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return lessItemID(sorted[i].id, sorted[j].id) })

	b := make([]byte, 0, 32*len(sorted))
	for _, it := range sorted {
		b = append(b, it.id[:]...)
	}
	return sha256.Sum256(b)
}

// StateNum is the dense, registration-order identity of a State, assigned
// by the automaton builder; state 0 is always the start state.
type StateNum int

const StateNumInitial = StateNum(0)

func (n StateNum) Int() int { return int(n) }

// State is a registered, closed LR(1) item set.
type State struct {
	id    stateID
	Num   StateNum
	Items []*item

	// transitions maps a grammar symbol to the id of the successor state;
	// resolved to StateNum once the whole automaton is known.
	transitions map[Symbol]stateID

	// reducible lists, for each lookahead terminal, the production to
	// reduce by when an item [A → γ•, ℓ] is in this state.
	reducible map[Symbol][]*Production
}
