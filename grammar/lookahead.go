package grammar

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// lookaheadSet is an explicit, terminal-indexed set of lookahead symbols:
// membership and equality are structural, never by reference, so two items
// built independently with the same lookahead symbols always compare equal.
type lookaheadSet struct {
	bits *bitset.BitSet
}

func newLookaheadSet(termCount int) *lookaheadSet {
	return &lookaheadSet{bits: bitset.New(uint(termCount))}
}

func (s *lookaheadSet) add(sym Symbol) bool {
	i := uint(sym.num())
	if s.bits.Test(i) {
		return false
	}
	s.bits.Set(i)
	return true
}

// addAll merges other into s, returning whether s changed.
func (s *lookaheadSet) addAll(other *lookaheadSet) bool {
	if other == nil || other.bits.None() {
		return false
	}
	before := s.bits.Clone()
	s.bits.InPlaceUnion(other.bits)
	return !before.Equal(s.bits)
}

func (s *lookaheadSet) has(sym Symbol) bool {
	return s.bits.Test(uint(sym.num()))
}

func (s *lookaheadSet) isEmpty() bool {
	return s.bits.None()
}

func (s *lookaheadSet) clone() *lookaheadSet {
	return &lookaheadSet{bits: s.bits.Clone()}
}

// equals compares by bit pattern, the true set-equality item equality
// requires.
func (s *lookaheadSet) equals(other *lookaheadSet) bool {
	return s.bits.Equal(other.bits)
}

// symbols returns the lookahead terminals in a stable, ascending order
// (used when recording a state's reductions per lookahead).
func (s *lookaheadSet) symbols() []Symbol {
	out := make([]Symbol, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, symbolFromTerminalNum(symbolNum(i)))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// hashBytes returns a canonical byte encoding of the set, used to fold the
// lookahead into an item's content-addressed identity.
func (s *lookaheadSet) hashBytes() []byte {
	b := make([]byte, 0, s.bits.Count()*2)
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		b = append(b, byte(i>>8), byte(i))
	}
	return b
}

// symbolFromTerminalNum reconstructs a terminal Symbol from its dense
// number. Terminal symbols are never sentinels except number 1 (EOF).
func symbolFromTerminalNum(num symbolNum) Symbol {
	if num == symbolNum(numEOF) {
		return SymbolEOF
	}
	sym, _ := newSymbol(symbolKindTerminal, false, num)
	return sym
}
