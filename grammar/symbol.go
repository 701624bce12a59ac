package grammar

import (
	"fmt"
	"sort"
)

// symbolKind classifies a Symbol as a terminal (token kind) or a
// non-terminal (grammar category).
type symbolKind string

const (
	symbolKindNonTerminal = symbolKind("non-terminal")
	symbolKindTerminal    = symbolKind("terminal")
)

func (k symbolKind) String() string {
	return string(k)
}

// symbolNum is the dense, per-kind index used for array-indexed table
// access.
type symbolNum uint16

func (n symbolNum) Int() int {
	return int(n)
}

// Symbol is a tagged value drawn from the closed universe of grammar
// symbols. The top bit selects terminal vs non-terminal, the
// next bit distinguishes the two sentinels (augmented start symbol on the
// non-terminal side, end-of-input marker on the terminal side) from
// ordinary symbols, and the remaining 14 bits are a dense number unique
// within the (kind, sentinel) partition.
type Symbol uint16

const (
	maskKind     = uint16(0x8000)
	maskNonTerm  = uint16(0x0000)
	maskTerm     = uint16(0x8000)
	maskSentinel = uint16(0x4000)
	maskNumber   = uint16(0x3fff)

	numStart = uint16(0x0001)
	numEOF   = uint16(0x0001)

	// SymbolNil is the zero value: no symbol.
	SymbolNil = Symbol(0)

	// SymbolStart is the augmented start non-terminal S', implicit LHS of
	// the single augmenting production S' → translation-unit.
	SymbolStart = Symbol(maskNonTerm | maskSentinel | numStart)

	// SymbolEOF is the end-of-input terminal $, an explicit terminal rather
	// than a conflated "empty lookahead".
	SymbolEOF = Symbol(maskTerm | maskSentinel | numEOF)

	symbolNameEOF = "$"

	nonTerminalNumMin = symbolNum(2)
	terminalNumMin    = symbolNum(2)
	symbolNumMax      = symbolNum(0xffff) >> 2
)

func (s Symbol) String() string {
	kind, isStart, isEOF, num := s.describe()
	var prefix string
	switch {
	case isStart:
		prefix = "S"
	case isEOF:
		prefix = "$"
		return prefix
	case kind == symbolKindNonTerminal:
		prefix = "n"
	default:
		prefix = "t"
	}
	return fmt.Sprintf("%v%v", prefix, num)
}

func newSymbol(kind symbolKind, isSentinel bool, num symbolNum) (Symbol, error) {
	if num > symbolNumMax {
		return SymbolNil, fmt.Errorf("a symbol number exceeds the limit; limit: %v, passed: %v", symbolNumMax, num)
	}
	if kind == symbolKindTerminal && isSentinel && num != symbolNum(numEOF) {
		return SymbolNil, fmt.Errorf("only the EOF terminal may be a sentinel terminal")
	}

	kindMask := maskNonTerm
	if kind == symbolKindTerminal {
		kindMask = maskTerm
	}
	sentinelMask := uint16(0)
	if isSentinel {
		sentinelMask = maskSentinel
	}
	return Symbol(kindMask | sentinelMask | uint16(num)), nil
}

func (s Symbol) num() symbolNum {
	_, _, _, num := s.describe()
	return num
}

func (s Symbol) isNil() bool {
	return s == SymbolNil
}

// IsStart reports whether s is the augmented start symbol S'.
func (s Symbol) IsStart() bool {
	if s.isNil() {
		return false
	}
	_, isStart, _, _ := s.describe()
	return isStart
}

// IsEOF reports whether s is the end-of-input terminal $.
func (s Symbol) IsEOF() bool {
	if s.isNil() {
		return false
	}
	_, _, isEOF, _ := s.describe()
	return isEOF
}

// IsNonTerminal reports whether s belongs to the non-terminal partition.
func (s Symbol) IsNonTerminal() bool {
	if s.isNil() {
		return false
	}
	kind, _, _, _ := s.describe()
	return kind == symbolKindNonTerminal
}

// IsTerminal reports whether s belongs to the terminal partition.
func (s Symbol) IsTerminal() bool {
	return !s.isNil() && !s.IsNonTerminal()
}

func (s Symbol) describe() (symbolKind, bool, bool, symbolNum) {
	kind := symbolKindNonTerminal
	if uint16(s)&maskKind > 0 {
		kind = symbolKindTerminal
	}
	isStart, isEOF := false, false
	if uint16(s)&maskSentinel > 0 {
		if kind == symbolKindNonTerminal {
			isStart = true
		} else {
			isEOF = true
		}
	}
	return kind, isStart, isEOF, symbolNum(uint16(s) & maskNumber)
}

// symbolTable interns symbol texts and assigns dense numbers. Construction-time
// mutation (registering symbols) and read-only lookup after the grammar is
// frozen go through the same type; nothing currently enforces the split at
// the type level.
type symbolTable struct {
	text2Sym     map[string]Symbol
	sym2Text     map[Symbol]string
	nonTermTexts []string
	termTexts    []string
	nonTermNum   symbolNum
	termNum      symbolNum
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		text2Sym: map[string]Symbol{
			symbolNameEOF: SymbolEOF,
		},
		sym2Text: map[Symbol]string{
			SymbolEOF: symbolNameEOF,
		},
		termTexts: []string{
			"",            // Nil
			symbolNameEOF, // EOF
		},
		nonTermTexts: []string{
			"", // Nil
			"", // Start symbol
		},
		nonTermNum: nonTerminalNumMin,
		termNum:    terminalNumMin,
	}
}

// registerStart interns text as the augmented start symbol S', distinct
// from whatever non-terminal the caller declares as its own grammar start.
func (t *symbolTable) registerStart(text string) Symbol {
	t.text2Sym[text] = SymbolStart
	t.sym2Text[SymbolStart] = text
	t.nonTermTexts[SymbolStart.num().Int()] = text
	return SymbolStart
}

func (t *symbolTable) registerNonTerminal(text string) (Symbol, error) {
	if sym, ok := t.text2Sym[text]; ok {
		return sym, nil
	}
	sym, err := newSymbol(symbolKindNonTerminal, false, t.nonTermNum)
	if err != nil {
		return SymbolNil, err
	}
	t.nonTermNum++
	t.text2Sym[text] = sym
	t.sym2Text[sym] = text
	t.nonTermTexts = append(t.nonTermTexts, text)
	return sym, nil
}

func (t *symbolTable) registerTerminal(text string) (Symbol, error) {
	if sym, ok := t.text2Sym[text]; ok {
		return sym, nil
	}
	sym, err := newSymbol(symbolKindTerminal, false, t.termNum)
	if err != nil {
		return SymbolNil, err
	}
	t.termNum++
	t.text2Sym[text] = sym
	t.sym2Text[sym] = text
	t.termTexts = append(t.termTexts, text)
	return sym, nil
}

func (t *symbolTable) toSymbol(text string) (Symbol, bool) {
	sym, ok := t.text2Sym[text]
	return sym, ok
}

func (t *symbolTable) toText(sym Symbol) (string, bool) {
	text, ok := t.sym2Text[sym]
	return text, ok
}

func (t *symbolTable) terminalCount() int {
	return t.termNum.Int()
}

func (t *symbolTable) nonTerminalCount() int {
	return t.nonTermNum.Int()
}

func (t *symbolTable) terminals() []Symbol {
	syms := make([]Symbol, 0, t.termNum.Int()-terminalNumMin.Int())
	for sym := range t.sym2Text {
		if !sym.IsTerminal() || sym.isNil() {
			continue
		}
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

func (t *symbolTable) nonTerminals() []Symbol {
	syms := make([]Symbol, 0, t.nonTermNum.Int()-nonTerminalNumMin.Int())
	for sym := range t.sym2Text {
		if !sym.IsNonTerminal() || sym.isNil() {
			continue
		}
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
