package grammar

import "fmt"

// Grammar is the process-wide, read-only static grammar: the symbol
// universe, the production list, and the precomputed FIRST sets. These never
// change after NewGrammar returns; the automaton and parse table are added
// once, by the first call to Build, and cached from then on.
type Grammar struct {
	symTab   *symbolTable
	prods    *productionSet
	first    *firstSet
	startSym Symbol

	automaton *Automaton
	table     *ParsingTable
}

// Rule is the compile-time shape a grammar author writes productions in: a
// non-terminal LHS name and an ordered list of RHS symbol names. A name
// that is not itself some rule's LHS must appear in NewGrammar's terminals
// argument.
type Rule struct {
	LHS string
	RHS []string
}

// NewGrammar builds the static grammar described by rules over the given
// start symbol and terminal alphabet. Every name in a rule's RHS that is
// not itself some rule's LHS must appear in terminals.
func NewGrammar(start string, terminals []string, rules []Rule) (*Grammar, error) {
	symTab := newSymbolTable()

	lhsNames := map[string]bool{}
	for _, r := range rules {
		lhsNames[r.LHS] = true
	}

	for _, name := range terminals {
		if lhsNames[name] {
			return nil, fmt.Errorf("%q is declared as both a terminal and a non-terminal", name)
		}
		if _, err := symTab.registerTerminal(name); err != nil {
			return nil, err
		}
	}

	if !lhsNames[start] {
		return nil, fmt.Errorf("start symbol %q has no productions", start)
	}
	// SymbolStart names the augmented start S', a symbol distinct from the
	// grammar's own declared start non-terminal: the augmenting production
	// is S' → start, not a self-loop on start.
	symTab.registerStart(start + "'")
	startSym, err := symTab.registerNonTerminal(start)
	if err != nil {
		return nil, err
	}
	for lhs := range lhsNames {
		if lhs == start {
			continue
		}
		if _, err := symTab.registerNonTerminal(lhs); err != nil {
			return nil, err
		}
	}

	prods := newProductionSet()

	augStart, err := newProduction(SymbolStart, []Symbol{startSym})
	if err != nil {
		return nil, err
	}
	if _, err := prods.append(augStart); err != nil {
		return nil, err
	}

	for _, r := range rules {
		lhs, ok := symTab.toSymbol(r.LHS)
		if !ok {
			return nil, fmt.Errorf("undefined non-terminal %q", r.LHS)
		}
		rhs := make([]Symbol, len(r.RHS))
		for i, name := range r.RHS {
			sym, ok := symTab.toSymbol(name)
			if !ok {
				return nil, fmt.Errorf("production %q: undefined symbol %q", r.LHS, name)
			}
			rhs[i] = sym
		}
		prod, err := newProduction(lhs, rhs)
		if err != nil {
			return nil, err
		}
		if _, err := prods.append(prod); err != nil {
			return nil, err
		}
	}

	first := genFirstSet(prods, symTab.terminalCount())

	g := &Grammar{symTab: symTab, prods: prods, first: first, startSym: startSym}
	return g, nil
}

// StartSymbolName returns the text of the grammar's (non-augmented) start
// symbol.
func (g *Grammar) StartSymbolName() string {
	text, _ := g.symTab.toText(g.startSym)
	return text
}

// SymbolText returns the registered text for sym.
func (g *Grammar) SymbolText(sym Symbol) (string, bool) {
	return g.symTab.toText(sym)
}

// Terminal resolves a terminal's text to its Symbol.
func (g *Grammar) Terminal(text string) (Symbol, bool) {
	sym, ok := g.symTab.toSymbol(text)
	if !ok || !sym.IsTerminal() {
		return SymbolNil, false
	}
	return sym, true
}

// Terminals returns every registered terminal symbol, in dense order.
func (g *Grammar) Terminals() []Symbol {
	return g.symTab.terminals()
}

// NonTerminals returns every registered non-terminal symbol, in dense
// order (including the augmented start symbol S').
func (g *Grammar) NonTerminals() []Symbol {
	return g.symTab.nonTerminals()
}

// Build lazily constructs the automaton and parse table on first use and
// caches them for the process lifetime.
func (g *Grammar) Build() (*ParsingTable, []Conflict, error) {
	if g.table != nil {
		return g.table, g.table.conflicts, nil
	}

	automaton, err := genAutomaton(g)
	if err != nil {
		return nil, nil, err
	}
	g.automaton = automaton

	table, conflicts := buildParsingTable(g, automaton)
	g.table = table

	return table, conflicts, nil
}

// Automaton returns the state machine built by Build, or nil if Build has
// not been called yet.
func (g *Grammar) Automaton() *Automaton {
	return g.automaton
}
