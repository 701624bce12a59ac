package grammar

// Compiled is the JSON-serializable artifact produced by Grammar.Compile:
// the symbol table, production list, and parse table, bundled so a client
// can load a previously-built grammar without repeating state-machine
// construction.
type Compiled struct {
	Terminals    []string `json:"terminals"`
	NonTerminals []string `json:"nonTerminals"`

	Productions []CompiledProduction `json:"productions"`

	InitialState int `json:"initialState"`
	StateCount   int `json:"stateCount"`

	// Action is a flattened [state][terminal] matrix; Kind 0 means
	// error, see ActionType.
	Action []CompiledAction `json:"action"`
	// GoTo is a flattened [state][nonTerminal] matrix; -1 means no entry.
	GoTo []int `json:"goTo"`

	EOFSymbol int `json:"eofSymbol"`
}

// CompiledProduction is a production's (lhs, rhs) as dense symbol numbers.
// LHS is always a non-terminal number and is stored as is; within RHS,
// non-terminals are negated so terminals and non-terminals share one flat
// array instead of needing a parallel kind tag per entry.
type CompiledProduction struct {
	LHS int   `json:"lhs"`
	RHS []int `json:"rhs"`
}

// CompiledAction mirrors grammar.Action in a JSON-friendly shape.
type CompiledAction struct {
	Kind  int `json:"kind"`
	State int `json:"state,omitempty"`
	Prod  int `json:"prod,omitempty"`
}

// Compile flattens a built Grammar into a Compiled artifact, calling Build
// first if it has not been called yet.
func (g *Grammar) Compile() (*Compiled, error) {
	if g.table == nil {
		if _, _, err := g.Build(); err != nil {
			return nil, err
		}
	}

	termCount := g.symTab.terminalCount()
	nonTermCount := g.symTab.nonTerminalCount()

	c := &Compiled{
		Terminals:    make([]string, termCount),
		NonTerminals: make([]string, nonTermCount),
		InitialState: g.table.InitialState.Int(),
		StateCount:   g.table.StateCount(),
		EOFSymbol:    SymbolEOF.num().Int(),
	}
	for _, sym := range g.symTab.terminals() {
		text, _ := g.symTab.toText(sym)
		c.Terminals[sym.num().Int()] = text
	}
	c.Terminals[SymbolEOF.num().Int()] = symbolNameEOF
	for _, sym := range g.symTab.nonTerminals() {
		text, _ := g.symTab.toText(sym)
		c.NonTerminals[sym.num().Int()] = text
	}

	for _, p := range g.prods.productions() {
		cp := CompiledProduction{LHS: p.LHS.num().Int()}
		for _, s := range p.RHS {
			if s.IsTerminal() {
				cp.RHS = append(cp.RHS, s.num().Int())
			} else {
				cp.RHS = append(cp.RHS, -s.num().Int())
			}
		}
		c.Productions = append(c.Productions, cp)
	}

	c.Action = make([]CompiledAction, c.StateCount*termCount)
	for s := 0; s < c.StateCount; s++ {
		for t := 0; t < termCount; t++ {
			act := g.table.action[s][t]
			ca := CompiledAction{Kind: int(act.Type)}
			if act.Type == ActionShift {
				ca.State = act.State.Int()
			} else if act.Type == ActionReduce {
				ca.Prod = act.Prod.Num.Int()
			}
			c.Action[s*termCount+t] = ca
		}
	}

	c.GoTo = make([]int, c.StateCount*nonTermCount)
	for s := 0; s < c.StateCount; s++ {
		for n := 0; n < nonTermCount; n++ {
			if state, ok := g.table.GoTo(StateNum(s), symbolFromNonTerminalNum(symbolNum(n))); ok {
				c.GoTo[s*nonTermCount+n] = state.Int()
			} else {
				c.GoTo[s*nonTermCount+n] = -1
			}
		}
	}

	return c, nil
}

func symbolFromNonTerminalNum(num symbolNum) Symbol {
	if num == symbolNum(numStart) {
		return SymbolStart
	}
	sym, _ := newSymbol(symbolKindNonTerminal, false, num)
	return sym
}
