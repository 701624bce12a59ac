package grammar

import "fmt"

// ActionType tags the kind of decision installed in an action-table cell:
// shift, reduce, accept, or empty (error).
type ActionType int

const (
	ActionError ActionType = iota
	ActionShift
	ActionReduce
	ActionAccept
)

func (t ActionType) String() string {
	switch t {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// Action is one action-table cell: at most one of shift/reduce/accept, or
// the zero value (error).
type Action struct {
	Type  ActionType
	State StateNum     // valid when Type == ActionShift
	Prod  *Production  // valid when Type == ActionReduce
}

// ConflictKind distinguishes the two conflict shapes a CLR(1) table
// synthesis can hit.
type ConflictKind int

const (
	ConflictShiftReduce ConflictKind = iota
	ConflictReduceReduce
)

// ResolvedBy names the policy that picked a winner for a conflicting cell:
// shift always wins a shift/reduce conflict because shift cells are written
// before reduce cells; reduce/reduce ties fall back to whichever production
// registered first.
type ResolvedBy int

const (
	ResolvedByShift ResolvedBy = iota
	ResolvedByEarliestProduction
)

// Conflict records a table-synthesis conflict instead of silently
// overwriting the earlier action.
type Conflict struct {
	Kind       ConflictKind
	State      StateNum
	Symbol     Symbol
	Winner     *Production // for reduce/reduce, the production kept
	Loser      *Production // the production/shift discarded
	ResolvedBy ResolvedBy
}

// ParsingTable is the dense (state, symbol) action/goto matrix.
type ParsingTable struct {
	action       [][]Action  // [state][terminal num]
	goTo         [][]StateNum // [state][non-terminal num], -1 means "no entry"
	termCount    int
	nonTermCount int

	InitialState StateNum
	StartSymbol  Symbol

	conflicts []Conflict
}

func newParsingTable(stateCount, termCount, nonTermCount int) *ParsingTable {
	action := make([][]Action, stateCount)
	goTo := make([][]StateNum, stateCount)
	for i := range action {
		action[i] = make([]Action, termCount)
		goTo[i] = make([]StateNum, nonTermCount)
		for j := range goTo[i] {
			goTo[i][j] = -1
		}
	}
	return &ParsingTable{action: action, goTo: goTo, termCount: termCount, nonTermCount: nonTermCount}
}

// ActionAt looks up the action-table cell for (state, sym). sym must be a
// terminal.
func (t *ParsingTable) ActionAt(state StateNum, sym Symbol) Action {
	return t.action[state.Int()][sym.num().Int()]
}

// GoTo looks up the goto-table cell for (state, sym). sym must be a
// non-terminal; returns ok=false for an empty cell.
func (t *ParsingTable) GoTo(state StateNum, sym Symbol) (StateNum, bool) {
	s := t.goTo[state.Int()][sym.num().Int()]
	if s < 0 {
		return 0, false
	}
	return s, true
}

func (t *ParsingTable) writeShift(state StateNum, sym Symbol, next StateNum) *Conflict {
	cell := &t.action[state.Int()][sym.num().Int()]
	if cell.Type == ActionReduce {
		loser := cell.Prod
		*cell = Action{Type: ActionShift, State: next}
		return &Conflict{
			Kind: ConflictShiftReduce, State: state, Symbol: sym,
			Winner: nil, Loser: loser, ResolvedBy: ResolvedByShift,
		}
	}
	*cell = Action{Type: ActionShift, State: next}
	return nil
}

func (t *ParsingTable) writeReduce(state StateNum, sym Symbol, prod *Production) *Conflict {
	cell := &t.action[state.Int()][sym.num().Int()]
	switch cell.Type {
	case ActionShift:
		// Shift actions are installed before reduce actions during table
		// population (buildParsingTable), so reaching a shift cell here
		// means the dangling-else policy already won; the reduce loses.
		return &Conflict{
			Kind: ConflictShiftReduce, State: state, Symbol: sym,
			Winner: nil, Loser: prod, ResolvedBy: ResolvedByShift,
		}
	case ActionReduce:
		if cell.Prod.Num == prod.Num {
			return nil
		}
		winner, loser := cell.Prod, prod
		if prod.Num < winner.Num {
			winner, loser = prod, cell.Prod
		}
		*cell = Action{Type: ActionReduce, Prod: winner}
		return &Conflict{
			Kind: ConflictReduceReduce, State: state, Symbol: sym,
			Winner: winner, Loser: loser, ResolvedBy: ResolvedByEarliestProduction,
		}
	case ActionAccept:
		return nil
	default:
		*cell = Action{Type: ActionReduce, Prod: prod}
		return nil
	}
}

func (t *ParsingTable) writeAccept(state StateNum, sym Symbol) {
	t.action[state.Int()][sym.num().Int()] = Action{Type: ActionAccept}
}

func (t *ParsingTable) writeGoTo(state StateNum, sym Symbol, next StateNum) {
	t.goTo[state.Int()][sym.num().Int()] = next
}

// buildParsingTable lowers the automaton into action/goto cells:
//
//   - For S --X--> T: shift(T) if X terminal, goto(T) if X non-terminal.
//   - For completed item [A → γ•, L] in S: for each ℓ in L, reduce(A → γ).
//
// Shift cells are written before reduce cells for every state (the
// dangling-else policy): a shift/reduce conflict therefore always resolves
// to the shift that was already in the cell.
func buildParsingTable(g *Grammar, automaton *Automaton) (*ParsingTable, []Conflict) {
	termCount := g.symTab.terminalCount()
	nonTermCount := g.symTab.nonTerminalCount()
	table := newParsingTable(len(automaton.States), termCount, nonTermCount)
	table.InitialState = automaton.Start
	startSym, _ := g.symTab.toSymbol(g.StartSymbolName())
	table.StartSymbol = startSym

	var conflicts []Conflict

	// Pass 1: shifts and gotos.
	for _, s := range automaton.States {
		for x, succID := range s.transitions {
			succ := automaton.stateByID(succID)
			if x.IsTerminal() {
				if c := table.writeShift(s.Num, x, succ.Num); c != nil {
					conflicts = append(conflicts, *c)
				}
			} else {
				table.writeGoTo(s.Num, x, succ.Num)
			}
		}
	}

	// Pass 2: reduces and accept.
	for _, s := range automaton.States {
		for la, prods := range s.reducible {
			for _, prod := range prods {
				if prod.LHS.IsStart() && la.IsEOF() {
					table.writeAccept(s.Num, la)
					continue
				}
				if c := table.writeReduce(s.Num, la, prod); c != nil {
					conflicts = append(conflicts, *c)
				}
			}
		}
	}

	table.conflicts = conflicts

	return table, conflicts
}

// StateCount reports the number of rows in the action/goto matrices.
func (t *ParsingTable) StateCount() int {
	return len(t.action)
}

// Conflicts returns every conflict recorded during synthesis.
func (t *ParsingTable) Conflicts() []Conflict {
	return t.conflicts
}

func (c Conflict) String() string {
	switch c.Kind {
	case ConflictShiftReduce:
		return fmt.Sprintf("shift/reduce conflict in state %v on %v: shift wins over reduce %v", c.State, c.Symbol, c.Loser.Num)
	default:
		return fmt.Sprintf("reduce/reduce conflict in state %v on %v: reduce %v wins over reduce %v", c.State, c.Symbol, c.Winner.Num, c.Loser.Num)
	}
}
