package grammar

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// WriteReport renders a human-readable dump of the parse table's conflicts,
// the grammar's productions, and the automaton's states with their items,
// via a fixed text/template layout rather than ad-hoc Fprintf calls
// scattered through the CLI. The action/goto cells themselves are not
// printed.
func WriteReport(w io.Writer, g *Grammar) error {
	if g.table == nil {
		return fmt.Errorf("grammar has not been built yet")
	}

	fns := template.FuncMap{
		"productions": func(g *Grammar) []*Production {
			return g.prods.productions()
		},
		"symText": func(sym Symbol) string {
			text, _ := g.SymbolText(sym)
			return text
		},
		"prodText": func(p *Production) string {
			var b strings.Builder
			lhsText, _ := g.SymbolText(p.LHS)
			fmt.Fprintf(&b, "%v →", lhsText)
			for _, s := range p.RHS {
				text, _ := g.SymbolText(s)
				fmt.Fprintf(&b, " %v", text)
			}
			return b.String()
		},
		"itemText": func(it *item) string {
			prod := g.prods.byID[it.prod]
			var b strings.Builder
			lhsText, _ := g.SymbolText(prod.LHS)
			fmt.Fprintf(&b, "%v →", lhsText)
			for i, s := range prod.RHS {
				if i == it.dot {
					fmt.Fprint(&b, " ・")
				}
				text, _ := g.SymbolText(s)
				fmt.Fprintf(&b, " %v", text)
			}
			if it.dot >= len(prod.RHS) {
				fmt.Fprint(&b, " ・")
			}
			return b.String()
		},
	}

	tmpl, err := template.New("report").Funcs(fns).Parse(reportTemplate)
	if err != nil {
		return err
	}

	data := struct {
		Grammar   *Grammar
		Automaton *Automaton
		Table     *ParsingTable
	}{Grammar: g, Automaton: g.automaton, Table: g.table}

	return tmpl.Execute(w, data)
}

const reportTemplate = `# Conflicts

{{ if .Table.Conflicts }}{{ range .Table.Conflicts }}{{ . }}
{{ end }}{{ else }}No conflicts.
{{ end }}
# Productions

{{ range productions .Grammar }}{{ .Num }}: {{ prodText . }}
{{ end }}
# States ({{ len .Automaton.States }} total)
{{ range .Automaton.States }}
## State {{ .Num }}
{{ range .Items }}{{ itemText . }}
{{ end }}{{ end }}`
