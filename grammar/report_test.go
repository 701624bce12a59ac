package grammar

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteReportBeforeBuildFails(t *testing.T) {
	g := newClassicCLR1Grammar(t)
	var buf bytes.Buffer
	if err := WriteReport(&buf, g); err == nil {
		t.Fatalf("WriteReport should fail before Build has been called")
	}
}

func TestWriteReportRendersStatesAndProductions(t *testing.T) {
	g := newClassicCLR1Grammar(t)
	if _, _, err := g.Build(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, g); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"# Conflicts", "# Productions", "# States", "State 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteReportListsConflicts(t *testing.T) {
	g, err := NewGrammar(
		"S",
		[]string{"x"},
		[]Rule{
			{LHS: "S", RHS: []string{"A"}},
			{LHS: "S", RHS: []string{"B"}},
			{LHS: "A", RHS: []string{"x"}},
			{LHS: "B", RHS: []string{"x"}},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := g.Build(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, g); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "No conflicts.") {
		t.Errorf("report should list the reduce/reduce conflict, not claim there are none")
	}
}
