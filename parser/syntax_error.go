package parser

import (
	"bufio"
	"fmt"
	"strings"
)

// SyntaxError reports an unexpected token and the set of terminals the
// parser would have accepted instead.
type SyntaxError struct {
	Row, Col          int
	Token             string
	Lexeme            string
	ExpectedTerminals []string
	SourceLine        string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: unexpected token %v %#v", e.Row, e.Col, e.Token, e.Lexeme)
	if len(e.ExpectedTerminals) > 0 {
		fmt.Fprintf(&b, " (expected one of: %v)", strings.Join(e.ExpectedTerminals, ", "))
	}
	if e.SourceLine != "" {
		fmt.Fprintf(&b, "\n    %v", e.SourceLine)
	}
	return b.String()
}

// sourceLine extracts the row-th line (1-indexed) from src, or "" if it is
// out of range. The whole source is handed over up front via WithSource;
// halting on the first error does not require streaming.
func sourceLine(src string, row int) string {
	if row <= 0 {
		return ""
	}
	s := bufio.NewScanner(strings.NewReader(src))
	for i := 1; s.Scan(); i++ {
		if i == row {
			return s.Text()
		}
	}
	return ""
}
