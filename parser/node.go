package parser

import (
	"fmt"
	"io"
)

// Node is a concrete syntax tree node: a terminal leaf carries Text, a
// non-terminal carries Children.
type Node struct {
	Symbol   string
	Text     string
	Row      int
	Col      int
	Children []*Node
}

// PrintTree renders node as an indented tree with box-drawing connectors.
func PrintTree(w io.Writer, node *Node) {
	printTree(w, node, "", "")
}

func printTree(w io.Writer, node *Node, ruledLine string, childPrefix string) {
	if node == nil {
		return
	}

	if node.Text != "" {
		fmt.Fprintf(w, "%v%v %#v\n", ruledLine, node.Symbol, node.Text)
	} else {
		fmt.Fprintf(w, "%v%v\n", ruledLine, node.Symbol)
	}

	n := len(node.Children)
	for i, child := range node.Children {
		line := "└─ "
		prefix := "   "
		if i < n-1 {
			line = "├─ "
			prefix = "│  "
		}
		printTree(w, child, childPrefix+line, childPrefix+prefix)
	}
}
