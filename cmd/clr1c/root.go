package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clr1c",
	Short: "Build and drive a canonical LR(1) parsing table for the built-in K&R-C-like grammar",
	Long: `clr1c constructs the canonical LR(1) automaton and parse table for this
engine's built-in grammar, and can drive a token stream through it:
  - build  writes the compiled parsing table as JSON
  - show   renders a human-readable report of states, productions and conflicts
  - parse  tokenizes and parses a source file with the demo lexer`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the command tree; main only needs to print and exit.
func Execute() error {
	return rootCmd.Execute()
}
