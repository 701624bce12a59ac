package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cgrammar/clr1c/grammar"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a human-readable report of the grammar's states, productions, and conflicts",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	g, err := grammar.CGrammar()
	if err != nil {
		return fmt.Errorf("loading the grammar: %w", err)
	}
	if _, _, err := g.Build(); err != nil {
		return fmt.Errorf("building the parse table: %w", err)
	}
	return grammar.WriteReport(os.Stdout, g)
}
