package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cgrammar/clr1c/grammar"
)

var buildFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "build",
		Short:   "Build the canonical LR(1) parsing table and write it as JSON",
		Example: `  clr1c build -o table.json`,
		Args:    cobra.NoArgs,
		RunE:    runBuild,
	}
	buildFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	g, err := grammar.CGrammar()
	if err != nil {
		return fmt.Errorf("loading the grammar: %w", err)
	}

	log.Info("building the canonical LR(1) automaton and parse table")
	table, conflicts, err := g.Build()
	if err != nil {
		return fmt.Errorf("building the parse table: %w", err)
	}
	for _, c := range conflicts {
		log.Warn(c)
	}
	log.Infof("%d states, %d conflicts", table.StateCount(), len(conflicts))

	compiled, err := g.Compile()
	if err != nil {
		return fmt.Errorf("compiling the grammar: %w", err)
	}

	out := os.Stdout
	if *buildFlags.output != "" {
		f, err := os.Create(*buildFlags.output)
		if err != nil {
			return fmt.Errorf("opening output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(compiled)
}
