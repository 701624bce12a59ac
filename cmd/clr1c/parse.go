package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cgrammar/clr1c/grammar"
	"github.com/cgrammar/clr1c/internal/clex"
	"github.com/cgrammar/clr1c/parser"
)

var parseFlags = struct {
	source *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse",
		Short:   "Tokenize and parse a source file (or stdin), printing the concrete syntax tree",
		Example: `  cat src.c | clr1c parse`,
		Args:    cobra.NoArgs,
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := grammar.CGrammar()
	if err != nil {
		return fmt.Errorf("loading the grammar: %w", err)
	}

	var r io.Reader = os.Stdin
	if *parseFlags.source != "" {
		f, err := os.Open(*parseFlags.source)
		if err != nil {
			return fmt.Errorf("opening source %s: %w", *parseFlags.source, err)
		}
		defer f.Close()
		r = f
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	log.Info("building the canonical LR(1) parse table")
	p, err := parser.New(g)
	if err != nil {
		return fmt.Errorf("building the parse table: %w", err)
	}
	p = p.WithSource(string(src))

	tree, err := p.Parse(clex.New(string(src)))
	if err != nil {
		var synErr *parser.SyntaxError
		if errors.As(err, &synErr) {
			fmt.Fprintln(os.Stderr, synErr.Error())
			os.Exit(1)
		}
		return err
	}

	parser.PrintTree(os.Stdout, tree)
	return nil
}
