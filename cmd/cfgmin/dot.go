package main

import (
	"github.com/npillmayer/cfgmin/dot"
	"github.com/npillmayer/cfgmin/grammar"
	"github.com/npillmayer/cfgmin/minimize"
	"github.com/spf13/cobra"
)

var dotFlags = struct {
	output    *string
	minimized *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "dot",
		Short:   "Export a grammar literal to Graphviz DOT format",
		Example: `  cfgmin dot grammar.txt --minimized | dot -Tsvg > grammar.svg`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runDot,
	}
	dotFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	dotFlags.minimized = cmd.Flags().BoolP("minimized", "m", false, "export the minimized grammar")
	rootCmd.AddCommand(cmd)
}

func runDot(cmd *cobra.Command, args []string) (retErr error) {
	g, err := readGrammar(args)
	if err != nil {
		return err
	}
	if *dotFlags.minimized {
		if g, err = minimize.Minimize(g, options(cmd)...); err != nil {
			return err
		}
	}
	w, err := output(*dotFlags.output)
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()
	return dot.Write(w, g, grammar.NonTerminal(*rootFlags.start))
}
