package main

import (
	"github.com/npillmayer/cfgmin/grammar"
	"github.com/npillmayer/cfgmin/literal"
	"github.com/npillmayer/cfgmin/minimize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var minimizeFlags = struct {
	output *string
	tree   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "minimize",
		Short:   "Minimize a grammar literal",
		Example: `  cfgmin minimize grammar.txt -o minimized.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runMinimize,
	}
	minimizeFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	minimizeFlags.tree = cmd.Flags().Bool("tree", false, "display the result as a tree")
	rootCmd.AddCommand(cmd)
}

func runMinimize(cmd *cobra.Command, args []string) (retErr error) {
	g, err := readGrammar(args)
	if err != nil {
		return err
	}
	reduced, err := minimize.Minimize(g, options(cmd)...)
	if err != nil {
		return err
	}
	tracer().Infof("reduced %d non-terminals to %d", g.Size(), reduced.Size())
	if *minimizeFlags.tree {
		return renderTree(reduced)
	}
	w, err := output(*minimizeFlags.output)
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()
	return literal.Format(w, reduced)
}

// renderTree displays a grammar as a tree of non-terminals and their rules.
func renderTree(g *grammar.Grammar) error {
	root := pterm.NewTreeFromLeveledList(leveledGrammar(g))
	return pterm.DefaultTree.WithRoot(root).Render()
}

func leveledGrammar(g *grammar.Grammar) pterm.LeveledList {
	name := g.Name
	if name == "" {
		name = "grammar"
	}
	ll := pterm.LeveledList{{Level: 0, Text: name}}
	g.EachNonTerminal(func(N grammar.Symbol, rules []grammar.Rule) interface{} {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: N.String()})
		for _, r := range rules {
			ll = append(ll, pterm.LeveledListItem{Level: 2, Text: r.String()})
		}
		return nil
	})
	return ll
}
