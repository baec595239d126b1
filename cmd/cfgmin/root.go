package main

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/npillmayer/cfgmin/grammar"
	"github.com/npillmayer/cfgmin/literal"
	"github.com/npillmayer/cfgmin/minimize"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// Tracing keys of the packages of this module.
var traceKeys = []string{
	"cfgmin.cmd",
	"cfgmin.grammar",
	"cfgmin.literal",
	"cfgmin.minimize",
	"cfgmin.dot",
}

var rootFlags = struct {
	start      *string
	fixedPoint *bool
	trace      *string
}{}

var rootCmd = &cobra.Command{
	Use:   "cfgmin",
	Short: "Minimize context-free grammars",
	Long: `cfgmin reduces a context-free grammar to an equivalent one with fewer
non-terminals and rules:
- Non-terminals with identical sets of rules are merged.
- Non-terminals not reachable from the start symbol are removed.
- Non-terminals not deriving any terminal string are removed.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupTracing,
}

func init() {
	flags := rootCmd.PersistentFlags()
	rootFlags.start = flags.StringP("start", "s", minimize.DefaultStartSymbol, "name of the start symbol")
	rootFlags.fixedPoint = flags.Bool("fixed-point", false, "merge equivalent non-terminals until none are left")
	rootFlags.trace = flags.String("trace", "Error", "trace level [Debug|Info|Error]")
}

func Execute() error {
	return rootCmd.Execute()
}

func setupTracing(cmd *cobra.Command, args []string) error {
	gtrace.SyntaxTracer = gologadapter.New()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Debugf("trace level is %s", *rootFlags.trace)
	return nil
}

// options collects the minimization options from the command line.
func options(cmd *cobra.Command) []minimize.Option {
	return []minimize.Option{
		minimize.StartSymbol(*rootFlags.start),
		minimize.FixedPoint(fixedPoint(cmd)),
	}
}

// fixedPoint is set by flag or, if the flag is absent, by the global
// configuration key 'minimize-fixed-point'. The command itself does not load
// a configuration; the key is honoured when an embedding application has
// initialized gconf.
func fixedPoint(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("fixed-point") {
		return *rootFlags.fixedPoint
	}
	return gconf.GetBool("minimize-fixed-point")
}

// readGrammar reads a grammar literal from a file, or from stdin if no
// file argument is given.
func readGrammar(args []string) (*grammar.Grammar, error) {
	var src []byte
	var err error
	name := "stdin"
	if len(args) > 0 {
		name = args[0]
		src, err = ioutil.ReadFile(name)
	} else {
		src, err = ioutil.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}
	return literal.ParseNamed(name, string(src))
}

// output opens the output file, or returns stdout for an empty path.
func output(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
