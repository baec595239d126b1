package main

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cfgmin/grammar"
	"github.com/npillmayer/cfgmin/literal"
	"github.com/npillmayer/cfgmin/minimize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	init *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Minimize grammar literals interactively",
		Args:  cobra.NoArgs,
		RunE:  runREPL,
	}
	replFlags.init = cmd.Flags().String("init", "", "file of commands to execute on startup")
	rootCmd.AddCommand(cmd)
}

const replHelp = `{ ... }            minimize a grammar literal
:load <file>       minimize a grammar literal from a file
:start <name>      set the start symbol
:fixpoint on|off   switch fixed point merging
:show              display the last result as a literal
:tree              display the last result as a tree
:quit              leave (or <ctrl>D)`

func runREPL(cmd *cobra.Command, args []string) error {
	initDisplay()
	pterm.Info.Println("Welcome to cfgmin")
	repl, err := readline.New("cfgmin> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := newIntp(*rootFlags.start, fixedPoint(cmd))
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D")
	intp.loadInitFile(*replFlags.init)
	intp.REPL()
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl       *readline.Instance
	start      string
	fixedPoint bool
	input      *grammar.Grammar // last grammar entered
	result     *grammar.Grammar // minimized form of input
}

func newIntp(start string, fixedPoint bool) *Intp {
	return &Intp{start: start, fixedPoint: fixedPoint}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or minimizes a grammar literal, given on a line by
// itself. It returns true if the session should end.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		return false, intp.minimize("input", line)
	}
	fields := strings.Fields(line)
	switch cmd, args := fields[0], fields[1:]; cmd {
	case ":quit", ":q":
		return true, nil
	case ":help", ":h":
		pterm.Println(replHelp)
	case ":start":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: :start <name>")
		}
		intp.start = args[0]
		pterm.Info.Println("start symbol is " + intp.start)
	case ":fixpoint":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return false, fmt.Errorf("usage: :fixpoint on|off")
		}
		intp.fixedPoint = args[0] == "on"
		pterm.Info.Println("fixed point merging is " + args[0])
	case ":load":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: :load <file>")
		}
		src, err := readFile(args[0])
		if err != nil {
			return false, err
		}
		return false, intp.minimize(args[0], src)
	case ":show":
		if intp.result == nil {
			return false, fmt.Errorf("no grammar minimized yet")
		}
		pterm.Println(literal.String(intp.result))
	case ":tree":
		if intp.result == nil {
			return false, fmt.Errorf("no grammar minimized yet")
		}
		return false, renderTree(intp.result)
	default:
		return false, fmt.Errorf("unknown command %s, try :help", cmd)
	}
	return false, nil
}

func (intp *Intp) minimize(name string, src string) error {
	g, err := literal.ParseNamed(name, src)
	if err != nil {
		return err
	}
	reduced, err := minimize.Minimize(g,
		minimize.StartSymbol(intp.start),
		minimize.FixedPoint(intp.fixedPoint))
	if err != nil {
		return err
	}
	intp.input, intp.result = g, reduced
	pterm.Info.Println(fmt.Sprintf("%d → %d non-terminals, %d → %d rules",
		g.Size(), reduced.Size(), g.RuleCount(), reduced.RuleCount()))
	pterm.Println(literal.String(reduced))
	return nil
}

func readFile(path string) (string, error) {
	src, err := ioutil.ReadFile(path)
	return string(src), err
}
