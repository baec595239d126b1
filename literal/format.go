package literal

import (
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/cfgmin/grammar"
)

// Format writes g as a grammar literal, one non-terminal per line.
//
// Terminals starting with an upper-case letter are written like any other
// name and would be read back as non-terminals.
func Format(w io.Writer, g *grammar.Grammar) error {
	var b strings.Builder
	b.WriteString("{\n")
	g.EachNonTerminal(func(N grammar.Symbol, rules []grammar.Rule) interface{} {
		b.WriteString("    ")
		b.WriteString(strconv.Quote(N.Name))
		b.WriteString(": [")
		for i, r := range rules {
			if i > 0 {
				b.WriteString(", ")
			}
			writeRule(&b, r)
		}
		b.WriteString("],\n")
		return nil
	})
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// String returns g as a single-line grammar literal.
func String(g *grammar.Grammar) string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	g.EachNonTerminal(func(N grammar.Symbol, rules []grammar.Rule) interface{} {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(strconv.Quote(N.Name))
		b.WriteString(": [")
		for i, r := range rules {
			if i > 0 {
				b.WriteString(", ")
			}
			writeRule(&b, r)
		}
		b.WriteByte(']')
		return nil
	})
	b.WriteByte('}')
	return b.String()
}

func writeRule(b *strings.Builder, r grammar.Rule) {
	b.WriteByte('[')
	for i, sym := range r {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(sym.Name)) // ε has an empty name
	}
	b.WriteByte(']')
}
