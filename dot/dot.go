package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/cfgmin/grammar"
)

const header = `digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`

// Write exports g to w in DOT format. start, if present in g, is highlighted.
func Write(w io.Writer, g *grammar.Grammar, start grammar.Symbol) error {
	var b strings.Builder
	b.WriteString(header)
	ntIDs := make(map[grammar.Symbol]string, g.Size())
	for i, N := range g.NonTerminals() {
		id := fmt.Sprintf("n%03d", i)
		ntIDs[N] = id
		fmt.Fprintf(&b, "%s [fillcolor=%s label=\"%s\"]\n", id, nodecolor(N, start), escape(N.Name))
	}
	rules := linkedhashmap.New() // rule string → node ID, in order of appearance
	var edges []string
	g.EachNonTerminal(func(N grammar.Symbol, rs []grammar.Rule) interface{} {
		for _, r := range rs {
			key := r.String()
			if _, found := rules.Get(key); !found {
				id := fmt.Sprintf("r%03d", rules.Size())
				rules.Put(key, id)
				fmt.Fprintf(&b, "%s [shape=box fillcolor=white label=\"%s\"]\n", id, escape(label(r)))
				for _, sym := range r {
					if to, ok := ntIDs[sym]; ok {
						edges = append(edges, fmt.Sprintf("%s -> %s [style=dashed]\n", id, to))
					}
				}
			}
			id, _ := rules.Get(key)
			edges = append(edges, fmt.Sprintf("%s -> %s\n", ntIDs[N], id.(string)))
		}
		return nil
	})
	for _, e := range edges {
		b.WriteString(e)
	}
	b.WriteString("}\n")
	tracer().Debugf("exported %d non-terminals and %d distinct rules", g.Size(), rules.Size())
	_, err := io.WriteString(w, b.String())
	return err
}

func nodecolor(N, start grammar.Symbol) string {
	if N == start {
		return "lightgray"
	}
	return "white"
}

func label(r grammar.Rule) string {
	if len(r) == 0 {
		return "ε"
	}
	names := make([]string, len(r))
	for i, sym := range r {
		names[i] = sym.String()
	}
	return strings.Join(names, " ")
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `{`, `\{`, `}`, `\}`,
		`|`, `\|`, `<`, `\<`, `>`, `\>`)
	return r.Replace(s)
}
