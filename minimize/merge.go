package minimize

import (
	"github.com/npillmayer/cfgmin/grammar"
)

// Merge collapses every equivalence class of non-terminals, as induced by
// pairs, onto a single representative. Pairs are joined transitively: if A≡B
// and B≡C, then A, B and C end up in one class.
//
// The representative of a class is chosen as follows:
//
//    1. the start symbol, if it is a member of the class
//    2. otherwise the lexicographically smallest member not minted by namer
//    3. otherwise the lexicographically smallest member
//
// Every right-hand side symbol is rewritten through the representative
// mapping. The keys of the result are exactly the representatives, each
// holding the rules of all the members of its class, duplicates retained.
func Merge(g *grammar.Grammar, pairs []Pair, start grammar.Symbol, namer *Namer) *grammar.Grammar {
	rep := representatives(g, pairs, start, namer)
	merged := grammar.NewGrammar(g.Name)
	g.EachNonTerminal(func(N grammar.Symbol, rules []grammar.Rule) interface{} {
		R := rep.of(N)
		merged.Define(R)
		for _, r := range rules {
			merged.AddRule(R, rep.rewrite(r))
		}
		return nil
	})
	if len(pairs) > 0 {
		tracer().Debugf("merged %d pairs: %d → %d non-terminals", len(pairs), g.Size(), merged.Size())
	}
	return merged
}

// mapping maps non-terminals to their class representatives.
type mapping map[grammar.Symbol]grammar.Symbol

func (m mapping) of(sym grammar.Symbol) grammar.Symbol {
	if r, ok := m[sym]; ok {
		return r
	}
	return sym
}

func (m mapping) rewrite(rule grammar.Rule) grammar.Rule {
	r := make(grammar.Rule, len(rule))
	for i, sym := range rule {
		r[i] = m.of(sym)
	}
	return r
}

func representatives(g *grammar.Grammar, pairs []Pair, start grammar.Symbol, namer *Namer) mapping {
	uf := make(unionFind)
	for _, p := range pairs {
		uf.union(p[0], p[1])
	}
	best := make(map[grammar.Symbol]grammar.Symbol) // class root -> representative
	for _, N := range g.NonTerminals() {
		if _, ok := uf[N]; !ok {
			continue
		}
		root := uf.find(N)
		if cur, ok := best[root]; !ok || preferred(N, cur, start, namer) {
			best[root] = N
		}
	}
	m := make(mapping, len(uf))
	for N := range uf {
		m[N] = best[uf.find(N)]
	}
	return m
}

// preferred tells if a is a better class representative than b.
func preferred(a, b grammar.Symbol, start grammar.Symbol, namer *Namer) bool {
	if a == start || b == start {
		return a == start
	}
	if sa, sb := namer.IsSynthetic(a), namer.IsSynthetic(b); sa != sb {
		return !sa
	}
	return a.Name < b.Name
}

// unionFind is a disjoint-set forest over symbols, with path compression.
type unionFind map[grammar.Symbol]grammar.Symbol

func (uf unionFind) find(sym grammar.Symbol) grammar.Symbol {
	parent, ok := uf[sym]
	if !ok {
		uf[sym] = sym
		return sym
	}
	if parent == sym {
		return sym
	}
	root := uf.find(parent)
	uf[sym] = root
	return root
}

func (uf unionFind) union(a, b grammar.Symbol) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf[rb] = ra
	}
}
