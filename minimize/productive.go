package minimize

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/cfgmin/grammar"
)

// PruneUnproductive removes all non-terminals which cannot derive a string
// of terminals.
//
// Productive non-terminals are found by fixed-point iteration: a non-terminal
// is productive if it has a rule consisting of terminals, empty markers and
// productive non-terminals only. Iteration stops after a full pass without
// a new productive non-terminal.
//
// Unproductive non-terminals are dropped together with their rules, even if
// they are reachable. Rules of productive non-terminals which reference an
// unproductive non-terminal are dropped as well, thus the result never refers
// to a symbol which is not one of its keys.
func PruneUnproductive(g *grammar.Grammar) *grammar.Grammar {
	productive := hashset.New()
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		g.EachNonTerminal(func(N grammar.Symbol, rules []grammar.Rule) interface{} {
			if productive.Contains(N) {
				return nil
			}
			for _, r := range rules {
				if derivable(r, productive) {
					productive.Add(N)
					changed = true
					break
				}
			}
			return nil
		})
	}
	tracer().Debugf("%d of %d non-terminals productive after %d passes",
		productive.Size(), g.Size(), passes)
	pruned := grammar.NewGrammar(g.Name)
	g.EachNonTerminal(func(N grammar.Symbol, rules []grammar.Rule) interface{} {
		if !productive.Contains(N) {
			tracer().Debugf("%s is unproductive", N)
			return nil
		}
		pruned.Define(N)
		for _, r := range rules {
			if derivable(r, productive) {
				pruned.AddRule(N, r)
			}
		}
		return nil
	})
	return pruned
}

// derivable tells if every symbol of r is a terminal, the empty marker or a
// productive non-terminal.
func derivable(r grammar.Rule, productive *hashset.Set) bool {
	for _, sym := range r {
		if sym.IsNonTerminal() && !productive.Contains(sym) {
			return false
		}
	}
	return true
}
