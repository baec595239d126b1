package minimize

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/cfgmin/grammar"
)

// PruneUnreachable removes all non-terminals which cannot be reached from
// start by following rule references.
//
// The traversal is a depth-first search with an explicit stack and marks
// every symbol it visits, terminals included. Only non-terminals are kept as
// keys, in their original order, together with all of their rules.
//
// If start is not a key of g, it is treated as having no rules: the result
// contains start only, without any rules.
func PruneUnreachable(g *grammar.Grammar, start grammar.Symbol) *grammar.Grammar {
	visited := newSymtab()
	stack := arraystack.New()
	visited.mark(start)
	stack.Push(start)
	for !stack.Empty() {
		top, _ := stack.Pop()
		for _, r := range g.Rules(top.(grammar.Symbol)) {
			for _, sym := range r {
				if visited.mark(sym) {
					stack.Push(sym)
				}
			}
		}
	}
	reached := grammar.NewGrammar(g.Name)
	if !g.Has(start) {
		tracer().Infof("start symbol %s not in grammar, language is empty", start)
		reached.Define(start)
		return reached
	}
	g.EachNonTerminal(func(N grammar.Symbol, rules []grammar.Rule) interface{} {
		if visited.seen(N) {
			reached.SetRules(N, rules)
		} else {
			tracer().Debugf("%s is unreachable", N)
		}
		return nil
	})
	return reached
}
