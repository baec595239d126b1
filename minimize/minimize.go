package minimize

import (
	"github.com/npillmayer/cfgmin/grammar"
)

// Minimize reduces a grammar. It applies, in this order,
//
//    Normalize → FindEquivalences → Merge → PruneUnreachable
//              → PruneUnproductive → Denormalize
//
// Dropping unproductive rules may leave non-terminals unreachable, thus
// the reachability pruner runs once more before denormalization. Every
// non-terminal of the result is reachable from the start symbol and
// productive, and every non-terminal referenced is a key of the result.
//
// g is not modified. Minimize returns a *grammar.MalformedGrammarError if g
// is not well-formed. A start symbol absent from g results in an empty
// grammar.
func Minimize(g *grammar.Grammar, opts ...Option) (*grammar.Grammar, error) {
	cfg := configure(opts)
	if g == nil {
		g = grammar.NewGrammar("")
	}
	if err := g.Validate(); err != nil {
		tracer().Errorf("cannot minimize grammar %s: %v", g.Name, err)
		return nil, err
	}
	start := grammar.NonTerminal(cfg.start)
	tracer().Infof("minimizing grammar %s: %d non-terminals, %d rules, start symbol %s",
		g.Name, g.Size(), g.RuleCount(), start)
	namer := NewNamer(g, start) // scoped to this run
	cnf := Normalize(g, namer)
	cnf.Dump()
	merged := cnf
	for pass := 1; ; pass++ {
		pairs := FindEquivalences(merged)
		tracer().Debugf("pass %d: %d equivalent pairs", pass, len(pairs))
		merged = Merge(merged, pairs, start, namer)
		if !cfg.fixedPoint || len(pairs) == 0 {
			break
		}
	}
	reached := PruneUnreachable(merged, start)
	productive := PruneUnproductive(reached)
	if productive.Has(start) {
		productive = PruneUnreachable(productive, start)
	} else {
		tracer().Infof("start symbol %s is unproductive, language is empty", start)
		productive = grammar.NewGrammar(g.Name)
	}
	reduced := Denormalize(productive, namer)
	reduced.Dump()
	tracer().Infof("minimized grammar %s: %d non-terminals, %d rules",
		reduced.Name, reduced.Size(), reduced.RuleCount())
	return reduced, nil
}
