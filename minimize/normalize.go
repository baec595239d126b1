package minimize

import (
	"github.com/npillmayer/cfgmin/grammar"
)

// Normalize rewrites g into a binary/unary normal form. In the result every
// rule is one of
//
//    N → t        a single terminal
//    N → A B      two non-terminals
//    N → A        a unit rule, which is retained as-is
//    N → ε        the empty marker, standing in for an empty right-hand side
//
// A rule N → t of g is boxed: a fresh non-terminal F with F → t is created
// and the rule becomes N → F. Terminals within longer rules are boxed in the
// same way. Rules of length ≥ 3 are binarized into a right-branching chain
// of fresh non-terminals:
//
//    N → X1 X2 X3 X4   ⇒   N → X1 N1,  N1 → X2 N2,  N2 → X3 X4
//
// Fresh non-terminals are created by namer. If namer is nil, a Namer for g
// is created.
func Normalize(g *grammar.Grammar, namer *Namer) *grammar.Grammar {
	if namer == nil {
		namer = NewNamer(g)
	}
	cnf := grammar.NewGrammar(g.Name)
	g.EachNonTerminal(func(N grammar.Symbol, rules []grammar.Rule) interface{} {
		cnf.Define(N)
		for _, rule := range rules {
			normalizeRule(cnf, N, rule, namer)
		}
		return nil
	})
	tracer().Debugf("normalized %d rules into %d rules, %d synthetic non-terminals",
		g.RuleCount(), cnf.RuleCount(), namer.Minted())
	return cnf
}

func normalizeRule(cnf *grammar.Grammar, N grammar.Symbol, rule grammar.Rule, namer *Namer) {
	rhs := withoutEmpty(rule)
	switch len(rhs) {
	case 0:
		cnf.Add(N, grammar.Epsilon)
	case 1:
		if rhs[0].IsTerminal() {
			cnf.Add(N, box(cnf, N, rhs[0], namer))
		} else {
			cnf.Add(N, rhs[0])
		}
	default:
		for i, sym := range rhs {
			if sym.IsTerminal() {
				rhs[i] = box(cnf, N, sym, namer)
			}
		}
		head := N
		for len(rhs) > 2 {
			next := namer.Fresh(N)
			cnf.Add(head, rhs[0], next)
			head, rhs = next, rhs[1:]
		}
		cnf.Add(head, rhs[0], rhs[1])
	}
}

// box creates a fresh non-terminal F → t on behalf of N.
func box(cnf *grammar.Grammar, N grammar.Symbol, t grammar.Symbol, namer *Namer) grammar.Symbol {
	F := namer.Fresh(N)
	cnf.Add(F, t)
	return F
}

// withoutEmpty returns a copy of rule with all empty markers removed.
func withoutEmpty(rule grammar.Rule) grammar.Rule {
	r := make(grammar.Rule, 0, len(rule))
	for _, sym := range rule {
		if !sym.IsEmpty() {
			r = append(r, sym)
		}
	}
	return r
}

// IsNormalized checks if every rule of g is in the normal form produced by
// Normalize.
func IsNormalized(g *grammar.Grammar) bool {
	ok := g.EachNonTerminal(func(N grammar.Symbol, rules []grammar.Rule) interface{} {
		for _, r := range rules {
			switch len(r) {
			case 1:
				continue
			case 2:
				if r[0].IsNonTerminal() && r[1].IsNonTerminal() {
					continue
				}
			}
			tracer().Debugf("rule %s ::= %s is not normalized", N, r)
			return false
		}
		return nil
	})
	return ok == nil
}
