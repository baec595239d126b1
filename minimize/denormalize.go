package minimize

import (
	"github.com/npillmayer/cfgmin/grammar"
)

// StripEmpty removes the empty marker from every rule and discards rules
// which become empty by this. Non-terminals left without any rule are kept
// as keys with an empty rule list.
func StripEmpty(g *grammar.Grammar) *grammar.Grammar {
	stripped := grammar.NewGrammar(g.Name)
	g.EachNonTerminal(func(N grammar.Symbol, rules []grammar.Rule) interface{} {
		stripped.Define(N)
		for _, r := range rules {
			if r = withoutEmpty(r); len(r) > 0 {
				stripped.AddRule(N, r)
			}
		}
		return nil
	})
	return stripped
}

// Denormalize turns a normalized grammar back into a grammar with rules of
// arbitrary length. It strips empty markers (see StripEmpty), then folds
// every synthetic non-terminal minted by namer with a single distinct rule
// back into the rules referencing it. Duplicate rules of a non-terminal are
// dropped.
//
// With a nil namer, Denormalize is StripEmpty plus removal of duplicate rules.
func Denormalize(g *grammar.Grammar, namer *Namer) *grammar.Grammar {
	stripped := StripEmpty(g)
	u := &unfolder{
		g:      stripped,
		namer:  namer,
		bodies: make(map[grammar.Symbol]grammar.Rule),
		active: make(map[grammar.Symbol]bool),
	}
	kept := make(map[grammar.Symbol]bool)
	unfolded := make(map[grammar.Symbol][]grammar.Rule)
	var work []grammar.Symbol
	for _, N := range stripped.NonTerminals() {
		if !u.inlinable(N) {
			kept[N] = true
			work = append(work, N)
		}
	}
	for len(work) > 0 {
		N := work[0]
		work = work[1:]
		var rules []grammar.Rule
		for _, r := range stripped.Rules(N) {
			if r = u.expand(r); !grammar.ContainsRule(rules, r) {
				rules = append(rules, r)
			}
		}
		unfolded[N] = rules
		for _, r := range rules { // symbols which could not be folded remain keys
			for _, sym := range r {
				if sym.IsNonTerminal() && !kept[sym] && stripped.Has(sym) {
					kept[sym] = true
					work = append(work, sym)
				}
			}
		}
	}
	denorm := grammar.NewGrammar(g.Name)
	for _, N := range stripped.NonTerminals() {
		if kept[N] {
			denorm.SetRules(N, unfolded[N])
		}
	}
	if folded := stripped.Size() - denorm.Size(); folded > 0 {
		tracer().Debugf("folded %d synthetic non-terminals", folded)
	}
	return denorm
}

// unfolder inlines synthetic non-terminals into right-hand sides.
type unfolder struct {
	g      *grammar.Grammar
	namer  *Namer
	bodies map[grammar.Symbol]grammar.Rule // memoized expansions
	active map[grammar.Symbol]bool         // expansions in progress
}

func (u *unfolder) inlinable(sym grammar.Symbol) bool {
	if !u.namer.IsSynthetic(sym) || !u.g.Has(sym) {
		return false
	}
	rules := u.g.Rules(sym)
	if len(rules) == 0 {
		return false
	}
	for _, r := range rules[1:] {
		if !r.Equals(rules[0]) {
			return false
		}
	}
	return true
}

func (u *unfolder) expand(rule grammar.Rule) grammar.Rule {
	r := make(grammar.Rule, 0, len(rule))
	for _, sym := range rule {
		if u.inlinable(sym) && !u.active[sym] {
			r = append(r, u.body(sym)...)
		} else {
			r = append(r, sym)
		}
	}
	return r
}

func (u *unfolder) body(sym grammar.Symbol) grammar.Rule {
	if b, ok := u.bodies[sym]; ok {
		return b
	}
	u.active[sym] = true
	b := u.expand(u.g.Rules(sym)[0])
	delete(u.active, sym)
	u.bodies[sym] = b
	return b
}
