package grammar

import (
	"bytes"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Grammar is a mapping from non-terminals to their rules. Non-terminals are
// kept in insertion order.
//
// A Grammar created by one of the transformations of package minimize is a
// new value and does not share rules with its input.
type Grammar struct {
	Name  string
	order []Symbol        // non-terminals in order of definition
	rules map[Symbol][]Rule
}

// NewGrammar creates an empty grammar.
func NewGrammar(name string) *Grammar {
	return &Grammar{
		Name:  name,
		rules: make(map[Symbol][]Rule),
	}
}

// Define makes N a key of g, without adding any rules. Defining a
// non-terminal twice is a no-op.
func (g *Grammar) Define(N Symbol) *Grammar {
	if _, ok := g.rules[N]; !ok {
		g.order = append(g.order, N)
		g.rules[N] = []Rule{}
	}
	return g
}

// AddRule appends a rule for non-terminal N. The rule is copied.
func (g *Grammar) AddRule(N Symbol, rule Rule) *Grammar {
	g.Define(N)
	g.rules[N] = append(g.rules[N], rule.Copy())
	return g
}

// Add appends a rule N → syms….
func (g *Grammar) Add(N Symbol, syms ...Symbol) *Grammar {
	return g.AddRule(N, Rule(syms))
}

// SetRules replaces all rules of N, defining N if necessary.
func (g *Grammar) SetRules(N Symbol, rules []Rule) *Grammar {
	g.Define(N)
	rr := make([]Rule, len(rules))
	for i, r := range rules {
		rr[i] = r.Copy()
	}
	g.rules[N] = rr
	return g
}

// Has returns true if N is a key of g.
func (g *Grammar) Has(N Symbol) bool {
	_, ok := g.rules[N]
	return ok
}

// Rules returns the rules for N. An absent key has no rules.
// Clients must not modify the returned slice.
func (g *Grammar) Rules(N Symbol) []Rule {
	return g.rules[N]
}

// NonTerminals returns the keys of g in definition order.
func (g *Grammar) NonTerminals() []Symbol {
	nts := make([]Symbol, len(g.order))
	copy(nts, g.order)
	return nts
}

// Size returns the number of non-terminals of g.
func (g *Grammar) Size() int {
	return len(g.order)
}

// RuleCount returns the number of rules, summed over all non-terminals.
func (g *Grammar) RuleCount() int {
	n := 0
	for _, N := range g.order {
		n += len(g.rules[N])
	}
	return n
}

// EachNonTerminal iterates over all non-terminals of g, in definition order.
// Iteration stops as soon as mapper returns a non-nil value, which is then
// returned.
func (g *Grammar) EachNonTerminal(mapper func(N Symbol, rules []Rule) interface{}) interface{} {
	for _, N := range g.order {
		if v := mapper(N, g.rules[N]); v != nil {
			return v
		}
	}
	return nil
}

// Terminals returns the names of all terminals used in g, sorted.
func (g *Grammar) Terminals() []string {
	set := treeset.NewWith(utils.StringComparator)
	for _, N := range g.order {
		for _, r := range g.rules[N] {
			for _, sym := range r {
				if sym.IsTerminal() {
					set.Add(sym.Name)
				}
			}
		}
	}
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}

// Copy creates an independent deep copy of g.
func (g *Grammar) Copy() *Grammar {
	c := NewGrammar(g.Name)
	for _, N := range g.order {
		c.SetRules(N, g.rules[N])
	}
	return c
}

// Equals tells if two grammars are structurally identical: same keys in the
// same order, each with the same sequence of rules. Grammar names are ignored.
func (g *Grammar) Equals(other *Grammar) bool {
	if g == nil || other == nil {
		return g == other
	}
	if len(g.order) != len(other.order) {
		return false
	}
	for i, N := range g.order {
		if other.order[i] != N {
			return false
		}
		r1, r2 := g.rules[N], other.rules[N]
		if len(r1) != len(r2) {
			return false
		}
		for j := range r1 {
			if !r1[j].Equals(r2[j]) {
				return false
			}
		}
	}
	return true
}

// References returns true if any rule of g mentions sym on its right-hand side.
func (g *Grammar) References(sym Symbol) bool {
	for _, N := range g.order {
		for _, r := range g.rules[N] {
			if r.Contains(sym) {
				return true
			}
		}
	}
	return false
}

// Validate checks that g is well-formed. Every key has to be a non-terminal
// with a non-empty name, and every non-terminal on a right-hand side has to be
// a key of g.
//
// A missing start symbol is not reported; minimizing such a grammar yields
// the empty language.
func (g *Grammar) Validate() error {
	for _, N := range g.order {
		if !N.IsNonTerminal() {
			return &MalformedGrammarError{LHS: N, Reason: ReasonLHSNotNonTerminal}
		}
		if N.Name == "" {
			return &MalformedGrammarError{LHS: N, Reason: ReasonEmptyName}
		}
		for _, r := range g.rules[N] {
			for _, sym := range r {
				switch sym.Kind {
				case NonTerminalKind:
					if !g.Has(sym) {
						return &MalformedGrammarError{LHS: N, Rule: r, Symbol: sym, Reason: ReasonDangling}
					}
				case TerminalKind:
					if sym.Name == "" {
						return &MalformedGrammarError{LHS: N, Rule: r, Symbol: sym, Reason: ReasonEmptyName}
					}
				}
			}
		}
	}
	return nil
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	for i, N := range g.order {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(N.String())
		b.WriteString(" →")
		for j, r := range g.rules[N] {
			if j > 0 {
				b.WriteString(" |")
			}
			for _, sym := range r {
				b.WriteByte(' ')
				b.WriteString(sym.String())
			}
		}
	}
	return b.String()
}

// Dump is a debugging helper, writing all rules to the trace at level Debug.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s -------------------------------------", g.Name)
	for _, N := range g.order {
		rules := g.rules[N]
		if len(rules) == 0 {
			tracer().Debugf("[%s] ::= <no rules>", N)
			continue
		}
		for _, r := range rules {
			tracer().Debugf("[%s] ::= %s", N, r)
		}
	}
	tracer().Debugf("--- %d non-terminals, %d rules ---", g.Size(), g.RuleCount())
}
