package minimize

import (
	"strconv"

	"github.com/npillmayer/cfgmin/grammar"
)

// Namer mints names for synthetic non-terminals. A fresh name is the name of
// the owning non-terminal followed by a serial number, which increases
// strictly over the lifetime of a Namer. Names already used by the input
// grammar (for any kind of symbol) are skipped.
//
// A Namer belongs to a single minimization run and remembers which symbols
// it has minted.
type Namer struct {
	counter   int
	taken     map[string]bool
	synthetic map[grammar.Symbol]bool
}

// NewNamer creates a Namer for grammar g, reserving all of g's symbol names
// and the names of reserved symbols, e.g., a start symbol absent from g.
func NewNamer(g *grammar.Grammar, reserved ...grammar.Symbol) *Namer {
	n := &Namer{
		taken:     make(map[string]bool),
		synthetic: make(map[grammar.Symbol]bool),
	}
	for _, sym := range reserved {
		n.taken[sym.Name] = true
	}
	if g == nil {
		return n
	}
	g.EachNonTerminal(func(N grammar.Symbol, rules []grammar.Rule) interface{} {
		n.taken[N.Name] = true
		for _, r := range rules {
			for _, sym := range r {
				n.taken[sym.Name] = true
			}
		}
		return nil
	})
	return n
}

// Fresh creates a new non-terminal on behalf of owner.
func (n *Namer) Fresh(owner grammar.Symbol) grammar.Symbol {
	for {
		n.counter++
		name := owner.Name + strconv.Itoa(n.counter)
		if n.taken[name] {
			tracer().Debugf("synthetic name %q already taken, skipping", name)
			continue
		}
		n.taken[name] = true
		sym := grammar.NonTerminal(name)
		n.synthetic[sym] = true
		return sym
	}
}

// IsSynthetic tells if sym has been minted by n. A nil Namer has not minted
// anything.
func (n *Namer) IsSynthetic(sym grammar.Symbol) bool {
	if n == nil {
		return false
	}
	return n.synthetic[sym]
}

// Minted returns the number of synthetic symbols created so far.
func (n *Namer) Minted() int {
	if n == nil {
		return 0
	}
	return len(n.synthetic)
}
