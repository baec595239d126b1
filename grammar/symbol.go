package grammar

import (
	"bytes"
	"fmt"
)

// SymbolKind tells terminals, non-terminals and the empty marker apart.
type SymbolKind int8

// Kinds of grammar symbols.
const (
	NonTerminalKind SymbolKind = iota
	TerminalKind
	EmptyKind
)

func (k SymbolKind) String() string {
	switch k {
	case NonTerminalKind:
		return "non-terminal"
	case TerminalKind:
		return "terminal"
	case EmptyKind:
		return "empty"
	}
	return fmt.Sprintf("<kind %d>", int8(k))
}

// Symbol is a grammar symbol. Symbols are values: two symbols are the same
// symbol if they have the same name and the same kind.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// Epsilon is the empty marker. It stands in for an empty right-hand side
// while a grammar is in normal form and is never part of a well-formed
// input grammar's non-terminal alphabet.
var Epsilon = Symbol{Kind: EmptyKind}

// NonTerminal creates a non-terminal symbol.
func NonTerminal(name string) Symbol {
	return Symbol{Name: name, Kind: NonTerminalKind}
}

// Terminal creates a terminal symbol.
func Terminal(name string) Symbol {
	return Symbol{Name: name, Kind: TerminalKind}
}

// IsTerminal returns true if s is a terminal symbol.
func (s Symbol) IsTerminal() bool {
	return s.Kind == TerminalKind
}

// IsNonTerminal returns true if s is a non-terminal symbol.
func (s Symbol) IsNonTerminal() bool {
	return s.Kind == NonTerminalKind
}

// IsEmpty returns true if s is the empty marker.
func (s Symbol) IsEmpty() bool {
	return s.Kind == EmptyKind
}

func (s Symbol) String() string {
	if s.Kind == EmptyKind {
		return "ε"
	}
	return s.Name
}

// --- Rules -----------------------------------------------------------------

// Rule is the right-hand side of a production.
type Rule []Symbol

// Rhs creates a rule from a list of symbols.
func Rhs(syms ...Symbol) Rule {
	r := make(Rule, len(syms))
	copy(r, syms)
	return r
}

// Equals is sequence equality.
func (r Rule) Equals(other Rule) bool {
	if len(r) != len(other) {
		return false
	}
	for i, sym := range r {
		if other[i] != sym {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of r.
func (r Rule) Copy() Rule {
	if r == nil {
		return Rule{}
	}
	c := make(Rule, len(r))
	copy(c, r)
	return c
}

// Contains returns true if sym occurs in r.
func (r Rule) Contains(sym Symbol) bool {
	for _, s := range r {
		if s == sym {
			return true
		}
	}
	return false
}

func (r Rule) String() string {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, sym := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sym.String())
	}
	b.WriteByte(']')
	return b.String()
}

// ContainsRule checks membership of r in a list of rules.
func ContainsRule(rules []Rule, r Rule) bool {
	for _, rule := range rules {
		if rule.Equals(r) {
			return true
		}
	}
	return false
}

// SetEqual returns true if every rule of a appears in b and vice versa.
// Multiplicity is irrelevant.
func SetEqual(a, b []Rule) bool {
	for _, r := range a {
		if !ContainsRule(b, r) {
			return false
		}
	}
	for _, r := range b {
		if !ContainsRule(a, r) {
			return false
		}
	}
	return true
}
