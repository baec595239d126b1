package grammar

import (
	"fmt"
	"strings"
)

// Reasons why a grammar is malformed.
const (
	ReasonDangling          = "reference to undefined non-terminal"
	ReasonLHSNotNonTerminal = "left-hand side is not a non-terminal"
	ReasonEmptyName         = "symbol with empty name"
)

// MalformedGrammarError is returned for grammars violating the
// well-formedness invariant: a rule references a non-terminal which is not a
// key of the grammar, or a key is not a proper non-terminal.
type MalformedGrammarError struct {
	LHS    Symbol // non-terminal owning the offending rule
	Rule   Rule   // offending rule, if any
	Symbol Symbol // offending symbol, if any
	Reason string
}

func (e *MalformedGrammarError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "malformed grammar: %s", e.Reason)
	if e.Rule != nil {
		fmt.Fprintf(&b, " %q in rule %s ::= %s", e.Symbol.Name, e.LHS, e.Rule)
	} else {
		fmt.Fprintf(&b, " (%s %q)", e.LHS.Kind, e.LHS.Name)
	}
	return b.String()
}
