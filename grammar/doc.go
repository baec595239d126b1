/*
Package grammar implements the data types for context-free grammars.

Building a Grammar

Grammars are either assembled rule by rule or specified using a grammar
builder object. Clients add rules, consisting of non-terminal symbols and
terminals. Grammars may contain epsilon-productions.

Example:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("A").T("a").End()   // S  ->  A a
    b.LHS("A").N("B").N("D").End()   // A  ->  B D
    b.LHS("B").T("b").End()          // B  ->  b
    b.LHS("B").Epsilon()             // B  ->
    b.LHS("D").T("d").End()          // D  ->  d

This results in the following trivial grammar:

   g, _ := b.Grammar()
   g.Dump()

   [S] ::= [A a]
   [A] ::= [B D]
   [B] ::= [b]
   [B] ::= []
   [D] ::= [d]

Non-terminals keep the order in which they have been defined. This order
carries no meaning for the language of a grammar, but makes output of
grammar transformations deterministic.

Well-formedness

Every non-terminal referenced on a right-hand side has to be a key of the
grammar. Validate checks this invariant and reports violations as
*MalformedGrammarError.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgmin.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("cfgmin.grammar")
}
