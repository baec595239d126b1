/*
Package literal reads and writes grammars in literal form.

A grammar literal is a mapping from non-terminals to lists of rules, each
rule being a list of symbol names:

    {
        "S": [["A", "b"], ["a"]],    # S → A b | a
        "A": [["a", "A"], []],       # A → a A | ε
    }

Names may be enclosed in double or single quotes. Trailing commas are
allowed, and comments start with '#' and extend to the end of the line.

Every key is a non-terminal. A right-hand side name which is a key, or which
starts with an upper-case letter, denotes a non-terminal; all other names
denote terminals. The empty name "" is the empty marker. Parsed grammars are
validated, thus an upper-case name without rules of its own is reported as
a *grammar.MalformedGrammarError.

Literals are data only: nothing in a literal is ever evaluated.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package literal

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgmin.literal'.
func tracer() tracing.Trace {
	return tracing.Select("cfgmin.literal")
}
