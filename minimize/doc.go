/*
Package minimize implements the reduction of context-free grammars to a
smaller, canonical form.

Minimization is a pipeline of six stages, each of which consumes a grammar
and produces a new one:

   Normalize            rules of length 1 (terminal) or 2 (non-terminals)
   FindEquivalences     pairs of non-terminals with set-equal rules
   Merge                collapse equivalence classes onto a representative
   PruneUnreachable     drop non-terminals not reachable from the start symbol
   PruneUnproductive    drop non-terminals which cannot derive a terminal string
   Denormalize          strip empty markers, fold synthetic symbols back in

Clients normally call Minimize, which threads a grammar through all of
them:

    g, _ := b.Grammar()                          // see package grammar
    min, err := minimize.Minimize(g,
        minimize.StartSymbol("S"),               // the default
        minimize.FixedPoint(true))               // iterate detect/merge

Normalization introduces synthetic non-terminals, named after the
non-terminal they are minted for plus a serial number ("S1", "S2", …).
Serial numbers are scoped to a single minimization run (see Namer), so
repeated runs on the same input produce identical results.

A start symbol missing from the grammar is not an error. The result is the
empty language, i.e. an empty grammar.

The equivalence merge is a single detect/merge pass by default. Merging may
make further non-terminals equivalent; option FixedPoint repeats the pass
until no more equivalences are found.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package minimize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgmin.minimize'.
func tracer() tracing.Trace {
	return tracing.Select("cfgmin.minimize")
}
