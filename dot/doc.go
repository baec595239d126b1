/*
Package dot exports grammars to the Graphviz DOT format.

Every non-terminal becomes a node, and so does every distinct right-hand
side. Edges lead from a non-terminal to each of its rules, and from a rule to
the non-terminals it references. As rule nodes are identified by their
content, rules shared between non-terminals show up as a single node, which
makes equivalent non-terminals easy to spot before minimization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgmin.dot'.
func tracer() tracing.Trace {
	return tracing.Select("cfgmin.dot")
}
