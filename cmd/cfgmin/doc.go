/*
Command cfgmin minimizes context-free grammars given as grammar literals.

    cfgmin minimize grammar.txt --start Expr -o minimized.txt
    cfgmin dot grammar.txt --minimized | dot -Tsvg > grammar.svg
    cfgmin repl

Without a file argument, input is read from stdin. The repl sub-command
starts an interactive session where grammar literals may be entered line by
line; see `:help` for the available commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgmin.cmd'
func tracer() tracing.Trace {
	return tracing.Select("cfgmin.cmd")
}
