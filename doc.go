/*
Package cfgmin is a toolbox for minimizing context-free grammars.

CfgMin takes a grammar, normalizes it to a binary/unary form, folds
non-terminals with identical rule sets into one another and discards
symbols which are unreachable from the start symbol or cannot derive any
terminal string. Package structure is as follows:

■ grammar: Package grammar implements symbols, rules and grammars, together
with a builder and validation.

■ minimize: Package minimize implements the minimization pipeline.

■ literal: Package literal reads and writes grammars in a small literal format.

■ dot: Package dot exports grammars to Graphviz.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfgmin
