package minimize

import (
	"github.com/npillmayer/cfgmin/grammar"
)

// Symbol table for grammar analysis. Every symbol touched by an analysis
// gets a tag, which carries the marks of the analysis. The table is an arena:
// tags live as long as the analysis and are never removed.

// tag is the arena entry for a grammar symbol.
type tag struct {
	sym  grammar.Symbol
	seen bool
}

// symtab stores tags (map-like semantics).
type symtab struct {
	table map[grammar.Symbol]*tag
}

func newSymtab() *symtab {
	return &symtab{table: make(map[grammar.Symbol]*tag)}
}

// resolve returns the tag for sym, or nil.
func (st *symtab) resolve(sym grammar.Symbol) *tag {
	return st.table[sym]
}

// resolveOrDefine finds the tag for sym, creating it if not found.
// Returns the tag and a flag, signalling wether the tag has already been
// present.
func (st *symtab) resolveOrDefine(sym grammar.Symbol) (*tag, bool) {
	if t, ok := st.table[sym]; ok {
		return t, true
	}
	t := &tag{sym: sym}
	st.table[sym] = t
	return t, false
}

// mark sets the seen-flag for sym. It returns false if sym has already been
// seen before.
func (st *symtab) mark(sym grammar.Symbol) bool {
	t, _ := st.resolveOrDefine(sym)
	if t.seen {
		return false
	}
	t.seen = true
	return true
}

func (st *symtab) seen(sym grammar.Symbol) bool {
	t := st.resolve(sym)
	return t != nil && t.seen
}
