package minimize

import (
	"testing"

	"github.com/npillmayer/cfgmin/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNamerSkipsTakenNames(t *testing.T) {
	g := grammar.NewGrammar("G").
		Add(S, term("a")).
		Add(grammar.NonTerminal("S1"), term("b"))
	namer := NewNamer(g)
	if F := namer.Fresh(S); F.Name != "S2" {
		t.Errorf("expected fresh name S2, have %s", F)
	}
	if F := namer.Fresh(A); F.Name != "A3" {
		t.Errorf("expected fresh name A3, have %s", F)
	}
	if !namer.IsSynthetic(grammar.NonTerminal("S2")) || namer.IsSynthetic(S) {
		t.Errorf("namer does not track synthetic symbols correctly")
	}
	var none *Namer
	if none.IsSynthetic(S) || none.Minted() != 0 {
		t.Errorf("nil namer should not have minted anything")
	}
}

func TestNamerReservesStartSymbol(t *testing.T) {
	g := grammar.NewGrammar("G").Add(S, term("a"))
	S1 := grammar.NonTerminal("S1")
	namer := NewNamer(g, S1)
	cnf := Normalize(g, namer)
	if cnf.Has(S1) {
		t.Errorf("reserved start symbol S1 has been minted: %v", cnf)
	}
	if F := cnf.Rules(S)[0][0]; F.Name != "S2" {
		t.Errorf("expected box S2 for S, have %s", F)
	}
}

func TestNormalizeBoxesTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgmin.minimize")
	defer teardown()
	//
	g := grammar.NewGrammar("G").Add(S, term("a"))
	cnf := Normalize(g, nil)
	S1 := grammar.NonTerminal("S1")
	expected := grammar.NewGrammar("G").
		Add(S, S1).
		Add(S1, term("a"))
	if !cnf.Equals(expected) {
		t.Errorf("expected %v, have %v", expected, cnf)
	}
}

func TestNormalizeChainsLongRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgmin.minimize")
	defer teardown()
	//
	g := grammar.NewGrammar("G").
		Add(S, A, B, C, D).
		Add(A, term("a")).Add(B, term("b")).Add(C, term("c")).Add(D, term("d"))
	cnf := Normalize(g, NewNamer(g))
	if !IsNormalized(cnf) {
		t.Fatalf("grammar not normalized: %v", cnf)
	}
	S1, S2 := grammar.NonTerminal("S1"), grammar.NonTerminal("S2")
	rules := cnf.Rules(S)
	if len(rules) != 1 || !rules[0].Equals(grammar.Rhs(A, S1)) {
		t.Errorf("expected S → A S1, have %v", rules)
	}
	if r := cnf.Rules(S1); len(r) != 1 || !r[0].Equals(grammar.Rhs(B, S2)) {
		t.Errorf("expected S1 → B S2, have %v", r)
	}
	if r := cnf.Rules(S2); len(r) != 1 || !r[0].Equals(grammar.Rhs(C, D)) {
		t.Errorf("expected S2 → C D, have %v", r)
	}
}

func TestNormalizeKeepsUnitAndEmptyRules(t *testing.T) {
	g := grammar.NewGrammar("G").
		Add(S, A).
		Add(S, grammar.Epsilon).
		AddRule(A, grammar.Rule{}).
		Add(A, term("a"), grammar.Epsilon, term("b"))
	cnf := Normalize(g, nil)
	if !IsNormalized(cnf) {
		t.Fatalf("grammar not normalized: %v", cnf)
	}
	rules := cnf.Rules(S)
	if len(rules) != 2 || !rules[0].Equals(grammar.Rhs(A)) || !rules[1].Equals(grammar.Rhs(grammar.Epsilon)) {
		t.Errorf("expected S → A | ε, have %v", rules)
	}
	rules = cnf.Rules(A)
	if len(rules) != 2 || !rules[0].Equals(grammar.Rhs(grammar.Epsilon)) || len(rules[1]) != 2 {
		t.Errorf("expected A → ε | A1 A2, have %v", rules)
	}
}

func TestFindEquivalencesIgnoresMultiplicity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgmin.minimize")
	defer teardown()
	//
	g := grammar.NewGrammar("G").
		Add(S, A, B).
		Add(A, C).Add(A, D).Add(A, C).
		Add(B, D).Add(B, C).
		Add(C, term("c")).
		Add(D, term("c"))
	pairs := FindEquivalences(g)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, have %v", pairs)
	}
	if pairs[0] != (Pair{A, B}) || pairs[1] != (Pair{C, D}) {
		t.Errorf("expected [{A, B} {C, D}], have %v", pairs)
	}
}

func TestFindEquivalencesBucketsInGrammarOrder(t *testing.T) {
	E := grammar.NonTerminal("E")
	g := grammar.NewGrammar("G").
		Add(S, A, B).
		Add(A, term("a")).
		Add(B, term("b")).
		Add(C, term("a")).
		Add(D, term("b")).
		Add(E, term("a"))
	pairs := FindEquivalences(g)
	expected := []Pair{{A, C}, {A, E}, {B, D}, {C, E}}
	if len(pairs) != len(expected) {
		t.Fatalf("expected %v, have %v", expected, pairs)
	}
	for i, p := range expected {
		if pairs[i] != p {
			t.Errorf("expected pair #%d to be %v, have %v", i, p, pairs[i])
		}
	}
}

func TestFindEquivalencesRespectsKinds(t *testing.T) {
	g := grammar.NewGrammar("G").
		Add(A, term("C")).
		Add(B, C).
		Add(C, term("c"))
	if pairs := FindEquivalences(g); len(pairs) != 0 {
		t.Errorf("terminal C and non-terminal C must differ, have %v", pairs)
	}
}

func TestMergeIsTransitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgmin.minimize")
	defer teardown()
	//
	g := grammar.NewGrammar("G").
		Add(S, C, B).
		Add(B, term("x")).
		Add(C, term("x")).
		Add(D, term("x"))
	pairs := []Pair{{B, C}, {C, D}}
	merged := Merge(g, pairs, S, nil)
	expected := grammar.NewGrammar("G").
		Add(S, B, B).
		Add(B, term("x")).Add(B, term("x")).Add(B, term("x"))
	if !merged.Equals(expected) {
		t.Errorf("expected %v, have %v", expected, merged)
	}
}

func TestMergePrefersStartAndOriginals(t *testing.T) {
	g := grammar.NewGrammar("G").
		Add(A, term("x")).
		Add(S, term("x"))
	merged := Merge(g, FindEquivalences(g), S, nil)
	if merged.Has(A) || !merged.Has(S) {
		t.Errorf("expected start symbol to represent {A, S}, have %v", merged)
	}
	//
	g = grammar.NewGrammar("G").Add(S, X).Add(X, term("x"))
	namer := NewNamer(g)
	F := namer.Fresh(A) // A1, lexicographically smaller than X
	g.Add(F, term("x"))
	merged = Merge(g, FindEquivalences(g), S, namer)
	if merged.Has(F) || !merged.Has(X) {
		t.Errorf("expected original X to represent {X, %s}, have %v", F, merged)
	}
}

func TestPruneUnreachableCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgmin.minimize")
	defer teardown()
	//
	g := grammar.NewGrammar("G").
		Add(S, A).
		Add(A, B, S).
		Add(B, A, term("b")).
		Add(C, S)
	reached := PruneUnreachable(g, S)
	if reached.Size() != 3 || reached.Has(C) {
		t.Errorf("expected {S, A, B}, have %v", reached)
	}
}

func TestPruneUnreachableMissingStart(t *testing.T) {
	g := grammar.NewGrammar("G").Add(A, term("a"))
	reached := PruneUnreachable(g, S)
	if reached.Size() != 1 || !reached.Has(S) || len(reached.Rules(S)) != 0 {
		t.Errorf("expected a grammar with S and no rules, have %v", reached)
	}
}

func TestPruneUnproductiveIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgmin.minimize")
	defer teardown()
	//
	g := grammar.NewGrammar("G").
		Add(S, A, B).
		Add(S, C).
		Add(A, A).
		Add(B, term("b")).
		Add(C, B, C).
		Add(C, grammar.Epsilon)
	once := PruneUnproductive(g)
	if once.Has(A) {
		t.Errorf("expected A to be unproductive, have %v", once)
	}
	if rules := once.Rules(S); len(rules) != 1 || !rules[0].Equals(grammar.Rhs(C)) {
		t.Errorf("expected S → C only, have %v", rules)
	}
	twice := PruneUnproductive(once)
	if !twice.Equals(once) {
		t.Errorf("not idempotent: %v vs %v", once, twice)
	}
}

func TestStripEmptyKeepsKeys(t *testing.T) {
	g := grammar.NewGrammar("G").
		Add(S, A, grammar.Epsilon).
		Add(A, grammar.Epsilon)
	stripped := StripEmpty(g)
	if !stripped.Has(A) || len(stripped.Rules(A)) != 0 {
		t.Errorf("expected A to be kept without rules, have %v", stripped)
	}
	if rules := stripped.Rules(S); len(rules) != 1 || !rules[0].Equals(grammar.Rhs(A)) {
		t.Errorf("expected S → A, have %v", rules)
	}
}

func TestDenormalizeUnfoldsChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgmin.minimize")
	defer teardown()
	//
	g := grammar.NewGrammar("G").Add(S, A, B, C, term("d"))
	namer := NewNamer(g)
	g.Define(A).Define(B).Define(C)
	cnf := Normalize(g, namer)
	denorm := Denormalize(cnf, namer)
	if !denorm.Equals(g) {
		t.Errorf("expected %v, have %v", g, denorm)
	}
	if stripped := Denormalize(cnf, nil); stripped.Size() != cnf.Size() {
		t.Errorf("expected no folding without a namer, have %v", stripped)
	}
}
