package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgmin.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").N("B").N("D").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("D").T("d").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Size() != 4 {
		t.Errorf("expected 4 non-terminals, have %d", g.Size())
	}
	if g.RuleCount() != 5 {
		t.Errorf("expected 5 rules, have %d", g.RuleCount())
	}
	nts := g.NonTerminals()
	if nts[0] != NonTerminal("S") || nts[3] != NonTerminal("D") {
		t.Errorf("expected definition order S…D, have %v", nts)
	}
	if len(g.Rules(NonTerminal("B"))[1]) != 0 {
		t.Errorf("expected B's second rule to be empty")
	}
}

func TestAbsentKeyHasNoRules(t *testing.T) {
	g := NewGrammar("G")
	if g.Has(NonTerminal("S")) {
		t.Errorf("empty grammar should not contain S")
	}
	if rules := g.Rules(NonTerminal("S")); len(rules) != 0 {
		t.Errorf("expected no rules for absent key, have %v", rules)
	}
}

func TestValidateDangling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgmin.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS("S").N("A").N("X").End()
	b.LHS("A").T("a").End()
	_, err := b.Grammar()
	if err == nil {
		t.Fatalf("expected dangling reference to X to be reported")
	}
	var merr *MalformedGrammarError
	if !errors.As(err, &merr) {
		t.Fatalf("expected MalformedGrammarError, have %T", err)
	}
	if merr.Symbol != NonTerminal("X") || merr.Reason != ReasonDangling {
		t.Errorf("unexpected error detail: %v", merr)
	}
	t.Logf("error = %v", err)
}

func TestValidateKeys(t *testing.T) {
	g := NewGrammar("G")
	g.Add(Terminal("x"), Terminal("a"))
	err := g.Validate()
	var merr *MalformedGrammarError
	if !errors.As(err, &merr) || merr.Reason != ReasonLHSNotNonTerminal {
		t.Errorf("expected terminal key to be rejected, have %v", err)
	}
	g = NewGrammar("G")
	g.Add(NonTerminal("S"), Terminal(""))
	if err = g.Validate(); err == nil {
		t.Errorf("expected terminal with empty name to be rejected")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	g := NewGrammar("G")
	g.Add(NonTerminal("S"), Terminal("a"), Terminal("b"))
	c := g.Copy()
	if !c.Equals(g) {
		t.Fatalf("copy differs from original")
	}
	c.Rules(NonTerminal("S"))[0][0] = Terminal("z")
	if g.Rules(NonTerminal("S"))[0][0] != Terminal("a") {
		t.Errorf("modifying a copy changed the original")
	}
	if c.Equals(g) {
		t.Errorf("expected modified copy to differ")
	}
}

func TestSetEqual(t *testing.T) {
	A, B := NonTerminal("A"), NonTerminal("B")
	r1, r2 := Rhs(A, B), Rhs(Terminal("a"))
	if !SetEqual([]Rule{r1, r2, r1}, []Rule{r2, r1}) {
		t.Errorf("multiplicity should not matter for set equality")
	}
	if SetEqual([]Rule{r1}, []Rule{r1, r2}) {
		t.Errorf("expected {r1} ≠ {r1, r2}")
	}
	if !SetEqual(nil, []Rule{}) {
		t.Errorf("expected empty rule lists to be set-equal")
	}
}

func TestTerminals(t *testing.T) {
	g := NewGrammar("G")
	g.Add(NonTerminal("S"), Terminal("b"), NonTerminal("S"), Terminal("a"))
	g.Add(NonTerminal("S"), Terminal("b"))
	terms := g.Terminals()
	if len(terms) != 2 || terms[0] != "a" || terms[1] != "b" {
		t.Errorf("expected terminals [a b], have %v", terms)
	}
}

func TestRuleString(t *testing.T) {
	r := Rhs(NonTerminal("A"), Terminal("b"), Epsilon)
	if r.String() != "[A b ε]" {
		t.Errorf("unexpected rule string %q", r.String())
	}
}
