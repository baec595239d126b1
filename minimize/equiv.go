package minimize

import (
	"bytes"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/cfgmin/grammar"
)

// Pair is an unordered pair of equivalent non-terminals. Pairs produced by
// FindEquivalences list their members in grammar order.
type Pair [2]grammar.Symbol

// Contains returns true if sym is a member of p.
func (p Pair) Contains(sym grammar.Symbol) bool {
	return p[0] == sym || p[1] == sym
}

func (p Pair) String() string {
	return "{" + p[0].String() + ", " + p[1].String() + "}"
}

// FindEquivalences finds all pairs of distinct non-terminals of g with
// set-equal rule lists: every rule of one of them appears in the rule list of
// the other, and vice versa. Multiplicity of rules is irrelevant.
//
// Non-terminals are bucketed by a fingerprint of their rule sets, and only
// members of the same bucket are compared. Pairs are returned in grammar
// order, i.e. (N[i], N[j]) with i < j, ordered by i, then j.
func FindEquivalences(g *grammar.Grammar) []Pair {
	nts := g.NonTerminals()
	buckets := make(map[string][]int) // fingerprint → indices in grammar order
	prints := make([]string, len(nts))
	for i, N := range nts {
		prints[i] = fingerprint(g.Rules(N))
		buckets[prints[i]] = append(buckets[prints[i]], i)
	}
	var pairs []Pair
	for i, N := range nts {
		for _, j := range buckets[prints[i]] {
			if j <= i {
				continue
			}
			if grammar.SetEqual(g.Rules(N), g.Rules(nts[j])) {
				tracer().Debugf("%s ≡ %s", N, nts[j])
				pairs = append(pairs, Pair{N, nts[j]})
			}
		}
	}
	tracer().Debugf("%d non-terminals in %d fingerprint buckets", len(nts), len(buckets))
	return pairs
}

// ruleSetShape is the hashable representation of a set of rules.
type ruleSetShape struct {
	Rules []string
}

// fingerprint hashes the set of rules, independent of rule order and
// multiplicity. Set-equal rule lists have equal fingerprints; the converse is
// not guaranteed.
func fingerprint(rules []grammar.Rule) string {
	set := treeset.NewWith(utils.StringComparator)
	for _, r := range rules {
		set.Add(ruleKey(r))
	}
	shape := ruleSetShape{Rules: make([]string, 0, set.Size())}
	for _, k := range set.Values() {
		shape.Rules = append(shape.Rules, k.(string))
	}
	h, err := structhash.Hash(shape, 1)
	if err != nil {
		tracer().Errorf("cannot hash rule set: %v", err)
		return ""
	}
	return h
}

// ruleKey encodes a rule such that symbols of different kinds never collide.
func ruleKey(r grammar.Rule) string {
	var b bytes.Buffer
	for _, sym := range r {
		b.WriteByte(byte('0' + sym.Kind))
		b.WriteString(sym.Name)
		b.WriteByte(0x1f)
	}
	return b.String()
}
