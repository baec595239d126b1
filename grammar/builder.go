package grammar

// Builder is a builder type for grammars. Use it as
//
//    b := grammar.NewBuilder("G")
//    b.LHS("S").N("A").T("a").End()   // S → A a
//    b.LHS("A").Epsilon()             // A →
//    g, err := b.Grammar()
//
// Non-terminals are defined in the order their first rule is started.
type Builder struct {
	g *Grammar
}

// NewBuilder creates a builder for a grammar with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{g: NewGrammar(name)}
}

// RuleBuilder collects the right-hand side of a single rule.
type RuleBuilder struct {
	b   *Builder
	lhs Symbol
	rhs Rule
}

// LHS starts a new rule for non-terminal name.
func (b *Builder) LHS(name string) *RuleBuilder {
	lhs := NonTerminal(name)
	b.g.Define(lhs)
	return &RuleBuilder{b: b, lhs: lhs, rhs: Rule{}}
}

// N appends a non-terminal to the right-hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, NonTerminal(name))
	return rb
}

// T appends a terminal to the right-hand side.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, Terminal(name))
	return rb
}

// End closes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Builder {
	rb.b.g.AddRule(rb.lhs, rb.rhs)
	return rb.b
}

// Epsilon closes the rule as an empty production, regardless of any symbols
// appended so far.
func (rb *RuleBuilder) Epsilon() *Builder {
	rb.b.g.AddRule(rb.lhs, Rule{})
	return rb.b
}

// Grammar returns the grammar built so far, after validating it. The builder
// keeps its own copy, so clients may continue adding rules.
func (b *Builder) Grammar() (*Grammar, error) {
	g := b.g.Copy()
	if err := g.Validate(); err != nil {
		tracer().Errorf("grammar %s: %v", g.Name, err)
		return g, err
	}
	return g, nil
}
