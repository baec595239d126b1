package literal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/cfgmin"
	"github.com/npillmayer/cfgmin/grammar"
	"github.com/timtadh/lexmachine/machines"
)

// --- Grammar ---------------------------------------------------------------

// Literal  ::=  '{' Entries '}'
// Entries  ::=  Entry ',' Entries  |  Entry [',']  |  ε
// Entry    ::=  string ':' Rules
// Rules    ::=  '[' Rule { ',' Rule } [','] ']'  |  '[' ']'
// Rule     ::=  '[' string { ',' string } [','] ']'  |  '[' ']'
//
// Comments starting with '#' will be filtered by the scanner.

// SyntaxError is returned for input which is not a grammar literal.
type SyntaxError struct {
	Source string
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	if e.Source != "" {
		fmt.Fprintf(&b, "%v: ", e.Source)
	}
	if e.Line != 0 {
		fmt.Fprintf(&b, "%d:%d: ", e.Line, e.Column)
	}
	fmt.Fprintf(&b, "error: %v", e.Msg)
	return b.String()
}

// Parse parses a grammar literal and returns a validated grammar.
func Parse(input string) (*grammar.Grammar, error) {
	return ParseNamed("", input)
}

// ParseNamed parses a grammar literal. name is used as the grammar's name and
// as the source in error messages.
func ParseNamed(name string, input string) (*grammar.Grammar, error) {
	scan, err := NewScanner(input)
	if err != nil {
		return nil, err
	}
	p := &parser{source: name, scan: scan}
	scan.SetErrorHandler(func(e error) {
		if p.err != nil {
			return
		}
		switch err := e.(type) {
		case *SyntaxError:
			serr := *err
			serr.Source = name
			p.err = &serr
		case *machines.UnconsumedInput:
			p.err = &SyntaxError{Source: name, Line: err.StartLine, Column: err.StartColumn, Msg: err.Error()}
		default:
			p.err = &SyntaxError{Source: name, Line: p.tok.Line, Column: p.tok.Column, Msg: err.Error()}
		}
	})
	p.next()
	entries := p.literal()
	if p.err != nil {
		return nil, p.err
	}
	g := build(name, entries)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("parsed grammar %q with %d non-terminals", name, g.Size())
	return g, nil
}

type entry struct {
	lhs   string
	rules [][]string
}

type parser struct {
	source string
	scan   *Scanner
	tok    Token
	err    error
}

func (p *parser) next() {
	p.tok = p.scan.NextToken()
}

func (p *parser) fail(msg string, args ...interface{}) {
	if p.err == nil {
		p.err = &SyntaxError{Source: p.source, Line: p.tok.Line, Column: p.tok.Column,
			Msg: fmt.Sprintf(msg, args...)}
	}
}

func (p *parser) is(tt cfgmin.TokType) bool {
	return p.err == nil && p.tok.TokType() == tt
}

func (p *parser) expect(tt cfgmin.TokType, what string) bool {
	if !p.is(tt) {
		p.fail("expected %s, found %v", what, p.tok)
		return false
	}
	p.next()
	return true
}

func (p *parser) literal() []entry {
	var entries []entry
	seen := make(map[string]bool)
	if !p.expect('{', "'{'") {
		return nil
	}
	for p.is(StringTok) {
		e := p.entry()
		if p.err != nil {
			return nil
		}
		if seen[e.lhs] {
			p.fail("duplicate non-terminal %q", e.lhs)
			return nil
		}
		seen[e.lhs] = true
		entries = append(entries, e)
		if !p.is(',') {
			break
		}
		p.next()
	}
	if !p.expect('}', "'}' or a non-terminal") {
		return nil
	}
	if !p.is(EOF) {
		p.fail("unexpected %v after grammar literal", p.tok)
	}
	return entries
}

func (p *parser) entry() entry {
	e := entry{lhs: p.tok.Value().(string)}
	span := p.tok.Span()
	defer func() {
		tracer().Debugf("entry %q @ %v", e.lhs, span.Extend(p.tok.Span()))
	}()
	if e.lhs == "" {
		p.fail("non-terminal must not be empty")
		return e
	}
	p.next()
	if !p.expect(':', "':'") || !p.expect('[', "'['") {
		return e
	}
	for p.is('[') {
		e.rules = append(e.rules, p.rule())
		if !p.is(',') {
			break
		}
		p.next()
	}
	p.expect(']', "']' or a rule")
	return e
}

func (p *parser) rule() []string {
	rule := []string{}
	p.next() // '['
	for p.is(StringTok) {
		rule = append(rule, p.tok.Value().(string))
		p.next()
		if !p.is(',') {
			break
		}
		p.next()
	}
	p.expect(']', "']' or a symbol")
	return rule
}

// build classifies the names of parsed entries into symbols.
func build(name string, entries []entry) *grammar.Grammar {
	keys := make(map[string]bool, len(entries))
	for _, e := range entries {
		keys[e.lhs] = true
	}
	g := grammar.NewGrammar(name)
	for _, e := range entries {
		N := grammar.NonTerminal(e.lhs)
		g.Define(N)
		for _, names := range e.rules {
			rule := make(grammar.Rule, len(names))
			for i, s := range names {
				rule[i] = classify(s, keys)
			}
			g.AddRule(N, rule)
		}
	}
	return g
}

func classify(name string, keys map[string]bool) grammar.Symbol {
	if name == "" {
		return grammar.Epsilon
	}
	if keys[name] || looksLikeNonTerminal(name) {
		return grammar.NonTerminal(name)
	}
	return grammar.Terminal(name)
}

func looksLikeNonTerminal(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// unquote strips the quotes of a string lexeme and resolves escapes.
func unquote(lexeme string) (string, error) {
	if len(lexeme) < 2 {
		return "", fmt.Errorf("unterminated string")
	}
	if lexeme[0] == '"' {
		return strconv.Unquote(lexeme)
	}
	// re-quote '…' as "…"
	var b strings.Builder
	b.WriteByte('"')
	content := lexeme[1 : len(lexeme)-1]
	for i := 0; i < len(content); i++ {
		switch c := content[i]; {
		case c == '\\' && i+1 < len(content) && content[i+1] == '\'':
			b.WriteByte('\'')
			i++
		case c == '\\' && i+1 < len(content):
			b.WriteByte(c)
			b.WriteByte(content[i+1])
			i++
		case c == '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return strconv.Unquote(b.String())
}
