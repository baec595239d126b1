package literal

import (
	"fmt"
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/cfgmin"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of grammar literals.
const (
	EOF       cfgmin.TokType = -1
	StringTok cfgmin.TokType = -3
)

var errInvalidUTF8 = errors.New("invalid UTF-8 encoding")

// The tokens representing literal one-char lexemes
var literals = []string{"{", "}", "[", "]", ":", ","}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time compilation of the DFA

// compiledLexer compiles the lexer for grammar literals once.
func compiledLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`#[^\n]*\n?`), skip) // skip comments
		lexer.Add([]byte(`\"([^"\\]|\\.)*\"`), makeToken(StringTok))
		lexer.Add([]byte(`'([^'\\]|\\.)*'`), makeToken(StringTok))
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		for _, lit := range literals {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			lexer.Add([]byte(r), makeToken(cfgmin.TokType(lit[0])))
		}
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(tt cfgmin.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(tt), string(m.Bytes), m), nil
	}
}

// Token is a token of a grammar literal.
type Token struct {
	toktype cfgmin.TokType
	lexeme  string
	value   interface{}
	span    cfgmin.Span
	Line    int // 1-based line of the first character
	Column  int // 1-based column of the first character
}

var _ cfgmin.Token = Token{}

// TokType is part of the cfgmin.Token interface.
func (t Token) TokType() cfgmin.TokType {
	return t.toktype
}

// Lexeme is part of the cfgmin.Token interface.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Value is part of the cfgmin.Token interface. For strings it is the unquoted
// content.
func (t Token) Value() interface{} {
	return t.value
}

// Span is part of the cfgmin.Token interface.
func (t Token) Span() cfgmin.Span {
	return t.span
}

func (t Token) String() string {
	if t.toktype == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.lexeme)
}

// Scanner splits a grammar literal into tokens.
type Scanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

// NewScanner creates a scanner for a given input.
func NewScanner(input string) (*Scanner, error) {
	lx, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, Error: logError}, nil
}

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// Default error reporting function for the literal scanner
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken returns the next token of the input. Unconsumable input is
// reported to the error handler and skipped.
func (s *Scanner) NextToken() Token {
	tok, err, eof := s.scanner.Next()
	for err != nil {
		s.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			s.scanner.TC = ui.FailTC
		}
		tok, err, eof = s.scanner.Next()
	}
	if eof {
		return Token{toktype: EOF, span: cfgmin.Span{uint64(s.scanner.TC), uint64(s.scanner.TC)}}
	}
	lmtok := tok.(*lexmachine.Token)
	t := Token{
		toktype: cfgmin.TokType(lmtok.Type),
		lexeme:  string(lmtok.Lexeme),
		span:    cfgmin.Span{uint64(lmtok.TC), uint64(lmtok.TC + len(lmtok.Lexeme))},
		Line:    lmtok.StartLine,
		Column:  lmtok.StartColumn,
	}
	if t.toktype == StringTok {
		var str string
		if str, err = unquote(t.lexeme); err == nil && !(utf8.ValidString(t.lexeme) && utf8.ValidString(str)) {
			err = errInvalidUTF8
		}
		t.value = str
		if err != nil {
			s.Error(&SyntaxError{Line: t.Line, Column: t.Column,
				Msg: fmt.Sprintf("invalid string %s: %v", t.lexeme, err)})
		}
	}
	tracer().Debugf("token %v @ %v", t, t.span)
	return t
}
