package cfgmin

import "fmt"

// --- Tokens of grammar literals -------------------------------------------

// TokType is a category type for a Token.
type TokType int

// Token represents an input token of a grammar literal, as produced by the
// literal scanner.
//
// An example would be a token for a quoted symbol name:
//
//    TokType = String      // identifier for this kind of tokens
//    Lexeme  = `"Expr"`    // lexeme how it appeared in the input stream
//    Value   = "Expr"      // unquoted content
//    Span    = 12…18       // occured from position 12 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
