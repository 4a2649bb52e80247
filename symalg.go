package symalg

import "fmt"

// --- Tokens of formula input -----------------------------------------------

// TokType is a category type for a Token. The formula reader defines the
// concrete categories.
type TokType int

// EOF is the token category signalling the end of input.
const EOF TokType = -1

// Token represents an input token of a formula, as produced by a scanner.
//
// An example would be a token for a literal:
//
//    TokType = Number      // category of this token (reader specific)
//    Lexeme  = "0.01"      // lexeme as it appeared in the input
//    Span    = 4…8         // occurred from position 4 in the input
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span captures a run of input positions: a start position and the position
// just behind the end.
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

// IsNull is a predicate: is s the zero span (0…0)?
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other.
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
