package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Term is a node of a formula tree. It is one of *Literal, *Constant,
// *Variable or *Operator; no other implementations exist.
//
// Terms must not be modified after they have been handed to a parent term
// or to the simplifier.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Literal is an exact numeric leaf.
type Literal struct {
	Value float64
}

// Constant is a named irrational or transcendental number, together with an
// interval known to contain it. The interval is descriptive only.
type Constant struct {
	Name  string
	Upper float64
	Lower float64
}

// Variable is a symbol, optionally subscripted by an index list of terms,
// e.g. x_{i, j+1}.
type Variable struct {
	Name  string
	Index []Term
}

// Operator is an inner node of a formula tree.
type Operator struct {
	Kind Kind
	Args []Term
}

func (*Literal) isTerm()  {}
func (*Constant) isTerm() {}
func (*Variable) isTerm() {}
func (*Operator) isTerm() {}

// Kind is the category of an operator.
type Kind int8

// Operator kinds. Sums and products are n-ary with at least 2 arguments,
// equations are binary, all other kinds are unary.
const (
	ImaginaryOp  Kind = iota // i·x
	NegateOp                 // −x
	ReciprocalOp             // 1/x
	SumOp                    // a + b + …
	ProductOp                // a · b · …
	EqualsOp                 // a = b
)

var kindNames = [...]string{"imaginary", "negate", "reciprocal", "sum", "product", "equals"}

// String returns the name of an operator kind. Kind names take part in the
// ordering of operators.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsUnary is a predicate for the unary kinds imaginary, negate and reciprocal.
func (k Kind) IsUnary() bool {
	return k == ImaginaryOp || k == NegateOp || k == ReciprocalOp
}

// Arity returns the number of arguments of an operator.
func (op *Operator) Arity() int {
	return len(op.Args)
}

// Arg returns the i-th argument of an operator.
func (op *Operator) Arg(i int) Term {
	return op.Args[i]
}

// --- Type checks -----------------------------------------------------------

// AsOperator returns t as an operator, if t is an operator of kind k.
func AsOperator(t Term, k Kind) (*Operator, bool) {
	if op, ok := t.(*Operator); ok && op.Kind == k {
		return op, true
	}
	return nil, false
}

// AsLiteral returns t as a literal, if it is one.
func AsLiteral(t Term) (*Literal, bool) {
	l, ok := t.(*Literal)
	return l, ok
}

// IsLiteral is a predicate: is t a literal with value v?
func IsLiteral(t Term, v float64) bool {
	if l, ok := t.(*Literal); ok {
		return l.Value == v
	}
	return false
}

// --- Cloning ---------------------------------------------------------------

// Clone returns a deep, independent copy of a term.
func Clone(t Term) Term {
	switch x := t.(type) {
	case *Literal:
		return &Literal{Value: x.Value}
	case *Constant:
		c := *x
		return &c
	case *Variable:
		return &Variable{Name: x.Name, Index: cloneAll(x.Index)}
	case *Operator:
		return &Operator{Kind: x.Kind, Args: cloneAll(x.Args)}
	}
	panic(fmt.Sprintf("term: unknown term type %T", t))
}

func cloneAll(ts []Term) []Term {
	if ts == nil {
		return nil
	}
	c := make([]Term, len(ts))
	for i, t := range ts {
		c[i] = Clone(t)
	}
	return c
}
