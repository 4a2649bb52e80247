package simplify

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/symalg/term"
)

// Rules for the unary operators imaginary, negate and reciprocal.

// i*i*x ⇒ (-x)
func doubleImaginary(r *run, op *term.Operator) (term.Term, bool) {
	if inner, ok := term.AsOperator(op.Arg(0), term.ImaginaryOp); ok {
		return term.Negate(inner.Args[0]), true
	}
	return nil, false
}

// (-(-x)) ⇒ x
func doubleNegate(r *run, op *term.Operator) (term.Term, bool) {
	if inner, ok := term.AsOperator(op.Arg(0), term.NegateOp); ok {
		return inner.Args[0], true
	}
	return nil, false
}

// (1.0/(1.0/x)) ⇒ x
func doubleReciprocal(r *run, op *term.Operator) (term.Term, bool) {
	if inner, ok := term.AsOperator(op.Arg(0), term.ReciprocalOp); ok {
		return inner.Args[0], true
	}
	return nil, false
}

// (-i*x) ⇒ i*(-x)
func swapNegateImaginary(r *run, op *term.Operator) (term.Term, bool) {
	if inner, ok := term.AsOperator(op.Arg(0), term.ImaginaryOp); ok {
		return term.Imaginary(term.Negate(inner.Args[0])), true
	}
	return nil, false
}

// (-0) ⇒ 0 and i*0 ⇒ 0
func unaryOfZero(r *run, op *term.Operator) (term.Term, bool) {
	if term.IsLiteral(op.Arg(0), 0) {
		return term.Lit(0), true
	}
	return nil, false
}

// (-(a + b)) ⇒ ((-a) + (-b)), same for imaginary
func distributeUnary(r *run, op *term.Operator) (term.Term, bool) {
	sum, ok := term.AsOperator(op.Arg(0), term.SumOp)
	if !ok {
		return nil, false
	}
	addends := make([]term.Term, sum.Arity())
	for i, a := range sum.Args {
		addends[i] = &term.Operator{Kind: op.Kind, Args: []term.Term{a}}
	}
	return term.SumOf(addends...), true
}

// (1.0/i*x) ⇒ i*(-(1.0/x))
func reciprocalOfImaginary(r *run, op *term.Operator) (term.Term, bool) {
	if inner, ok := term.AsOperator(op.Arg(0), term.ImaginaryOp); ok {
		return term.Imaginary(term.Negate(term.Reciprocal(inner.Args[0]))), true
	}
	return nil, false
}

// (1.0/(-x)) ⇒ (-(1.0/x))
func reciprocalOfNegate(r *run, op *term.Operator) (term.Term, bool) {
	if inner, ok := term.AsOperator(op.Arg(0), term.NegateOp); ok {
		return term.Negate(term.Reciprocal(inner.Args[0])), true
	}
	return nil, false
}

// (1.0/1) ⇒ 1
func reciprocalOfOne(r *run, op *term.Operator) (term.Term, bool) {
	if term.IsLiteral(op.Arg(0), 1) {
		return term.Lit(1), true
	}
	return nil, false
}

// (1.0/(a + (1.0/y) + c)) ⇒ (y * (1.0/(a*y + 1 + c*y)))
//
// The first addend holding a reciprocal, possibly wrapped into an imaginary
// unit and/or a negation, determines the factor y. The addend may be the
// reciprocal itself or a product with a reciprocal factor.
func commonDenominator(r *run, op *term.Operator) (term.Term, bool) {
	sum, ok := term.AsOperator(op.Arg(0), term.SumOp)
	if !ok {
		return nil, false
	}
	var y term.Term
	for _, a := range sum.Args {
		if y = denominator(a); y != nil {
			break
		}
	}
	if y == nil {
		return nil, false
	}
	addends := make([]term.Term, sum.Arity())
	for i, a := range sum.Args {
		addends[i] = term.Product(a, term.Clone(y))
	}
	return term.Product(term.Clone(y), term.Reciprocal(term.SumOf(addends...))), true
}

// denominator returns the operand of a reciprocal within an addend, or nil.
func denominator(addend term.Term) term.Term {
	if im, ok := term.AsOperator(addend, term.ImaginaryOp); ok {
		addend = im.Args[0]
	}
	if neg, ok := term.AsOperator(addend, term.NegateOp); ok {
		addend = neg.Args[0]
	}
	if rec, ok := term.AsOperator(addend, term.ReciprocalOp); ok {
		return rec.Args[0]
	}
	if prod, ok := term.AsOperator(addend, term.ProductOp); ok {
		for _, f := range prod.Args {
			if rec, ok := term.AsOperator(f, term.ReciprocalOp); ok {
				return rec.Args[0]
			}
		}
	}
	return nil
}
