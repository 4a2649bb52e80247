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

// Rules for sums.

// (1 + x + 2) ⇒ (3 + x)
//
// A negated literal counts as a literal of opposite sign.
func addLiterals(r *run, op *term.Operator) (term.Term, bool) {
	return foldPair(op, realValue, func(v float64) term.Term {
		return term.Lit(v)
	})
}

// (i*1 + x + i*(-3)) ⇒ (i*(-2) + x)
func addImaginaryLiterals(r *run, op *term.Operator) (term.Term, bool) {
	return foldPair(op, imaginaryValue, func(v float64) term.Term {
		return term.Imaginary(term.Lit(v))
	})
}

// foldPair adds the first two addends for which value succeeds. The folded
// result is placed in front of the remaining addends.
func foldPair(op *term.Operator, value func(term.Term) (float64, bool),
	result func(float64) term.Term) (term.Term, bool) {
	//
	first := -1
	var acc float64
	for i, a := range op.Args {
		v, ok := value(a)
		if !ok {
			continue
		}
		if first < 0 {
			first, acc = i, v
			continue
		}
		rest := without(op.Args, first, i)
		return term.SumOf(append([]term.Term{result(acc + v)}, rest...)...), true
	}
	return nil, false
}

// realValue returns the value of a literal L or of (-L).
func realValue(t term.Term) (float64, bool) {
	if l, ok := term.AsLiteral(t); ok {
		return l.Value, true
	}
	if neg, ok := term.AsOperator(t, term.NegateOp); ok {
		if l, ok := term.AsLiteral(neg.Args[0]); ok {
			return -l.Value, true
		}
	}
	return 0, false
}

// imaginaryValue returns the value of the literal factor of i*L or i*(-L).
func imaginaryValue(t term.Term) (float64, bool) {
	if im, ok := term.AsOperator(t, term.ImaginaryOp); ok {
		return realValue(im.Args[0])
	}
	return 0, false
}

// (a + (-b) + b) ⇒ (a + 0 + 0)
func cancelAddends(r *run, op *term.Operator) (term.Term, bool) {
	for i, a := range op.Args {
		neg, ok := term.AsOperator(a, term.NegateOp)
		if !ok {
			continue
		}
		for j, b := range op.Args {
			if j != i && term.IsEqual(b, neg.Args[0]) {
				args := replaced(op.Args, i, term.Lit(0))
				args[j] = term.Lit(0)
				return term.SumOf(args...), true
			}
		}
	}
	return nil, false
}

// (2*x + y + 3*x) ⇒ (5*x + y)
//
// Two addends are combined if their variable parts are equal and contain a
// variable, and if the sum of their coefficients simplifies to something
// other than a sum. Combining (a*x + b*x) to ((a + b)*x) would just be undone
// by distribution.
func combineLikeTerms(r *run, op *term.Operator) (term.Term, bool) {
	parts := make([]term.Term, op.Arity())
	for i, a := range op.Args {
		parts[i] = term.VariablePart(a)
	}
	for i := range op.Args {
		if !term.ContainsVariable(parts[i]) {
			continue
		}
		for j := i + 1; j < op.Arity(); j++ {
			if !term.IsEqual(parts[i], parts[j]) {
				continue
			}
			coeff := r.simplify(term.Sum(
				term.CoefficientPart(op.Args[i]),
				term.CoefficientPart(op.Args[j])))
			if _, isSum := term.AsOperator(coeff, term.SumOp); isSum {
				continue
			}
			args := replaced(op.Args, i, term.Product(coeff, parts[i]))
			return term.SumOf(without(args, j)...), true
		}
	}
	return nil, false
}
