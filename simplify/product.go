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

// Rules for products.

// (2 * x * 3) ⇒ (6 * x)
func multiplyLiterals(r *run, op *term.Operator) (term.Term, bool) {
	first := -1
	for i, f := range op.Args {
		l, ok := term.AsLiteral(f)
		if !ok {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		v := op.Args[first].(*term.Literal).Value * l.Value
		rest := without(op.Args, first, i)
		return term.ProductOf(append([]term.Term{term.Lit(v)}, rest...)...), true
	}
	return nil, false
}

// (a * (-b) * c) ⇒ (-(a * b * c)), same for imaginary
func hoist(k term.Kind) Rewriter {
	return func(r *run, op *term.Operator) (term.Term, bool) {
		for i, f := range op.Args {
			if u, ok := term.AsOperator(f, k); ok {
				inner := term.ProductOf(replaced(op.Args, i, u.Args[0])...)
				return &term.Operator{Kind: k, Args: []term.Term{inner}}, true
			}
		}
		return nil, false
	}
}

// (a * 0 * b) ⇒ 0
func multiplyZero(r *run, op *term.Operator) (term.Term, bool) {
	for _, f := range op.Args {
		if term.IsLiteral(f, 0) {
			return term.Lit(0), true
		}
	}
	return nil, false
}

// ((1.0/a) * b * (1.0/c)) ⇒ ((1.0/(a * c)) * b)
func combineReciprocals(r *run, op *term.Operator) (term.Term, bool) {
	first := -1
	for i, f := range op.Args {
		rec, ok := term.AsOperator(f, term.ReciprocalOp)
		if !ok {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		a := op.Args[first].(*term.Operator).Args[0]
		combined := term.Reciprocal(term.Product(a, rec.Args[0]))
		rest := without(op.Args, first, i)
		return term.ProductOf(append([]term.Term{combined}, rest...)...), true
	}
	return nil, false
}

// (x * (1.0/x)) ⇒ (1 * 1) and (x * (1.0/(x * y))) ⇒ (1 * (1.0/(1 * y)))
func cancelReciprocal(r *run, op *term.Operator) (term.Term, bool) {
	for i, f := range op.Args {
		rec, ok := term.AsOperator(f, term.ReciprocalOp)
		if !ok {
			continue
		}
		d := rec.Args[0]
		inner, isProduct := term.AsOperator(d, term.ProductOp)
		if !isProduct {
			if k := find(op.Args, d, i); k >= 0 {
				args := replaced(op.Args, i, term.Lit(1))
				args[k] = term.Lit(1)
				return term.ProductOf(args...), true
			}
			continue
		}
		for m, g := range inner.Args {
			if k := find(op.Args, g, i); k >= 0 {
				denom := term.ProductOf(replaced(inner.Args, m, term.Lit(1))...)
				args := replaced(op.Args, i, term.Reciprocal(denom))
				args[k] = term.Lit(1)
				return term.ProductOf(args...), true
			}
		}
	}
	return nil, false
}

// find returns the position of the first element of ts equal to t, skipping
// position skip, or -1.
func find(ts []term.Term, t term.Term, skip int) int {
	for k, x := range ts {
		if k != skip && term.IsEqual(x, t) {
			return k
		}
	}
	return -1
}

// (a * (b + c) * d) ⇒ ((b * a * d) + (c * a * d))
//
// Distribution is restricted to products containing a variable. Purely
// numeric products like (2 * (e + 1)) are left alone.
func distribute(r *run, op *term.Operator) (term.Term, bool) {
	if !term.ContainsVariable(op) {
		return nil, false
	}
	for i, f := range op.Args {
		sum, ok := term.AsOperator(f, term.SumOp)
		if !ok {
			continue
		}
		others := without(op.Args, i)
		parts := make([]term.Term, sum.Arity())
		for j, a := range sum.Args {
			parts[j] = term.ProductOf(append([]term.Term{a}, others...)...)
		}
		return term.SumOf(parts...), true
	}
	return nil, false
}
