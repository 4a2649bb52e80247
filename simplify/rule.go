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

// Rewriter is a function
//
//     operator ↦ term
//
// i.e., a term rewriting function. It returns the replacement and true if
// it matches op, and (nil, false) otherwise. A rewriter never modifies op.
// It may call back into the running simplification, e.g. to simplify a
// candidate replacement before deciding on a match.
type Rewriter func(r *run, op *term.Operator) (term.Term, bool)

// Rule is a rule for term rewriting. It applies to operators of a single
// kind. If it matches, the driver simplifies the replacement from scratch,
// unless the rule is a reordering rule: the result of reordering is handed
// on to the remaining rules of the catalogue.
type Rule struct {
	Name    string
	Kind    term.Kind
	Rewrite Rewriter
	Reorder bool
}

// catalogue is the fixed sequence of rules the driver tries on every
// operator node. Within an operator kind the sequence matters for what the
// normal form looks like.
var catalogue = []Rule{
	{Name: "double-imaginary", Kind: term.ImaginaryOp, Rewrite: doubleImaginary},
	{Name: "double-negate", Kind: term.NegateOp, Rewrite: doubleNegate},
	{Name: "double-reciprocal", Kind: term.ReciprocalOp, Rewrite: doubleReciprocal},
	{Name: "swap-negate-imaginary", Kind: term.NegateOp, Rewrite: swapNegateImaginary},
	{Name: "negate-zero", Kind: term.NegateOp, Rewrite: unaryOfZero},
	{Name: "imaginary-zero", Kind: term.ImaginaryOp, Rewrite: unaryOfZero},
	{Name: "add-literals", Kind: term.SumOp, Rewrite: addLiterals},
	{Name: "add-imaginary-literals", Kind: term.SumOp, Rewrite: addImaginaryLiterals},
	{Name: "distribute-negate", Kind: term.NegateOp, Rewrite: distributeUnary},
	{Name: "distribute-imaginary", Kind: term.ImaginaryOp, Rewrite: distributeUnary},
	{Name: "drop-zero", Kind: term.SumOp, Rewrite: dropNeutral(0)},
	{Name: "cancel-addends", Kind: term.SumOp, Rewrite: cancelAddends},
	{Name: "combine-like-terms", Kind: term.SumOp, Rewrite: combineLikeTerms},
	{Name: "flatten-sum", Kind: term.SumOp, Rewrite: flatten},
	{Name: "order-sum", Kind: term.SumOp, Rewrite: order, Reorder: true},
	{Name: "multiply-literals", Kind: term.ProductOp, Rewrite: multiplyLiterals},
	{Name: "flatten-product", Kind: term.ProductOp, Rewrite: flatten},
	{Name: "hoist-negate", Kind: term.ProductOp, Rewrite: hoist(term.NegateOp)},
	{Name: "hoist-imaginary", Kind: term.ProductOp, Rewrite: hoist(term.ImaginaryOp)},
	{Name: "reciprocal-imaginary", Kind: term.ReciprocalOp, Rewrite: reciprocalOfImaginary},
	{Name: "reciprocal-negate", Kind: term.ReciprocalOp, Rewrite: reciprocalOfNegate},
	{Name: "drop-one", Kind: term.ProductOp, Rewrite: dropNeutral(1)},
	{Name: "multiply-zero", Kind: term.ProductOp, Rewrite: multiplyZero},
	{Name: "reciprocal-one", Kind: term.ReciprocalOp, Rewrite: reciprocalOfOne},
	{Name: "combine-reciprocals", Kind: term.ProductOp, Rewrite: combineReciprocals},
	{Name: "cancel-reciprocal", Kind: term.ProductOp, Rewrite: cancelReciprocal},
	{Name: "order-product", Kind: term.ProductOp, Rewrite: order, Reorder: true},
	{Name: "distribute", Kind: term.ProductOp, Rewrite: distribute},
	{Name: "common-denominator", Kind: term.ReciprocalOp, Rewrite: commonDenominator},
}

// Rules returns the names of the rules of the catalogue, in the sequence
// the driver tries them.
func Rules() []string {
	names := make([]string, len(catalogue))
	for i, rule := range catalogue {
		names[i] = rule.Name
	}
	return names
}

// --- Rules common to sums and products -------------------------------------

// (a + (b + c)) ⇒ (a + b + c), same for products
func flatten(r *run, op *term.Operator) (term.Term, bool) {
	for _, arg := range op.Args {
		if _, ok := term.AsOperator(arg, op.Kind); ok {
			return rebuild(op.Kind, op.Args...), true
		}
	}
	return nil, false
}

// canonical order of arguments
func order(r *run, op *term.Operator) (term.Term, bool) {
	if term.IsSorted(op.Args) {
		return nil, false
	}
	return &term.Operator{Kind: op.Kind, Args: term.SortArgs(op.Args)}, true
}

// (a + 0 + b) ⇒ (a + b) and (a * 1 * b) ⇒ (a * b)
func dropNeutral(neutral float64) Rewriter {
	return func(r *run, op *term.Operator) (term.Term, bool) {
		for i, arg := range op.Args {
			if term.IsLiteral(arg, neutral) {
				return rebuild(op.Kind, without(op.Args, i)...), true
			}
		}
		return nil, false
	}
}

// --- Helpers ---------------------------------------------------------------

// rebuild creates a flattened sum or product of ts.
func rebuild(k term.Kind, ts ...term.Term) term.Term {
	if k == term.SumOp {
		return term.SumOf(ts...)
	}
	return term.ProductOf(ts...)
}

// without returns a copy of ts with the elements at the given positions left
// out.
func without(ts []term.Term, positions ...int) []term.Term {
	rest := make([]term.Term, 0, len(ts))
	for i, t := range ts {
		skip := false
		for _, p := range positions {
			if i == p {
				skip = true
				break
			}
		}
		if !skip {
			rest = append(rest, t)
		}
	}
	return rest
}

// replaced returns a copy of ts with the element at position i replaced.
func replaced(ts []term.Term, i int, t term.Term) []term.Term {
	c := make([]term.Term, len(ts))
	copy(c, ts)
	c[i] = t
	return c
}
