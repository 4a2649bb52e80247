/*
Package term implements the data model of algebraic formulas.

A formula is a tree of terms. Leafs are literals, named constants and
(possibly indexed) variables; inner nodes are operators of a fixed set of
kinds: imaginary unit, negation, reciprocal, sum, product and equation.
Subtraction and division are not operator kinds; they are built directly as
sums of negations and products of reciprocals.

Terms are immutable after construction. Operations which "change" a term
always build a new one, sharing unchanged sub-terms where convenient.
Clients create terms with the smart constructors of this package, which
flatten nested sums and products eagerly:

    x := term.Var("x")
    t := term.Sum(term.Sum(x, term.Lit(1)), term.Lit(2))   // (x + 1 + 2)

Terms are totally ordered (see Compare). The order puts literals before
constants before variables before operators, and is used to bring the
arguments of sums and products into canonical order.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package term

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symalg.term'.
func tracer() tracing.Trace {
	return tracing.Select("symalg.term")
}
