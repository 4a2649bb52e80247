package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// --- Leafs -----------------------------------------------------------------

// Lit creates a literal.
func Lit(v float64) *Literal {
	return &Literal{Value: v}
}

// Const creates a named constant known to lie within [lower…upper].
func Const(name string, upper, lower float64) *Constant {
	return &Constant{Name: name, Upper: upper, Lower: lower}
}

// Var creates a variable without an index.
func Var(name string) *Variable {
	return &Variable{Name: name}
}

// IndexedVar creates a variable subscripted by a list of terms.
func IndexedVar(name string, index ...Term) *Variable {
	v := &Variable{Name: name}
	if len(index) > 0 {
		v.Index = make([]Term, len(index))
		copy(v.Index, index)
	}
	return v
}

// --- Operators -------------------------------------------------------------

// Imaginary creates i·t.
func Imaginary(t Term) Term {
	return unary(ImaginaryOp, t)
}

// Negate creates −t.
func Negate(t Term) Term {
	return unary(NegateOp, t)
}

// Reciprocal creates 1/t.
func Reciprocal(t Term) Term {
	return unary(ReciprocalOp, t)
}

// Equals creates the equation a = b.
func Equals(a, b Term) Term {
	return &Operator{Kind: EqualsOp, Args: []Term{a, b}}
}

// Sum creates a + b. If a or b are sums themselves, their arguments are
// spliced in, i.e. a sum never has a direct child which is a sum.
func Sum(a, b Term) Term {
	return flatten(SumOp, a, b)
}

// Product creates a · b. If a or b are products themselves, their arguments
// are spliced in, i.e. a product never has a direct child which is a product.
func Product(a, b Term) Term {
	return flatten(ProductOp, a, b)
}

// Subtract creates a − b, which is a + (−b).
func Subtract(a, b Term) Term {
	return Sum(a, Negate(b))
}

// Divide creates a / b, which is a · (1/b).
func Divide(a, b Term) Term {
	return Product(a, Reciprocal(b))
}

// SumOf creates a flattened sum of any number of terms. A single term is
// returned as is, and an empty sum is the literal 0.
func SumOf(ts ...Term) Term {
	switch len(ts) {
	case 0:
		return Lit(0)
	case 1:
		return ts[0]
	}
	return flatten(SumOp, ts...)
}

// ProductOf creates a flattened product of any number of terms. A single term
// is returned as is, and an empty product is the literal 1.
func ProductOf(ts ...Term) Term {
	switch len(ts) {
	case 0:
		return Lit(1)
	case 1:
		return ts[0]
	}
	return flatten(ProductOp, ts...)
}

func unary(k Kind, t Term) Term {
	return &Operator{Kind: k, Args: []Term{t}}
}

// flatten builds an operator of kind k from ts, splicing the arguments of
// operands of the same kind. The argument list is always freshly allocated.
func flatten(k Kind, ts ...Term) Term {
	n := 0
	for _, t := range ts {
		if op, ok := AsOperator(t, k); ok {
			n += len(op.Args)
		} else {
			n++
		}
	}
	args := make([]Term, 0, n)
	for _, t := range ts {
		if op, ok := AsOperator(t, k); ok {
			args = append(args, op.Args...)
		} else {
			args = append(args, t)
		}
	}
	return &Operator{Kind: k, Args: args}
}
