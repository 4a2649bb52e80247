package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// A summand like 3·i·x·y splits into a coefficient part 3·i and a variable
// part x·y. Summands with equal variable parts are "like terms" and may be
// combined by adding their coefficients. For every term t
//
//    CoefficientPart(t) · VariablePart(t)  ≡  t
//
// holds algebraically.

// ContainsVariable is a predicate: does t contain a variable anywhere?
func ContainsVariable(t Term) bool {
	switch x := t.(type) {
	case *Variable:
		return true
	case *Operator:
		for _, arg := range x.Args {
			if ContainsVariable(arg) {
				return true
			}
		}
	}
	return false
}

// VariablePart returns the part of t built from variable-bearing factors.
// Signs and imaginary units belong to the coefficient, not to the variable
// part. Sums and equations are not split: they are either completely
// variable or completely coefficient. The same holds for a reciprocal whose
// operand holds another reciprocal.
func VariablePart(t Term) Term {
	switch x := t.(type) {
	case *Literal, *Constant:
		return Lit(1)
	case *Variable:
		return Clone(x)
	case *Operator:
		switch x.Kind {
		case ImaginaryOp, NegateOp:
			return VariablePart(x.Args[0])
		case ReciprocalOp:
			if !holdsReciprocal(x.Args[0]) {
				return reciprocalOrOne(VariablePart(x.Args[0]))
			}
		case ProductOp:
			return ProductOf(factors(x, true)...)
		}
		if ContainsVariable(x) {
			return Clone(x)
		}
	}
	return Lit(1)
}

// CoefficientPart returns the part of t built from variable-free factors.
// It is the dual of VariablePart.
func CoefficientPart(t Term) Term {
	switch x := t.(type) {
	case *Literal, *Constant:
		return Clone(x)
	case *Variable:
		return Lit(1)
	case *Operator:
		switch x.Kind {
		case ImaginaryOp:
			return Imaginary(CoefficientPart(x.Args[0]))
		case NegateOp:
			return Negate(CoefficientPart(x.Args[0]))
		case ReciprocalOp:
			if !holdsReciprocal(x.Args[0]) {
				return reciprocalOrOne(CoefficientPart(x.Args[0]))
			}
		case ProductOp:
			return ProductOf(factors(x, false)...)
		}
		if !ContainsVariable(x) {
			return Clone(x)
		}
	}
	return Lit(1)
}

// factors collects clones of the factors of a product which do (or do not)
// contain a variable.
func factors(product *Operator, variable bool) []Term {
	var fs []Term
	for _, f := range product.Args {
		if ContainsVariable(f) == variable {
			fs = append(fs, Clone(f))
		}
	}
	return fs
}

// holdsReciprocal is a predicate: is there a reciprocal anywhere in t?
func holdsReciprocal(t Term) bool {
	found := false
	Walk(t, func(node Term) bool {
		if _, ok := AsOperator(node, ReciprocalOp); ok {
			found = true
		}
		return !found
	})
	return found
}

func reciprocalOrOne(t Term) Term {
	if IsLiteral(t, 1) {
		return t
	}
	return Reciprocal(t)
}
