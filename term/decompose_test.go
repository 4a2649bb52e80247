package term

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestContainsVariable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.term")
	defer teardown()
	//
	e := Const("e", 2.72, 2.71)
	if ContainsVariable(Lit(1)) || ContainsVariable(e) || ContainsVariable(Negate(Sum(e, Lit(1)))) {
		t.Errorf("variable-free terms reported as containing a variable")
	}
	if !ContainsVariable(Var("x")) || !ContainsVariable(Reciprocal(Product(e, Var("x")))) {
		t.Errorf("variable-bearing terms reported as variable-free")
	}
}

func TestDecomposition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.term")
	defer teardown()
	//
	x, y := Var("x"), Var("y")
	e := Const("e", 2.72, 2.71)
	cases := []struct {
		t           Term
		coefficient string
		variable    string
	}{
		{Lit(3), "3", "1"},
		{e, "e", "1"},
		{x, "1", "x"},
		{Product(Lit(2), x), "2", "x"},
		{SumOf(Lit(2)), "2", "1"},
		{ProductOf(Lit(2), x, e, y), "(2 * e)", "(x * y)"},
		{Negate(Product(Lit(2), x)), "(-2)", "x"},
		{Imaginary(Product(e, x)), "i*e", "x"},
		{Imaginary(Negate(x)), "i*(-1)", "x"},
		{Reciprocal(Product(Lit(2), x)), "(1.0/2)", "(1.0/x)"},
		{Reciprocal(x), "1", "(1.0/x)"},
		{Reciprocal(Product(e, Reciprocal(Sum(e, x)))), "1", "(1.0/(e * (1.0/(e + x))))"},
		{Reciprocal(Product(x, Reciprocal(e))), "1", "(1.0/(x * (1.0/e)))"},
		{Negate(Reciprocal(Product(x, Reciprocal(y)))), "(-1)", "(1.0/(x * (1.0/y)))"},
		{Reciprocal(Product(e, Reciprocal(Lit(2)))), "(1.0/(e * (1.0/2)))", "1"},
		{Sum(x, Lit(1)), "1", "(x + 1)"},
		{Sum(e, Lit(1)), "(e + 1)", "1"},
		{Product(Lit(2), Sum(x, Lit(1))), "2", "(x + 1)"},
	}
	for _, c := range cases {
		if s := CoefficientPart(c.t).String(); s != c.coefficient {
			t.Errorf("coefficient part of %s: expected %s, got %s", c.t, c.coefficient, s)
		}
		if s := VariablePart(c.t).String(); s != c.variable {
			t.Errorf("variable part of %s: expected %s, got %s", c.t, c.variable, s)
		}
	}
}

func TestVariablePartIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.term")
	defer teardown()
	//
	x := Var("x")
	p := Product(Lit(2), x)
	vp := VariablePart(p).(*Variable)
	vp.Name = "z"
	if x.Name != "x" {
		t.Errorf("variable part must be a copy")
	}
}
