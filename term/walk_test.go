package term

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.term")
	defer teardown()
	//
	x, y := Var("x"), Var("y")
	xj := IndexedVar("x", Var("j"))
	f := Equals(SumOf(Product(y, x), Negate(x), xj, Reciprocal(y)), Lit(0))
	vars := Variables(f)
	if len(vars) != 3 {
		t.Fatalf("expected 3 distinct variables, got %d: %v", len(vars), vars)
	}
	expected := []string{"x", "x_{j}", "y"}
	for i, v := range vars {
		if v.String() != expected[i] {
			t.Errorf("expected variable #%d to be %s, is %s", i, expected[i], v)
		}
	}
	if len(Variables(Sum(Lit(1), Const("e", 2.72, 2.71)))) != 0 {
		t.Errorf("expected no variables in a numeric term")
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.term")
	defer teardown()
	//
	f := Sum(Negate(Var("x")), Product(Lit(2), Var("y")))
	n := 0
	Walk(f, func(node Term) bool {
		n++
		_, isProduct := AsOperator(node, ProductOp)
		return !isProduct
	})
	if n != 4 { // sum, negate, x, product
		t.Errorf("expected 4 visited nodes, got %d", n)
	}
}

func TestDepth(t *testing.T) {
	if d := Depth(Lit(1)); d != 1 {
		t.Errorf("depth of a leaf should be 1, is %d", d)
	}
	if d := Depth(Sum(Negate(Var("x")), Lit(1))); d != 3 {
		t.Errorf("expected depth 3, got %d", d)
	}
}
