package session

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symalg/term"
)

func TestDefineBinding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.session")
	defer teardown()
	//
	symtab := NewSymbolTable()
	b, old := symtab.Define("a", term.Var("x"))
	if b == nil || old != nil {
		t.Fatalf("expected new binding without predecessor")
	}
	if symtab.Resolve("a") != b {
		t.Error("cannot find stored binding in table")
	}
	if _, old = symtab.Define("a", term.Lit(1)); old != b {
		t.Error("binding should have been replaced")
	}
	if b, _ := symtab.Define("", term.Lit(1)); b != nil {
		t.Error("empty names must not be bound")
	}
	if symtab.Size() != 1 {
		t.Errorf("expected 1 binding, have %d", symtab.Size())
	}
}

func TestEachInNameOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.session")
	defer teardown()
	//
	symtab := NewSymbolTable()
	for _, name := range []string{"c", "a", "b"} {
		symtab.Define(name, term.Var(name))
	}
	s := ""
	symtab.Each(func(name string, b *Binding) {
		s += b.Name()
	})
	if s != "abc" {
		t.Errorf("expected bindings in order abc, got %s", s)
	}
}

func TestScopeUpsearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.session")
	defer teardown()
	//
	scopep := NewScope("parent", nil)
	scope := NewScope("current", scopep)
	scopep.Define("a", term.Var("x"))
	b, sc := scope.Resolve("a")
	if b == nil || sc != scopep {
		t.Fatalf("expected to find binding for a in parent scope")
	}
	if _, sc := scope.Resolve("b"); sc != nil {
		t.Errorf("did not expect to find unbound name b")
	}
	resolve := scope.Resolver()
	if x, ok := resolve("a"); !ok || x.String() != "x" {
		t.Errorf("resolver should deliver x for a")
	}
}

func TestShadowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.session")
	defer teardown()
	//
	st := NewScopeTree()
	st.Globals().Define("a", term.Lit(1))
	st.Globals().Define("b", term.Lit(2))
	inner := st.PushNewScope("inner")
	inner.Define("a", term.Lit(3))
	s := ""
	st.Current().Each(func(name string, b *Binding, sc *Scope) {
		s += b.String() + "@" + sc.Name + " "
	})
	if s != "a := 3@inner b := 2@global " {
		t.Errorf("unexpected visible bindings: %q", s)
	}
	if st.PopScope() != inner {
		t.Error("expected to pop inner scope")
	}
	if st.PopScope() != nil {
		t.Error("global scope must not be popped")
	}
	if b, _ := st.Current().Resolve("a"); b == nil || b.Term.String() != "1" {
		t.Errorf("expected global binding of a to be visible again")
	}
}
