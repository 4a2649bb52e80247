package symalg

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.formula")
	defer teardown()
	//
	s := Span{3, 7}
	if s.From() != 3 || s.To() != 7 || s.Len() != 4 {
		t.Errorf("span accessors broken for %s", s)
	}
	if s.String() != "(3…7)" {
		t.Errorf("expected (3…7), got %s", s)
	}
	if !(Span{}).IsNull() || s.IsNull() {
		t.Errorf("null span not recognized")
	}
	if x := s.Extend(Span{1, 5}); x != (Span{1, 7}) {
		t.Errorf("expected (1…7), got %s", x)
	}
	if x := s.Extend(Span{4, 9}); x != (Span{3, 9}) {
		t.Errorf("expected (3…9), got %s", x)
	}
}
