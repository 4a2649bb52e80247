package formula

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symalg"
	"github.com/npillmayer/symalg/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.formula")
	defer teardown()
	//
	s, err := NewScanner("x1 + 2.5e1")
	require.NoError(t, err)
	var types []symalg.TokType
	var lexemes []string
	for {
		tok := s.NextToken()
		types = append(types, tok.TokType())
		if tok.TokType() == symalg.EOF {
			assert.Equal(t, symalg.Span{10, 10}, tok.Span())
			break
		}
		lexemes = append(lexemes, tok.Lexeme())
	}
	assert.Equal(t, []symalg.TokType{IDENT, '+', NUM, symalg.EOF}, types)
	assert.Equal(t, []string{"x1", "+", "2.5e1"}, lexemes)
}

func TestScannerSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.formula")
	defer teardown()
	//
	s, err := NewScanner("ab * #pi")
	require.NoError(t, err)
	assert.Equal(t, symalg.Span{0, 2}, s.NextToken().Span())
	assert.Equal(t, symalg.Span{3, 4}, s.NextToken().Span())
	tok := s.NextToken()
	assert.Equal(t, CONST, tok.TokType())
	assert.Equal(t, symalg.Span{5, 8}, tok.Span())
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.formula")
	defer teardown()
	//
	for _, c := range []struct {
		input  string
		expect string
	}{
		{"x + y", "(x + y)"},
		{"2*x + 3", "((2 * x) + 3)"},
		{"x - y", "(x + (-y))"},
		{"x / y", "(x * (1.0/y))"},
		{"-x", "(-x)"},
		{"--x", "(-(-x))"},
		{"0.01", "0.01"},
		{"1e-3", "0.001"},
		{"a[j, 1]", "a_{j, 1}"},
		{"#pi * r", "(pi * r)"},
		{"i * x", "(i*1 * x)"},
		{"neg(x) + inv(y) + im(z)", "((-x) + (1.0/y) + i*z)"},
		{"a + (b + c)", "(a + b + c)"},
		{"2 * (x + 1)", "(2 * (x + 1))"},
		{"x = 2", "x = 2"},
		{"2*x + y/3 = -(x - #e)", "((2 * x) + (y * (1.0/3))) = (-(x + (-e)))"},
	} {
		f, err := Parse(c.input)
		if assert.NoError(t, err, c.input) {
			assert.Equal(t, c.expect, f.String(), c.input)
		}
	}
}

func TestParseConstants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.formula")
	defer teardown()
	//
	f, err := Parse("#e")
	require.NoError(t, err)
	c, ok := f.(*term.Constant)
	require.True(t, ok)
	assert.True(t, c.Lower < c.Upper)
	assert.InDelta(t, 2.71828, c.Lower, 1e-4)
	//
	f, err = Parse("2 * #phi", WithConstant(term.Const("phi", 1.619, 1.618)))
	require.NoError(t, err)
	assert.Equal(t, "(2 * phi)", f.String())
}

func TestParseResolver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.formula")
	defer teardown()
	//
	bound := term.Sum(term.Var("x"), term.Lit(1))
	resolve := func(name string) (term.Term, bool) {
		if name == "a" {
			return bound, true
		}
		return nil, false
	}
	f, err := Parse("2*a + b", WithResolver(resolve))
	require.NoError(t, err)
	assert.Equal(t, "((2 * (x + 1)) + b)", f.String())
	term.Walk(f, func(node term.Term) bool {
		assert.False(t, node == bound, "bound term must be copied")
		return true
	})
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.formula")
	defer teardown()
	//
	for _, c := range []struct {
		input string
		span  symalg.Span
	}{
		{"x +", symalg.Span{3, 3}},
		{"#foo + 1", symalg.Span{0, 4}},
		{"x = y = z", symalg.Span{6, 7}},
		{"foo(x)", symalg.Span{0, 3}},
		{"(x", symalg.Span{2, 2}},
		{"a[1,]", symalg.Span{4, 5}},
		{"", symalg.Span{0, 0}},
	} {
		_, err := Parse(c.input)
		var se *SyntaxError
		if assert.True(t, errors.As(err, &se), "%q: expected syntax error, got %v", c.input, err) {
			assert.Equal(t, c.span, se.Span, c.input)
		}
	}
}

func TestIllegalInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.formula")
	defer teardown()
	//
	_, err := Parse("$x")
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, uint64(0), se.Span.From())
	assert.Panics(t, func() { MustParse("x +") })
}
