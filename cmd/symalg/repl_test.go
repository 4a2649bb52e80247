package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symalg/simplify"
	"github.com/npillmayer/symalg/suite"
	"github.com/npillmayer/symalg/term"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIntp() (*Intp, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return newIntp(simplify.NewEngine(), &Display{w: buf}), buf
}

// eval evaluates a line and returns the output produced.
func eval(t *testing.T, intp *Intp, buf *bytes.Buffer, line string) string {
	buf.Reset()
	quit, err := intp.Eval(line)
	require.NoError(t, err, line)
	assert.False(t, quit, line)
	return buf.String()
}

func TestEvalFormula(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.cli")
	defer teardown()
	//
	intp, buf := testIntp()
	assert.Equal(t, "(5 * x)\n", eval(t, intp, buf, "2*x + 3*x"))
	assert.Equal(t, "x\n", eval(t, intp, buf, ":vars"))
	assert.Equal(t, "(x + y)\n", eval(t, intp, buf, "y + x + 0"))
	out := eval(t, intp, buf, ":stats y + x + 0")
	assert.True(t, strings.HasPrefix(out, "(x + y)\n"), out)
	assert.Contains(t, out, "drop-zero")
}

func TestEvalDefinitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.cli")
	defer teardown()
	//
	intp, buf := testIntp()
	assert.Equal(t, "a := (2 * x)\n", eval(t, intp, buf, ":def a = x + x"))
	assert.Equal(t, "(6 * x)\n", eval(t, intp, buf, "a * 3"))
	eval(t, intp, buf, ":push inner")
	eval(t, intp, buf, ":def a = 1")
	assert.Equal(t, "(1 + y)\n", eval(t, intp, buf, "a + y"))
	assert.Equal(t, "a := 1   [inner]\n", eval(t, intp, buf, ":bindings"))
	assert.Equal(t, "closed scope inner, dropped 1 binding\n", eval(t, intp, buf, ":pop"))
	eval(t, intp, buf, ":push")
	assert.Equal(t, "", eval(t, intp, buf, ":pop"))
	assert.Equal(t, "(6 * x)\n", eval(t, intp, buf, "3 * a"))
	_, err := intp.Eval(":pop")
	assert.Error(t, err)
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.cli")
	defer teardown()
	//
	intp, buf := testIntp()
	assert.Equal(t, "a_{j}, x, y\n", eval(t, intp, buf, ":vars a[j] * y + x"))
	assert.Equal(t, "no variables\n", eval(t, intp, buf, ":vars 2 * #pi"))
	assert.Equal(t, "sum\n  x\n  product\n    2\n    y\n", eval(t, intp, buf, ":tree x + 2*y"))
	assert.Equal(t, "no bindings\n", eval(t, intp, buf, ":bindings"))
	quit, err := intp.Eval(":quit")
	assert.NoError(t, err)
	assert.True(t, quit)
}

func TestEvalErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.cli")
	defer teardown()
	//
	intp, _ := testIntp()
	_, err := intp.Eval(":nope")
	assert.Error(t, err)
	_, err = intp.Eval(":def a")
	assert.True(t, errors.Is(err, errUsage))
	_, err = intp.Eval(":def 3 = x")
	assert.Error(t, err)
	_, err = intp.Eval(":def i = x")
	assert.Error(t, err)
	_, err = intp.Eval(":tree")
	assert.True(t, errors.Is(err, errUsage))
	_, err = intp.Eval("x +")
	assert.Error(t, err)
}

func TestEvalDepthLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.cli")
	defer teardown()
	//
	intp, buf := testIntp()
	intp.maxDepth = 3
	assert.Equal(t, "(x + (2 * y))\n", eval(t, intp, buf, "x + 2*y"))
	_, err := intp.Eval("((x + 1) * y) + z")
	assert.True(t, errors.Is(err, errTooDeep), err)
	_, err = intp.Eval(":tree -(-(-x))")
	assert.True(t, errors.Is(err, errTooDeep), err)
	intp.maxDepth = 0
	assert.Equal(t, "(y + z + (x * y))\n", eval(t, intp, buf, "((x + 1) * y) + z"))
}

func TestLeveledTerm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.cli")
	defer teardown()
	//
	f := term.Sum(term.Var("x"), term.Negate(term.Var("y")))
	ll := leveledTerm(f, pterm.LeveledList{}, 0)
	assert.Equal(t, pterm.LeveledList{
		{Level: 0, Text: "sum"},
		{Level: 1, Text: "x"},
		{Level: 1, Text: "negate"},
		{Level: 2, Text: "y"},
	}, ll)
}

func TestDisplaySuite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symalg.cli")
	defer teardown()
	//
	s, err := suite.Load(strings.NewReader(`
name: mini
cases:
  - input: x + x
    expect: 2*x
  - input: x
    expect: y
`))
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	d := &Display{w: buf}
	failed := d.Suite(s.Name, s.Run(simplify.NewEngine()))
	assert.Equal(t, 1, failed)
	assert.Contains(t, buf.String(), "error: mini / x: got x, want y")
	assert.Contains(t, buf.String(), "mini: 1 of 2 cases passed")
}
