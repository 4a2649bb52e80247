package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/npillmayer/symalg/session"
	"github.com/npillmayer/symalg/simplify"
	"github.com/npillmayer/symalg/suite"
	"github.com/npillmayer/symalg/term"
	"github.com/pterm/pterm"
)

// Display writes results for the user. On a terminal we use pterm for
// moderately fancy output, otherwise plain text.
type Display struct {
	w      io.Writer
	styled bool
}

var display = newDisplay(os.Stdout)

func newDisplay(f *os.File) *Display {
	styled := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	if styled {
		initStyles()
	}
	return &Display{w: f, styled: styled}
}

func initStyles() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Info prints a message.
func (d *Display) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if d.styled {
		pterm.Info.Println(msg)
		return
	}
	fmt.Fprintln(d.w, msg)
}

// Error prints an error message.
func (d *Display) Error(err error) {
	if d.styled {
		pterm.Error.Println(err.Error())
		return
	}
	fmt.Fprintf(d.w, "error: %v\n", err)
}

// Result prints a term.
func (d *Display) Result(t term.Term) {
	d.Info("%s", t)
}

// Stats prints the rule statistics of a simplification.
func (d *Display) Stats(res simplify.Result) {
	d.Info("%d rewrites", res.Rewrites)
	for _, rc := range res.Ranking() {
		fmt.Fprintf(d.w, "    %-22s %5d\n", rc.Rule, rc.Count)
	}
}

// Vars prints a list of variables.
func (d *Display) Vars(vars []*term.Variable) {
	if len(vars) == 0 {
		d.Info("no variables")
		return
	}
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.String()
	}
	d.Info("%s", strings.Join(names, ", "))
}

// Bindings prints the bindings visible from a scope.
func (d *Display) Bindings(sc *session.Scope) {
	n := 0
	sc.Each(func(name string, b *session.Binding, where *session.Scope) {
		d.Info("%s   [%s]", b, where.Name)
		n++
	})
	if n == 0 {
		d.Info("no bindings")
	}
}

// Suite prints the results of running a regression suite and returns the
// number of failed cases.
func (d *Display) Suite(name string, results []suite.Result) int {
	failed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			d.Error(fmt.Errorf("%s / %s: %w", name, r.Case.Title(), r.Err))
		case !r.Passed():
			failed++
			d.Error(fmt.Errorf("%s / %s: got %s, want %s", name, r.Case.Title(), r.Got, r.Want))
		default:
			tracer().Infof("%s / %s: ok in %d rewrites", name, r.Case.Title(), r.Rewrites)
		}
	}
	d.Info("%s: %d of %d %s passed", name, len(results)-failed, len(results),
		plural(len(results), "case"))
	return failed
}

// Tree prints a term as a tree, operators with their arguments as children.
func (d *Display) Tree(t term.Term) {
	ll := leveledTerm(t, pterm.LeveledList{}, 0)
	if d.styled {
		pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
		return
	}
	for _, item := range ll {
		fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", item.Level), item.Text)
	}
}

func leveledTerm(t term.Term, ll pterm.LeveledList, level int) pterm.LeveledList {
	op, ok := t.(*term.Operator)
	if !ok {
		return append(ll, pterm.LeveledListItem{Level: level, Text: t.String()})
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: op.Kind.String()})
	for _, arg := range op.Args {
		ll = leveledTerm(arg, ll, level+1)
	}
	return ll
}
