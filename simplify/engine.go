package simplify

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/symalg/term"
)

// ErrNotConverged is returned if simplification exceeds the rewrite limit of
// an engine.
var ErrNotConverged = errors.New("simplification did not converge")

// DefaultMaxRewrites is the rewrite limit of engines created without option
// MaxRewrites.
const DefaultMaxRewrites = 100000

// Engine simplifies terms. An engine may be used concurrently, as every call
// to Simplify has its own bookkeeping.
type Engine struct {
	maxRewrites int
	rules       []Rule
}

// Option configures an Engine.
type Option func(*Engine)

// MaxRewrites sets the number of rule applications after which a single
// simplification gives up with ErrNotConverged. Values < 1 are ignored.
func MaxRewrites(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxRewrites = n
		}
	}
}

// NewEngine creates a simplification engine with the standard rule catalogue.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		maxRewrites: DefaultMaxRewrites,
		rules:       catalogue,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome of a simplification: the normal form, together with
// the number of rewrites it took and how often each rule fired.
type Result struct {
	Term     term.Term
	Rewrites int
	Fired    map[string]int
}

// RuleCount is a rule name with a firing count.
type RuleCount struct {
	Rule  string
	Count int
}

// Ranking returns the rules that fired, the most frequent first. Rules firing
// the same number of times are listed by name.
func (res Result) Ranking() []RuleCount {
	counts := make([]RuleCount, 0, len(res.Fired))
	for name, n := range res.Fired {
		counts = append(counts, RuleCount{Rule: name, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Rule < counts[j].Rule
	})
	return counts
}

// Simplify returns the normal form of t. t itself is not modified; the
// result shares no structure with t that a later rewrite could alter.
//
// If the rewrite limit of the engine is exceeded, Simplify returns t together
// with an error wrapping ErrNotConverged.
func (e *Engine) Simplify(t term.Term) (term.Term, error) {
	res, err := e.Run(t)
	return res.Term, err
}

// Run simplifies t and reports statistics about the rewriting.
func (e *Engine) Run(t term.Term) (res Result, err error) {
	if t == nil {
		return Result{}, errors.New("cannot simplify nil term")
	}
	r := &run{engine: e, fired: make(map[string]int)}
	defer func() {
		if x := recover(); x != nil {
			if _, ok := x.(diverged); !ok {
				panic(x)
			}
			err = fmt.Errorf("%w: giving up after %d rewrites of %s", ErrNotConverged, r.rewrites, t)
			res = Result{Term: t, Rewrites: r.rewrites, Fired: r.fired}
			notConverged(err.Error())
		}
	}()
	s := r.simplify(t)
	tracer().Debugf("%s ⇒ %s in %d rewrites", t, s, r.rewrites)
	return Result{Term: s, Rewrites: r.rewrites, Fired: r.fired}, nil
}

var defaultEngine = NewEngine()

// Simplify returns the normal form of t, using an engine with default
// settings. If simplification does not converge, the error is traced and t
// is returned unchanged.
func Simplify(t term.Term) term.Term {
	s, err := defaultEngine.Simplify(t)
	if err != nil {
		tracer().Errorf(err.Error())
	}
	return s
}

func notConverged(msg string) {
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-simplify-diverged") {
		panic(`Simplification diverged.

Configuration flag panic-on-simplify-diverged is set to true. It is aimed at
helping to debug the rule set and do a post-mortem of rule interactions.
However, if this is a production environment and you did not expect this to
panic, please unset panic-on-simplify-diverged to its default (false).

` + msg)
	}
}

// --- Driver ----------------------------------------------------------------

// diverged is the panic value for exceeding the rewrite limit.
type diverged struct{}

// run holds the bookkeeping for a single call to Simplify.
type run struct {
	engine   *Engine
	rewrites int
	fired    map[string]int
}

// simplify is the fixpoint driver. Arguments of an operator are simplified
// first; then the rules are tried on a fresh node built from them. A
// matching rule restarts simplification on its replacement, except for
// reordering rules, which pass the reordered node on to the remaining rules.
func (r *run) simplify(t term.Term) term.Term {
	op, ok := t.(*term.Operator)
	if !ok {
		return term.Clone(t)
	}
	args := make([]term.Term, op.Arity())
	for i, arg := range op.Args {
		args[i] = r.simplify(arg)
	}
	node := &term.Operator{Kind: op.Kind, Args: args}
	for i := range r.engine.rules {
		rule := &r.engine.rules[i]
		if rule.Kind != node.Kind {
			continue
		}
		repl, ok := rule.Rewrite(r, node)
		if !ok {
			continue
		}
		r.count(rule, node, repl)
		if rule.Reorder {
			node = repl.(*term.Operator)
			continue
		}
		return r.simplify(repl)
	}
	return node
}

func (r *run) count(rule *Rule, node *term.Operator, repl term.Term) {
	r.rewrites++
	r.fired[rule.Name]++
	tracer().Debugf("%-22s %s ⇒ %s", rule.Name, node, repl)
	if r.rewrites > r.engine.maxRewrites {
		panic(diverged{})
	}
}
