package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// Visitor is called for every term of a tree walk. If it returns false, the
// children of the term are skipped.
type Visitor func(Term) bool

// Walk traverses a term tree top-down, left to right. Children of an
// operator are its arguments, children of a variable are its index terms.
func Walk(t Term, visit Visitor) {
	if t == nil || !visit(t) {
		return
	}
	switch x := t.(type) {
	case *Operator:
		for _, arg := range x.Args {
			Walk(arg, visit)
		}
	case *Variable:
		for _, ix := range x.Index {
			Walk(ix, visit)
		}
	}
}

// Variables returns the distinct variables occuring in t, in canonical order.
// Index terms of a variable are not searched, i.e. x_{j} contributes x_{j},
// but not j.
func Variables(t Term) []*Variable {
	set := treeset.NewWith(Comparator)
	Walk(t, func(node Term) bool {
		if v, ok := node.(*Variable); ok {
			set.Add(v)
			return false
		}
		return true
	})
	vars := make([]*Variable, 0, set.Size())
	for _, v := range set.Values() {
		vars = append(vars, v.(*Variable))
	}
	tracer().Debugf("variables of %s: %d", t, len(vars))
	return vars
}

// Depth returns the nesting depth of a term; leafs have depth 1.
func Depth(t Term) int {
	d := 0
	switch x := t.(type) {
	case *Operator:
		for _, arg := range x.Args {
			if n := Depth(arg); n > d {
				d = n
			}
		}
	case *Variable:
		for _, ix := range x.Index {
			if n := Depth(ix); n > d {
				d = n
			}
		}
	}
	return d + 1
}
