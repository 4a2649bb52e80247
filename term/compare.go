package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/emirpasic/gods/utils"
)

// Ordering is the outcome of comparing two terms.
type Ordering int

// Orderings, with values compatible to gods comparators and strings.Compare.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "<"
	case Greater:
		return ">"
	}
	return "="
}

// variant rank for comparisons across term types
func rank(t Term) int {
	switch t.(type) {
	case *Literal:
		return 0
	case *Constant:
		return 1
	case *Variable:
		return 2
	}
	return 3
}

// Compare is a total order on terms:
//
//    literal < constant < variable < operator
//
// Terms of the same type compare as follows:
//
//    literals:   by value
//    constants:  by name
//    variables:  by name, then by length of the index list, then by
//                index entries from first to last
//    operators:  by kind name, then by arity, then by arguments from
//                last to first
//
// The first difference found decides. Literals with a NaN value compare
// Equal to every other literal.
func Compare(a, b Term) Ordering {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ord(ra - rb)
	}
	switch x := a.(type) {
	case *Literal:
		y := b.(*Literal)
		if x.Value < y.Value {
			return Less
		} else if x.Value > y.Value {
			return Greater
		}
		return Equal
	case *Constant:
		return ord(strings.Compare(x.Name, b.(*Constant).Name))
	case *Variable:
		y := b.(*Variable)
		if c := strings.Compare(x.Name, y.Name); c != 0 {
			return ord(c)
		}
		if len(x.Index) != len(y.Index) {
			return ord(len(x.Index) - len(y.Index))
		}
		for i := range x.Index {
			if c := Compare(x.Index[i], y.Index[i]); c != Equal {
				return c
			}
		}
		return Equal
	case *Operator:
		y := b.(*Operator)
		if c := strings.Compare(x.Kind.String(), y.Kind.String()); c != 0 {
			return ord(c)
		}
		if x.Arity() != y.Arity() {
			return ord(x.Arity() - y.Arity())
		}
		for i := x.Arity() - 1; i >= 0; i-- {
			if c := Compare(x.Args[i], y.Args[i]); c != Equal {
				return c
			}
		}
		return Equal
	}
	panic("term: unknown term type in comparison")
}

func ord(c int) Ordering {
	if c < 0 {
		return Less
	} else if c > 0 {
		return Greater
	}
	return Equal
}

// IsLess is a predicate: a < b.
func IsLess(a, b Term) bool {
	return Compare(a, b) == Less
}

// IsGreater is a predicate: a > b.
func IsGreater(a, b Term) bool {
	return Compare(a, b) == Greater
}

// IsEqual is a predicate: a = b. Equality of terms is structural; it holds
// exactly if neither a < b nor a > b.
func IsEqual(a, b Term) bool {
	return Compare(a, b) == Equal
}

// Comparator compares two terms and is usable wherever gods expects a
// comparator, e.g. for a treeset of terms.
func Comparator(a, b interface{}) int {
	return int(Compare(a.(Term), b.(Term)))
}

var _ utils.Comparator = Comparator
