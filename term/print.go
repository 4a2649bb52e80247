package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Printing uses a mixed infix/prefix notation:
//
//    sum         (a + b + c)
//    product     (a * b * c)
//    imaginary   i*x
//    negate      (-x)
//    reciprocal  (1.0/x)
//    equals      a = b
//    variable    x   or   x_{i, j}
//
// Literals print with up to 6 significant digits.

func (l *Literal) String() string {
	return fmt.Sprintf("%.6g", l.Value)
}

func (c *Constant) String() string {
	return c.Name
}

func (v *Variable) String() string {
	var b strings.Builder
	writeTerm(&b, v)
	return b.String()
}

func (op *Operator) String() string {
	var b strings.Builder
	writeTerm(&b, op)
	return b.String()
}

// prefix and suffix of unary operators
var unaryNotation = map[Kind][2]string{
	ImaginaryOp:  {"i*", ""},
	NegateOp:     {"(-", ")"},
	ReciprocalOp: {"(1.0/", ")"},
}

func writeTerm(b *strings.Builder, t Term) {
	switch x := t.(type) {
	case *Variable:
		b.WriteString(x.Name)
		if len(x.Index) > 0 {
			b.WriteString("_{")
			writeList(b, x.Index, ", ")
			b.WriteString("}")
		}
	case *Operator:
		if x.Kind.IsUnary() {
			n := unaryNotation[x.Kind]
			b.WriteString(n[0])
			writeTerm(b, x.Arg(0))
			b.WriteString(n[1])
			return
		}
		switch x.Kind {
		case SumOp:
			b.WriteString("(")
			writeList(b, x.Args, " + ")
			b.WriteString(")")
		case ProductOp:
			b.WriteString("(")
			writeList(b, x.Args, " * ")
			b.WriteString(")")
		case EqualsOp:
			writeList(b, x.Args, " = ")
		default:
			fmt.Fprintf(b, "%s[", x.Kind)
			writeList(b, x.Args, ", ")
			b.WriteString("]")
		}
	default:
		b.WriteString(t.String())
	}
}

func writeList(b *strings.Builder, ts []Term, sep string) {
	for i, t := range ts {
		if i > 0 {
			b.WriteString(sep)
		}
		writeTerm(b, t)
	}
}
