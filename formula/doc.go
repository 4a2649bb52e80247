/*
Package formula reads formulas from text.

The notation is the usual infix notation of algebra:

    2*x + y/3 = -(x - #pi)
    a[i, j] * i

Numbers are decimal, optionally with an exponent. Identifiers denote
variables; an identifier followed by a bracketed list denotes an indexed
variable. Constants are written with a leading '#' and have to be registered
with the reader; #e and #pi are pre-registered. The identifier 'i' denotes
the imaginary unit. The functions neg, inv and im construct negations,
reciprocals and imaginary terms explicitly. An equation sign may appear only
once, at the top level.

Reading a formula just builds a term; it does not simplify it.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package formula

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symalg.formula'.
func tracer() tracing.Trace {
	return tracing.Select("symalg.formula")
}
