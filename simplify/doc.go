/*
Package simplify reduces formulas to a canonical normal form.

Simplification is fixpoint term rewriting. The driver works bottom-up: it
simplifies every argument of an operator first, then tries the rules of a
fixed catalogue on the resulting node. A rule either does not match, or
produces a freshly built replacement, which is simplified again from scratch.
Rewriting therefore stops only when no rule in the catalogue matches any
node of the tree.

The catalogue covers sign and imaginary-unit normalization, constant folding,
neutral and absorbing elements, cancellation, associativity, the distributive
law, common denominators, combination of like terms, and canonical ordering
of the arguments of sums and products.

Termination of the rule set is not proven. An Engine therefore counts
rewrites and gives up with ErrNotConverged when a configurable limit is
exceeded. If the global configuration flag "panic-on-simplify-diverged" is
set, the engine panics instead, which helps with a post-mortem of the rule
interactions.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package simplify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symalg.simplify'.
func tracer() tracing.Trace {
	return tracing.Select("symalg.simplify")
}
