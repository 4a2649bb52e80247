/*
Command symalg simplifies algebraic formulas.

Formulas are given in the usual infix notation (see package formula) and
reduced to their normal form:

    symalg simplify "2*x + 3*x"           prints (5 * x)
    symalg vars "a*x + b[j]"              lists the variables
    symalg check basics.yaml              runs a regression suite
    symalg repl                           starts an interactive session

Without a sub-command symalg starts an interactive session. Within a
session, names may be bound to formulas with

    :def name = formula

and are substituted in every formula read afterwards. Enter :help for a list
of commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symalg.cli'
func tracer() tracing.Trace {
	return tracing.Select("symalg.cli")
}
