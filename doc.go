/*
Package symalg is a small computer-algebra core.

It represents algebraic formulas as trees and reduces them to a canonical
normal form by fixpoint term rewriting. Package structure is as follows:

■ term: Package term implements the term data model, smart constructors,
the total ordering of terms and the variable/coefficient decomposition.

■ simplify: Package simplify implements the rewrite-rule catalogue and the
bottom-up fixpoint driver.

■ formula: Package formula reads formulas from text.

■ session: Package session keeps named formulas for interactive use.

■ suite: Package suite runs regression suites of formulas against their
expected canonical forms.

■ cmd/symalg: Command symalg is a command line front end, including an
interactive session.

The base package contains the token and span types shared by the reader.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symalg
