/*
Package ast implements the abstract syntax tree of a grammar, serving as
storage for grammar analysis.

A grammar consists of nonterminal rules, each with one or more alternatives,
and of terminal rules. An alternative is a sequence of terms, where a term is
either an instance of a terminal, an instance of a nonterminal, or a block.
A block is a nested, parenthesized group of alternatives:

    S  ➞  A ( b | c d ) | ε

Every node carries slots for the results of analysis: nullability,
productivity and reachability flags; FIRST and FOLLOW as symbol sets; FIRSTk
and FOLLOWk as sets of bounded strings; FIRSTkl and FOLLOWkl as linearized
sets. Terms additionally carry the lookahead contributed by the part of their
alternative which follows them.

Nonterminal rules and blocks both hold alternatives, and the lookahead of two
alternatives may conflict. Both are therefore Multiplex nodes, which keep
conflict records, aggregate conflict sets and minimal lookahead depths,
separately for each generation of lookahead.

Terminal and nonterminal instances refer to their rule by id. All reads of
identity-independent data (name, FIRST, …) are forwarded to the rule, and
instances do not offer setters for them.

This package does not compute any of the lookahead information. Calculators
walk the tree (see Walk), populate the slots and reset them if necessary
(see Grammar.Reset).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lookahead.ast'.
func tracer() tracing.Trace {
	return tracing.Select("lookahead.ast")
}
