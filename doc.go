/*
Package lookahead is a toolbox for lookahead analysis of context-free grammars.

It provides the data structures LL(k)-style grammar analysis is built upon: sets
of terminal symbols, sets of symbol strings bounded by a length k, a linearized
(position-wise) approximation of the latter, and a grammar AST whose nodes carry
slots for every generation of lookahead information.
Package structure is as follows:

■ symset: Package symset implements a bit-vector set of symbol ids, biased to
allow a small window of negative sentinel ids (e.g., end-of-input).

■ kseq: Package kseq implements symbol strings of bounded length k and
deduplicated sets of them, together with bounded concatenation.

■ linear: Package linear implements a lossy, position-indexed projection of
k-bounded string sets, trading precision for scalability.

■ ast: Package ast implements the grammar AST, conflict bookkeeping for rules and
blocks, a generic traversal protocol and reset passes for analysis results.

The base package contains types which are used throughout all the other packages:
an injectable id-to-name capability, sentinel symbol ids and the error kinds
signalled when a caller violates the contract of an operation.

Computing FIRST/FOLLOW sets to a fixed point is not part of this module. Calculators
live outside and use the primitives and storage slots provided here.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lookahead
