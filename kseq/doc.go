/*
Package kseq implements bounded symbol strings and sets of them.

A Seq is a string of at most K symbol ids, where K is fixed when the string is
created. Appending beyond K silently truncates, which is exactly what FIRSTk and
FOLLOWk computations require: only the first K symbols of any derivation are
of interest.

A Set is a deduplicated set of Seqs sharing one K. Membership of the empty
string is tracked by an explicit marker. The central operation is bounded
concatenation

    A.Append(B)   ⇒   { (a·b)[:K] | a ∈ A, b ∈ B }

which reports whether the receiver changed, so that fixed-point iterations are
able to detect convergence. Members are kept ordered (see Seq.CompareTo),
which makes iteration and printing deterministic.

Mixing strings or sets of different K is a programming error and results in a
panic with a lookahead.ContractError of kind ErrInvalidArgument.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package kseq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lookahead.kseq'.
func tracer() tracing.Trace {
	return tracing.Select("lookahead.kseq")
}
