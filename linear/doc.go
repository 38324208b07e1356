/*
Package linear implements linearized sets of bounded symbol strings.

A linearized set trades precision for scalability. Instead of storing every
string of a kseq.Set, it stores one symset.Set per position i < K, holding
every symbol which occurs at position i in any member string. An additional
set of realized lengths keeps track of which string lengths occur, which
includes the length 0 for the empty string.

    {[a, b], [c]}   ⇒   positions [{a, c}, {b}], lengths {1, 2}

Projection is lossy: the linearized form above also accepts [c, b] and [a].
All operations of kseq.Set have a linearized counterpart with semantics
isomorphic under this lossy view.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package linear

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lookahead.linear'.
func tracer() tracing.Trace {
	return tracing.Select("lookahead.linear")
}
