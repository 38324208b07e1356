/*
Package symset implements sets of grammar symbols as dense bit-vectors.

Symbol ids of terminals are non-negative, but analysis needs a handful of
sentinel symbols as well (e.g., end-of-input), which are represented by negative
ids. Sets are therefore biased: at construction time a set fixes the most negative
id it is able to represent (its minimum). The default window of negative ids may
be configured with key "lookahead.negative-window".

    S := symset.New()               // ids -16 … ∞
    S.Set(lookahead.EOF)            // sentinel -1
    S.Set(7)
    for id := S.NextSetBit(S.Min()); id != S.None(); id = S.NextSetBit(id + 1) {
        …                           // visits -1, 7
    }

Binary operations require both operands to share the same minimum. Violating
this is a programming error and results in a panic with a
lookahead.ContractError of kind ErrInvalidArgument.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symset

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lookahead.symset'.
func tracer() tracing.Trace {
	return tracing.Select("lookahead.symset")
}

// DefaultNegativeWindow is the number of negative ids a set is able to represent
// if neither an option nor the configuration tells otherwise.
const DefaultNegativeWindow = 16

// ConfigNegativeWindow is the configuration key for overriding DefaultNegativeWindow.
const ConfigNegativeWindow = "lookahead.negative-window"

func defaultMin() int {
	if gconf.IsSet(ConfigNegativeWindow) {
		if w := gconf.GetInt(ConfigNegativeWindow); w >= 0 {
			return -w
		}
		tracer().Errorf("ignoring negative value for %s", ConfigNegativeWindow)
	}
	return -DefaultNegativeWindow
}
