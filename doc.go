/*
Package match implements fluent pattern matching.

A match is a list of cases, each a pair of a condition and a result, plus an
optional default. Cases are tried in the order they were added, and the first
case whose condition holds produces the result. There is no notion of a “best”
or “most specific” case: first match wins.

Three flavours of matches exist:

   match.Cond[TOut]()         // conditions are func() bool
   match.On[TOut](value)      // conditions see a value captured up front
   match.Func[TIn, TOut]()    // conditions see a value given to Do(v)

Example:

   gst, err := match.On[float64](country).
       WithValueResult("AU", 0.10).
       WithValueResult("NZ", 0.15).
       ElseResult(0.0).
       Do()

A match may be evaluated as often as clients like. Every evaluation re-runs
the conditions, thus closures over variables will see their current values:

   eggs := 2
   basket := match.Cond[string]().
       WithResult(func() bool { return eggs == 0 }, "no eggs").
       WithResult(func() bool { return eggs > 1 }, "many eggs").
       ElseResult("invalid number of eggs")
   basket.Do()  // => "many eggs"
   eggs = 0
   basket.Do()  // => "no eggs"

If no case matches and no default has been set, evaluation fails with an
*IncompletePatternMatchError. Setting a second default is a configuration
error (*ConfigurationError); it is reported by Err(). The rejected call
leaves the match as it was, so evaluation keeps using the first default.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'match'.
func tracer() tracing.Trace {
	return tracing.Select("match")
}
