/*
Package css implements an option type for CSS dimensions.

CSS dimensions are either fixed lengths, percentages, or one of the keywords
`auto`, `inherit` and `initial`. ParseDimen reads them from CSS notation,
Classify maps them to client values. Both are built from pattern matches.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'match.css'.
func tracer() tracing.Trace {
	return tracing.Select("match.css")
}
