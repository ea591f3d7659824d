/*
Package seq provides small helpers for ordered sequences of values.

The tree engine uses these helpers to collect traversal results and to fold
batches of keys into a tree. All functions treat their input slices as
immutable and return freshly allocated results, so callers may share slices
between tree versions without copying them first.

	s := seq.Push(seq.Concat(a, b), x)   // a ++ b ++ [x]
	t, err := seq.Transform(s, 1, 3, f)  // [f(s[1]), f(s[2])]
	n := seq.Reduce(s, 0, sum)

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}
