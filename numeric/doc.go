/*
Package numeric provides integer routines on unsigned 64-bit numbers:
integer square roots, greatest common divisors, divisor search and prime
factorization by trial division or by Pollard's rho method.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package numeric

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

// ErrDomain is flagged for arguments outside of the domain of a function.
var ErrDomain = errors.New("numeric: argument out of domain")
