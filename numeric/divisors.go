package numeric

import (
	"fmt"
	"math/bits"

	"github.com/samber/lo"
)

// ISqrt returns the integer square root of n, i.e. the greatest r with r*r ≤ n.
// It uses Newton's iteration.
func ISqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	x := n
	y := n/2 + n%2 // (n+1)/2 without overflow
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// GCD returns the greatest common divisor of u and v, using the binary
// algorithm. GCD(0, v) is v and GCD(u, 0) is u.
func GCD(u, v uint64) uint64 {
	if u == 0 {
		return v
	}
	if v == 0 {
		return u
	}
	shift := bits.TrailingZeros64(u | v)
	u >>= bits.TrailingZeros64(u)
	for v != 0 {
		v >>= bits.TrailingZeros64(v)
		if u > v {
			u, v = v, u
		}
		v -= u
	}
	return u << shift
}

// SmallestDivisor returns the smallest divisor d ≥ 2 of n. For primes this is
// n itself. n has to be at least 2.
func SmallestDivisor(n uint64) (uint64, error) {
	if n < 2 {
		return 0, fmt.Errorf("%w: smallest divisor of %d", ErrDomain, n)
	}
	return smallestDivisor(n), nil
}

func smallestDivisor(n uint64) uint64 {
	if n%2 == 0 {
		return 2
	}
	for d := uint64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return d
		}
	}
	return n
}

// GreatestDivisor returns the greatest proper divisor of n, i.e. the greatest
// d < n dividing n. For primes this is 1. n has to be at least 2.
func GreatestDivisor(n uint64) (uint64, error) {
	if n < 2 {
		return 0, fmt.Errorf("%w: greatest divisor of %d", ErrDomain, n)
	}
	return n / smallestDivisor(n), nil
}

// PrimeFactors returns the prime factors of n by trial division, with
// multiplicity. Factors are listed from the largest to the smallest:
//
//	PrimeFactors(12) == [3 2 2]
//
// For n < 2 the result is empty.
func PrimeFactors(n uint64) []uint64 {
	factors := []uint64{}
	for n > 1 {
		d := smallestDivisor(n)
		factors = append(factors, d)
		n /= d
	}
	return lo.Reverse(factors)
}
