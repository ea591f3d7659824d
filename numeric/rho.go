package numeric

import (
	"math/big"
	"math/bits"

	"github.com/samber/lo"
)

// Parameters of the linear congruential generator choosing starting values.
const (
	lcgA uint64 = 6364136223846793005
	lcgC uint64 = 1442695040888963407
)

// lcgRandom returns a pseudo random number in [lower…higher], derived from seed.
func lcgRandom(seed, lower, higher uint64) uint64 {
	return lower + (seed*lcgA+lcgC)%(higher+1-lower)
}

// RhoPrimeFactors returns the prime factors of n with multiplicity, found by
// Pollard's rho method. The multiset of factors is the same as the one returned
// by PrimeFactors, but the order of factors is unspecified.
//
// For n < 2 the result is empty.
func RhoPrimeFactors(n uint64) []uint64 {
	factors := []uint64{}
	for n > 1 {
		p := primeDivisor(n)
		factors = append(factors, p)
		n /= p
	}
	return lo.Reverse(factors)
}

// primeDivisor returns a prime dividing n ≥ 2.
func primeDivisor(n uint64) uint64 {
	for {
		d := rhoDivisor(n)
		if d == n {
			if isPrime(n) {
				return n
			}
			// rho failed for all starting values
			tracer().Debugf("rho: no divisor found for composite %d, falling back to trial division", n)
			return smallestDivisor(n)
		}
		n = min(d, n/d)
	}
}

// rhoDivisor returns a divisor of n ≥ 2, which is n itself if no non-trivial
// divisor could be found.
func rhoDivisor(n uint64) uint64 {
	if n%2 == 0 {
		return 2
	}
	for _, seed := range []uint64{2, lcgRandom(2, 2, n-1), lcgRandom(3, 2, n-1)} {
		if d := rhoCycle(n, seed); d != n {
			return d
		}
	}
	return n
}

// rhoCycle runs Floyd's cycle detection on x ↦ x²+1 mod n, starting at x0.
func rhoCycle(n, x0 uint64) uint64 {
	x, y, d := x0%n, x0%n, uint64(1)
	for d == 1 {
		x = step(x, n)
		y = step(step(y, n), n)
		d = GCD(absDiff(x, y), n)
	}
	return d
}

// step is x²+1 mod n, for x < n.
func step(x, n uint64) uint64 {
	hi, low := bits.Mul64(x, x)
	_, r := bits.Div64(hi, low, n)
	return (r + 1) % n
}

func absDiff(x, y uint64) uint64 {
	if x < y {
		return y - x
	}
	return x - y
}

func isPrime(n uint64) bool {
	return new(big.Int).SetUint64(n).ProbablyPrime(0)
}
