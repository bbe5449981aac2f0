// Package primesieve computes, once, the first N primes using a bounded
// Sieve of Eratosthenes. Go has no compile-time evaluation for this, so the
// table is built in an init() function instead and is read-only thereafter -
// the single canonical evaluation strategy the original library's design
// notes recommend collapsing its constexpr/runtime duplication to.
package primesieve

// SPDX-License-Identifier: Apache-2.0

import (
	"github.com/bantling/imath/constraint"
	"github.com/bantling/imath/numeric"
)

// Generate returns the first n primes, each converted to T. The caller is
// responsible for choosing T wide enough to hold the nth prime.
func Generate[T constraint.UnsignedInteger](n int) []T {
	if n <= 0 {
		return nil
	}

	sieveSize := sieveSizeFor(n)
	composite := make([]bool, sieveSize) // composite[i] tracks candidate 2i+1

	result := make([]T, 0, n)
	result = append(result, T(2))

	nextPrime := uint64(1)
	for len(result) < n {
		for {
			nextPrime += 2
			if !composite[nextPrime/2] {
				break
			}
		}
		result = append(result, T(nextPrime))

		square := nextPrime * nextPrime
		if square > nextPrime { // guard against overflow of the square
			for i := square; i/2 < uint64(sieveSize); i += 2 * nextPrime {
				composite[i/2] = true
			}
		}
	}

	return result
}

// sieveSizeFor returns an empirical upper bound on the index range needed
// to find the nth prime by odd-only sieving.
func sieveSizeFor(n int) int {
	bits := 0
	for v := n; v > 0; v >>= 1 {
		bits++
	}
	bound := (bits + 2) * 3 * n / 4
	return numeric.Max(bound, n+1)
}

// SmallPrimes holds the first 64 primes, computed once at package
// initialization. It doubles as the small-prime trial-division table used
// by the factor package.
var SmallPrimes = Generate[uint16](64)
