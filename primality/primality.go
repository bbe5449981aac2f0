// Package primality implements the strong probable-prime test and the
// deterministic isPrime/nextPrimeAfter built on top of it: small-prime
// trial division composed with witness-table lookups, so that a handful of
// Miller-Rabin checks decide primality exactly across the full 64-bit range.
package primality

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"

	"github.com/bantling/imath/bitops"
	"github.com/bantling/imath/modular"
	"github.com/bantling/imath/witness"
)

const maxU32Prime uint32 = 4294967291
const maxU64Prime uint64 = 18446744073709551557

// IsSPRP32 reports whether n is a strong probable prime to base, i.e.
// whether it passes the Miller-Rabin witness condition for that base.
// Precondition: odd n >= 3, base >= 2. base may exceed n: it is reduced mod
// n, and a base that is a multiple of n makes the test report false.
func IsSPRP32(n, base uint32) bool {
	d := n - 1
	s := bitops.Ctz32(d)
	d >>= uint(s)

	cur := modular.Powmod32(base, d, n)
	if cur == 1 {
		return true
	}
	for r := 0; r < s; r++ {
		if cur == n-1 {
			return true
		}
		cur = modular.Mulmod32(cur, cur, n)
	}
	return false
}

// IsSPRP64 reports whether n is a strong probable prime to base.
// Precondition: odd n >= 3, base >= 2. base may exceed n, as in IsSPRP32.
func IsSPRP64(n, base uint64) bool {
	d := n - 1
	s := bitops.Ctz64(d)
	d >>= uint(s)

	cur := modular.Powmod64(base, d, n)
	if cur == 1 {
		return true
	}
	for r := 0; r < s; r++ {
		if cur == n-1 {
			return true
		}
		cur = modular.Mulmod64(cur, cur, n)
	}
	return false
}

// IsPrime32 reports whether n is prime.
func IsPrime32(n uint32) bool {
	if n == 2 || n == 3 || n == 5 || n == 7 {
		return true
	}
	if n%2 == 0 || n%3 == 0 || n%5 == 0 || n%7 == 0 {
		return false
	}
	if n < 121 {
		return n > 1
	}

	h := witness.HashU32(n)
	return IsSPRP32(n, uint32(witness.BasesU32[h]))
}

// IsPrime64 reports whether n is prime.
func IsPrime64(n uint64) bool {
	if n < (1 << 32) {
		return IsPrime32(uint32(n))
	}
	if n%2 == 0 || n%3 == 0 || n%5 == 0 || n%7 == 0 {
		return false
	}

	if !IsSPRP64(n, 2) {
		return false
	}

	// Steve Worley, 2013 - shortcut ranges needing no table lookup.
	if n < 109134866497 {
		return IsSPRP64(n, 1005905886) && IsSPRP64(n, 1340600841)
	}
	if n < 55245642489451 {
		return IsSPRP64(n, 141889084524735) &&
			IsSPRP64(n, 1199124725622454117) &&
			IsSPRP64(n, 11096072698276303650)
	}

	if !IsSPRP64(n, 15) {
		return false
	}

	h := witness.HashU64(n)
	w1, w2, w3 := witness.UnpackU64(witness.BasesU64[h])
	return IsSPRP64(n, w1) && IsSPRP64(n, w2) && IsSPRP64(n, w3)
}

// NextPrimeAfter32 returns the smallest prime strictly greater than n.
// Precondition: n < 4294967291 (the largest 32-bit prime); a larger n panics,
// since no larger 32-bit prime exists.
func NextPrimeAfter32(n uint32) uint32 {
	if n >= maxU32Prime {
		panic(fmt.Errorf("primality: NextPrimeAfter32(%d): no larger 32-bit prime exists", n))
	}
	if n < 2 {
		return 2
	}
	n = n + 1 + (n & 1)
	for !IsPrime32(n) {
		n += 2
	}
	return n
}

// NextPrimeAfter64 returns the smallest prime strictly greater than n.
// Precondition: n < 18446744073709551557 (the largest 64-bit prime).
func NextPrimeAfter64(n uint64) uint64 {
	if n >= maxU64Prime {
		panic(fmt.Errorf("primality: NextPrimeAfter64(%d): no larger 64-bit prime exists", n))
	}
	if n < uint64(maxU32Prime) {
		return uint64(NextPrimeAfter32(uint32(n)))
	}
	n = n + 1 + (n & 1)
	for !IsPrime64(n) {
		n += 2
	}
	return n
}
