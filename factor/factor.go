// Package factor implements Pollard's rho factorization driven by
// primality.IsPrime32/64, combined with small-prime trial division into a
// full ordered factorize operation.
package factor

// SPDX-License-Identifier: Apache-2.0

import (
	"github.com/bantling/imath/gcdlcm"
	"github.com/bantling/imath/modular"
	"github.com/bantling/imath/primality"
	"github.com/bantling/imath/primesieve"
)

// smallPrimesTested is the number of entries of primesieve.SmallPrimes
// tried by trial division before falling back to Pollard-rho. Must be >= 4
// since IsPrime32/64 already special-case divisibility by 2, 3, 5, 7.
const smallPrimesTested = 16

// Factor32 is one (prime, power) term of a 32-bit factorization.
type Factor32 struct {
	Prime uint32
	Power uint32
}

// Factorization32 holds the ordered factorization of a uint32, in a
// fixed-capacity inline buffer: 9 is the most distinct prime factors any
// 32-bit integer can have, so capacity 10 never needs an overflow check.
type Factorization32 struct {
	factors [10]Factor32
	size    int
}

// Len returns the number of distinct prime factors.
func (f Factorization32) Len() int { return f.size }

// At returns the i'th (prime, power) term, in ascending-prime order.
func (f *Factorization32) At(i int) Factor32 { return f.factors[i] }

func (f *Factorization32) addFactor(factor Factor32) {
	f.factors[f.size] = factor
	f.size++
}

// addUnorderedFactor merges a factor discovered in no particular order:
// linear scan to find its sorted position, incrementing the existing
// entry's power if the prime is already present, otherwise shifting
// everything after the insertion point up by one slot.
func (f *Factorization32) addUnorderedFactor(factor Factor32) {
	i := 0
	for i < f.size && f.factors[i].Prime < factor.Prime {
		i++
	}
	if i < f.size && f.factors[i].Prime == factor.Prime {
		f.factors[i].Power += factor.Power
		return
	}

	swapper := factor
	for ; i < f.size; i++ {
		f.factors[i], swapper = swapper, f.factors[i]
	}
	f.factors[f.size] = swapper
	f.size++
}

// Factor64 is one (prime, power) term of a 64-bit factorization.
type Factor64 struct {
	Prime uint64
	Power uint64
}

// Factorization64 holds the ordered factorization of a uint64, in a
// fixed-capacity inline buffer: 15 is the most distinct prime factors any
// 64-bit integer can have, so capacity 16 never needs an overflow check.
type Factorization64 struct {
	factors [16]Factor64
	size    int
}

// Len returns the number of distinct prime factors.
func (f Factorization64) Len() int { return f.size }

// At returns the i'th (prime, power) term, in ascending-prime order.
func (f *Factorization64) At(i int) Factor64 { return f.factors[i] }

func (f *Factorization64) addFactor(factor Factor64) {
	f.factors[f.size] = factor
	f.size++
}

func (f *Factorization64) addUnorderedFactor(factor Factor64) {
	i := 0
	for i < f.size && f.factors[i].Prime < factor.Prime {
		i++
	}
	if i < f.size && f.factors[i].Prime == factor.Prime {
		f.factors[i].Power += factor.Power
		return
	}

	swapper := factor
	for ; i < f.size; i++ {
		f.factors[i], swapper = swapper, f.factors[i]
	}
	f.factors[f.size] = swapper
	f.size++
}

// rhoPoly32 is Pollard's rho's iterated polynomial f(x) = x^2+1 mod n.
func rhoPoly32(x, n uint32) uint32 {
	return uint32((uint64(x)*uint64(x) + 1) % uint64(n))
}

// rho32 returns a non-trivial divisor of n, or n on failure (the caller must
// retry with a fresh seed in that case). Floyd cycle detection over the
// polynomial iterator.
func rho32(n, seed uint32) uint32 {
	tortoise, hare := seed, seed
	result := uint32(1)
	for result == 1 {
		tortoise = rhoPoly32(tortoise, n)
		hare = rhoPoly32(hare, n)
		hare = rhoPoly32(hare, n)

		diff := tortoise - hare
		if tortoise < hare {
			diff = hare - tortoise
		}
		result = gcdlcm.Gcd32(diff, n)
	}
	return result
}

// rhoPoly64 is f(x) = x^2+1 mod n, substituting 0 for the rare case where
// the addition would otherwise wrap back around to n (a trivial fixed
// point).
func rhoPoly64(x, n uint64) uint64 {
	r := modular.Mulmod64(x, x, n) + 1
	if r == n {
		return 0
	}
	return r
}

func rho64(n, seed uint64) uint64 {
	tortoise, hare := seed, seed
	result := uint64(1)
	for result == 1 {
		tortoise = rhoPoly64(tortoise, n)
		hare = rhoPoly64(hare, n)
		hare = rhoPoly64(hare, n)

		diff := tortoise - hare
		if tortoise < hare {
			diff = hare - tortoise
		}
		result = gcdlcm.Gcd64(diff, n)
	}
	return result
}

// Factorize32 returns the ordered prime factorization of n. The sequence is
// empty for n <= 1.
func Factorize32(n uint32) Factorization32 {
	var result Factorization32
	if n <= 1 {
		return result
	}

	for i := 0; i < smallPrimesTested; i++ {
		prime := uint32(primesieve.SmallPrimes[i])
		if n%prime == 0 {
			f := Factor32{Prime: prime}
			for n%prime == 0 {
				n /= prime
				f.Power++
			}
			result.addFactor(f)
		}
	}

	if n == 1 || primality.IsPrime32(n) {
		if n != 1 {
			result.addFactor(Factor32{Prime: n, Power: 1})
		}
		return result
	}

	// Pollard-rho may return a composite divisor, so a small worklist of
	// composite cofactors tracks pending work; only prime factors are
	// merged into the result.
	var compositeFactors [8]uint32
	compositeFactors[0] = n
	compositeCount := 1
	seed := uint32(0x12345678)

	for compositeCount > 0 {
		compositeCount--
		cf := compositeFactors[compositeCount]

		var divisor uint32
		for {
			divisor = rho32(cf, seed)
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			if divisor != cf {
				break
			}
		}

		if primality.IsPrime32(divisor) {
			result.addUnorderedFactor(Factor32{Prime: divisor, Power: 1})
		} else {
			compositeFactors[compositeCount] = divisor
			compositeCount++
		}

		cf /= divisor
		if primality.IsPrime32(cf) {
			result.addUnorderedFactor(Factor32{Prime: cf, Power: 1})
		} else {
			compositeFactors[compositeCount] = cf
			compositeCount++
		}
	}

	return result
}

// Factorize64 returns the ordered prime factorization of n. The sequence is
// empty for n <= 1.
func Factorize64(n uint64) Factorization64 {
	var result Factorization64
	if n <= 1 {
		return result
	}

	for i := 0; i < smallPrimesTested; i++ {
		prime := uint64(primesieve.SmallPrimes[i])
		if n%prime == 0 {
			f := Factor64{Prime: prime}
			for n%prime == 0 {
				n /= prime
				f.Power++
			}
			result.addFactor(f)
		}
	}

	if n == 1 || primality.IsPrime64(n) {
		if n != 1 {
			result.addFactor(Factor64{Prime: n, Power: 1})
		}
		return result
	}

	var compositeFactors [8]uint64
	compositeFactors[0] = n
	compositeCount := 1
	seed := uint64(0x123456789ABCDEF)

	for compositeCount > 0 {
		compositeCount--
		cf := compositeFactors[compositeCount]

		var divisor uint64
		for {
			divisor = rho64(cf, seed)
			seed ^= seed >> 12
			seed ^= seed << 25
			seed ^= seed >> 27
			if divisor != cf {
				break
			}
		}

		if primality.IsPrime64(divisor) {
			result.addUnorderedFactor(Factor64{Prime: divisor, Power: 1})
		} else {
			compositeFactors[compositeCount] = divisor
			compositeCount++
		}

		cf /= divisor
		if primality.IsPrime64(cf) {
			result.addUnorderedFactor(Factor64{Prime: cf, Power: 1})
		} else {
			compositeFactors[compositeCount] = cf
			compositeCount++
		}
	}

	return result
}
