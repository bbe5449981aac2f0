// Package modular implements wrap-around integer powers and modular
// multiplication/exponentiation for 32- and 64-bit unsigned integers,
// including the 128-bit intermediate arithmetic 64-bit moduli require.
package modular

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"

	"github.com/bantling/imath/wide"
)

const zeroModulusMsg = "modular: modulus must be > 0, got %d"

// Pow32 returns n^e mod 2^32 (ordinary unsigned wraparound, via repeated
// squaring).
func Pow32(n, e uint32) uint32 {
	var result uint32 = 1
	for e != 0 {
		if e&1 == 1 {
			result *= n
		}
		n *= n
		e >>= 1
	}
	return result
}

// Pow64 returns n^e mod 2^64.
func Pow64(n, e uint64) uint64 {
	var result uint64 = 1
	for e != 0 {
		if e&1 == 1 {
			result *= n
		}
		n *= n
		e >>= 1
	}
	return result
}

// Mulmod32 returns (a*b) mod m. Precondition: m > 0.
func Mulmod32(a, b, m uint32) uint32 {
	if m == 0 {
		panic(fmt.Errorf(zeroModulusMsg, m))
	}
	return uint32((uint64(a) * uint64(b)) % uint64(m))
}

// Mulmod64 returns (a*b) mod m. a and b need not already be reduced mod m.
// Precondition: m > 0.
func Mulmod64(a, b, m uint64) uint64 {
	if m == 0 {
		panic(fmt.Errorf(zeroModulusMsg, m))
	}

	if m&(m-1) == 0 { // m is a power of two
		return (a * b) & (m - 1)
	}

	x := wide.Mul64x64(a, b)
	if x.Hi >= m {
		x.Hi %= m
	}
	if x.Hi == 0 {
		return x.Lo % m
	}
	return wide.Mod128By64(x, m)
}

// Powmod32 returns n^e mod m via binary exponentiation. Precondition: m > 0.
func Powmod32(n, e, m uint32) uint32 {
	if m == 0 {
		panic(fmt.Errorf(zeroModulusMsg, m))
	}

	cur, res := n, uint32(1)
	for e != 0 {
		if e&1 == 1 {
			res = Mulmod32(cur, res, m)
		}
		cur = Mulmod32(cur, cur, m)
		e >>= 1
	}
	return res
}

// Powmod64 returns n^e mod m via binary exponentiation. Precondition: m > 0.
func Powmod64(n, e, m uint64) uint64 {
	if m == 0 {
		panic(fmt.Errorf(zeroModulusMsg, m))
	}

	cur, res := n, uint64(1)
	for e != 0 {
		if e&1 == 1 {
			res = Mulmod64(cur, res, m)
		}
		cur = Mulmod64(cur, cur, m)
		e >>= 1
	}
	return res
}
