// Package gcdlcm implements binary (Stein's) GCD and LCM for unsigned
// 32- and 64-bit integers.
package gcdlcm

// SPDX-License-Identifier: Apache-2.0

import (
	"github.com/bantling/imath/bitops"
)

// Gcd32 returns the greatest common divisor of a and b. Gcd32(0, b) = b and
// Gcd32(a, 0) = a.
//
// https://en.wikipedia.org/wiki/Binary_GCD_algorithm
func Gcd32(a, b uint32) uint32 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	commonTz := bitops.Ctz32(a | b)
	b >>= uint(commonTz)

	for a != 0 {
		a >>= uint(bitops.Ctz32(a))
		// unconditional swap-if, to keep the loop branch-light
		a, b = swapIf32(a, b, a < b)
		a -= b
	}

	return b << uint(commonTz)
}

// Gcd64 returns the greatest common divisor of a and b. Gcd64(0, b) = b and
// Gcd64(a, 0) = a.
func Gcd64(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	commonTz := bitops.Ctz64(a | b)
	b >>= uint(commonTz)

	for a != 0 {
		a >>= uint(bitops.Ctz64(a))
		a, b = swapIf64(a, b, a < b)
		a -= b
	}

	return b << uint(commonTz)
}

// Lcm32 returns the least common multiple of a and b. No overflow check is
// performed; callers must ensure the result fits in uint32.
func Lcm32(a, b uint32) uint32 {
	return a / Gcd32(a, b) * b
}

// Lcm64 returns the least common multiple of a and b. No overflow check is
// performed; callers must ensure the result fits in uint64.
func Lcm64(a, b uint64) uint64 {
	return a / Gcd64(a, b) * b
}

func swapIf32(a, b uint32, cond bool) (uint32, uint32) {
	if cond {
		return b, a
	}
	return a, b
}

func swapIf64(a, b uint64, cond bool) (uint64, uint64) {
	if cond {
		return b, a
	}
	return a, b
}
