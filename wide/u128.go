// Package wide provides the 128-bit intermediate arithmetic needed to make
// modular multiplication correct for full 64-bit moduli: an exact 64x64->128
// multiply, and a 128-by-64 modulo reduction.
package wide

// SPDX-License-Identifier: Apache-2.0

import (
	"github.com/bantling/imath/bitops"
)

const lower32Mask uint64 = 0x00_00_00_00_FF_FF_FF_FF

// U128 is an unsigned 128-bit value represented as two uint64 halves.
// value = Hi*2^64 + Lo.
type U128 struct {
	Hi uint64
	Lo uint64
}

// Mul64x64 returns a*b exactly, as a U128.
//
// Schoolbook multiplication over 32-bit halves: split a and b into high and
// low 32-bit limbs, form the four partial products, and combine them with
// carry propagation.
//
//	      ┌─────────┐
//	      │  ah*bl  │
//	      ├─────────┤
//	      │  al*bh  │
//	 ┌────┴────┬────┴────┐
//	 │  ah*bh  │  al*bl  │
//	 └─────────┴─────────┘
func Mul64x64(a, b uint64) U128 {
	var (
		ahi = a >> 32
		alo = a & lower32Mask
		bhi = b >> 32
		blo = b & lower32Mask

		ahbh = ahi * bhi
		ahbl = ahi * blo
		albh = alo * bhi
		albl = alo * blo

		// mid fits in 64 bits: its upper 32 bits carry into hi.
		mid = (albl >> 32) + (ahbl & lower32Mask) + albh
	)

	return U128{
		Hi: ahbh + (ahbl >> 32) + (mid >> 32),
		Lo: (mid << 32) | (albl & lower32Mask),
	}
}

// Mod128By64 returns n mod m.
//
// Precondition: m > 0 and n.Hi < m, i.e. the quotient fits in 64 bits; also
// n.Hi > 0 (callers that may have n.Hi == 0, such as Mulmod64, must take the
// cheaper n.Lo % m path directly instead of calling this function).
//
// Shift-and-subtract normalized division: first shift the pair (n.Hi, n.Lo)
// left until n.Hi has the same bit-length as m, then repeatedly shift the
// remaining bits in one at a time, subtracting m from the high word whenever
// it would fit. The "subtract m whenever it fits" step is done with a
// branchless multiply-by-bool instead of an if, to keep the loop
// branch-light.
func Mod128By64(n U128, m uint64) uint64 {
	// bit-length difference between n.Hi and m; 0 <= bitDiff < 64.
	bitDiff := bitops.Clz64(n.Hi) - bitops.Clz64(m)

	var hi, lo uint64
	if bitDiff == 0 {
		// avoid undefined shift-by-64 below
		hi, lo = n.Hi, n.Lo
	} else {
		hi = (n.Hi << uint(bitDiff)) | (n.Lo >> uint(64-bitDiff))
		lo = n.Lo << uint(bitDiff)
	}

	hi -= m * boolU64(hi >= m)
	bitDiff = 63 - bitDiff

	for {
		carry := hi >> 63
		hi = (hi << 1) | (lo >> 63)
		lo <<= 1
		hi -= m * boolU64(carry == 1 || hi >= m)

		if bitDiff == 0 {
			break
		}
		bitDiff--
	}

	return hi
}

func boolU64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
