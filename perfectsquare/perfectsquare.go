// Package perfectsquare tests whether an integer is a perfect square,
// rejecting most non-squares with a quadratic-residue bitmask before ever
// computing a root.
package perfectsquare

// SPDX-License-Identifier: Apache-2.0

import (
	"github.com/bantling/imath/bitops"
	"github.com/bantling/imath/numeric"
)

// quadResidueMask32 has bit i set when i is NOT a quadratic residue mod 32;
// the low 5 bits of any square must land on one of {0,1,4,9,16,17,25}.
const quadResidueMask32 uint32 = 0b11111101111111001111110111101100

// quadResidueMask64 has bit i set when i is NOT a quadratic residue mod 64;
// the low 6 bits of any square must land on one of
// {0,1,4,9,16,17,25,33,36,41,49,57}.
const quadResidueMask64 uint64 = 0b1111110111111101111111011110110111111101111111001111110111101100

// IsPerfectSquare32 reports whether n is a perfect square.
func IsPerfectSquare32(n uint32) bool {
	if (quadResidueMask32>>(n&31))&1 != 0 {
		return false
	}
	if n == 0 {
		return true
	}

	tz := bitops.Ctz32(n)
	if tz&1 != 0 {
		return false
	}
	n >>= uint(tz)
	if n&7 != 1 {
		return false
	}

	root := isqrt32(n)
	return root*root == n
}

// IsPerfectSquare64 reports whether n is a perfect square.
func IsPerfectSquare64(n uint64) bool {
	if (quadResidueMask64>>(n&63))&1 != 0 {
		return false
	}
	if n == 0 {
		return true
	}

	tz := bitops.Ctz64(n)
	if tz&1 != 0 {
		return false
	}
	n >>= uint(tz)
	if n&7 != 1 {
		return false
	}

	root := isqrt64(n)
	return root*root == n
}

// isqrt32 is a binary-search integer square root, bounded above by the
// largest value whose square fits a uint32 (the root of any uint32 fits in
// 16 bits).
func isqrt32(n uint32) uint32 {
	left, right := uint32(0), numeric.Min(uint32(65535), n)
	for left < right {
		mid := left + (right-left+1)/2
		if mid*mid <= n {
			left = mid
		} else {
			right = mid - 1
		}
	}
	return left
}

// isqrt64 is a binary-search integer square root, bounded above by the
// largest value whose square fits a uint64 (the root of any uint64 fits in
// 32 bits).
func isqrt64(n uint64) uint64 {
	left, right := uint64(0), numeric.Min(uint64(4294967295), n)
	for left < right {
		mid := left + (right-left+1)/2
		if mid*mid <= n {
			left = mid
		} else {
			right = mid - 1
		}
	}
	return left
}
