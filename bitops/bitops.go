// Package bitops counts leading and trailing zero bits in 32- and 64-bit
// unsigned values using the De Bruijn multiplication technique: isolate the
// single bit of interest, multiply by a De Bruijn constant so the top bits
// of the product become a perfect hash of the bit's position, then look the
// position up in a precomputed table.
package bitops

// SPDX-License-Identifier: Apache-2.0

const (
	deBruijn32 uint32 = 0x04653ADF
	deBruijn64 uint64 = 0x0218A392CD3D5DBF
)

// powerOf2Lookup32 maps the top 5 bits of (powerOfTwo * deBruijn32) to the
// bit position of that power of two.
var powerOf2Lookup32 = [32]uint8{
	0, 1, 2, 6, 3, 11, 7, 16, 4, 14, 12, 21, 8, 23, 17, 26,
	31, 5, 10, 15, 13, 20, 22, 25, 30, 9, 19, 24, 29, 18, 28, 27,
}

// powerOf2Lookup64 maps the top 6 bits of (powerOfTwo * deBruijn64) to the
// bit position of that power of two.
var powerOf2Lookup64 = [64]uint8{
	0, 1, 2, 7, 3, 13, 8, 19, 4, 25, 14, 28, 9, 34, 20, 40,
	5, 17, 26, 38, 15, 46, 29, 48, 10, 31, 35, 54, 21, 50, 41, 57,
	63, 6, 12, 18, 24, 27, 33, 39, 16, 37, 45, 47, 30, 53, 49, 56,
	62, 11, 23, 32, 36, 44, 52, 55, 61, 22, 43, 51, 60, 42, 59, 58,
}

// Ctz32 returns the number of trailing zero bits of n. Ctz32(0) is 32.
func Ctz32(n uint32) int {
	if n == 0 {
		return 32
	}
	n &= -n // isolate the lowest set bit
	n *= deBruijn32
	return int(powerOf2Lookup32[n>>27])
}

// Ctz64 returns the number of trailing zero bits of n. Ctz64(0) is 64.
func Ctz64(n uint64) int {
	if n == 0 {
		return 64
	}
	n &= -n
	n *= deBruijn64
	return int(powerOf2Lookup64[n>>58])
}

// Clz32 returns the number of leading zero bits of n. Clz32(0) is 32.
func Clz32(n uint32) int {
	if n == 0 {
		return 32
	}
	n |= n >> 1 // propagate the leftmost 1 bit rightward
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n -= n >> 1 // keep only the leftmost bit
	n *= deBruijn32
	return 31 - int(powerOf2Lookup32[n>>27])
}

// Clz64 returns the number of leading zero bits of n. Clz64(0) is 64.
func Clz64(n uint64) int {
	if n == 0 {
		return 64
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n -= n >> 1
	n *= deBruijn64
	return 63 - int(powerOf2Lookup64[n>>58])
}
