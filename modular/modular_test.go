package modular

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow32_(t *testing.T) {
	assert.Equal(t, uint32(1), Pow32(3, 0))
	assert.Equal(t, uint32(3), Pow32(3, 1))
	assert.Equal(t, uint32(243), Pow32(3, 5))
}

func TestPow64_(t *testing.T) {
	assert.Equal(t, uint64(1), Pow64(3, 0))
	assert.Equal(t, uint64(1<<40), Pow64(2, 40))
}

func TestMulmod32_(t *testing.T) {
	assert.Equal(t, uint32(1000000%7), Mulmod32(1000, 1000, 7))
}

func TestMulmod32_PanicsOnZeroModulus(t *testing.T) {
	assert.Panics(t, func() { Mulmod32(1, 1, 0) })
}

func TestMulmod64_(t *testing.T) {
	// power-of-two modulus path
	assert.Equal(t, uint64(0xABCD&0xFF), Mulmod64(0xABCD, 1, 0x100))

	// large modulus requiring the full 128-bit reduction, cross-checked
	// against refMulmod's reference multiply-mod done the naive way.
	a, b, m := uint64(18446744073709551557), uint64(18446744073709551533), uint64(1000000007)
	want := refMulmod(a, b, m)
	assert.Equal(t, want, Mulmod64(a, b, m))
}

func TestMulmod64_PanicsOnZeroModulus(t *testing.T) {
	assert.Panics(t, func() { Mulmod64(1, 1, 0) })
}

func TestPowmod64_KnownValue(t *testing.T) {
	// 2^1111111 mod 1000000007, by repeated-squaring reference computed
	// independently via Fermat's little theorem reduction of the exponent
	// mod (1000000007 - 1), since 1000000007 is prime and 2 is coprime to it.
	const m = 1000000007
	const e = 1111111
	reducedExp := e % (m - 1)
	want := refPowmod(2, uint64(reducedExp), m)
	got := Powmod64(2, e, m)
	assert.Equal(t, want, got)
}

func TestPowmod64_Laws(t *testing.T) {
	const m = 97
	for a := uint64(2); a < 10; a++ {
		assert.Equal(t, uint64(1)%m, Powmod64(a, 0, m))
		assert.Equal(t, a%m, Powmod64(a, 1, m))

		e1, e2 := uint64(5), uint64(7)
		lhs := Powmod64(a, e1+e2, m)
		rhs := Mulmod64(Powmod64(a, e1, m), Powmod64(a, e2, m), m)
		assert.Equal(t, rhs, lhs)
	}
}

// refMulmod reduces a and b mod m before multiplying, so the product always
// fits in 64 bits - a cross-check independent of the 128-bit reduction path.
func refMulmod(a, b, m uint64) uint64 {
	ar, br := a%m, b%m
	// ar, br < m <= 1000000007 here, so ar*br cannot overflow uint64.
	return (ar * br) % m
}

// refPowmod is an independent, unoptimized modexp used only to cross-check
// Powmod64 for a concrete scenario.
func refPowmod(n, e, m uint64) uint64 {
	result := uint64(1) % m
	n %= m
	for e > 0 {
		if e&1 == 1 {
			result = (result * n) % m
		}
		n = (n * n) % m
		e >>= 1
	}
	return result
}
