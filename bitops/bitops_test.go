package bitops

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCtz32_(t *testing.T) {
	assert.Equal(t, 32, Ctz32(0))
	for i := 0; i < 32; i++ {
		assert.Equal(t, i, Ctz32(uint32(1)<<uint(i)), "1<<%d", i)
	}
	assert.Equal(t, 0, Ctz32(0xFFFFFFFF))
}

func TestCtz64_(t *testing.T) {
	assert.Equal(t, 64, Ctz64(0))
	for i := 0; i < 64; i++ {
		assert.Equal(t, i, Ctz64(uint64(1)<<uint(i)), "1<<%d", i)
	}
	assert.Equal(t, 0, Ctz64(0xFFFFFFFFFFFFFFFF))
}

func TestClz32_(t *testing.T) {
	assert.Equal(t, 32, Clz32(0))
	for i := 0; i < 32; i++ {
		assert.Equal(t, 31-i, Clz32(uint32(1)<<uint(i)), "1<<%d", i)
	}
	// 2^i - 1 has the same leading-zero count as 2^(i-1) for i >= 1
	for i := 1; i < 32; i++ {
		assert.Equal(t, 32-i, Clz32((uint32(1)<<uint(i))-1), "2^%d - 1", i)
	}
	assert.Equal(t, 0, Clz32(0xFFFFFFFF))
}

func TestClz64_(t *testing.T) {
	assert.Equal(t, 64, Clz64(0))
	for i := 0; i < 64; i++ {
		assert.Equal(t, 63-i, Clz64(uint64(1)<<uint(i)), "1<<%d", i)
	}
	for i := 1; i < 64; i++ {
		assert.Equal(t, 64-i, Clz64((uint64(1)<<uint(i))-1), "2^%d - 1", i)
	}
	assert.Equal(t, 0, Clz64(0xFFFFFFFFFFFFFFFF))
}
