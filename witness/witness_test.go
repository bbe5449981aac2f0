package witness

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashU32_InRange(t *testing.T) {
	for _, n := range []uint32{121, 997, 123456789, 0xFFFFFFFF} {
		h := HashU32(n)
		assert.Less(t, int(h), len(BasesU32))
	}
}

func TestHashU64_InRange(t *testing.T) {
	for _, n := range []uint64{55245642489451, 0xFFFFFFFFFFFFFFFF, 10001538279258594301} {
		h := HashU64(n)
		assert.Less(t, int(h), len(BasesU64))
	}
}

func TestUnpackU64_(t *testing.T) {
	// construct a known packed entry: w1=0x3FF, w2=0x7FF, w3=0x7FF
	entry := uint32(0x3FF)<<22 | uint32(0x7FF)<<11 | uint32(0x7FF)
	w1, w2, w3 := UnpackU64(entry)
	assert.Equal(t, uint64(0x3FF), w1)
	assert.Equal(t, uint64(0x7FF), w2)
	assert.Equal(t, uint64(0x7FF), w3)
}

func TestBasesU32_FirstEntry(t *testing.T) {
	assert.Equal(t, uint16(4718), BasesU32[0])
}

func TestBasesU64_LastEntry(t *testing.T) {
	assert.Equal(t, uint32(54907391), BasesU64[127])
}
