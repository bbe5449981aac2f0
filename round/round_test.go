package round

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundUpToMultipleOf_(t *testing.T) {
	assert.Equal(t, uint32(10), RoundUpToMultipleOf(uint32(7), uint32(5)))
	assert.Equal(t, uint32(10), RoundUpToMultipleOf(uint32(10), uint32(5)))
	assert.Equal(t, uint32(0), RoundUpToMultipleOf(uint32(0), uint32(5)))
	assert.Equal(t, uint64(100), RoundUpToMultipleOf(uint64(91), uint64(10)))
}

func TestRoundUpToMultipleOf_MultipleOfOne(t *testing.T) {
	assert.Equal(t, uint32(42), RoundUpToMultipleOf(uint32(42), uint32(1)))
}

func TestRoundUpToMultipleOf_ZeroMulPanics(t *testing.T) {
	assert.Panics(t, func() { RoundUpToMultipleOf(uint32(1), uint32(0)) })
}

func TestRoundUpToMultipleOf_OverflowPanics(t *testing.T) {
	assert.Panics(t, func() { RoundUpToMultipleOf(^uint32(0), uint32(5)) })
}

func TestRoundDownToMultipleOf_(t *testing.T) {
	assert.Equal(t, uint32(5), RoundDownToMultipleOf(uint32(7), uint32(5)))
	assert.Equal(t, uint32(10), RoundDownToMultipleOf(uint32(10), uint32(5)))
	assert.Equal(t, uint32(0), RoundDownToMultipleOf(uint32(3), uint32(5)))
	assert.Equal(t, uint64(90), RoundDownToMultipleOf(uint64(91), uint64(10)))
}

func TestRoundDownToMultipleOf_ZeroMulPanics(t *testing.T) {
	assert.Panics(t, func() { RoundDownToMultipleOf(uint32(1), uint32(0)) })
}
