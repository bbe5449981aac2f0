// Package round rounds integers up or down to the nearest multiple of a
// given value.
package round

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"

	"github.com/bantling/imath/constraint"
)

const zeroMultipleMsg = "round: mul must be > 0, got %d"
const overflowMsg = "round: RoundUpToMultipleOf(%v, %v) overflows"

// RoundUpToMultipleOf returns the smallest multiple of mul that is >= n.
// Precondition: mul > 0, and n + mul - 1 must not overflow T.
func RoundUpToMultipleOf[T constraint.UnsignedInteger](n, mul T) T {
	if mul == 0 {
		panic(fmt.Errorf(zeroMultipleMsg, mul))
	}
	sum := n + mul - 1
	if sum < n {
		panic(fmt.Errorf(overflowMsg, n, mul))
	}
	return (sum / mul) * mul
}

// RoundDownToMultipleOf returns the largest multiple of mul that is <= n.
// Precondition: mul > 0.
func RoundDownToMultipleOf[T constraint.UnsignedInteger](n, mul T) T {
	if mul == 0 {
		panic(fmt.Errorf(zeroMultipleMsg, mul))
	}
	return n - n%mul
}
