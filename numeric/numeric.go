// Package numeric holds small generic helpers shared by imath's kernel
// packages, in place of the original C++ header's detail::min/detail::max
// templates.
package numeric

// SPDX-License-Identifier: Apache-2.0

import (
	"github.com/bantling/imath/constraint"
)

// Min returns the lesser of a and b.
func Min[T constraint.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max[T constraint.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
