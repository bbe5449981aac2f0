package constraint

// SPDX-License-Identifier: Apache-2.0

// compile-time checks that the primitive types imath actually uses satisfy
// the constraints it builds on - a mismatch here is a build failure, not a
// runtime one, so there is nothing to assert beyond "this compiles".
func satisfiesUnsignedInteger[T UnsignedInteger]() {}

func satisfiesOrdered[T Ordered]() {}

func satisfiesInteger[T Integer]() {}

var (
	_ = satisfiesUnsignedInteger[uint32]
	_ = satisfiesUnsignedInteger[uint64]
	_ = satisfiesOrdered[uint32]
	_ = satisfiesOrdered[uint64]
	_ = satisfiesInteger[uint32]
)
