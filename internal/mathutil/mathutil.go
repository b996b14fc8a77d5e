// Package mathutil contains small bit and integer helpers shared by the
// rounding code.
package mathutil

import "golang.org/x/exp/constraints"

// Mask64 returns a mask of the n lowest bits, for n in [0, 63].
func Mask64(n uint) uint64 {
	return uint64(1)<<n - 1
}

// SignedRange returns the extremes and the bit width of the signed
// integer type I. The width is probed by shifting, since unsafe.Sizeof
// does not accept operands of type parameter type.
func SignedRange[I constraints.Signed]() (min, max I, bits int) {
	min, bits = 1, 1
	for min > 0 {
		min <<= 1
		bits++
	}
	max = -(min + 1)
	return min, max, bits
}
