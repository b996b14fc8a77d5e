// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fputil implements correctly-rounded nearest-integer operations
// on IEEE-754 values: truncation, ceiling, floor, rounding under a fixed
// or ambient rounding-direction mode, and conversions into bounded-width
// and native signed integer domains. Results are produced from the bit
// fields of the input, never by floating-point arithmetic that could
// itself round.
//
// The functions are generic over any format implementing fpbits.Float.
// Operations that consult the ambient rounding mode or raise exception
// flags do so through fenv.Default.
package fputil

import (
	"github.com/avdva/fputil/fpbits"
)

// Trunc rounds x toward zero. Infinities and NaNs are returned
// unchanged, and the sign of zero is preserved. Trunc, Ceil, Floor and
// Round never raise an exception.
func Trunc[F fpbits.Float[F]](x F) F {
	if x.IsInfOrNaN() {
		return x
	}
	exponent := x.Exponent()
	// Nothing below the binary point, x is already an integer.
	if exponent >= x.FracLen() {
		return x
	}
	// abs(x) < 1. Zeros take this path too and keep their sign.
	if exponent <= -1 {
		return x.Zero(x.IsNeg())
	}
	trim := uint(x.FracLen() - exponent)
	return x.SetMantissa(x.Mantissa() >> trim << trim)
}

// Ceil rounds x toward positive infinity.
func Ceil[F fpbits.Float[F]](x F) F {
	if x.IsInfOrNaN() || x.IsZero() {
		return x
	}
	neg := x.IsNeg()
	exponent := x.Exponent()
	if exponent >= x.FracLen() {
		return x
	}
	if exponent <= -1 {
		if neg {
			return x.Zero(true)
		}
		return x.One(false)
	}
	trim := uint(x.FracLen() - exponent)
	truncated := x.SetBits(x.Bits() >> trim << trim)
	if truncated.Bits() == x.Bits() {
		return x
	}
	// For negative x the ceiling and the truncation coincide.
	if neg {
		return truncated
	}
	return addUnit(truncated, false)
}

// Floor rounds x toward negative infinity.
func Floor[F fpbits.Float[F]](x F) F {
	if x.IsNeg() {
		return Ceil(x.Neg()).Neg()
	}
	return Trunc(x)
}

// Round rounds x to the nearest integer, ties away from zero.
func Round[F fpbits.Float[F]](x F) F {
	if x.IsInfOrNaN() || x.IsZero() {
		return x
	}
	exponent := x.Exponent()
	if exponent >= x.FracLen() {
		return x
	}
	if exponent == -1 {
		// 0.5 <= abs(x) < 1.
		return x.One(x.IsNeg())
	}
	if exponent <= -2 {
		// abs(x) < 0.5.
		return x.Zero(x.IsNeg())
	}
	trim := uint(x.FracLen() - exponent)
	halfBitSet := x.Mantissa()&(uint64(1)<<(trim-1)) != 0
	truncated := x.SetBits(x.Bits() >> trim << trim)
	if truncated.Bits() == x.Bits() {
		return x
	}
	if !halfBitSet {
		return truncated
	}
	return addUnit(truncated, x.IsNeg())
}

// addUnit moves the integral value v one unit away from zero. Operand
// and result are integers well below the format's contiguous-integer
// limit, so the arithmetic is exact.
func addUnit[F fpbits.Float[F]](v F, neg bool) F {
	if neg {
		return v.FromFloat64(v.Float64() - 1)
	}
	return v.FromFloat64(v.Float64() + 1)
}
