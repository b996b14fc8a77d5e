// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fputil

import (
	"golang.org/x/exp/constraints"

	"github.com/avdva/fputil/fenv"
	"github.com/avdva/fputil/fpbits"
	"github.com/avdva/fputil/internal/mathutil"
)

// RoundToSigned rounds x to the nearest integer, ties away from zero,
// and narrows the result to the signed integer type I. A result outside
// I's range sets fenv.ErrDomain and raises Invalid on fenv.Default, and
// the bound nearer the offending value is returned.
func RoundToSigned[I constraints.Signed, F fpbits.Float[F]](x F) I {
	return roundedToSigned[I](Round(x))
}

// RoundToSignedUsingCurrentMode is RoundToSigned with the rounding
// driven by the mode of fenv.Default.
func RoundToSignedUsingCurrentMode[I constraints.Signed, F fpbits.Float[F]](x F) I {
	return roundedToSigned[I](RoundUsingCurrentMode(x))
}

func roundedToSigned[I constraints.Signed, F fpbits.Float[F]](x F) I {
	min, max, bits := mathutil.SignedRange[I]()
	clamp := func() I {
		fenv.Default.SetErrno(fenv.ErrDomain)
		fenv.Default.Raise(fenv.Invalid)
		if x.IsNeg() {
			return min
		}
		return max
	}
	if x.IsInfOrNaN() {
		return clamp()
	}
	limit := bits - 1
	exponent := x.Exponent()
	if exponent > limit {
		return clamp()
	}
	if exponent == limit && (!x.IsNeg() || x.Mantissa() != 0) {
		// Only the most negative integer of I sits exactly at this
		// exponent; everything else there overflows.
		return clamp()
	}
	return I(x.Float64())
}
