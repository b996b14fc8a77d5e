// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fputil

import (
	"github.com/avdva/fputil/fenv"
	"github.com/avdva/fputil/fpbits"
)

// FromFP converts x to the nearest integer, rounded per rnd, constrained
// to a signed or unsigned integer domain of the given bit width. The
// valid ranges are [-2^(width-1), 2^(width-1)-1] and [0, 2^width-1]. A
// zero width, a non-finite x, or a result outside the domain raises
// Invalid on fenv.Default and yields a quiet NaN.
func FromFP[F fpbits.Float[F]](x F, rnd fenv.Mode, width uint, signed bool) F {
	if width == 0 {
		fenv.Default.Raise(fenv.Invalid)
		return x.QuietNaN()
	}
	if x.IsInfOrNaN() {
		fenv.Default.Raise(fenv.Invalid)
		return x.QuietNaN()
	}
	rounded := RoundUsingMode(x, rnd)
	// The range bounds are powers of two built straight from an exponent
	// field and the explicit leading significand bit; constructing them
	// arithmetically near the format's limit could round.
	explicitBit := uint64(1) << x.FracLen()
	bias := uint(x.ExpBias())
	if signed {
		// No finite value of the format reaches 2^(width-1).
		if width-1 > bias {
			return rounded
		}
		rangeExp := uint64(width-1) + uint64(bias)
		// rounded < -2^(width-1)
		rangeMin := x.CreateValue(true, rangeExp, explicitBit)
		if rounded.Float64() < rangeMin.Float64() {
			fenv.Default.Raise(fenv.Invalid)
			return x.QuietNaN()
		}
		// rounded > 2^(width-1) - 1
		rangeMax := x.FromFloat64(x.CreateValue(false, rangeExp, explicitBit).Float64() - 1)
		if rounded.Float64() > rangeMax.Float64() {
			fenv.Default.Raise(fenv.Invalid)
			return x.QuietNaN()
		}
		return rounded
	}
	if rounded.Float64() < 0 {
		fenv.Default.Raise(fenv.Invalid)
		return x.QuietNaN()
	}
	// No finite value of the format reaches 2^width.
	if width > bias {
		return rounded
	}
	rangeExp := uint64(width) + uint64(bias)
	// rounded > 2^width - 1
	rangeMax := x.FromFloat64(x.CreateValue(false, rangeExp, explicitBit).Float64() - 1)
	if rounded.Float64() > rangeMax.Float64() {
		fenv.Default.Raise(fenv.Invalid)
		return x.QuietNaN()
	}
	return rounded
}

// FromFPX behaves as FromFP and additionally raises Inexact on
// fenv.Default whenever the result is not NaN and differs in value
// from x.
func FromFPX[F fpbits.Float[F]](x F, rnd fenv.Mode, width uint, signed bool) F {
	rounded := FromFP(x, rnd, width, signed)
	if !rounded.IsNaN() && rounded.Float64() != x.Float64() {
		fenv.Default.Raise(fenv.Inexact)
	}
	return rounded
}
