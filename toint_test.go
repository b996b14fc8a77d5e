// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fputil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/fputil/fenv"
)

func TestRoundToSignedInt8(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x      float64
		result int8
		err    bool
	}{
		{0, 0, false},
		{negZero, 0, false},
		{5.5, 6, false},
		{-5.5, -6, false},
		{126.4, 126, false},
		{127, 127, false},
		{127.4, 127, false},
		{127.6, 127, true}, // rounds to 128, clamped
		{128, 127, true},
		{-128, -128, false}, // exactly the most negative value
		{-128.4, -128, false},
		{-128.5, -128, true}, // rounds to -129, clamped
		{-129, -128, true},
		{1e300, 127, true},
		{-1e300, -128, true},
		{math.Inf(1), 127, true},
		{math.Inf(-1), -128, true},
		{math.NaN(), 127, true}, // NaN carries a positive sign bit
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			clearDefaultEnv()
			a.Equal(test.result, RoundToSigned[int8](b64(test.x)))
			a.Equal(test.err, fenv.Default.Test(fenv.Invalid))
			if test.err {
				a.Equal(fenv.ErrDomain, fenv.Default.Errno())
			} else {
				a.NoError(fenv.Default.Errno())
			}
		})
	}
	clearDefaultEnv()
}

func TestRoundToSignedWideTypes(t *testing.T) {
	a := assert.New(t)
	clearDefaultEnv()
	defer clearDefaultEnv()

	a.Equal(int16(32767), RoundToSigned[int16](b64(32766.5)))
	a.False(fenv.Default.Test(fenv.Invalid))

	a.Equal(int32(2147483647), RoundToSigned[int32](b64(2147483646.6)))
	a.False(fenv.Default.Test(fenv.Invalid))

	a.Equal(int64(math.MinInt64), RoundToSigned[int64](b64(-9223372036854775808)))
	a.False(fenv.Default.Test(fenv.Invalid))

	// 2^63 overflows int64
	a.Equal(int64(math.MaxInt64), RoundToSigned[int64](b64(9223372036854775808)))
	a.True(fenv.Default.Test(fenv.Invalid))
	a.Equal(fenv.ErrDomain, fenv.Default.Errno())
}

func TestRoundToSignedUsingCurrentMode(t *testing.T) {
	a := assert.New(t)
	old := fenv.Default.RoundingMode()
	defer fenv.Default.SetRoundingMode(old)

	tests := []struct {
		x      float64
		mode   fenv.Mode
		result int8
		err    bool
	}{
		{2.5, fenv.ToNearest, 2, false},
		{2.5, fenv.Upward, 3, false},
		{2.5, fenv.Downward, 2, false},
		{-2.7, fenv.TowardZero, -2, false},
		{2.5, fenv.ToNearestFromZero, 3, false},
		{127.5, fenv.Upward, 127, true},
		{-128.1, fenv.Downward, -128, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			clearDefaultEnv()
			fenv.Default.SetRoundingMode(test.mode)
			a.Equal(test.result, RoundToSignedUsingCurrentMode[int8](b64(test.x)))
			a.Equal(test.err, fenv.Default.Test(fenv.Invalid))
		})
	}
	clearDefaultEnv()
}
