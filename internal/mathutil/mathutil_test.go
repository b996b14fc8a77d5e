package mathutil

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n    uint
		mask uint64
	}{
		{0, 0},
		{1, 1},
		{5, 31},
		{52, 1<<52 - 1},
		{63, 1<<63 - 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.mask, Mask64(test.n))
		})
	}
}

func TestSignedRange(t *testing.T) {
	a := assert.New(t)

	min8, max8, bits8 := SignedRange[int8]()
	a.Equal(int8(math.MinInt8), min8)
	a.Equal(int8(math.MaxInt8), max8)
	a.Equal(8, bits8)

	min16, max16, bits16 := SignedRange[int16]()
	a.Equal(int16(math.MinInt16), min16)
	a.Equal(int16(math.MaxInt16), max16)
	a.Equal(16, bits16)

	min32, max32, bits32 := SignedRange[int32]()
	a.Equal(int32(math.MinInt32), min32)
	a.Equal(int32(math.MaxInt32), max32)
	a.Equal(32, bits32)

	min64, max64, bits64 := SignedRange[int64]()
	a.Equal(int64(math.MinInt64), min64)
	a.Equal(int64(math.MaxInt64), max64)
	a.Equal(64, bits64)

	_, _, bitsInt := SignedRange[int]()
	a.Equal(strconv.IntSize, bitsInt)
}

func BenchmarkSignedRange(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		_, _, dummy = SignedRange[int64]()
	}
	_ = dummy
}
