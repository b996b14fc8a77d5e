package fpbits

import "github.com/x448/float16"

const (
	b16ExpLen  = 5
	b16FracLen = 16 - b16ExpLen - 1
	b16ExpBias = 1<<(b16ExpLen-1) - 1

	b16SignMask = uint16(1) << 15
	b16FracMask = uint16(1)<<b16FracLen - 1
	b16ExpMask  = (uint16(1)<<b16ExpLen - 1) << b16FracLen
)

// Binary16 is the raw bit pattern of an IEEE-754 half-precision value.
// Value conversions go through github.com/x448/float16, which rounds
// to nearest-even.
type Binary16 uint16

// FromFloat16 returns the bit pattern of f.
func FromFloat16(f float16.Float16) Binary16 {
	return Binary16(f.Bits())
}

func (b Binary16) Bits() uint64 {
	return uint64(b)
}

func (b Binary16) SetBits(bits uint64) Binary16 {
	return Binary16(bits)
}

func (b Binary16) Mantissa() uint64 {
	return uint64(uint16(b) & b16FracMask)
}

func (b Binary16) SetMantissa(mant uint64) Binary16 {
	return b&^Binary16(b16FracMask) | Binary16(uint16(mant)&b16FracMask)
}

func (b Binary16) Exponent() int {
	return int(uint16(b)&b16ExpMask>>b16FracLen) - b16ExpBias
}

func (b Binary16) IsNeg() bool {
	return uint16(b)&b16SignMask != 0
}

func (b Binary16) IsZero() bool {
	return uint16(b)&^b16SignMask == 0
}

func (b Binary16) IsNaN() bool {
	return uint16(b)&^b16SignMask > b16ExpMask
}

func (b Binary16) IsInfOrNaN() bool {
	return uint16(b)&b16ExpMask == b16ExpMask
}

func (b Binary16) Neg() Binary16 {
	return b ^ Binary16(b16SignMask)
}

func (b Binary16) Zero(neg bool) Binary16 {
	return b.CreateValue(neg, 0, 0)
}

func (b Binary16) One(neg bool) Binary16 {
	return b.CreateValue(neg, b16ExpBias, 0)
}

func (b Binary16) QuietNaN() Binary16 {
	return Binary16(b16ExpMask | uint16(1)<<(b16FracLen-1))
}

func (b Binary16) CreateValue(neg bool, biasedExp, sig uint64) Binary16 {
	u := uint16(biasedExp)<<b16FracLen | uint16(sig)&b16FracMask
	if neg {
		u |= b16SignMask
	}
	return Binary16(u)
}

func (b Binary16) FracLen() int {
	return b16FracLen
}

func (b Binary16) ExpBias() int {
	return b16ExpBias
}

// Float16 returns the value b represents.
func (b Binary16) Float16() float16.Float16 {
	return float16.Frombits(uint16(b))
}

func (b Binary16) Float64() float64 {
	return float64(b.Float16().Float32())
}

func (b Binary16) FromFloat64(f float64) Binary16 {
	return Binary16(float16.Fromfloat32(float32(f)).Bits())
}
