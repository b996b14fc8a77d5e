package fpbits

import "math"

const (
	b32ExpLen  = 8
	b32FracLen = 32 - b32ExpLen - 1
	b32ExpBias = 1<<(b32ExpLen-1) - 1

	b32SignMask = uint32(1) << 31
	b32FracMask = uint32(1)<<b32FracLen - 1
	b32ExpMask  = (uint32(1)<<b32ExpLen - 1) << b32FracLen
)

// Binary32 is the raw bit pattern of an IEEE-754 single-precision value.
type Binary32 uint32

// FromFloat32 returns the bit pattern of f.
func FromFloat32(f float32) Binary32 {
	return Binary32(math.Float32bits(f))
}

func (b Binary32) Bits() uint64 {
	return uint64(b)
}

func (b Binary32) SetBits(bits uint64) Binary32 {
	return Binary32(bits)
}

func (b Binary32) Mantissa() uint64 {
	return uint64(uint32(b) & b32FracMask)
}

func (b Binary32) SetMantissa(mant uint64) Binary32 {
	return b&^Binary32(b32FracMask) | Binary32(uint32(mant)&b32FracMask)
}

func (b Binary32) Exponent() int {
	return int(uint32(b)&b32ExpMask>>b32FracLen) - b32ExpBias
}

func (b Binary32) IsNeg() bool {
	return uint32(b)&b32SignMask != 0
}

func (b Binary32) IsZero() bool {
	return uint32(b)&^b32SignMask == 0
}

func (b Binary32) IsNaN() bool {
	return uint32(b)&^b32SignMask > b32ExpMask
}

func (b Binary32) IsInfOrNaN() bool {
	return uint32(b)&b32ExpMask == b32ExpMask
}

func (b Binary32) Neg() Binary32 {
	return b ^ Binary32(b32SignMask)
}

func (b Binary32) Zero(neg bool) Binary32 {
	return b.CreateValue(neg, 0, 0)
}

func (b Binary32) One(neg bool) Binary32 {
	return b.CreateValue(neg, b32ExpBias, 0)
}

func (b Binary32) QuietNaN() Binary32 {
	return Binary32(b32ExpMask | uint32(1)<<(b32FracLen-1))
}

func (b Binary32) CreateValue(neg bool, biasedExp, sig uint64) Binary32 {
	u := uint32(biasedExp)<<b32FracLen | uint32(sig)&b32FracMask
	if neg {
		u |= b32SignMask
	}
	return Binary32(u)
}

func (b Binary32) FracLen() int {
	return b32FracLen
}

func (b Binary32) ExpBias() int {
	return b32ExpBias
}

// Float32 returns the value b represents.
func (b Binary32) Float32() float32 {
	return math.Float32frombits(uint32(b))
}

func (b Binary32) Float64() float64 {
	return float64(b.Float32())
}

func (b Binary32) FromFloat64(f float64) Binary32 {
	return FromFloat32(float32(f))
}
