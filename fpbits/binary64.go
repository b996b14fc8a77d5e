package fpbits

import "math"

const (
	b64ExpLen  = 11
	b64FracLen = 64 - b64ExpLen - 1
	b64ExpBias = 1<<(b64ExpLen-1) - 1

	b64SignMask = uint64(1) << 63
	b64FracMask = uint64(1)<<b64FracLen - 1
	b64ExpMask  = (uint64(1)<<b64ExpLen - 1) << b64FracLen
)

// Binary64 is the raw bit pattern of an IEEE-754 double-precision value.
//
//	63      51                                                  0
//	_|_______|___________________________________________________
//	seeeeeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
type Binary64 uint64

// FromFloat64 returns the bit pattern of f.
func FromFloat64(f float64) Binary64 {
	return Binary64(math.Float64bits(f))
}

func (b Binary64) Bits() uint64 {
	return uint64(b)
}

func (b Binary64) SetBits(bits uint64) Binary64 {
	return Binary64(bits)
}

func (b Binary64) Mantissa() uint64 {
	return uint64(b) & b64FracMask
}

func (b Binary64) SetMantissa(mant uint64) Binary64 {
	return b&^Binary64(b64FracMask) | Binary64(mant&b64FracMask)
}

func (b Binary64) Exponent() int {
	return int(uint64(b)&b64ExpMask>>b64FracLen) - b64ExpBias
}

func (b Binary64) IsNeg() bool {
	return uint64(b)&b64SignMask != 0
}

func (b Binary64) IsZero() bool {
	return uint64(b)&^b64SignMask == 0
}

func (b Binary64) IsNaN() bool {
	return uint64(b)&^b64SignMask > b64ExpMask
}

func (b Binary64) IsInfOrNaN() bool {
	return uint64(b)&b64ExpMask == b64ExpMask
}

func (b Binary64) Neg() Binary64 {
	return b ^ Binary64(b64SignMask)
}

func (b Binary64) Zero(neg bool) Binary64 {
	return b.CreateValue(neg, 0, 0)
}

func (b Binary64) One(neg bool) Binary64 {
	return b.CreateValue(neg, b64ExpBias, 0)
}

func (b Binary64) QuietNaN() Binary64 {
	return Binary64(b64ExpMask | uint64(1)<<(b64FracLen-1))
}

func (b Binary64) CreateValue(neg bool, biasedExp, sig uint64) Binary64 {
	u := biasedExp<<b64FracLen | sig&b64FracMask
	if neg {
		u |= b64SignMask
	}
	return Binary64(u)
}

func (b Binary64) FracLen() int {
	return b64FracLen
}

func (b Binary64) ExpBias() int {
	return b64ExpBias
}

func (b Binary64) Float64() float64 {
	return math.Float64frombits(uint64(b))
}

func (b Binary64) FromFloat64(f float64) Binary64 {
	return FromFloat64(f)
}
