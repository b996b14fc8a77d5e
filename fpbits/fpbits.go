// Package fpbits provides bit-level access to IEEE-754 floating-point
// values: sign, exponent and mantissa accessors, special-value
// classification, and construction from raw bits or separate fields.
// Values are plain bit patterns, so reading back a constructed value is
// always bit-identical to the fields supplied.
//
// Three formats are implemented: Binary16, Binary32 and Binary64.
package fpbits

// Float is the contract between a floating-point format and the rounding
// code in the parent package. It is implemented once per supported width;
// the type parameter makes constructors return the concrete format.
//
// Bit fields wider than the format's storage are widened to uint64.
// Mantissa returns the stored fraction field only, without the implicit
// leading bit. Exponent returns the unbiased exponent, so it is -ExpBias
// for zeros and subnormals.
type Float[F any] interface {
	Bits() uint64
	SetBits(bits uint64) F
	Mantissa() uint64
	SetMantissa(mant uint64) F
	Exponent() int

	IsNeg() bool
	IsZero() bool
	IsNaN() bool
	IsInfOrNaN() bool

	// Neg flips the sign bit.
	Neg() F
	Zero(neg bool) F
	One(neg bool) F
	QuietNaN() F
	// CreateValue packs the fields directly; sig may carry the explicit
	// leading bit, which is discarded along with anything else above the
	// fraction field.
	CreateValue(neg bool, biasedExp, sig uint64) F

	FracLen() int
	ExpBias() int

	// Float64 widens the value exactly; FromFloat64 rounds f to the
	// nearest representable value of the format.
	Float64() float64
	FromFloat64(f float64) F
}
