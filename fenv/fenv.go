// Package fenv models the floating-point environment the rounding code
// depends on: the ambient rounding-direction mode, the raised-exception
// flags, and an errno-style error indicator.
package fenv

import "fmt"

// Mode is a rounding-direction mode. The zero value is ToNearest, the
// IEEE-754 default.
type Mode int

const (
	// ToNearest rounds to the nearest integer, ties to even.
	ToNearest Mode = iota
	// Downward rounds toward negative infinity.
	Downward
	// Upward rounds toward positive infinity.
	Upward
	// TowardZero truncates.
	TowardZero
	// ToNearestFromZero rounds to the nearest integer, ties away from zero.
	ToNearestFromZero
)

func (m Mode) String() string {
	switch m {
	case ToNearest:
		return "to-nearest"
	case Downward:
		return "downward"
	case Upward:
		return "upward"
	case TowardZero:
		return "toward-zero"
	case ToNearestFromZero:
		return "to-nearest-from-zero"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Exception is a set of floating-point exception flags.
type Exception uint8

const (
	// Invalid reports an invalid operation: an input or result outside
	// the operation's valid domain.
	Invalid Exception = 1 << iota
	// Inexact reports that a result differs from the mathematically
	// exact value of the input.
	Inexact
)

func (x Exception) String() string {
	switch x {
	case 0:
		return "none"
	case Invalid:
		return "invalid"
	case Inexact:
		return "inexact"
	case Invalid | Inexact:
		return "invalid|inexact"
	}
	return fmt.Sprintf("exception(%#x)", uint8(x))
}

// ErrDomain reports an argument outside the domain of an operation.
// It plays the role of EDOM for integer-domain conversions.
var ErrDomain = fmt.Errorf("argument outside domain")

// Env holds the state of one floating-point environment: the current
// rounding mode, the exception flags raised so far, and the last errno
// value. Raising an exception or setting errno never fails.
type Env struct {
	mode  Mode
	flags Exception
	errno error
}

// New returns an environment with the default mode and no raised flags.
func New() *Env {
	return &Env{}
}

// RoundingMode returns the current rounding-direction mode.
func (e *Env) RoundingMode() Mode {
	return e.mode
}

// SetRoundingMode sets the rounding-direction mode.
func (e *Env) SetRoundingMode(m Mode) {
	e.mode = m
}

// Raise adds x to the raised exception flags.
func (e *Env) Raise(x Exception) {
	e.flags |= x
}

// Test reports whether all flags in x are raised.
func (e *Env) Test(x Exception) bool {
	return e.flags&x == x
}

// Clear lowers the flags in x.
func (e *Env) Clear(x Exception) {
	e.flags &^= x
}

// SetErrno records err as the environment's errno value.
func (e *Env) SetErrno(err error) {
	e.errno = err
}

// Errno returns the recorded errno value, or nil.
func (e *Env) Errno() error {
	return e.errno
}

// ClearErrno resets the errno value.
func (e *Env) ClearErrno() {
	e.errno = nil
}

// Default is the process-wide environment consulted by the current-mode
// and exception-raising operations. Like the C floating-point
// environment it is shared state; it is not synchronized, so configure
// the mode on program start, or swap in an environment from New() for
// isolated use.
var Default = New()
