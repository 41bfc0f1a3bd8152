// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bigdouble implements a decimal floating-point number with a float64 mantissa
// and an int64 exponent. It covers magnitudes far beyond the float64 range
// (up to 10^MaxExponent) with roughly float64 precision, about 15-17 significant digits.
// Can be used for values, which grow without bound, like in incremental games and simulations.
//
// A Value is immutable, every operation returns a new normalized value,
// so values can be freely shared between goroutines.
package bigdouble

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	mu "github.com/avdva/bigdouble/internal/mathutil"
	su "github.com/avdva/bigdouble/internal/strutil"
)

const (
	// MaxExponent is the maximum exponent of a finite value.
	// Results with greater exponents become infinities.
	// Every exponent up to MaxExponent is exactly representable by a float64.
	MaxExponent = 1<<53 - 1
	// MinExponent is the minimum exponent of a non-zero value.
	// Results with smaller exponents become zeros.
	MinExponent = -MaxExponent
)

var (
	zero Value

	// Zero is 0.
	Zero = zero
	// One is 1.
	One = Value{m: 1}

	// ErrSyntax is returned by FromString for malformed input.
	ErrSyntax = su.ErrSyntax
	// ErrEmpty is returned by FromString for blank input.
	ErrEmpty = su.ErrEmpty
	// ErrNotFinite is returned when NaN or an infinity cannot be converted to another type.
	ErrNotFinite = errors.New("value is not finite")
	// ErrRange is returned when a value does not fit into another type.
	ErrRange = errors.New("value out of range")
)

// ParseError describes a failed conversion of a string into a Value.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return "bigdouble: cannot parse " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Value is a number mant*10^exp.
// For non-zero finite values 1 <= |mant| < 10, and MinExponent <= exp <= MaxExponent.
// Zero is stored as (0, 0), the sign of a value is the sign of its mantissa.
// NaN and infinities are stored in the mantissa with a zero exponent.
//
// The zero Value is 0.
type Value struct {
	m float64
	e int64
}

// NaN returns a not-a-number value.
func NaN() Value {
	return Value{m: math.NaN()}
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Value {
	return Value{m: math.Inf(sign)}
}

// FromMantAndExp returns mant*10^exp.
// The mantissa does not need to be normalized.
func FromMantAndExp(mant float64, exp int64) Value {
	return normalize(mant, exp)
}

// FromFloat64 returns a value for given float64 number, including NaNs and infinities.
// The mantissa is taken from the shortest decimal representation of f, so FromFloat64(299)
// has a mantissa of exactly 2.99.
func FromFloat64(f float64) Value {
	if f == 0 {
		return zero
	}
	m, e := mu.Decompose(f)
	return Value{m: m, e: e}
}

// MustFromFloat64 is FromFloat64. It exists for symmetry with MustFromString.
func MustFromFloat64(f float64) Value {
	return FromFloat64(f)
}

// FromString parses a decimal literal like `-1.23456789e1234`, `299`, or `0.5E-3`.
// Surrounding spaces and a leading sign are allowed. `NaN`, `Inf`, and `Infinity` are accepted in any case.
// Digits beyond float64 precision are rounded. Exponents out of range produce infinities or zeros.
// On failure a *ParseError is returned.
func FromString(s string) (Value, error) {
	lit, err := su.Parse(s)
	if err != nil {
		return zero, &ParseError{Input: s, Err: err}
	}
	return fromLiteral(lit), nil
}

// MustFromString is like FromString, but panics on errors.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func fromLiteral(lit su.Literal) Value {
	switch {
	case lit.NaN:
		return NaN()
	case lit.Inf && lit.Neg:
		return Inf(-1)
	case lit.Inf:
		return Inf(1)
	}
	m, e := lit.MantExp()
	if lit.Neg {
		m = -m
	}
	return normalize(m, e)
}

// normalize brings mant into [1, 10) adjusting exp.
// Zeros, NaNs, and infinities short-circuit, exponents out of range saturate.
func normalize(mant float64, exp int64) Value {
	switch {
	case mant == 0:
		return zero
	case math.IsNaN(mant) || math.IsInf(mant, 0):
		return Value{m: mant}
	}
	abs := math.Abs(mant)
	if abs < mu.MinNormal { // subnormal, log10 is unreliable there.
		mant *= 1e300
		exp = mu.SubInt64(exp, 300)
		abs = math.Abs(mant)
	}
	if abs < 1 || abs >= 10 {
		shift := int(math.Floor(math.Log10(abs)))
		// 10^k is exact for small k, so dividing or multiplying by it rounds only once.
		if shift > 0 {
			mant /= mu.Pow10(shift)
		} else {
			mant *= mu.Pow10(-shift)
		}
		exp = mu.AddInt64(exp, int64(shift))
		// log10 can be off near powers of ten.
		for abs = math.Abs(mant); abs >= 10; abs = math.Abs(mant) {
			mant /= 10
			exp = mu.AddInt64(exp, 1)
		}
		for ; abs < 1; abs = math.Abs(mant) {
			mant *= 10
			exp = mu.SubInt64(exp, 1)
		}
	}
	switch {
	case exp > MaxExponent:
		return Value{m: math.Copysign(math.Inf(1), mant)}
	case exp < MinExponent:
		return zero
	}
	return Value{m: mant, e: exp}
}

// Mantissa returns v's mantissa. It is within [1, 10) for positive finite values.
func (v Value) Mantissa() float64 {
	return v.m
}

// Exponent returns v's decimal exponent.
func (v Value) Exponent() int64 {
	return v.e
}

// MantExp returns both the mantissa and the exponent.
func (v Value) MantExp() (mant float64, exp int64) {
	return v.m, v.e
}

// IsZero returns true if v == 0.
func (v Value) IsZero() bool {
	return v.m == 0
}

// IsNaN returns true if v is not a number.
func (v Value) IsNaN() bool {
	return math.IsNaN(v.m)
}

// IsInf reports whether v is an infinity, according to sign.
// If sign > 0, IsInf reports whether v is positive infinity.
// If sign < 0, IsInf reports whether v is negative infinity.
// If sign == 0, IsInf reports whether v is either infinity.
func (v Value) IsInf(sign int) bool {
	return math.IsInf(v.m, sign)
}

// IsFinite returns true if v is neither an infinity nor a NaN.
func (v Value) IsFinite() bool {
	return !math.IsInf(v.m, 0) && !math.IsNaN(v.m)
}

// Sign returns -1 if v < 0, 0 if v is zero or NaN, 1 if v > 0.
func (v Value) Sign() int {
	switch {
	case v.m > 0:
		return 1
	case v.m < 0:
		return -1
	}
	return 0
}

// Float64 returns the float64 value nearest to v.
// Values too large for a float64 become signed infinities, too small ones become zero.
func (v Value) Float64() float64 {
	return mu.Compose(v.m, v.e)
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	return v.String() + fmt.Sprintf(" {%v, %v}", v.m, v.e)
}
