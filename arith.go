// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigdouble

import (
	"math"

	mu "github.com/avdva/bigdouble/internal/mathutil"
)

const (
	// maxSignificantDigits is the exponent difference, which makes the smaller addend negligible.
	maxSignificantDigits = 17
	// sums are calculated on mantissas scaled by 10^addScale and rounded to integers,
	// so that 2.99e2 + 1.8e1 is exactly 3.17e2.
	addScale       = 14
	addScaleFactor = 1e14
)

// Add returns v + other.
// The sum is rounded to 14 decimal places of the greater addend's mantissa, so short decimals
// add up exactly (299 + 18 is 3.17e2), while full precision mantissas lose their last digits.
// If the exponents differ by maxSignificantDigits or more, the greater addend is returned as is.
func (v Value) Add(other Value) Value {
	if !v.IsFinite() || !other.IsFinite() {
		return FromFloat64(v.m + other.m)
	}
	// first, check for obvious cases, when one of the arguments is zero
	if v.m == 0 {
		return other
	}
	if other.m == 0 {
		return v
	}
	bigger, smaller := v, other
	if bigger.e < smaller.e {
		bigger, smaller = smaller, bigger
	}
	ediff := bigger.e - smaller.e
	if ediff >= maxSignificantDigits {
		return bigger
	}
	sum := math.RoundToEven(addScaleFactor*bigger.m + addScaleFactor*smaller.m*mu.Pow10(-int(ediff)))
	return normalize(sum, bigger.e-addScale)
}

// Sub returns v - other.
func (v Value) Sub(other Value) Value {
	return v.Add(other.Neg())
}

// Neg returns -v.
func (v Value) Neg() Value {
	if v.m == 0 {
		return zero
	}
	return Value{m: -v.m, e: v.e}
}

// Abs returns |v|.
func (v Value) Abs() Value {
	return Value{m: math.Abs(v.m), e: v.e}
}

// Mul returns v * other.
// If the result overflows 10^MaxExponent, a signed infinity is returned.
// If it underflows 10^MinExponent, zero is returned.
func (v Value) Mul(other Value) Value {
	if !v.IsFinite() || !other.IsFinite() || v.m == 0 || other.m == 0 {
		return FromFloat64(v.m * other.m)
	}
	// a*10^e1 * b*10^e2 = a * b * 10^(e1+e2)
	return normalize(v.m*other.m, v.e+other.e)
}

// Div returns v / other.
// Like for floats, x/0 is a signed infinity for non-zero x, and 0/0 is NaN.
func (v Value) Div(other Value) Value {
	if !v.IsFinite() || !other.IsFinite() || v.m == 0 || other.m == 0 {
		return FromFloat64(v.m / other.m)
	}
	// a*10^e1 / b*10^e2 = (a/b) * 10^(e1-e2)
	return normalize(v.m/other.m, v.e-other.e)
}

// Reciprocal returns 1/v.
func (v Value) Reciprocal() Value {
	return One.Div(v)
}
