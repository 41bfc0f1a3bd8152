// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigdouble

import (
	mu "github.com/avdva/bigdouble/internal/mathutil"
)

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
// NaN is less than any other value and equal to itself, so Cmp is a total order.
func (v Value) Cmp(other Value) int {
	if v.m == 0 || other.m == 0 || !v.IsFinite() || !other.IsFinite() {
		return mu.Float64Cmp(v.m, other.m)
	}
	if s1, s2 := v.Sign(), other.Sign(); s1 != s2 {
		return s1
	}
	// normalized mantissas are in [1, 10), so the exponent decides.
	if c := mu.Int64Sign(v.e - other.e); c != 0 {
		return c * v.Sign()
	}
	return mu.Float64Cmp(v.m, other.m)
}

// CmpFloat64 compares v and f.
func (v Value) CmpFloat64(f float64) int {
	return v.Cmp(FromFloat64(f))
}

// Eq returns true if both values have the same mantissa and exponent.
// NaN is not equal to anything.
func (v Value) Eq(other Value) bool {
	return v.m == other.m && v.e == other.e
}

// EqTolerance returns true if |v - other| <= max(|v|, |other|) * tolerance.
// Infinities are only equal to themselves, and NaN is not equal to anything.
func (v Value) EqTolerance(other Value, tolerance float64) bool {
	if v.IsNaN() || other.IsNaN() {
		return false
	}
	if !v.IsFinite() || !other.IsFinite() {
		return v.m == other.m
	}
	diff := v.Sub(other).Abs()
	limit := Max(v.Abs(), other.Abs()).Mul(FromFloat64(tolerance))
	return diff.Cmp(limit) <= 0
}

// EqFloat64 is EqTolerance for a float64.
func (v Value) EqFloat64(f float64, tolerance float64) bool {
	return v.EqTolerance(FromFloat64(f), tolerance)
}

// Max returns the greater of a and b. If any of them is NaN, NaN is returned.
func Max(a, b Value) Value {
	switch {
	case a.IsNaN() || b.IsNaN():
		return NaN()
	case a.Cmp(b) >= 0:
		return a
	}
	return b
}

// Min returns the smaller of a and b. If any of them is NaN, NaN is returned.
func Min(a, b Value) Value {
	switch {
	case a.IsNaN() || b.IsNaN():
		return NaN()
	case a.Cmp(b) <= 0:
		return a
	}
	return b
}
