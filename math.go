// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigdouble

import (
	"math"

	mu "github.com/avdva/bigdouble/internal/mathutil"
)

// Log10 returns the decimal logarithm of v as exp + log10(mant),
// so it never needs 10^exp as a float64.
// Log10 of a negative value or NaN is NaN, Log10(0) is -Inf, Log10(+Inf) is +Inf.
func Log10(v Value) float64 {
	switch {
	case v.IsNaN() || v.m < 0:
		return math.NaN()
	case v.m == 0:
		return math.Inf(-1)
	case math.IsInf(v.m, 1):
		return v.m
	}
	return float64(v.e) + math.Log10(v.m)
}

// Log returns the logarithm of v for an arbitrary base.
func Log(v Value, base float64) float64 {
	return Log10(v) / math.Log10(base)
}

// Ln returns the natural logarithm of v.
func Ln(v Value) float64 {
	return Log10(v) * math.Ln10
}

// Log2 returns the binary logarithm of v.
func Log2(v Value) float64 {
	return Log10(v) * (math.Ln10 / math.Ln2)
}

// Pow10 returns 10^p.
func Pow10(p float64) Value {
	switch {
	case math.IsNaN(p):
		return NaN()
	case p > MaxExponent:
		return Inf(1)
	case p < MinExponent:
		return zero
	}
	whole := math.Floor(p)
	return normalize(math.Pow(10, p-whole), int64(whole))
}

// Exp returns e^v.
func Exp(v Value) Value {
	// outside of the float64 range e^v is an infinity or a zero anyway.
	f := v.Float64()
	if math.IsNaN(f) {
		return NaN()
	}
	return Pow10(f * math.Log10E)
}

// Pow returns v^p. Special cases follow math.Pow, in particular
// the result is NaN for a negative v and a finite non-integer p.
func Pow(v Value, p float64) Value {
	switch {
	case p == 0:
		return One
	case v.IsNaN() || math.IsNaN(p):
		return NaN()
	case !v.IsFinite() || v.m == 0 || math.IsInf(p, 0):
		return FromFloat64(math.Pow(v.Float64(), p))
	}
	isInt := p == math.Trunc(p)
	if v.m < 0 && !isInt {
		return NaN()
	}
	ep := float64(v.e) * p
	// fast track for integer powers: (m*10^e)^p = m^p * 10^(e*p).
	// Subnormal and overflowed m^p fall back to logarithms.
	if isInt && math.Abs(ep) <= MaxExponent {
		if m := math.Pow(v.m, p); math.Abs(m) >= mu.MinNormal && !math.IsInf(m, 0) {
			return normalize(m, int64(ep))
		}
	}
	neg := v.m < 0 && math.Mod(p, 2) != 0
	if math.IsInf(ep, 0) {
		return saturated(ep > 0, neg)
	}
	// log10(v^p) = e*p + p*log10(m). Keep the integer part of e*p aside,
	// so that its fractional part and p*log10(m) are summed with full precision.
	whole := math.Trunc(ep)
	frac := ep - whole + p*math.Log10(math.Abs(v.m))
	shift := math.Floor(frac)
	whole += shift
	frac -= shift
	switch {
	case whole > MaxExponent:
		return saturated(true, neg)
	case whole < MinExponent:
		return zero
	}
	m := math.Pow(10, frac)
	if neg {
		m = -m
	}
	return normalize(m, int64(whole))
}

func saturated(overflow, neg bool) Value {
	switch {
	case !overflow:
		return zero
	case neg:
		return Inf(-1)
	}
	return Inf(1)
}

// Sqrt returns the square root of v.
func Sqrt(v Value) Value {
	switch {
	case v.IsNaN() || v.m < 0:
		return NaN()
	case !v.IsFinite() || v.m == 0:
		return v
	}
	if v.e%2 != 0 {
		return normalize(math.Sqrt(v.m*10), (v.e-1)/2)
	}
	return normalize(math.Sqrt(v.m), v.e/2)
}

// Cbrt returns the cube root of v.
func Cbrt(v Value) Value {
	if !v.IsFinite() || v.m == 0 {
		return v
	}
	r := (v.e%3 + 3) % 3
	return normalize(math.Cbrt(v.m*float64(pow10small[r])), (v.e-r)/3)
}

var pow10small = [...]int{1, 10, 100}

// Floor returns the greatest integer value less than or equal to v.
func (v Value) Floor() Value {
	return v.roundWith(math.Floor)
}

// Ceil returns the least integer value greater than or equal to v.
func (v Value) Ceil() Value {
	return v.roundWith(math.Ceil)
}

// Round returns the nearest integer, rounding half away from zero.
func (v Value) Round() Value {
	return v.roundWith(math.Round)
}

// Trunc returns the integer part of v.
func (v Value) Trunc() Value {
	return v.roundWith(math.Trunc)
}

func (v Value) roundWith(round func(float64) float64) Value {
	switch {
	case !v.IsFinite() || v.e >= maxSignificantDigits: // no fractional digits left
		return v
	case v.e < -1: // |v| < 0.1, a smaller value rounds the same way.
		return FromFloat64(round(v.m / 100))
	}
	return FromFloat64(round(v.Float64()))
}
