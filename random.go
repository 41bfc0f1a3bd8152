// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigdouble

import (
	"math/rand"
)

// Random returns a random value for tests and simulations.
// One in twenty values is zero, other values have a random sign, a mantissa uniformly distributed in [1, 10),
// and an exponent uniformly distributed in [-absMaxExponent, absMaxExponent].
// absMaxExponent is clamped to [0, MaxExponent].
func Random(r *rand.Rand, absMaxExponent int64) Value {
	if r.Intn(20) == 0 {
		return zero
	}
	absMaxExponent = min(max(absMaxExponent, 0), MaxExponent)
	m := 1 + 9*r.Float64()
	if r.Intn(2) == 0 {
		m = -m
	}
	e := r.Int63n(2*absMaxExponent+1) - absMaxExponent
	// 1 + 9*x may round up to 10.
	return normalize(m, e)
}
