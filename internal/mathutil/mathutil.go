// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"bytes"
	"math"
	"strconv"
)

const (
	// MinPow10 and MaxPow10 bound the powers of ten representable by a float64.
	MinPow10 = -323
	MaxPow10 = 308

	// MinNormal is the smallest positive normal float64.
	MinNormal = 0x1p-1022
)

var (
	// powersOf10 holds correctly rounded 10^i for i in [MinPow10, MaxPow10].
	// math.Pow10 multiplies two table entries for some exponents and may be off by an ulp.
	powersOf10 = func() (table [MaxPow10 - MinPow10 + 1]float64) {
		for i := range table {
			f, err := strconv.ParseFloat("1e"+strconv.Itoa(i+MinPow10), 64)
			if err != nil {
				panic(err)
			}
			table[i] = f
		}
		return table
	}()
)

// Pow10 returns 10^pow.
// Returns +Inf for pow > MaxPow10 and 0 for pow < MinPow10.
func Pow10(pow int) float64 {
	switch {
	case pow > MaxPow10:
		return math.Inf(1)
	case pow < MinPow10:
		return 0
	}
	return powersOf10[pow-MinPow10]
}

// AddInt64 returns a+b, saturated to [math.MinInt64, math.MaxInt64].
func AddInt64(a, b int64) int64 {
	sum := a + b
	switch {
	case a > 0 && b > 0 && sum < 0:
		return math.MaxInt64
	case a < 0 && b < 0 && sum >= 0:
		return math.MinInt64
	}
	return sum
}

// SubInt64 returns a-b, saturated to [math.MinInt64, math.MaxInt64].
func SubInt64(a, b int64) int64 {
	if b == math.MinInt64 {
		if a >= 0 {
			return math.MaxInt64
		}
		return a - b
	}
	return AddInt64(a, -b)
}

func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}

// Float64Cmp compares two floats the way a total order needs it:
// NaN is less than any other value and equal to itself.
func Float64Cmp(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN || a < b:
		return -1
	case bNaN || a > b:
		return 1
	}
	return 0
}

// Decompose splits a finite non-zero f into (mant, exp), so that f = mant*10^exp and 1 <= |mant| < 10.
// The mantissa is taken from the shortest decimal representation of f,
// so subnormals and integers are split without any rounding error.
// Zero, infinities and NaN are returned as is with a zero exponent.
func Decompose(f float64) (mant float64, exp int64) {
	if f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return f, 0
	}
	var buf [32]byte
	s := strconv.AppendFloat(buf[:0], f, 'e', -1, 64)
	idx := bytes.IndexByte(s, 'e')
	e, err := strconv.ParseInt(string(s[idx+1:]), 10, 64)
	if err != nil {
		panic(err) // strconv always produces a valid exponent
	}
	m, err := strconv.ParseFloat(string(s[:idx]), 64)
	if err != nil {
		panic(err)
	}
	return m, e
}

// Compose returns the float64 nearest to mant*10^exp.
// Too large values become signed infinities, too small ones become zero.
func Compose(mant float64, exp int64) float64 {
	if mant == 0 || math.IsInf(mant, 0) || math.IsNaN(mant) {
		return mant
	}
	// mant is expected to be normalized, so these bounds are way past float64's range.
	switch {
	case exp > MaxPow10+1:
		return math.Copysign(math.Inf(1), mant)
	case exp < MinPow10-2:
		return 0
	}
	var buf [40]byte
	s := strconv.AppendFloat(buf[:0], mant, 'e', -1, 64)
	idx := bytes.IndexByte(s, 'e')
	me, err := strconv.ParseInt(string(s[idx+1:]), 10, 64)
	if err != nil {
		panic(err)
	}
	s = strconv.AppendInt(append(s[:idx], 'e'), me+exp, 10)
	// ParseFloat reports ErrRange for overflows, but still returns ±Inf, which is what we need.
	f, _ := strconv.ParseFloat(string(s), 64)
	return f
}
