// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strutil

import (
	"bytes"
	"math"
	"strconv"

	mu "github.com/avdva/bigdouble/internal/mathutil"
)

var (
	manyZeros = bytes.Repeat([]byte{'0'}, 256)
)

// Decimal is a decimal number 0.D * 10^Point.
// D never has leading or trailing zeros, an empty D is zero.
type Decimal struct {
	D     []byte
	Point int64
}

// FromMantExp returns the shortest decimal digits of |mant|*10^exp.
// mant must be finite.
func FromMantExp(mant float64, exp int64) Decimal {
	if mant == 0 {
		return Decimal{}
	}
	var buf [32]byte
	s := strconv.AppendFloat(buf[:0], math.Abs(mant), 'e', -1, 64)
	idx := bytes.IndexByte(s, 'e')
	me, err := strconv.ParseInt(string(s[idx+1:]), 10, 64)
	if err != nil {
		panic(err) // strconv always produces a valid exponent
	}
	d := make([]byte, 0, idx)
	for _, c := range s[:idx] {
		if c != delim {
			d = append(d, c)
		}
	}
	dec := Decimal{D: d, Point: mu.AddInt64(exp, me+1)}
	dec.trim()
	return dec
}

// IsZero returns true if there are no digits left.
func (d *Decimal) IsZero() bool {
	return len(d.D) == 0
}

// Round keeps at most nd most significant digits.
// The rest is rounded half up, that is away from zero for the absolute value.
func (d *Decimal) Round(nd int64) {
	if nd >= int64(len(d.D)) {
		return
	}
	if nd < 0 {
		d.D, d.Point = d.D[:0], 0
		return
	}
	up := d.D[nd] >= '5'
	d.D = d.D[:nd]
	if up {
		i := len(d.D) - 1
		for ; i >= 0 && d.D[i] == '9'; i-- {
		}
		if i < 0 { // all nines, 0.999 --> 1.000
			d.D = append(d.D[:0], '1')
			d.Point++
		} else {
			d.D[i]++
			d.D = d.D[:i+1]
		}
	}
	d.trim()
}

func (d *Decimal) trim() {
	for len(d.D) > 0 && d.D[len(d.D)-1] == '0' {
		d.D = d.D[:len(d.D)-1]
	}
	if len(d.D) == 0 {
		d.Point = 0
	}
}

// AppendExp appends d as `d.ddde±x` with prec digits after the delimiter.
// If prec < 0, all the digits are written.
func AppendExp(dst []byte, neg bool, d Decimal, prec int) []byte {
	if prec >= 0 {
		d.Round(int64(prec) + 1)
	} else {
		prec = max(len(d.D)-1, 0)
	}
	if neg && !d.IsZero() {
		dst = append(dst, '-')
	}
	exp := int64(0)
	if d.IsZero() {
		dst = append(dst, '0')
	} else {
		dst = append(dst, d.D[0])
		exp = d.Point - 1
	}
	if prec > 0 {
		dst = append(dst, delim)
		tail := d.D[min(1, len(d.D)):]
		dst = append(dst, tail...)
		dst = AppendZeros(dst, int64(prec-len(tail)))
	}
	dst = append(dst, 'e')
	if exp >= 0 {
		dst = append(dst, '+')
	}
	return strconv.AppendInt(dst, exp, 10)
}

// AppendFixed appends d without an exponent with prec digits after the delimiter.
// If prec < 0, all the fractional digits are written.
func AppendFixed(dst []byte, neg bool, d Decimal, prec int) []byte {
	if prec >= 0 {
		d.Round(mu.AddInt64(d.Point, int64(prec)))
	} else {
		prec = int(max(int64(len(d.D))-d.Point, 0))
	}
	if neg && !d.IsZero() {
		dst = append(dst, '-')
	}
	l := int64(len(d.D))
	if d.Point <= 0 {
		dst = append(dst, '0')
	} else {
		dst = append(dst, d.D[:min(d.Point, l)]...)
		dst = AppendZeros(dst, d.Point-l)
	}
	if prec == 0 {
		return dst
	}
	dst = append(dst, delim)
	rest := int64(prec)
	if d.Point < 0 {
		lead := min(-d.Point, rest)
		dst = AppendZeros(dst, lead)
		rest -= lead
	}
	if start := max(d.Point, 0); start < l && rest > 0 {
		n := min(l-start, rest)
		dst = append(dst, d.D[start:start+n]...)
		rest -= n
	}
	return AppendZeros(dst, rest)
}

// AppendZeros appends count zeros to dst.
func AppendZeros(dst []byte, count int64) []byte {
	for count > 0 {
		n := min(count, int64(len(manyZeros)))
		dst = append(dst, manyZeros[:n]...)
		count -= n
	}
	return dst
}
