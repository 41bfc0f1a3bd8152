// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigdouble

import (
	"errors"
	"fmt"
	"strconv"

	su "github.com/avdva/bigdouble/internal/strutil"
)

// ErrFormat is returned by FormatSpec for unknown format specifiers.
var ErrFormat = errors.New("invalid format")

// String returns the default representation of v: the mantissa with all its digits
// and a signed exponent, like `1.23456789e+1234` or `-5e-3`.
// Zero is `0`, special values are `NaN`, `+Inf`, and `-Inf`.
func (v Value) String() string {
	if v.m == 0 {
		return "0"
	}
	return v.Text('e', -1)
}

// Text converts v to a string according to the given format and precision:
//
//	'e', 'E' - d.ddddde±dd, prec digits after the delimiter;
//	'f', 'F' - ddddd.ddddd, all the integer digits and prec digits after the delimiter;
//	'g', 'G' - 'f' for exponents in (-7, 21), 'e' otherwise; prec is the number of significant digits.
//
// A negative prec means as many digits as the mantissa has.
// Digits are rounded half up, that is away from zero: 1.25 with 'e' and prec 1 is `1.3e+0`.
// The exponent marker is always a lowercase 'e'.
// Beware: 'f' writes every integer digit, that is exp+1 bytes for huge values.
func (v Value) Text(format byte, prec int) string {
	return string(v.Append(make([]byte, 0, 32), format, prec))
}

// Append appends the result of Text to dst.
func (v Value) Append(dst []byte, format byte, prec int) []byte {
	if !v.IsFinite() {
		return strconv.AppendFloat(dst, v.m, 'g', -1, 64)
	}
	neg, d := v.m < 0, su.FromMantExp(v.m, v.e)
	switch format {
	case 'e', 'E':
		return su.AppendExp(dst, neg, d, prec)
	case 'f', 'F':
		return su.AppendFixed(dst, neg, d, prec)
	case 'g', 'G':
		if prec >= 0 {
			d.Round(int64(max(prec, 1)))
		}
		if exp := d.Point - 1; d.IsZero() || exp > -7 && exp < 21 {
			return su.AppendFixed(dst, neg, d, -1)
		}
		return su.AppendExp(dst, neg, d, -1)
	}
	return append(dst, '%', format)
}

// FormatSpec formats v using a specifier: `` for String, or a format letter for Text
// optionally followed by the precision, like `E4`, `F0`, or `g`.
func (v Value) FormatSpec(spec string) (string, error) {
	if len(spec) == 0 {
		return v.String(), nil
	}
	format, prec := spec[0], -1
	switch format {
	case 'e', 'E', 'f', 'F', 'g', 'G':
	default:
		return "", fmt.Errorf("%w %q", ErrFormat, spec)
	}
	if digits := spec[1:]; len(digits) > 0 {
		p, err := strconv.Atoi(digits)
		if err != nil || p < 0 || digits[0] == '+' {
			return "", fmt.Errorf("%w %q: bad precision", ErrFormat, spec)
		}
		prec = p
	}
	return v.Text(format, prec), nil
}

// Format implements fmt.Formatter.
// It accepts 'e', 'E', 'f', 'F', 'g', 'G' with precision, 'v' and 's' for String, and '#v' for GoString.
// The '+' flag forces the sign, the width pads with spaces, on the right if the '-' flag is set.
func (v Value) Format(fs fmt.State, c rune) {
	var buf []byte
	switch c {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		prec, ok := fs.Precision()
		if !ok {
			prec = -1
		}
		buf = v.Append(buf, byte(c), prec)
	case 'v', 's':
		if c == 'v' && fs.Flag('#') {
			buf = []byte(v.GoString())
		} else {
			buf = []byte(v.String())
		}
	case 'q':
		buf = strconv.AppendQuote(buf, v.String())
	default:
		fmt.Fprintf(fs, "%%!%c(bigdouble.Value=%s)", c, v.String())
		return
	}
	if fs.Flag('+') && buf[0] != '-' && buf[0] != '+' {
		buf = append([]byte{'+'}, buf...)
	}
	if w, ok := fs.Width(); ok && w > len(buf) {
		pad := make([]byte, w-len(buf))
		for i := range pad {
			pad[i] = ' '
		}
		if fs.Flag('-') {
			buf = append(buf, pad...)
		} else {
			buf = append(pad, buf...)
		}
	}
	fs.Write(buf)
}
