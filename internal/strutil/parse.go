// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package strutil converts decimal literals into digits and exponents, and back.
package strutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	mu "github.com/avdva/bigdouble/internal/mathutil"
)

const (
	delim = '.'
)

var (
	// ErrEmpty is returned for strings without anything to parse.
	ErrEmpty = errors.New("empty input")
	// ErrSyntax is wrapped by all the positional errors.
	ErrSyntax = errors.New("invalid syntax")
)

// PosError is a syntax error at a given 1-based position of the input.
type PosError struct {
	Pos int
	Msg string
}

func newPosError(msg string, pos int) *PosError {
	return &PosError{Msg: msg, Pos: pos}
}

func (pe *PosError) Error() string {
	return pe.Msg + fmt.Sprintf(" at pos %d", pe.Pos)
}

// Unwrap returns ErrSyntax.
func (pe *PosError) Unwrap() error {
	return ErrSyntax
}

func addPosErrorOffset(err error, offset int) error {
	var pe *PosError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.Pos += offset
	return pe
}

// Literal is a parsed decimal literal: Digits * 10^Exp.
// Digits have neither leading nor trailing zeros, so zero has no digits at all.
type Literal struct {
	Neg    bool
	NaN    bool
	Inf    bool
	Digits string
	Exp    int64
}

// IsZero returns true if the literal is a finite zero.
func (l Literal) IsZero() bool {
	return !l.NaN && !l.Inf && len(l.Digits) == 0
}

// MantExp returns the absolute value of the literal as mant*10^exp, where 1 <= mant <= 10.
// mant can be equal to 10, if the digits are rounded up to a float64.
// Digits beyond float64 precision are lost.
func (l Literal) MantExp() (mant float64, exp int64) {
	if len(l.Digits) == 0 {
		return 0, 0
	}
	var b strings.Builder
	b.Grow(len(l.Digits) + 1)
	b.WriteByte(l.Digits[0])
	if len(l.Digits) > 1 {
		b.WriteRune(delim)
		b.WriteString(l.Digits[1:])
	}
	mant, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		panic(err) // should not normally happen, the digits were validated
	}
	return mant, mu.AddInt64(l.Exp, int64(len(l.Digits)-1))
}

// Parse parses a decimal literal like `-1.23456789e1234`.
// Surrounding spaces and a leading sign are allowed, as well as NaN, Inf and Infinity in any case.
func Parse(s string) (Literal, error) {
	s, offset, neg := prepareString(s)
	if len(s) == 0 {
		return Literal{}, ErrEmpty
	}
	lit := Literal{Neg: neg}
	switch {
	case strings.EqualFold(s, "nan"):
		return Literal{NaN: true}, nil
	case strings.EqualFold(s, "inf"), strings.EqualFold(s, "infinity"):
		lit.Inf = true
		return lit, nil
	}
	digits, e, err := doParse(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return Literal{}, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	lit.Digits, lit.Exp = digits, e
	if len(digits) == 0 {
		lit.Neg, lit.Exp = false, 0
	}
	return lit, nil
}

// doParse parses given decimal string.
// returns a string without leading and trailing zeros, and an exponent
func doParse(s string) (result string, e int64, err error) {
	result, delimPos, e, err := removeLeadingZeros(s)
	if err != nil {
		return "", 0, err
	}
	result, eFromDelim := removeTrailingZerosString(result, delimPos)
	return result, mu.AddInt64(e, eFromDelim), nil
}

// prepareString cleans the string from -,+ symbols, and spaces.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

func removeLeadingZeros(s string) (result string, delimPos int, e int64, err error) {
	var b strings.Builder
	delimPos, firstNonZeroPos := -1, -1
	hasDigits := false
outer:
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			hasDigits = true
			if b.Len() == 0 {
				if r == '0' { // trim leading zeros
					continue
				}
				firstNonZeroPos = i
			}
			b.WriteRune(r)
		case r == 'e' || r == 'E':
			if !hasDigits {
				return "", 0, 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
			}
			parsed, err := strconv.ParseInt(s[i+1:], 10, 64)
			// out of range exponents are saturated, the value will become an infinity or a zero.
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return "", 0, 0, newPosError("error parsing exponent: "+err.Error(), i+1)
			}
			e = parsed
			break outer
		case r == delim:
			if delimPos != -1 {
				return "", 0, 0, newPosError("unexpected delimiter", i)
			}
			delimPos = i
		default:
			return "", 0, 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if !hasDigits {
		return "", 0, 0, newPosError("no digits", len(s))
	}
	if firstNonZeroPos == -1 { // a zero-only string
		return "", 0, 0, nil
	}

	result = b.String()

	// move delimPos to the beginning of the trimmed string
	if delimPos >= 0 {
		if delimPos < firstNonZeroPos {
			firstNonZeroPos--
		}
		delimPos -= firstNonZeroPos
	} else { // if there is no delim, add one at the end of the string 123 --> 123.
		delimPos = len(result)
	}

	return result, delimPos, e, nil
}

func removeTrailingZerosString(s string, delimPos int) (result string, e int64) {
	for {
		l := len(s)
		if l == 0 || s[l-1] != '0' {
			break
		}
		s = s[:l-1]
	}
	return s, int64(delimPos - len(s))
}
