// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigdouble

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	su "github.com/avdva/bigdouble/internal/strutil"
)

const (
	// fixedPlaces is the number of decimal places of robaho/fixed numbers.
	fixedPlaces = 7
)

var (
	// fixed.Fixed values are below 10^11.
	maxFixed = Value{m: 1, e: 11}
)

// FromInt returns a value for an integer of any type.
// Integers with more than 17 digits are rounded.
func FromInt[T constraints.Integer](i T) Value {
	if i == 0 {
		return zero
	}
	var buf [24]byte
	var s []byte
	if i < 0 {
		s = strconv.AppendInt(buf[:0], int64(i), 10)[1:]
	} else {
		s = strconv.AppendUint(buf[:0], uint64(i), 10)
	}
	return fromLiteral(su.Literal{Neg: i < 0, Digits: string(s)})
}

// FromFloat returns a value for a float of any type.
// The mantissa is taken from the shortest representation for the float's own size,
// so FromFloat(float32(0.1)) is exactly 1e-1.
func FromFloat[T constraints.Float](f T) Value {
	if reflect.TypeOf(f).Kind() != reflect.Float32 {
		return FromFloat64(float64(f))
	}
	return MustFromString(strconv.FormatFloat(float64(f), 'e', -1, 32))
}

// FromDecimal converts a shopspring decimal into a value.
// Coefficients with more than 17 digits are rounded.
func FromDecimal(d decimal.Decimal) Value {
	coeff := d.Coefficient()
	if coeff.Sign() == 0 {
		return zero
	}
	return fromLiteral(su.Literal{
		Neg:    coeff.Sign() < 0,
		Digits: strings.TrimPrefix(coeff.String(), "-"),
		Exp:    int64(d.Exponent()),
	})
}

// Decimal converts v into a shopspring decimal with the same digits as v.String() shows.
// Returns ErrNotFinite for NaN and infinities, and ErrRange if the exponent does not fit an int32.
func (v Value) Decimal() (decimal.Decimal, error) {
	if !v.IsFinite() {
		return decimal.Zero, fmt.Errorf("converting %s to decimal: %w", v, ErrNotFinite)
	}
	if v.m == 0 {
		return decimal.Zero, nil
	}
	d := su.FromMantExp(v.m, v.e)
	exp := d.Point - int64(len(d.D))
	if exp < math.MinInt32 || exp > math.MaxInt32 {
		return decimal.Zero, fmt.Errorf("converting %s to decimal: %w", v, ErrRange)
	}
	coeff, ok := new(big.Int).SetString(string(d.D), 10)
	if !ok {
		panic("bad digits " + string(d.D)) // should not normally happen
	}
	if v.m < 0 {
		coeff.Neg(coeff)
	}
	return decimal.NewFromBigInt(coeff, int32(exp)), nil
}

// FromFixed converts a robaho fixed-point number into a value. fixed.NaN becomes NaN.
func FromFixed(f of.Fixed) Value {
	v, err := FromString(f.String())
	if err != nil {
		return NaN()
	}
	return v
}

// Fixed converts v into a robaho fixed-point number, rounding it to 7 decimal places.
// Returns ErrNotFinite for NaN and infinities, and ErrRange if |v| >= 10^11.
func (v Value) Fixed() (of.Fixed, error) {
	if !v.IsFinite() {
		return of.Fixed{}, fmt.Errorf("converting %s to fixed: %w", v, ErrNotFinite)
	}
	if v.Abs().Cmp(maxFixed) >= 0 {
		return of.Fixed{}, fmt.Errorf("converting %s to fixed: %w", v, ErrRange)
	}
	return of.NewSErr(v.Text('f', fixedPlaces))
}
