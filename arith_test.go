// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigdouble

import (
	"fmt"
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	a := assert.New(t)

	addSelf := testValueExponent4.Add(testValueExponent4)
	a.Equal(testValueExponent4.Mantissa()*2, addSelf.Mantissa())
	a.Equal(testValueExponent4.Exponent(), addSelf.Exponent())

	oneExponentLess := MustFromString("1.23456789e1233")
	addOneExponentLess := testValueExponent4.Add(oneExponentLess)
	a.InDelta(testValueExponent4.Mantissa()+oneExponentLess.Mantissa()/10, addOneExponentLess.Mantissa(), 1e-15)
	a.Equal(1.358024679, addOneExponentLess.Mantissa())
	a.Equal(testValueExponent4.Exponent(), addOneExponentLess.Exponent())

	aLotSmaller := MustFromString("1.23456789e123")
	addALotSmaller := testValueExponent4.Add(aLotSmaller)
	a.Equal(testValueExponent4, addALotSmaller)
	a.Equal(testValueExponent4, aLotSmaller.Add(testValueExponent4))

	addNegative := testValueExponent4.Add(MustFromString("-1.23456789e1234"))
	a.Equal(0.0, addNegative.Mantissa())
	a.Equal(int64(0), addNegative.Exponent())

	addSmallNumbers := FromInt(299).Add(FromInt(18))
	a.Equal(3.17, addSmallNumbers.Mantissa())
	a.Equal(int64(2), addSmallNumbers.Exponent())

	fullPrecision := FromMantAndExp(1.2345678901234567, 5)
	addFullPrecision := fullPrecision.Add(fullPrecision)
	a.Equal(2.46913578024691, addFullPrecision.Mantissa())
	a.Equal(int64(5), addFullPrecision.Exponent())
}

func TestAddSpecial(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res Value
	}{
		{zero, zero, zero},
		{zero, testValueExponent1, testValueExponent1},
		{testValueExponent1, zero, testValueExponent1},
		{Value{m: 1, e: 13}, Value{m: 1}, Value{m: 1.0000000000001, e: 13}},
		{Value{m: 1, e: 16}, Value{m: 1}, Value{m: 1, e: 16}},
		{Value{m: 1, e: 17}, Value{m: 1}, Value{m: 1, e: 17}},
		{Value{m: 9, e: MaxExponent}, Value{m: 9, e: MaxExponent}, Inf(1)},
		{Value{m: -9, e: MaxExponent}, Value{m: -9, e: MaxExponent}, Inf(-1)},
		{Value{m: 1, e: MinExponent}, Value{m: -9, e: MinExponent - 1}, zero},
		{Inf(1), testValueExponent4, Inf(1)},
		{testValueExponent4, Inf(-1), Inf(-1)},
		{Inf(1), Inf(-1), NaN()},
		{NaN(), One, NaN()},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assertValue(a, test.res, test.a.Add(test.b), "%s + %s", test.a, test.b)
		})
	}
}

func TestSubNegAbs(t *testing.T) {
	a := assert.New(t)
	a.Equal(zero, testValueExponent4.Sub(testValueExponent4))
	a.Equal(Value{m: 2.81, e: 2}, FromInt(299).Sub(FromInt(18)))
	a.Equal(Value{m: -2.81, e: 2}, FromInt(18).Sub(FromInt(299)))
	a.Equal(zero, zero.Neg())
	a.Equal(Value{m: -1.23456789, e: 1234}, testValueExponent4.Neg())
	a.Equal(testValueExponent4, testValueExponent4.Neg().Neg())
	a.Equal(testValueExponent4, testValueExponent4.Neg().Abs())
	a.Equal(Inf(1), Inf(-1).Abs())
	a.Equal(Inf(-1), Inf(1).Neg())
	a.True(NaN().Neg().IsNaN())
}

func TestMul(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res Value
	}{
		{Value{m: 2, e: 3}, Value{m: 5, e: 4}, Value{m: 1, e: 8}},
		{Value{m: -2, e: -3}, Value{m: 5, e: 4}, Value{m: -1, e: 2}},
		{Value{m: -2, e: -3}, Value{m: -4, e: 1000}, Value{m: 8, e: 997}},
		{zero, testValueExponent4, zero},
		{testValueExponent4, One, testValueExponent4},
		{Value{m: 1, e: MaxExponent}, Value{m: 2, e: 1}, Inf(1)},
		{Value{m: 1, e: MaxExponent}, Value{m: -2, e: 1}, Inf(-1)},
		{Value{m: 1, e: MinExponent}, Value{m: 1, e: -1}, zero},
		{Inf(1), Value{m: -1, e: -100}, Inf(-1)},
		{zero, Inf(1), NaN()},
		{NaN(), One, NaN()},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assertValue(a, test.res, test.a.Mul(test.b), "%s * %s", test.a, test.b)
			assertValue(a, test.res, test.b.Mul(test.a), "%s * %s", test.b, test.a)
		})
	}
}

func TestDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res Value
	}{
		{Value{m: 3}, Value{m: 4}, Value{m: 7.5, e: -1}},
		{Value{m: 1, e: 8}, Value{m: -5, e: 4}, Value{m: -2, e: 3}},
		{testValueExponent4, testValueExponent4, One},
		{zero, testValueExponent4, zero},
		{One, zero, Inf(1)},
		{Value{m: -1}, zero, Inf(-1)},
		{zero, zero, NaN()},
		{Value{m: 1, e: 1000}, Inf(1), zero},
		{Inf(1), Value{m: -1, e: 1000}, Inf(-1)},
		{Value{m: 1, e: MaxExponent}, Value{m: 1, e: -1}, Inf(1)},
		{Value{m: 1, e: MinExponent}, Value{m: 2}, zero},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assertValue(a, test.res, test.a.Div(test.b), "%s / %s", test.a, test.b)
		})
	}
}

func TestReciprocal(t *testing.T) {
	a := assert.New(t)
	a.Equal(Value{m: 2.5, e: -1001}, Value{m: 4, e: 1000}.Reciprocal())
	a.Equal(Inf(1), zero.Reciprocal())
	a.Equal(zero, Inf(-1).Reciprocal())
}

func BenchmarkAdd(b *testing.B) {
	v0, v1 := testValueExponent1, MustFromString("1.234567893e-3")
	for i := 0; i < b.N; i++ {
		v0.Add(v1)
	}
}

func BenchmarkMul(b *testing.B) {
	v0, v1 := FromFloat64(123456789.9), FromFloat64(1234.9)
	for i := 0; i < b.N; i++ {
		v0.Mul(v1)
	}
}

func BenchmarkMulOtherFixed(b *testing.B) {
	f0 := of.NewF(123456789.9)
	f1 := of.NewF(1234.9)
	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(123456789.9)
	f1 := decimal.NewFromFloat(1234.9)
	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkDiv(b *testing.B) {
	v0, v1 := FromFloat64(123456789.9), FromFloat64(1234.9)
	for i := 0; i < b.N; i++ {
		v0.Div(v1)
	}
}
