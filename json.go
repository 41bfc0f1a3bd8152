// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigdouble

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as strings, like `"1.23456789e+1234"`.
	JSONModeString = iota
	// JSONModeME marshals values with mantissa and exponent, like `{"m":1.23456789,"e":1234}`.
	// NaN and infinities are still marshaled as strings.
	JSONModeME
	// JSONModeCompact will choose the shortest form between JSONModeString and JSONModeME.
	JSONModeCompact
)

var (
	jsonParts = []string{`{"m":`, `,"e":`, `}`}
)

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.toJSON(JSONMode), nil
}

func (v Value) toJSON(mode int) []byte {
	switch mode {
	case JSONModeME:
		if !v.IsFinite() {
			return v.toJSON(JSONModeString)
		}
		var builder strings.Builder
		builder.WriteString(jsonParts[0])
		builder.WriteString(strconv.FormatFloat(v.m, 'g', -1, 64))
		builder.WriteString(jsonParts[1])
		builder.WriteString(strconv.FormatInt(v.e, 10))
		builder.WriteString(jsonParts[2])
		return []byte(builder.String())
	case JSONModeCompact:
		s, me := v.toJSON(JSONModeString), v.toJSON(JSONModeME)
		if len(s) <= len(me) {
			return s
		}
		return me
	default: // marshal as a string
		return strconv.AppendQuote(nil, v.String())
	}
}

// UnmarshalJSON unmarshals a string, a number, or an object with mantissa and exponent into a value.
// null leaves the value unchanged.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case 'n':
		if string(data) == "null" {
			return nil
		}
	case '{':
		d := struct {
			M float64 `json:"m"`
			E int64   `json:"e"`
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		*v = FromMantAndExp(d.M, d.E)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	value, err := FromString(string(data))
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(data []byte) error {
	value, err := FromString(string(data))
	if err != nil {
		return err
	}
	*v = value
	return nil
}
