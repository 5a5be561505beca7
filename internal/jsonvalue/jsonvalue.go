// Package jsonvalue converts arbitrary Go values into the decoded-JSON form
// the engines expect: map[string]any, []any, json.Number, string, bool, nil.
package jsonvalue

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
)

// ErrTrailingData is returned when a byte input holds more than one value.
var ErrTrailingData = errors.New("jsonvalue: trailing data after JSON value")

// Canonical returns a fresh copy of v in decoded-JSON form. Byte slices,
// json.RawMessage and strings are treated as JSON text; everything else is
// marshaled first. The input is never modified.
func Canonical(v any) (any, error) {
	switch t := v.(type) {
	case []byte:
		return Decode(t)
	case json.RawMessage:
		return Decode(t)
	case string:
		return Decode([]byte(t))
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}

// CanonicalValue is Canonical for item values: strings are JSON strings, not
// JSON text. Byte slices are still JSON text.
func CanonicalValue(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return v, nil
	case []byte:
		return Decode(t)
	case json.RawMessage:
		return Decode(t)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}

// Decode parses exactly one JSON value with numbers kept as json.Number.
func Decode(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, ErrTrailingData
	}
	return out, nil
}
