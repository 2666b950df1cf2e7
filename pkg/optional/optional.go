// Package optional provides a three-state field wrapper for partial updates:
// a field is either absent (leave the column unchanged), explicitly null
// (clear a nullable column) or set to a value.
package optional

import (
	"bytes"
	"encoding/json"
)

// Field distinguishes "not sent" from "sent as null" from "sent with a value".
// The zero value is absent.
type Field[T any] struct {
	value   T
	present bool
	null    bool
}

// Of returns a Field carrying a value.
func Of[T any](value T) Field[T] {
	return Field[T]{value: value, present: true}
}

// Null returns a Field explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// Present reports whether the field was supplied at all.
func (f Field[T]) Present() bool { return f.present }

// IsNull reports whether the field was supplied as an explicit null.
func (f Field[T]) IsNull() bool { return f.present && f.null }

// Value returns the carried value and whether one is present (supplied and
// not null).
func (f Field[T]) Value() (T, bool) {
	if !f.present || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// UnmarshalJSON is only invoked for keys present in the payload, which is what
// makes the absent state representable: a missing key leaves the zero Field.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(data, []byte("null")) {
		f.null = true
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON renders null for absent or null fields.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
