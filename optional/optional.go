// Package optional provides a type-safe Optional type for representing values that may or may not be present.
// An Optional is conceptually a set of size zero or one.
package optional

import (
	"fmt"
)

// Value represents a value that may or may not be present.
// Use Some(value) to create a Value with a value, or None() for an empty Value.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value with no value.
func None[T any]() Value[T] {
	return Value[T]{isSet: false}
}

// FromOK builds a Value from the common (value, ok) return pair.
// It is None when ok is false, regardless of value.
func FromOK[T any](value T, ok bool) Value[T] {
	if !ok {
		return None[T]()
	}

	return Some(value)
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and a boolean indicating whether the value is present.
// This is the safe way to extract a value from a Value.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// Format renders the value with f, or returns absent when empty.
func (o Value[T]) Format(f func(T) string, absent string) string {
	if !o.isSet {
		return absent
	}

	return f(o.value)
}

// String returns "Some(value)" if present, or "None" if empty.
func (o Value[T]) String() string {
	return o.Format(func(v T) string {
		return fmt.Sprintf("Some(%v)", v)
	}, "None")
}

// Both returns the values of a and b when both are present.
func Both[A any, B any](a Value[A], b Value[B]) (A, B, bool) {
	return a.value, b.value, a.isSet && b.isSet
}
