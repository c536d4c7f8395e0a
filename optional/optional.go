// Package optional provides a small Option type used throughout staticfsm
// for values that may be absent: polled messages, construction overrides.
// An absent value is an ordinary outcome here, never an error.
package optional

import "fmt"

// Value holds either one value of type T or nothing.
// The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the value if present, or def otherwise.
func (o Value[T]) GetOrElse(def T) T {
	if o.isSet {
		return o.value
	}

	return def
}

// NonEmpty reports whether a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty reports whether no value is present.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// String returns "Some(v)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms the contained value, if any.
func Map[T, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}
