// Package maybe provides MayBe, a value that is either present or absent.
//
// Queue operations that may have no result (pop, peek, fold on an empty
// queue) return a MayBe instead of a sentinel element or an error. Because
// absence is carried by a separate flag, a MayBe can wrap any T, including
// another MayBe, a nil pointer or a zero value, without ambiguity:
//
//	maybe.Of(maybe.None[int]()) != maybe.None[maybe.MayBe[int]]()
package maybe

import "fmt"

// MayBe holds either a value of type T or nothing.
//
// The zero value is absent. A MayBe is immutable; all combinators return
// new values. When T is comparable, MayBe[T] is comparable with ==.
type MayBe[T any] struct {
	value T
	ok    bool
}

// Of returns a present MayBe wrapping v.
func Of[T any](v T) MayBe[T] {
	return MayBe[T]{value: v, ok: true}
}

// None returns an absent MayBe.
func None[T any]() MayBe[T] {
	return MayBe[T]{}
}

// FromComma converts a comma-ok pair into a MayBe.
func FromComma[T any](v T, ok bool) MayBe[T] {
	if !ok {
		return None[T]()
	}
	return Of(v)
}

// IsPresent reports whether m holds a value.
func (m MayBe[T]) IsPresent() bool {
	return m.ok
}

// Get returns the wrapped value and true, or the zero T and false.
func (m MayBe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// GetOr returns the wrapped value, or alt if m is absent.
func (m MayBe[T]) GetOr(alt T) T {
	if !m.ok {
		return alt
	}
	return m.value
}

// MustGet returns the wrapped value and panics if m is absent.
func (m MayBe[T]) MustGet() T {
	if !m.ok {
		panic("maybe: MustGet on absent value")
	}
	return m.value
}

// String renders m as MayBe(v) or MayBe().
func (m MayBe[T]) String() string {
	if !m.ok {
		return "MayBe()"
	}
	return fmt.Sprintf("MayBe(%v)", m.value)
}

// Map applies f to the value in m, if any.
func Map[T, U any](m MayBe[T], f func(T) U) MayBe[U] {
	if !m.ok {
		return None[U]()
	}
	return Of(f(m.value))
}

// Bind applies f to the value in m, if any, and returns f's result
// without wrapping it again.
func Bind[T, U any](m MayBe[T], f func(T) MayBe[U]) MayBe[U] {
	if !m.ok {
		return None[U]()
	}
	return f(m.value)
}
