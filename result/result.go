// Package result provides a generic outcome holder: either a value that
// passed validation/conversion, or a human-facing error message.
//
// A Result is immutable once constructed. An error result never carries a
// value and a success result never carries a message.
package result

import "errors"

var ErrNoValue = errors.New("result holds an error, not a value")

type Result[T any] struct {
	value   T
	message string
	isErr   bool
}

// Ok returns a successful result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Error returns a failed result holding a human-facing message.
func Error[T any](message string) Result[T] {
	return Result[T]{message: message, isErr: true}
}

func (r Result[T]) IsError() bool { return r.isErr }

// Value returns the held value. It panics with ErrNoValue when called on an
// error result; that is API misuse, not a user-input problem.
func (r Result[T]) Value() T {
	if r.isErr {
		panic(ErrNoValue)
	}

	return r.value
}

// Message returns the error message and true, or "" and false on a
// successful result.
func (r Result[T]) Message() (string, bool) {
	return r.message, r.isErr
}

// Map applies fn to the held value, passing an error result through
// untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.isErr {
		return Error[U](r.message)
	}

	return Ok(fn(r.value))
}

// FlatMap applies fn to the held value, short-circuiting on an error result
// so fn never observes a failed value.
func FlatMap[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.isErr {
		return Error[U](r.message)
	}

	return fn(r.value)
}
