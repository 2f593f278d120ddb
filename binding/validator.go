package binding

import "formbind/result"

// Validator is a pure predicate-with-message over a value. A passing
// validator echoes its input unchanged; a failing one carries a human-facing
// message. Validators must be side-effect-free so they can be shared between
// bindings and binders.
type Validator[T any] interface {
	Validate(value T, ctx Context) result.Result[T]
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc[T any] func(value T, ctx Context) result.Result[T]

func (f ValidatorFunc[T]) Validate(value T, ctx Context) result.Result[T] {
	return f(value, ctx)
}
