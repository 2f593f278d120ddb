// Package validators provides ready-made validators for binding chains.
// Every validator echoes a passing value unchanged and is safe to share
// between bindings.
package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"formbind/binding"
	"formbind/result"
)

// New builds a validator from a predicate and a fixed message.
func New[T any](pred func(T) bool, message string) binding.Validator[T] {
	return binding.ValidatorFunc[T](func(value T, _ binding.Context) result.Result[T] {
		if pred(value) {
			return result.Ok(value)
		}

		return result.Error[T](message)
	})
}

// Dynamic builds a validator whose message is computed from the failing
// value.
func Dynamic[T any](pred func(T) bool, message func(T) string) binding.Validator[T] {
	return binding.ValidatorFunc[T](func(value T, _ binding.Context) result.Result[T] {
		if pred(value) {
			return result.Ok(value)
		}

		return result.Error[T](message(value))
	})
}

// All runs the child validators in declared order and returns the first
// failure, or the echoed input when every one passes.
func All[T any](vs ...binding.Validator[T]) binding.Validator[T] {
	return binding.ValidatorFunc[T](func(value T, ctx binding.Context) result.Result[T] {
		for _, v := range vs {
			if res := v.Validate(value, ctx); res.IsError() {
				return res
			}
		}

		return result.Ok(value)
	})
}

// NotEmpty rejects strings that are empty or whitespace-only.
func NotEmpty(message string) binding.Validator[string] {
	return New(func(s string) bool {
		return strings.TrimSpace(s) != ""
	}, message)
}

// emailPattern accepts the usual local@domain.tld shape; full RFC 5322 is
// deliberately out of reach of a display-side check.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email rejects strings that do not look like an email address.
func Email(message string) binding.Validator[string] {
	return New(emailPattern.MatchString, message)
}

// Pattern rejects strings not matching the given expression. A malformed
// expression panics at construction time, not during chain execution.
func Pattern(expr, message string) binding.Validator[string] {
	re := regexp.MustCompile(expr)
	return New(re.MatchString, message)
}

// StringLength bounds a string's rune count, both inclusive.
func StringLength(min, max int, message string) binding.Validator[string] {
	return New(func(s string) bool {
		n := utf8.RuneCountInString(s)
		return min <= n && n <= max
	}, message)
}

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range bounds a numeric value, both inclusive.
func Range[T number](min, max T, message string) binding.Validator[T] {
	return New(func(v T) bool {
		return min <= v && v <= max
	}, message)
}

// Min bounds a numeric value from below, inclusive, with a computed message.
func Min[T number](min T) binding.Validator[T] {
	return Dynamic(func(v T) bool { return v >= min }, func(v T) string {
		return fmt.Sprintf("value %v is below minimum %v", v, min)
	})
}

// Max bounds a numeric value from above, inclusive, with a computed message.
func Max[T number](max T) binding.Validator[T] {
	return Dynamic(func(v T) bool { return v <= max }, func(v T) string {
		return fmt.Sprintf("value %v exceeds maximum %v", v, max)
	})
}
