// Package converters provides ready-made converters for binding chains,
// plus adapters that lift plain transform functions into the converter
// contract.
//
// Model-direction faults never escape a converter as panics: they surface as
// error results carrying the configured fallback message, or the raw fault
// text when no fallback is configured. Presentation-direction faults do
// escape; a model value that cannot be presented violates the invariant that
// only chain-validated values are ever stored.
package converters

import (
	"fmt"

	"formbind/binding"
	"formbind/result"
)

// guard recovers a model-direction fault and substitutes fallback for its
// text. An empty fallback exposes the raw fault message.
func guard[M any](fallback string, fn func() result.Result[M]) (res result.Result[M]) {
	defer func() {
		if r := recover(); r != nil {
			msg := fallback
			if msg == "" {
				msg = fmt.Sprint(r)
			}
			res = result.Error[M](msg)
		}
	}()

	return fn()
}

type funcConverter[F, M any] struct {
	toModel  func(F, binding.Context) result.Result[M]
	toPres   func(M, binding.Context) F
	fallback string
}

func (c funcConverter[F, M]) ToModel(fieldValue F, ctx binding.Context) result.Result[M] {
	return guard(c.fallback, func() result.Result[M] {
		return c.toModel(fieldValue, ctx)
	})
}

func (c funcConverter[F, M]) ToPresentation(modelValue M, ctx binding.Context) F {
	return c.toPres(modelValue, ctx)
}

// FromFuncs builds a converter from an explicit transform pair.
func FromFuncs[F, M any](
	toModel func(F, binding.Context) result.Result[M],
	toPresentation func(M, binding.Context) F,
) binding.Converter[F, M] {
	return funcConverter[F, M]{toModel: toModel, toPres: toPresentation}
}

// Fallible adapts a parse function returning (value, error). The error's
// own text is reported unless a non-empty fallback message is given.
func Fallible[F, M any](
	parse func(F) (M, error),
	format func(M) F,
	fallback string,
) binding.Converter[F, M] {
	return funcConverter[F, M]{
		fallback: fallback,
		toModel: func(v F, _ binding.Context) result.Result[M] {
			m, err := parse(v)
			if err != nil {
				if fallback != "" {
					return result.Error[M](fallback)
				}

				return result.Error[M](err.Error())
			}

			return result.Ok(m)
		},
		toPres: func(m M, _ binding.Context) F { return format(m) },
	}
}

// Checked adapts a parse function returning (value, ok) and a fixed
// rejection message.
func Checked[F, M any](
	parse func(F) (M, bool),
	format func(M) F,
	message string,
) binding.Converter[F, M] {
	return funcConverter[F, M]{
		fallback: message,
		toModel: func(v F, _ binding.Context) result.Result[M] {
			m, ok := parse(v)
			if !ok {
				return result.Error[M](message)
			}

			return result.Ok(m)
		},
		toPres: func(m M, _ binding.Context) F { return format(m) },
	}
}

type recovering[F, M any] struct {
	inner    binding.Converter[F, M]
	fallback string
}

func (c recovering[F, M]) ToModel(fieldValue F, ctx binding.Context) result.Result[M] {
	return guard(c.fallback, func() result.Result[M] {
		return c.inner.ToModel(fieldValue, ctx)
	})
}

func (c recovering[F, M]) ToPresentation(modelValue M, ctx binding.Context) F {
	return c.inner.ToPresentation(modelValue, ctx)
}

// Recover wraps a user converter so that a ToModel panic surfaces as an
// error result with the fallback message instead of crossing the chain
// boundary. Converters built by this package already recover; for those,
// Recover just installs the fallback message.
func Recover[F, M any](c binding.Converter[F, M], fallback string) binding.Converter[F, M] {
	if fc, ok := c.(funcConverter[F, M]); ok {
		fc.fallback = fallback
		return fc
	}

	return recovering[F, M]{inner: c, fallback: fallback}
}
