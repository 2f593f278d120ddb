package binding

import "formbind/result"

// Converter transforms between a field representation F and a model
// representation M.
//
// ToModel may reject malformed input with a human-facing message. A value
// reaching ToPresentation has, by the binder's invariant, already passed the
// full chain, so ToPresentation is total; if it panics the business object
// holds a value that never could have passed validation, which is a logic
// defect and must not be reported as user-facing failure.
type Converter[F, M any] interface {
	ToModel(fieldValue F, ctx Context) result.Result[M]
	ToPresentation(modelValue M, ctx Context) F
}
