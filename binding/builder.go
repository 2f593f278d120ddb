package binding

import "errors"

var (
	ErrAlreadyBound = errors.New("binding is already finalized, configuration is frozen")
	ErrNilGetter    = errors.New("binding requires a model getter")
)

// step is one type-erased element of a chain. The builder's generics
// guarantee the any values always hold the step's declared types.
type step struct {
	// forward feeds the chain toward the model; ok=false halts it with msg.
	forward func(value any, ctx Context) (out any, msg string, ok bool)
	// backward feeds the chain toward the field; nil for validator steps,
	// which have no presentation-direction role.
	backward func(value any, ctx Context) any
}

// chainState is the builder state shared across re-typings of Builder.
type chainState[B any] struct {
	binder     *Binder[B]
	label      string
	steps      []step
	onStatus   StatusHandler
	bound      bool
	readField  func() any
	writeField func(any)
	subscribe  func(func())
}

func (st *chainState[B]) ensureUnbound() {
	if st.bound {
		panic(ErrAlreadyBound)
	}
}

// Builder assembles one binding's step chain. B is the business-object type,
// F the field type, M the chain's current output type. Appending a converter
// re-types M, so a step can only ever be declared against the output type of
// the previous step.
type Builder[B, F, M any] struct {
	st *chainState[B]
}

// ForField starts a chain for one field. The chain's initial output type is
// the field's own value type.
func ForField[B, F any](binder *Binder[B], field Field[F]) *Builder[B, F, F] {
	st := &chainState[B]{
		binder:     binder,
		readField:  func() any { return field.Value() },
		writeField: func(v any) { field.SetValue(v.(F)) },
		subscribe:  field.OnValueChange,
	}

	return &Builder[B, F, F]{st: st}
}

// WithLabel names the binding for error reporting.
func (bb *Builder[B, F, M]) WithLabel(label string) *Builder[B, F, M] {
	bb.st.ensureUnbound()
	bb.st.label = label

	return bb
}

// WithValidator appends a validator at the chain's current type.
func (bb *Builder[B, F, M]) WithValidator(v Validator[M]) *Builder[B, F, M] {
	bb.st.ensureUnbound()
	bb.st.steps = append(bb.st.steps, step{
		forward: func(value any, ctx Context) (any, string, bool) {
			res := v.Validate(value.(M), ctx)
			if msg, isErr := res.Message(); isErr {
				return nil, msg, false
			}

			return res.Value(), "", true
		},
	})

	return bb
}

// WithConverter appends a converter, changing the chain's output type from M
// to T. It is a free function because the re-typing cannot be expressed as a
// method.
func WithConverter[B, F, M, T any](bb *Builder[B, F, M], c Converter[M, T]) *Builder[B, F, T] {
	bb.st.ensureUnbound()
	bb.st.steps = append(bb.st.steps, step{
		forward: func(value any, ctx Context) (any, string, bool) {
			res := c.ToModel(value.(M), ctx)
			if msg, isErr := res.Message(); isErr {
				return nil, msg, false
			}

			return res.Value(), "", true
		},
		backward: func(value any, ctx Context) any {
			return c.ToPresentation(value.(T), ctx)
		},
	})

	return &Builder[B, F, T]{st: bb.st}
}

// WithStatusHandler routes the binding's status transitions to h.
func (bb *Builder[B, F, M]) WithStatusHandler(h StatusHandler) *Builder[B, F, M] {
	bb.st.ensureUnbound()
	bb.st.onStatus = h

	return bb
}

// Bind finalizes the chain against a model property getter/setter pair and
// registers the binding with its binder. The builder is frozen afterwards;
// any further configuration call panics with ErrAlreadyBound.
//
// A nil setter marks the binding read-only: the forward chain still
// validates, but no write ever reaches the model.
func (bb *Builder[B, F, M]) Bind(get func(*B) M, set func(*B, M)) *Binding[B] {
	st := bb.st
	st.ensureUnbound()

	if get == nil {
		panic(ErrNilGetter)
	}

	st.bound = true

	bnd := &Binding[B]{
		binder:     st.binder,
		label:      st.label,
		steps:      st.steps,
		onStatus:   st.onStatus,
		readField:  st.readField,
		writeField: st.writeField,
		getter:     func(b *B) any { return get(b) },
		zeroModel:  func() any { var zero M; return zero },
	}
	if set != nil {
		bnd.setter = func(b *B, v any) { set(b, v.(M)) }
	}

	st.binder.register(bnd)
	st.subscribe(bnd.handleFieldChange)

	return bnd
}

// BindReadOnly finalizes the chain with a getter only.
func (bb *Builder[B, F, M]) BindReadOnly(get func(*B) M) *Binding[B] {
	return bb.Bind(get, nil)
}
