package binding

// Binding couples one field to one model property through its step chain.
// Shape is immutable once built; only the last-known status changes.
type Binding[B any] struct {
	binder     *Binder[B]
	label      string
	steps      []step
	onStatus   StatusHandler
	readField  func() any
	writeField func(any)
	getter     func(*B) any
	setter     func(*B, any) // nil for read-only bindings
	zeroModel  func() any

	status Status
	epoch  uint64
	muted  bool
}

// Label returns the name given to the binding for error reporting.
func (b *Binding[B]) Label() string { return b.label }

// Status returns the last-known validation status.
func (b *Binding[B]) Status() Status { return b.status }

// ReadOnly reports whether the binding has no model setter.
func (b *Binding[B]) ReadOnly() bool { return b.setter == nil }

// runForward executes the chain from the current field value toward the
// model, halting at the first failing step. Steps after a failure never run.
func (b *Binding[B]) runForward(ctx Context) (model any, st Status) {
	value := b.readField()
	for _, s := range b.steps {
		out, msg, ok := s.forward(value, ctx)
		if !ok {
			return nil, Status{Kind: StatusError, Message: msg}
		}
		value = out
	}

	return value, Status{Kind: StatusValid}
}

// runReverse executes converter presentations in reverse declared order.
// Validators are skipped. There is no error path: the model value already
// passed the chain once, so a panic here signals an inconsistent model and
// propagates.
func (b *Binding[B]) runReverse(model any, ctx Context) any {
	value := model
	for i := len(b.steps) - 1; i >= 0; i-- {
		if b.steps[i].backward == nil {
			continue
		}
		value = b.steps[i].backward(value, ctx)
	}

	return value
}

// Validate runs the forward chain for its status alone; the model is never
// touched. It is idempotent and may be invoked in response to a different
// field's change event to express cross-field dependencies.
func (b *Binding[B]) Validate() Status {
	b.epoch++
	epoch := b.epoch

	_, st := b.runForward(b.binder.context())
	b.report(epoch, st)

	return st
}

// ReadIntoField extracts the model property, runs the reverse chain, and
// writes the presentation into the field. Validation status is unaffected;
// the binding's own change listener stays muted for the write.
func (b *Binding[B]) ReadIntoField(bean *B) {
	var model any
	if bean == nil {
		model = b.zeroModel()
	} else {
		model = b.getter(bean)
	}

	b.muted = true
	defer func() { b.muted = false }()

	b.writeField(b.runReverse(model, b.binder.context()))
}

// WriteFromField runs the forward chain and, on success, applies the model
// value to the binder's currently-loaded bean (if any, and unless the
// binding is read-only). On failure the model is left untouched and the
// status sink receives the error.
func (b *Binding[B]) WriteFromField() error {
	b.epoch++
	epoch := b.epoch

	model, st := b.runForward(b.binder.context())
	b.report(epoch, st)

	if st.IsError() {
		return ValidationError{Field: b.label, Message: st.Message}
	}

	if bean := b.binder.bean; bean != nil && b.setter != nil {
		b.setter(bean, model)
	}

	return nil
}

// handleFieldChange reacts to the field's change notification: revalidate,
// and in auto-apply mode write this one binding through on success.
func (b *Binding[B]) handleFieldChange() {
	if b.muted || b.binder.loading {
		return
	}

	b.epoch++
	epoch := b.epoch

	model, st := b.runForward(b.binder.context())
	if !st.IsError() && b.binder.autoApply && b.binder.bean != nil && b.setter != nil {
		b.setter(b.binder.bean, model)
	}

	b.report(epoch, st)
}

// prepareWrite runs the forward chain against an explicit target bean and
// hands back a deferred apply, letting the binder decide when (or whether)
// the mutation happens.
func (b *Binding[B]) prepareWrite(bean *B) (apply func(), st Status) {
	b.epoch++
	epoch := b.epoch

	model, st := b.runForward(b.binder.context())
	b.report(epoch, st)

	if st.IsError() || b.setter == nil {
		return nil, st
	}

	return func() { b.setter(bean, model) }, st
}

// report delivers a status transition exactly once. A result computed for an
// older value than the binding has since seen is dropped: last write wins.
func (b *Binding[B]) report(epoch uint64, st Status) {
	if epoch != b.epoch {
		return
	}

	b.status = st
	if b.onStatus != nil {
		b.onStatus(st)
	}
}

// clearStatus resets to Unvalidated after a bean load. The sink only hears
// about it when that is an actual transition.
func (b *Binding[B]) clearStatus() {
	b.epoch++

	if b.status.Kind == StatusUnvalidated {
		return
	}

	b.status = Status{Kind: StatusUnvalidated}
	if b.onStatus != nil {
		b.onStatus(b.status)
	}
}
