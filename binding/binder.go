package binding

// WritePolicy selects how WriteBean treats a partially-failing batch.
type WritePolicy int

const (
	// WriteAllOrNothing defers every model mutation until all bindings
	// passed; a single failure leaves the bean untouched. The default.
	WriteAllOrNothing WritePolicy = iota
	// WriteBestEffort applies each passing binding immediately, reporting
	// sibling failures without rolling anything back. Opt-in.
	WriteBestEffort
)

// Binder owns the ordered bindings of one business-object type and drives
// bulk reads and writes. Bindings are keyed by declaration order; several
// bindings to the same field are legal and independent.
type Binder[B any] struct {
	bindings  []*Binding[B]
	bean      *B
	ctx       Context
	policy    WritePolicy
	autoApply bool
	loading   bool
}

func NewBinder[B any]() *Binder[B] {
	return &Binder[B]{ctx: NewContext(defaultLocale())}
}

// SetContext replaces the context handed to every validator and converter.
func (bn *Binder[B]) SetContext(ctx Context) { bn.ctx = ctx }

func (bn *Binder[B]) context() Context { return bn.ctx }

// SetWritePolicy selects the batch-write policy.
func (bn *Binder[B]) SetWritePolicy(p WritePolicy) { bn.policy = p }

// SetAutoApply controls whether a successful field-change validation writes
// that one binding's value straight to the loaded bean. Off by default, so
// field edits only affect the bean through explicit writes.
func (bn *Binder[B]) SetAutoApply(enabled bool) { bn.autoApply = enabled }

// Bean returns the currently-loaded business object, nil when none is.
func (bn *Binder[B]) Bean() *B { return bn.bean }

// Bindings returns the bindings in declaration order.
func (bn *Binder[B]) Bindings() []*Binding[B] { return bn.bindings }

func (bn *Binder[B]) register(b *Binding[B]) {
	bn.bindings = append(bn.bindings, b)
}

// ReadBean loads a business object into all fields: each binding's reverse
// chain runs in declaration order, the bean reference is recorded, and every
// status resets to Unvalidated. Loaded values are presumed valid but not yet
// re-checked. A nil bean unloads: fields show zero-value presentations.
//
// Change listeners stay muted for the whole pass. A presentation write must
// never count as a field edit for any binding, including a sibling binding
// on the same field.
func (bn *Binder[B]) ReadBean(bean *B) {
	bn.bean = bean

	bn.loading = true
	defer func() { bn.loading = false }()

	for _, b := range bn.bindings {
		b.ReadIntoField(bean)
	}
	for _, b := range bn.bindings {
		b.clearStatus()
	}
}

// WriteBean runs every binding's forward chain in declaration order and
// applies the results to bean under the configured policy. The returned
// error is a ValidationErrors aggregate when any binding failed, nil when
// the whole batch passed.
func (bn *Binder[B]) WriteBean(bean *B) error {
	var (
		errs    ValidationErrors
		applies []func()
	)

	for _, b := range bn.bindings {
		apply, st := b.prepareWrite(bean)
		if st.IsError() {
			errs = append(errs, ValidationError{Field: b.label, Message: st.Message})
			continue
		}

		if apply == nil {
			continue // read-only binding
		}

		if bn.policy == WriteBestEffort {
			apply()
		} else {
			applies = append(applies, apply)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	for _, apply := range applies {
		apply()
	}

	return nil
}

// Validate revalidates every binding and returns the aggregated failures,
// nil when all pass. The model is never touched.
func (bn *Binder[B]) Validate() error {
	var errs ValidationErrors

	for _, b := range bn.bindings {
		if st := b.Validate(); st.IsError() {
			errs = append(errs, ValidationError{Field: b.label, Message: st.Message})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// IsValid reports whether every binding's last-known status is Valid. An
// Unvalidated binding counts as not yet valid.
func (bn *Binder[B]) IsValid() bool {
	for _, b := range bn.bindings {
		if b.status.Kind != StatusValid {
			return false
		}
	}

	return true
}
