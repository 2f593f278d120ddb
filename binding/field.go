package binding

// Field is the input-field collaborator a binding attaches to. The binding
// registers exactly one change listener; implementations must invoke
// listeners synchronously on the binder's event-processing goroutine.
type Field[F any] interface {
	Value() F
	SetValue(value F)
	OnValueChange(listener func())
}
