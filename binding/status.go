package binding

import "strings"

type StatusKind int

const (
	StatusUnvalidated StatusKind = iota // no validation ran since the last bean load
	StatusValid
	StatusError
)

// String returns a human-readable status kind name.
func (k StatusKind) String() string {
	switch k {
	case StatusUnvalidated:
		return "unvalidated"
	case StatusValid:
		return "valid"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Status is the outcome of one validation attempt on one binding.
// Message is set only for StatusError.
type Status struct {
	Kind    StatusKind
	Message string
}

func (s Status) IsError() bool { return s.Kind == StatusError }

// StatusHandler receives every status transition of a binding, exactly once
// per triggering event, on the binder's event-processing goroutine.
type StatusHandler func(Status)

// ValidationError is a recovered, user-facing rejection of a field value.
// It never represents API misuse; those panic instead.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return e.Field + ": " + e.Message
}

// ValidationErrors aggregates the per-binding failures of a batch write.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = ve.Error()
	}

	return strings.Join(parts, "; ")
}
