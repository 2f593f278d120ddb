// Package fieldtest provides in-memory stand-ins for the collaborators a
// binding chain needs: input fields with change notification, a status
// recorder, and a named field source. The test suite and the formlint CLI
// use these in place of a real component tree.
package fieldtest

import "formbind/binding"

// Field is an in-memory binding.Field implementation. SetValue notifies
// listeners synchronously, mirroring a single-threaded UI event loop.
type Field[F any] struct {
	value     F
	listeners []func()
}

func New[F any](initial F) *Field[F] {
	return &Field[F]{value: initial}
}

func (f *Field[F]) Value() F { return f.value }

func (f *Field[F]) SetValue(value F) {
	f.value = value
	for _, l := range f.listeners {
		l()
	}
}

func (f *Field[F]) OnValueChange(listener func()) {
	f.listeners = append(f.listeners, listener)
}

// StatusRecorder captures every status transition a binding reports.
type StatusRecorder struct {
	statuses []binding.Status
}

// Handler is the StatusHandler to register with a builder.
func (r *StatusRecorder) Handler(st binding.Status) {
	r.statuses = append(r.statuses, st)
}

// All returns the recorded transitions in order.
func (r *StatusRecorder) All() []binding.Status { return r.statuses }

// Last returns the most recent transition, or a zero Status.
func (r *StatusRecorder) Last() binding.Status {
	if len(r.statuses) == 0 {
		return binding.Status{}
	}

	return r.statuses[len(r.statuses)-1]
}

// Len returns how many transitions were delivered.
func (r *StatusRecorder) Len() int { return len(r.statuses) }

// Reset forgets all recorded transitions.
func (r *StatusRecorder) Reset() { r.statuses = nil }

// Source hands out string fields by name, creating them on first use. It
// satisfies the field-source contract of the forms package.
type Source struct {
	fields map[string]*Field[string]
}

func NewSource() *Source {
	return &Source{fields: make(map[string]*Field[string])}
}

func (s *Source) StringField(name string) binding.Field[string] {
	return s.Get(name)
}

// Get returns the concrete field for name, creating it when missing.
func (s *Source) Get(name string) *Field[string] {
	f, ok := s.fields[name]
	if !ok {
		f = New("")
		s.fields[name] = f
	}

	return f
}

// Names returns the names of all fields created so far.
func (s *Source) Names() []string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}

	return names
}
