// Package diagnostic provides structured findings for form-definition
// review: hard errors that block building a binder, and warnings worth a
// human look, with "did you mean" suggestions where a close match exists.
package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Severity is the weight of a single finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Finding is a single diagnostic message tied to a form field.
type Finding struct {
	Severity Severity
	// Code is a stable identifier for this kind of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Field is the form field the finding relates to, if any.
	Field string
	// Suggestions are likely intended alternatives, best match first.
	Suggestions []string
}

// String renders the finding as "field: [code] message (did you mean ...?)".
func (f Finding) String() string {
	msg := f.Message
	if f.Code != "" {
		msg = fmt.Sprintf("[%s] %s", f.Code, msg)
	}

	if len(f.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %q?)", f.Suggestions[0])
	}

	if f.Field != "" {
		return f.Field + ": " + msg
	}

	return msg
}

// Diagnostics accumulates findings across a whole form definition.
type Diagnostics struct {
	Errors   []Finding
	Warnings []Finding
}

// AddError records an error finding.
func (d *Diagnostics) AddError(code, message, field string, suggestions ...string) {
	d.Errors = append(d.Errors, Finding{
		Severity:    SeverityError,
		Code:        code,
		Message:     message,
		Field:       field,
		Suggestions: suggestions,
	})
}

// AddWarning records a warning finding.
func (d *Diagnostics) AddWarning(code, message, field string, suggestions ...string) {
	d.Warnings = append(d.Warnings, Finding{
		Severity:    SeverityWarning,
		Code:        code,
		Message:     message,
		Field:       field,
		Suggestions: suggestions,
	})
}

// Merge folds another accumulator into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// HasErrors reports whether any error finding was recorded.
func (d *Diagnostics) HasErrors() bool { return len(d.Errors) > 0 }

// Error returns a combined error over all error findings, nil when clean.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, len(d.Errors))
	for i, f := range d.Errors {
		parts[i] = f.String()
	}

	return errors.New(strings.Join(parts, "; "))
}
