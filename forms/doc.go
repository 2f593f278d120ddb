// Package forms builds binding pipelines from declarative, human-reviewed
// YAML form definitions.
//
// A definition names the input fields, the model type each converts to, and
// the validation rules along the way. Definitions are structurally validated
// up front — unknown rules get "did you mean" suggestions — and then
// assembled into a binding.Binder over a Document, a map-backed business
// object keyed by field name.
package forms
