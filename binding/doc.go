// Package binding connects mutable business-object properties to interactive
// input fields through an ordered pipeline of validators and converters.
//
// Key capabilities:
//   - Typed chain construction: ForField starts a builder, WithValidator and
//     WithConverter append steps whose types must line up at compile time
//   - Forward flow (field -> model) with fail-fast error short-circuiting
//   - Reverse flow (model -> field) through converter presentations only
//   - Per-binding status reporting and cross-field revalidation
//   - Batch bean writes with all-or-nothing or best-effort policies
//
// A Binder and its Bindings are designed for a single event-processing
// goroutine; no internal locking is performed. Validators and converters are
// pure and may be shared freely between binders.
package binding
