// Package errors provides structured error types for the module-host library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the module and method under dispatch plus
// a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseInvoke, errors.KindTypeMismatch).
//		Module("Clock").
//		Method("now").
//		Detail("argument 0 must be a string").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseHost, "module", "Clock")
//	err := errors.Invocation("Clock", "now", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
//
// Module resolution itself does not produce errors: a name no tier can serve
// is an absent capability, reported as a boolean, and a torn-down dependency
// degrades a lookup to the same absence. This package serves the surfaces
// around resolution - construction, installation, invocation, retention, and
// backend registration.
package errors
