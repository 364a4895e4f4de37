package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfig  Phase = "config"  // manager construction
	PhaseInstall Phase = "install" // binding installation
	PhaseResolve Phase = "resolve" // module resolution
	PhaseInvoke  Phase = "invoke"  // module method dispatch
	PhaseRetain  Phase = "retain"  // callback retention
	PhaseHost    Phase = "host"    // delegate/registry backends
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindUnavailable   Kind = "unavailable"
	KindInvalidInput  Kind = "invalid_input"
	KindRegistration  Kind = "registration"
	KindReleased      Kind = "released"
	KindTypeMismatch  Kind = "type_mismatch"
	KindInvocation    Kind = "invocation"
	KindAlreadyDone   Kind = "already_done"
	KindUnsupported   Kind = "unsupported"
	KindInstantiation Kind = "instantiation"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Module string
	Method string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Module != "" {
		b.WriteString(" module ")
		b.WriteString(e.Module)
		if e.Method != "" {
			b.WriteByte('.')
			b.WriteString(e.Method)
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Module sets the module name
func (b *Builder) Module(name string) *Builder {
	b.err.Module = name
	return b
}

// Method sets the method name
func (b *Builder) Method(name string) *Builder {
	b.err.Method = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Unavailable creates an error for a guarded dependency that is gone
func Unavailable(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnavailable,
		Detail: fmt.Sprintf("%s is no longer available", what),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Registration creates a registration error
func Registration(phase Phase, name string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRegistration,
		Module: name,
		Detail: "register module",
		Cause:  cause,
	}
}

// Released creates an error for use of a released callback handle
func Released(detail string) *Error {
	return &Error{
		Phase:  PhaseRetain,
		Kind:   KindReleased,
		Detail: detail,
	}
}

// TypeMismatch creates a type mismatch error for method arguments
func TypeMismatch(module, method string, detail string) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindTypeMismatch,
		Module: module,
		Method: method,
		Detail: detail,
	}
}

// Invocation creates a method dispatch error
func Invocation(module, method string, cause error) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindInvocation,
		Module: module,
		Method: method,
		Cause:  cause,
	}
}

// MethodNotFound creates a missing method error
func MethodNotFound(module, method string) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindNotFound,
		Module: module,
		Method: method,
		Detail: "method not exported",
	}
}

// AlreadyInstalled creates an error for a repeated Install call
func AlreadyInstalled() *Error {
	return &Error{
		Phase:  PhaseInstall,
		Kind:   KindAlreadyDone,
		Detail: "bindings already installed",
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Instantiation creates a backend instantiation error
func Instantiation(name string, cause error) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindInstantiation,
		Module: name,
		Detail: "instantiate module",
		Cause:  cause,
	}
}
