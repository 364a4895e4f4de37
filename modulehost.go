package modulehost

import (
	"context"

	"github.com/wippyai/module-host/retain"
)

// Module is the common capability surface callers receive for a resolved
// module, regardless of which tier produced it.
type Module interface {
	// Name returns the name the module was resolved under.
	Name() string

	// Invoke dispatches a method call on the module.
	Invoke(ctx context.Context, method string, args ...any) (any, error)
}

// Invoker is an opaque dispatch target used by modules to schedule calls
// on a particular execution context. Two invokers exist per manager: one
// for calls originating from script code and one for calls originating
// from native code. They are passed through to constructed modules
// unmodified.
type Invoker interface {
	// InvokeAsync schedules fn on the invoker's execution context and
	// returns without waiting for it to run.
	InvokeAsync(fn func())

	// InvokeSync runs fn on the invoker's execution context and waits
	// for it to complete.
	InvokeSync(fn func())
}

// LegacyModule is the surface of a legacy-shim-tier module. The host
// wraps it in an adapter exposing the common Module interface.
type LegacyModule interface {
	// Call dispatches a method on the legacy module.
	Call(method string, args []any) (any, error)

	// Constants returns the module's exported constants. May be nil.
	Constants() map[string]any
}

// InitParams carries everything a managed-runtime-tier module needs at
// construction time.
type InitParams struct {
	// Name the module was resolved under.
	Name string

	// Instance is the managed-runtime object backing the module.
	Instance any

	// ScriptInvoker dispatches onto the script execution context.
	ScriptInvoker Invoker

	// NativeInvoker dispatches onto the native execution context.
	NativeInvoker Invoker

	// Retain registers a long-lived callback per the manager's retention
	// strategy. Nil when the manager was built with retain.StrategyNone;
	// modules must not depend on callback retention in that case.
	Retain retain.Factory
}

// Delegate owns the native-fast-path and managed-runtime resolution
// logic. It is an external collaborator supplied at manager construction.
type Delegate interface {
	// FastPathModule returns the fast-path module for name, if the
	// fast-path tier provides one.
	FastPathModule(name string, script Invoker) (Module, bool)

	// ManagedModule constructs a module around a managed-runtime
	// instance. Called only after the registry reported an instance
	// for params.Name.
	ManagedModule(name string, params InitParams) Module
}

// Registry is the owning application's lookup surface for the legacy
// and managed tiers.
type Registry interface {
	// LegacyModule returns the legacy module registered under name.
	LegacyModule(name string) (LegacyModule, bool)

	// ManagedInstance returns the managed-runtime instance registered
	// under name.
	ManagedInstance(name string) (any, bool)
}

// ProviderFunc resolves a module by name. A false return means no tier
// provides the name; callers surface that as an absent capability.
type ProviderFunc func(name string) (Module, bool)

// Binder is the scripting runtime's binding surface. The manager
// registers exactly one ProviderFunc into it during Install.
type Binder interface {
	BindModuleProvider(provider ProviderFunc)
}

// Executor runs the install callback with exclusive access to the
// scripting state. Supplied by the embedding; invoked exactly once at
// manager startup.
type Executor func(install func(Binder))
