// Package modulehost resolves named native capability modules for an
// embedded scripting runtime.
//
// A host application registers module implementations across three tiers
// (a native fast path, a legacy compatibility shim, and a managed-runtime
// tier) and installs a single provider function into the scripting
// runtime. Script code asks for modules by name without knowing which
// tier implements them.
//
// # Architecture Overview
//
// The library is organized into focused packages:
//
//	module-host/         Root package with the collaborator interfaces
//	├── host/            Manager, module cache, and the tiered resolver
//	├── lifetime/        Guarded references for teardown-safe capture
//	├── retain/          Long-lived callback retention policies
//	├── perf/            Resolution instrumentation hooks
//	├── errors/          Structured error types
//	└── wasmhost/        wazero-backed fast-path delegate
//
// # Quick Start
//
// Construct a manager, install it into the runtime, and let script code
// resolve modules:
//
//	mgr, err := host.New(host.Config{
//	    Delegate:      delegate,
//	    Registry:      registry,
//	    ScriptInvoker: scriptInvoker,
//	    NativeInvoker: nativeInvoker,
//	    Retention:     retain.StrategyScoped,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer mgr.Close()
//
//	if err := mgr.Install(runtimeExecutor); err != nil {
//	    log.Fatal(err)
//	}
//
// # Resolution
//
// Each lookup consults the cache first; on a miss the tiers are tried in
// fixed order (fast path, legacy shim, managed runtime) and the first
// result is cached for the life of the manager. A name no tier provides
// is reported as absent, never as an error, and is not cached.
//
// # Lifetime Safety
//
// The installed provider captures every dependency through the lifetime
// package's guarded references. A lookup racing with manager teardown
// either completes against still-live state or aborts cleanly as "not
// found"; it never partially completes and never blocks teardown.
//
// # Thread Safety
//
// The provider function assumes the scripting runtime serializes calls
// into native bindings: at most one resolution runs at a time. Manager
// construction, Install, and Close are host-side operations and may run
// on a different goroutine than resolution.
package modulehost
