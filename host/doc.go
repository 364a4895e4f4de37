// Package host composes the module cache, the tiered resolver, and the
// retention policy into a Manager bound to one scripting runtime.
//
// # Quick Start
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
// Install registers a single provider function into the runtime's
// binding surface; script code resolves modules by name through it.
//
// # Resolution Order
//
// On a cache miss the tiers are consulted in fixed priority order:
//
//	1. Fast path     Delegate.FastPathModule
//	2. Legacy shim   Registry.LegacyModule, wrapped in an adapter
//	3. Managed       Registry.ManagedInstance + Delegate.ManagedModule
//
// The first tier to answer wins and its instance is cached; later tiers
// are never consulted for that name again. A name no tier serves is
// reported absent and not cached, so a later registration can still
// serve it.
//
// Order is part of the contract: during a migration window the same
// name may be implementable by more than one tier, and the fixed order
// is what makes resolution deterministic.
//
// # Teardown
//
// The provider captures its dependencies (cache, invokers, delegate,
// registry) through lifetime guards. Close destroys them all; a lookup
// racing with Close either completes on still-live state or degrades to
// "not found" without partial work. A torn-down runtime is
// indistinguishable from a module that never existed, which is what
// script code should observe.
//
// # Managed Modules
//
// NewManagedModule adapts an arbitrary Go instance to the module
// surface by reflecting over its exported methods, dispatching
// "getValue" to GetValue. Instances implementing Initializable receive
// their InitParams (invokers, retention factory) before first dispatch.
package host
