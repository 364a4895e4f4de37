// Package wasmhost backs the fast-path module tier with WebAssembly.
//
// A Delegate owns one wazero runtime. Binaries registered by name are
// compiled and instantiated once; when the host resolves that name, the
// fast-path tier answers with a module whose methods are the instance's
// exported functions:
//
//	delegate := wasmhost.New(ctx)
//	defer delegate.Close(ctx)
//
//	if err := delegate.Register(ctx, "Math", mathWASM); err != nil {
//	    log.Fatal(err)
//	}
//
//	mgr, err := host.New(host.Config{
//	    Delegate: delegate,
//	    ...
//	})
//
// Names the runtime has no binary for fall through to the legacy and
// managed tiers, so wasm-backed and Go-backed modules coexist under one
// name space.
//
// Arguments and results cross the boundary as core wasm values (i32,
// i64, f32, f64). Rich types are out of scope here: fast-path modules
// are the performance tier, not the convenience tier.
//
// The managed tier is served by reflection over the registered Go
// instance, identical to host.NewManagedModule.
package wasmhost
