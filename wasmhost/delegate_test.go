package wasmhost

import (
	"context"
	"errors"
	"testing"

	modulehost "github.com/wippyai/module-host"
	hosterrors "github.com/wippyai/module-host/errors"
	"github.com/wippyai/module-host/host"
)

// Minimal valid WASM binary (magic + version only).
var minimalWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
}

// WASM with add function export
var addWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	// Type section: (i32, i32) -> i32
	0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f,
	// Function section: func 0 uses type 0
	0x03, 0x02, 0x01, 0x00,
	// Export section: "add" -> func 0
	0x07, 0x07, 0x01, 0x03, 0x61, 0x64, 0x64, 0x00, 0x00,
	// Code section: local.get 0 + local.get 1 = i32.add
	0x0a, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b,
}

type inlineInvoker struct{}

func (inlineInvoker) InvokeAsync(fn func()) { fn() }
func (inlineInvoker) InvokeSync(fn func())  { fn() }

func TestDelegate_RegisterAndResolve(t *testing.T) {
	ctx := context.Background()
	d := New(ctx)
	defer d.Close(ctx)

	if err := d.Register(ctx, "Math", addWASM); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	mod, ok := d.FastPathModule("Math", inlineInvoker{})
	if !ok {
		t.Fatal("registered module not served")
	}
	if mod.Name() != "Math" {
		t.Errorf("Name = %q, want Math", mod.Name())
	}

	result, err := mod.Invoke(ctx, "add", int32(2), int32(3))
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if result != uint64(5) {
		t.Errorf("add = %v, want 5", result)
	}
}

func TestDelegate_UnknownNameMisses(t *testing.T) {
	ctx := context.Background()
	d := New(ctx)
	defer d.Close(ctx)

	if _, ok := d.FastPathModule("Ghost", inlineInvoker{}); ok {
		t.Error("unregistered name should miss")
	}
}

func TestDelegate_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	d := New(ctx)
	defer d.Close(ctx)

	if err := d.Register(ctx, "", addWASM); err == nil {
		t.Error("empty name should fail")
	}

	if err := d.Register(ctx, "Bad", []byte{0x00}); err == nil {
		t.Error("invalid binary should fail")
	}

	if err := d.Register(ctx, "Math", addWASM); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	err := d.Register(ctx, "Math", addWASM)
	if err == nil {
		t.Fatal("duplicate name should fail")
	}
	var he *hosterrors.Error
	if !errors.As(err, &he) || he.Kind != hosterrors.KindRegistration {
		t.Errorf("error = %v, want registration kind", err)
	}
}

func TestWasmModule_MethodNotFound(t *testing.T) {
	ctx := context.Background()
	d := New(ctx)
	defer d.Close(ctx)

	if err := d.Register(ctx, "Empty", minimalWASM); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	mod, _ := d.FastPathModule("Empty", inlineInvoker{})
	_, err := mod.Invoke(ctx, "missing")
	if err == nil {
		t.Fatal("missing export should fail")
	}
	var he *hosterrors.Error
	if !errors.As(err, &he) || he.Kind != hosterrors.KindNotFound {
		t.Errorf("error = %v, want not_found", err)
	}
}

func TestWasmModule_BadArgType(t *testing.T) {
	ctx := context.Background()
	d := New(ctx)
	defer d.Close(ctx)

	if err := d.Register(ctx, "Math", addWASM); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	mod, _ := d.FastPathModule("Math", inlineInvoker{})
	_, err := mod.Invoke(ctx, "add", "two", "three")
	if err == nil {
		t.Fatal("string args should fail")
	}
	var he *hosterrors.Error
	if !errors.As(err, &he) || he.Kind != hosterrors.KindTypeMismatch {
		t.Errorf("error = %v, want type_mismatch", err)
	}
}

type registryStub struct{}

func (registryStub) LegacyModule(string) (modulehost.LegacyModule, bool) { return nil, false }
func (registryStub) ManagedInstance(string) (any, bool)                  { return nil, false }

func TestDelegate_ThroughManager(t *testing.T) {
	ctx := context.Background()
	d := New(ctx)
	defer d.Close(ctx)

	if err := d.Register(ctx, "Math", addWASM); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	mgr, err := host.New(host.Config{
		Delegate:      d,
		Registry:      registryStub{},
		ScriptInvoker: inlineInvoker{},
		NativeInvoker: inlineInvoker{},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer mgr.Close()

	var provider modulehost.ProviderFunc
	exec := modulehost.Executor(func(install func(modulehost.Binder)) {
		install(binderFunc(func(p modulehost.ProviderFunc) { provider = p }))
	})
	if err := mgr.Install(exec); err != nil {
		t.Fatalf("Install error: %v", err)
	}

	mod, ok := provider("Math")
	if !ok {
		t.Fatal("wasm module did not resolve through the manager")
	}

	result, err := mod.Invoke(ctx, "add", int32(20), int32(22))
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if result != uint64(42) {
		t.Errorf("add = %v, want 42", result)
	}

	// Identical instance on second resolution.
	again, _ := provider("Math")
	if again != mod {
		t.Error("second resolution returned a different instance")
	}
}

type binderFunc func(modulehost.ProviderFunc)

func (f binderFunc) BindModuleProvider(p modulehost.ProviderFunc) { f(p) }
