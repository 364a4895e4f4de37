package host

import (
	"context"
	"testing"

	modulehost "github.com/wippyai/module-host"
)

// fakeInvoker runs dispatched work inline and counts calls.
type fakeInvoker struct {
	asyncCalls int
	syncCalls  int
}

func (i *fakeInvoker) InvokeAsync(fn func()) {
	i.asyncCalls++
	fn()
}

func (i *fakeInvoker) InvokeSync(fn func()) {
	i.syncCalls++
	fn()
}

// fakeModule is an inert module carrying only its name.
type fakeModule struct {
	name string
}

func (m *fakeModule) Name() string { return m.name }

func (m *fakeModule) Invoke(_ context.Context, method string, _ ...any) (any, error) {
	return m.name + "." + method, nil
}

// fakeLegacy records calls made through the legacy surface.
type fakeLegacy struct {
	consts    map[string]any
	lastCall  string
	callCount int
}

func (l *fakeLegacy) Call(method string, args []any) (any, error) {
	l.callCount++
	l.lastCall = method
	return "legacy:" + method, nil
}

func (l *fakeLegacy) Constants() map[string]any { return l.consts }

// fakeDelegate serves fast-path modules from a fixed map and counts
// every tier consult.
type fakeDelegate struct {
	fast         map[string]modulehost.Module
	fastCalls    int
	managedCalls int
}

func (d *fakeDelegate) FastPathModule(name string, _ modulehost.Invoker) (modulehost.Module, bool) {
	d.fastCalls++
	mod, ok := d.fast[name]
	return mod, ok
}

func (d *fakeDelegate) ManagedModule(name string, params modulehost.InitParams) modulehost.Module {
	d.managedCalls++
	return NewManagedModule(params)
}

// fakeRegistry backs the legacy and managed tiers with fixed maps.
type fakeRegistry struct {
	legacy       map[string]modulehost.LegacyModule
	managed      map[string]any
	legacyCalls  int
	managedCalls int
}

func (r *fakeRegistry) LegacyModule(name string) (modulehost.LegacyModule, bool) {
	r.legacyCalls++
	mod, ok := r.legacy[name]
	return mod, ok
}

func (r *fakeRegistry) ManagedInstance(name string) (any, bool) {
	r.managedCalls++
	inst, ok := r.managed[name]
	return inst, ok
}

// fakeBinder captures the provider registered during install.
type fakeBinder struct {
	provider modulehost.ProviderFunc
	binds    int
}

func (b *fakeBinder) BindModuleProvider(p modulehost.ProviderFunc) {
	b.binds++
	b.provider = p
}

// inlineExecutor runs the install callback immediately, standing in for
// the runtime execution context.
func inlineExecutor(b *fakeBinder) modulehost.Executor {
	return func(install func(modulehost.Binder)) {
		install(b)
	}
}

// installedProvider builds a manager from cfg and returns it with its
// installed provider.
func installedProvider(t *testing.T, cfg Config) (*Manager, modulehost.ProviderFunc) {
	t.Helper()

	mgr, err := New(cfg)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	binder := &fakeBinder{}
	if err := mgr.Install(inlineExecutor(binder)); err != nil {
		t.Fatalf("Install error: %v", err)
	}
	if binder.binds != 1 {
		t.Fatalf("provider bound %d times, want 1", binder.binds)
	}
	return mgr, binder.provider
}
