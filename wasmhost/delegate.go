package wasmhost

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	modulehost "github.com/wippyai/module-host"
	"github.com/wippyai/module-host/errors"
	"github.com/wippyai/module-host/host"
)

// Delegate serves the fast-path tier from compiled WebAssembly modules
// and falls back to reflection-based construction for the managed tier.
type Delegate struct {
	runtime   wazero.Runtime
	instances map[string]api.Module
	mu        sync.RWMutex
}

// New creates a Delegate with a fresh wazero runtime.
func New(ctx context.Context) *Delegate {
	return &Delegate{
		runtime:   wazero.NewRuntime(ctx),
		instances: make(map[string]api.Module),
	}
}

// Register compiles and instantiates binary under name. Each name is
// registered at most once; the instance lives until Close.
func (d *Delegate) Register(ctx context.Context, name string, binary []byte) error {
	if name == "" {
		return errors.InvalidInput(errors.PhaseHost, "module name cannot be empty")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.instances[name]; ok {
		return errors.New(errors.PhaseHost, errors.KindRegistration).
			Module(name).
			Detail("module already registered").
			Build()
	}

	compiled, err := d.runtime.CompileModule(ctx, binary)
	if err != nil {
		return errors.Registration(errors.PhaseHost, name, err)
	}

	instance, err := d.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		return errors.Instantiation(name, err)
	}

	d.instances[name] = instance
	return nil
}

// Names returns the registered fast-path module names.
func (d *Delegate) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.instances))
	for name := range d.instances {
		names = append(names, name)
	}
	return names
}

// FastPathModule implements modulehost.Delegate.
func (d *Delegate) FastPathModule(name string, script modulehost.Invoker) (modulehost.Module, bool) {
	d.mu.RLock()
	instance, ok := d.instances[name]
	d.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return &wasmModule{name: name, instance: instance, script: script}, true
}

// ManagedModule implements modulehost.Delegate.
func (d *Delegate) ManagedModule(name string, params modulehost.InitParams) modulehost.Module {
	return host.NewManagedModule(params)
}

// Close releases the wazero runtime and every registered instance.
func (d *Delegate) Close(ctx context.Context) error {
	return d.runtime.Close(ctx)
}
