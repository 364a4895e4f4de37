package host

import (
	"sync/atomic"

	modulehost "github.com/wippyai/module-host"
	"github.com/wippyai/module-host/errors"
	"github.com/wippyai/module-host/lifetime"
	"github.com/wippyai/module-host/perf"
	"github.com/wippyai/module-host/retain"
)

// Config carries the collaborators a Manager composes. Delegate and
// Registry are required. ScriptInvoker may be nil when no runtime is
// attached (Install refuses to bind in that case).
type Config struct {
	// Delegate owns the fast-path and managed-tier module construction.
	Delegate modulehost.Delegate

	// Registry is the owning application's legacy and managed lookups.
	Registry modulehost.Registry

	// ScriptInvoker dispatches onto the script execution context.
	ScriptInvoker modulehost.Invoker

	// NativeInvoker dispatches onto the native execution context.
	NativeInvoker modulehost.Invoker

	// Retention selects the callback retention scope. Defaults to
	// retain.StrategyNone.
	Retention retain.Strategy

	// Tracer observes resolution events. Defaults to perf.Nop.
	Tracer perf.Tracer
}

// Manager owns a module cache, the tiered resolver, and the retention
// collection for one scripting runtime embedding.
type Manager struct {
	cache    *lifetime.Owner[*ModuleCache]
	delegate *lifetime.Owner[modulehost.Delegate]
	registry *lifetime.Owner[modulehost.Registry]
	script   *lifetime.Owner[modulehost.Invoker]
	native   *lifetime.Owner[modulehost.Invoker]

	retention retain.Strategy
	scoped    *retain.Collection
	retainFn  retain.Factory

	tracer    perf.Tracer
	hasScript bool
	installed atomic.Bool
	closed    atomic.Bool
}

// New validates cfg and constructs a Manager. The retention strategy is
// fixed for the manager's lifetime.
func New(cfg Config) (*Manager, error) {
	if cfg.Delegate == nil {
		return nil, errors.InvalidInput(errors.PhaseConfig, "delegate cannot be nil")
	}
	if cfg.Registry == nil {
		return nil, errors.InvalidInput(errors.PhaseConfig, "registry cannot be nil")
	}
	if cfg.ScriptInvoker != nil && cfg.NativeInvoker == nil {
		return nil, errors.InvalidInput(errors.PhaseConfig, "native invoker cannot be nil when a script invoker is set")
	}

	m := &Manager{
		cache:     lifetime.Own(NewModuleCache()),
		delegate:  lifetime.Own(cfg.Delegate),
		registry:  lifetime.Own(cfg.Registry),
		script:    lifetime.Own(cfg.ScriptInvoker),
		native:    lifetime.Own(cfg.NativeInvoker),
		retention: cfg.Retention,
		tracer:    cfg.Tracer,
		hasScript: cfg.ScriptInvoker != nil,
	}
	if m.tracer == nil {
		m.tracer = perf.Nop{}
	}

	switch cfg.Retention {
	case retain.StrategyNone:
		// Long-lived callback usage is unsupported.
	case retain.StrategyGlobal:
		m.retainFn = retain.Global().Factory()
	case retain.StrategyScoped:
		m.scoped = retain.NewCollection()
		m.retainFn = m.scoped.Factory()
	default:
		return nil, errors.InvalidInput(errors.PhaseConfig, "unknown retention strategy")
	}

	return m, nil
}

// Install registers the manager's module provider into the scripting
// runtime's binding surface. The executor runs the install callback
// with exclusive access to scripting state; it is invoked exactly once,
// and repeated Install calls are rejected.
func (m *Manager) Install(exec modulehost.Executor) error {
	if exec == nil {
		return errors.InvalidInput(errors.PhaseInstall, "executor cannot be nil")
	}
	if !m.hasScript {
		// No script invoker means no runtime is attached (e.g. the
		// embedding is running under an external debugger).
		return errors.Unavailable(errors.PhaseInstall, "script invoker")
	}
	if !m.installed.CompareAndSwap(false, true) {
		return errors.AlreadyInstalled()
	}

	provider := m.provider()
	exec(func(b modulehost.Binder) {
		b.BindModuleProvider(provider)
	})
	return nil
}

// Close tears the manager down. In-flight lookups either complete
// against still-live state or abort as "not found"; new lookups abort.
// Under the scoped retention strategy every callback retained through
// this manager is released; the global collection is untouched.
func (m *Manager) Close() {
	if !m.closed.CompareAndSwap(false, true) {
		return
	}

	m.delegate.Destroy()
	m.registry.Destroy()
	m.script.Destroy()
	m.native.Destroy()
	m.cache.Destroy()

	if m.scoped != nil {
		m.scoped.Close()
	}
}

// Cache returns the manager's module cache for diagnostics. Read it
// only from the resolution context or after Install-side quiescence.
func (m *Manager) Cache() *ModuleCache {
	cache, _ := m.cache.Ref().Get()
	return cache
}

// Retention returns the retention strategy fixed at construction.
func (m *Manager) Retention() retain.Strategy {
	return m.retention
}

// RetainedCount returns the number of callbacks retained under the
// scoped strategy, or zero for other strategies.
func (m *Manager) RetainedCount() int {
	if m.scoped == nil {
		return 0
	}
	return m.scoped.Len()
}
