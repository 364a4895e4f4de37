package host

import (
	modulehost "github.com/wippyai/module-host"
)

// provider builds the resolution closure installed into the scripting
// runtime. The closure captures every dependency as a guarded reference
// so that a lookup racing with manager teardown aborts cleanly instead
// of touching partially-destroyed state.
func (m *Manager) provider() modulehost.ProviderFunc {
	cacheRef := m.cache.Ref()
	delegateRef := m.delegate.Ref()
	registryRef := m.registry.Ref()
	scriptRef := m.script.Ref()
	nativeRef := m.native.Ref()
	tracer := m.tracer
	retainFn := m.retainFn

	return func(name string) (modulehost.Module, bool) {
		cache, okCache := cacheRef.Get()
		script, okScript := scriptRef.Get()
		native, okNative := nativeRef.Get()
		delegate, okDelegate := delegateRef.Get()
		registry, okRegistry := registryRef.Get()

		// All or nothing: a live cache paired with a dead delegate must
		// never be used to fabricate a module.
		if !okCache || !okScript || !okNative || !okDelegate || !okRegistry {
			return nil, false
		}

		tracer.Begin(name)

		if mod, ok := cache.Find(name); ok {
			tracer.CacheHit(name)
			return mod, true
		}

		tracer.ResolveStart(name)

		if mod, ok := delegate.FastPathModule(name, script); ok && mod != nil {
			mod = cache.Insert(name, mod)
			tracer.ResolveEnd(name)
			return mod, true
		}

		if legacy, ok := registry.LegacyModule(name); ok && legacy != nil {
			mod := cache.Insert(name, newLegacyAdapter(name, legacy, script))
			tracer.ResolveEnd(name)
			return mod, true
		}

		if instance, ok := registry.ManagedInstance(name); ok && instance != nil {
			mod := delegate.ManagedModule(name, modulehost.InitParams{
				Name:          name,
				Instance:      instance,
				ScriptInvoker: script,
				NativeInvoker: native,
				Retain:        retainFn,
			})
			if mod != nil {
				mod = cache.Insert(name, mod)
				tracer.ResolveEnd(name)
				return mod, true
			}
		}

		// Misses are not cached: a later registration may still serve
		// this name, and failed lookups are expected to be rare.
		tracer.ResolveEnd(name)
		return nil, false
	}
}
