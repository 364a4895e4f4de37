package host

import (
	"sort"

	modulehost "github.com/wippyai/module-host"
)

// ModuleCache maps module names to resolved instances. Entries are
// written at most once per name and never removed; a module resolved
// once is reused for the life of the manager.
//
// The cache carries no internal locking. The scripting runtime
// serializes calls into native bindings, so at most one resolution -
// and therefore at most one writer - runs at a time.
type ModuleCache struct {
	mods map[string]modulehost.Module
}

// NewModuleCache creates an empty cache.
func NewModuleCache() *ModuleCache {
	return &ModuleCache{
		mods: make(map[string]modulehost.Module),
	}
}

// Find returns the cached module for name.
func (c *ModuleCache) Find(name string) (modulehost.Module, bool) {
	mod, ok := c.mods[name]
	return mod, ok
}

// Insert stores mod under name and returns it. If name is already
// present the existing entry wins and is returned unchanged.
func (c *ModuleCache) Insert(name string, mod modulehost.Module) modulehost.Module {
	if existing, ok := c.mods[name]; ok {
		return existing
	}
	c.mods[name] = mod
	return mod
}

// Len returns the number of cached modules.
func (c *ModuleCache) Len() int {
	return len(c.mods)
}

// Names returns the cached module names in sorted order.
func (c *ModuleCache) Names() []string {
	names := make([]string, 0, len(c.mods))
	for name := range c.mods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
