package retain

import (
	"sync"

	"github.com/wippyai/module-host/errors"
)

type entry struct {
	cb    Callback
	sched Scheduler
}

// Collection owns a set of retained callbacks. Handles stay invocable
// for as long as their entry is present; Clear and Close drop every
// entry at once.
type Collection struct {
	entries map[uint64]entry
	nextID  uint64
	closed  bool
	mu      sync.Mutex
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{
		entries: make(map[uint64]entry),
	}
}

// Retain registers a callback and returns its handle. Returns nil once
// the collection is closed.
func (c *Collection) Retain(cb Callback, s Scheduler) *Handle {
	if cb == nil || s == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.nextID++
	id := c.nextID
	c.entries[id] = entry{cb: cb, sched: s}

	return &Handle{id: id, coll: c}
}

// Factory returns a Factory bound to this collection.
func (c *Collection) Factory() Factory {
	return func(cb Callback, s Scheduler) *Handle {
		return c.Retain(cb, s)
	}
}

// Len returns the number of live retained callbacks.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear releases every retained callback. Outstanding handles become
// inert. The collection stays usable for new retains.
func (c *Collection) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]entry)
}

// Close releases every retained callback and refuses further retains.
func (c *Collection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]entry)
	c.closed = true
}

func (c *Collection) lookup(id uint64) (entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	return e, ok
}

func (c *Collection) drop(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// Handle is a retained callback reference. It is valid until released
// individually or dropped by its collection.
type Handle struct {
	id   uint64
	coll *Collection
}

// Invoke schedules the callback with args on its scheduler. Returns a
// released error if the callback is no longer retained.
func (h *Handle) Invoke(args ...any) error {
	if h == nil {
		return errors.Released("callback was never retained")
	}

	e, ok := h.coll.lookup(h.id)
	if !ok {
		return errors.Released("callback has been released")
	}

	e.sched.InvokeAsync(func() {
		e.cb(args)
	})
	return nil
}

// Release drops the callback from its collection. Idempotent.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.coll.drop(h.id)
}

// Live reports whether the callback is still retained.
func (h *Handle) Live() bool {
	if h == nil {
		return false
	}
	_, ok := h.coll.lookup(h.id)
	return ok
}

var (
	global     *Collection
	globalOnce sync.Once
)

// Global returns the process-wide collection. Callbacks retained here
// outlive any single manager; the embedding decides when to clear it.
func Global() *Collection {
	globalOnce.Do(func() {
		global = NewCollection()
	})
	return global
}
