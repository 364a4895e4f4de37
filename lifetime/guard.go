package lifetime

import "sync/atomic"

// Owner is the strong side of a guarded reference. The object's owner
// holds the Owner; everything that must not extend the object's life
// holds Refs derived from it.
type Owner[T any] struct {
	value T
	dead  atomic.Bool
}

// Own wraps value in a new Owner.
func Own[T any](value T) *Owner[T] {
	return &Owner[T]{value: value}
}

// Ref returns a non-owning reference to the owned value.
func (o *Owner[T]) Ref() Ref[T] {
	return Ref[T]{owner: o}
}

// Destroy marks the owned value as gone. All Refs fail to upgrade from
// this point on. Destroy is idempotent and safe to call concurrently
// with upgrades.
func (o *Owner[T]) Destroy() {
	o.dead.Store(true)
}

// Destroyed reports whether Destroy has been called.
func (o *Owner[T]) Destroyed() bool {
	return o.dead.Load()
}

// Ref is a non-owning reference to a value held by an Owner. The zero
// Ref never upgrades.
type Ref[T any] struct {
	owner *Owner[T]
}

// Get upgrades the reference. It returns the value and true while the
// owner is alive, or the zero value and false once the owner destroyed
// it. Callers must not cache the result across separate uses: upgrade
// at every use site.
func (r Ref[T]) Get() (T, bool) {
	if r.owner == nil || r.owner.dead.Load() {
		var zero T
		return zero, false
	}
	return r.owner.value, true
}
