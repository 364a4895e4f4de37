// Package lifetime provides guarded references for objects whose
// destruction is controlled by a different execution context than the
// one using them.
//
// A closure installed into a long-lived runtime must not strong-capture
// its dependencies: that would let an in-flight call extend, or race
// against, the owner's teardown. Instead the owner wraps each dependency
// in an Owner and hands out Refs:
//
//	owner := lifetime.Own(delegate)
//	ref := owner.Ref()
//
//	// at every use site:
//	d, ok := ref.Get()
//	if !ok {
//	    return // owner tore the delegate down; abort
//	}
//
// Go's garbage collector keeps the underlying memory valid for as long
// as any Ref exists, so a successful upgrade yields a usable value even
// if Destroy lands immediately after. Destroy only flips liveness; it
// never blocks on readers.
package lifetime
