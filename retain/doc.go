// Package retain keeps long-lived script callbacks alive for later
// native-side invocation.
//
// When a managed-tier module captures a callback from script code (to
// fire it later, asynchronously), something must own the callback's
// backing resources past the call that created it. A Collection is that
// owner:
//
//	coll := retain.NewCollection()
//	handle := coll.Retain(cb, scriptInvoker)
//
//	// later, from native code:
//	handle.Invoke("payload")
//
//	// teardown:
//	coll.Clear() // every outstanding handle goes inert
//
// # Scopes
//
// Two owning scopes exist. The process-wide collection, retain.Global(),
// survives manager teardown; reclaiming it is the embedding's job. A
// per-manager collection is cleared when its manager closes, releasing
// everything retained through it en masse. The Strategy enum selects
// between them (or disables retention) once at manager construction.
//
// # Invocation
//
// Handles never run callbacks inline: Invoke schedules the callback on
// the Scheduler it was retained with, so callbacks always execute on
// the script execution context. Invoking a handle after its collection
// dropped it returns a released error and schedules nothing.
package retain
