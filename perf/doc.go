// Package perf instruments module resolution.
//
// The host brackets every lookup with Tracer events: Begin fires before
// the cache consult, CacheHit inside the hit branch, and ResolveStart /
// ResolveEnd around the provider walk on a miss. CacheHit is mutually
// exclusive with the resolve pair.
//
// Tracers are purely observational. They must never block, panic, or
// alter the resolved instance; the host behaves identically under the
// Nop tracer.
//
// Three implementations ship with the package: Nop discards events,
// Counts aggregates per-name counters (used by tests and the inspector
// CLI), and Log emits debug events through the package's zap logger.
// Multi fans out to several tracers at once.
package perf
