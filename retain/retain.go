package retain

// Strategy selects how long-lived callbacks handed into native code are
// kept alive. Chosen once at manager construction, immutable afterward.
type Strategy int

const (
	// StrategyNone disables callback retention. Managed-tier modules
	// must not depend on long-lived callbacks under this strategy.
	StrategyNone Strategy = iota

	// StrategyGlobal retains callbacks in the process-wide collection.
	// Their reclamation is driven by the embedding, not by any one
	// manager's lifetime.
	StrategyGlobal

	// StrategyScoped retains callbacks in a per-manager collection that
	// is released en masse when the manager closes.
	StrategyScoped
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyGlobal:
		return "global"
	case StrategyScoped:
		return "scoped"
	default:
		return "unknown"
	}
}

// Callback is a script-side callback captured for later invocation.
type Callback func(args []any)

// Scheduler dispatches work onto the execution context a callback must
// run on. The host's script invoker satisfies this.
type Scheduler interface {
	InvokeAsync(fn func())
}

// Factory retains a callback and returns its handle. Managers build one
// factory per their configured strategy and pass it to managed-tier
// modules through their init params.
type Factory func(cb Callback, s Scheduler) *Handle
