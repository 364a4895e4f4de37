package perf

// Tracer receives resolution lifecycle events. Implementations must not
// block, panic, or influence resolution in any way; the host calls them
// purely for observation.
//
// For a single lookup the event order is Begin, then either CacheHit or
// ResolveStart..ResolveEnd. A lookup aborted by a dead dependency emits
// no events at all.
type Tracer interface {
	// Begin marks the start of a lookup for name.
	Begin(name string)

	// CacheHit marks a lookup satisfied from the module cache.
	CacheHit(name string)

	// ResolveStart marks the start of the provider walk on a cache miss.
	ResolveStart(name string)

	// ResolveEnd marks the end of the provider walk.
	ResolveEnd(name string)
}

// Nop is a Tracer that discards every event.
type Nop struct{}

func (Nop) Begin(string)        {}
func (Nop) CacheHit(string)     {}
func (Nop) ResolveStart(string) {}
func (Nop) ResolveEnd(string)   {}

// Counts aggregates event counts per module name. Not safe for
// concurrent use; the host serializes resolution, which is the only
// writer.
type Counts struct {
	Begins        map[string]int
	CacheHits     map[string]int
	ResolveStarts map[string]int
	ResolveEnds   map[string]int
}

// NewCounts creates an empty counting tracer.
func NewCounts() *Counts {
	return &Counts{
		Begins:        make(map[string]int),
		CacheHits:     make(map[string]int),
		ResolveStarts: make(map[string]int),
		ResolveEnds:   make(map[string]int),
	}
}

func (c *Counts) Begin(name string)        { c.Begins[name]++ }
func (c *Counts) CacheHit(name string)     { c.CacheHits[name]++ }
func (c *Counts) ResolveStart(name string) { c.ResolveStarts[name]++ }
func (c *Counts) ResolveEnd(name string)   { c.ResolveEnds[name]++ }

// TotalHits sums cache hits across all module names.
func (c *Counts) TotalHits() int {
	total := 0
	for _, n := range c.CacheHits {
		total += n
	}
	return total
}

// TotalResolves sums provider walks across all module names.
func (c *Counts) TotalResolves() int {
	total := 0
	for _, n := range c.ResolveStarts {
		total += n
	}
	return total
}

// Multi fans events out to several tracers in order.
type Multi []Tracer

func (m Multi) Begin(name string) {
	for _, t := range m {
		t.Begin(name)
	}
}

func (m Multi) CacheHit(name string) {
	for _, t := range m {
		t.CacheHit(name)
	}
}

func (m Multi) ResolveStart(name string) {
	for _, t := range m {
		t.ResolveStart(name)
	}
}

func (m Multi) ResolveEnd(name string) {
	for _, t := range m {
		t.ResolveEnd(name)
	}
}
