package alloc

// Counter is a bare monotonic counter for callers that only need an
// incrementing tag. There is no reclamation and no capacity.
type Counter struct {
	current uint32
}

// Next issues the next id. The first call returns 1.
func (c *Counter) Next() uint32 {
	c.current++
	return c.current
}

// Last returns the most recently issued id, or 0 before the first Next.
func (c *Counter) Last() uint32 {
	return c.current
}

var global *Counter

// Global returns the process-wide Counter, created on first use and
// reset only by process restart. It follows the package's
// single-threaded contract: guard it yourself if goroutines share it.
func Global() *Counter {
	if global == nil {
		global = &Counter{}
	}
	return global
}
