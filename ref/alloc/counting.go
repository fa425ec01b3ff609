package alloc

// Counting wraps another Allocator and records accounting for every call.
// It is the tool for verifying the acquire/return protocol: after all owners
// of a resource are gone, Live() must be zero and Frees must equal Allocs.
//
// Counting also supports fault injection via FailAfter, used to exercise
// allocation-failure paths.
type Counting struct {
	inner Allocator
	stats Stats

	// failAfter counts down on each Allocate; when it hits zero the call
	// fails with ErrNoSpace. Negative means injection is disabled.
	failAfter int
}

// NewCounting wraps inner with accounting. A nil inner selects Default.
func NewCounting(inner Allocator) *Counting {
	if inner == nil {
		inner = Default
	}
	return &Counting{inner: inner, failAfter: -1}
}

// FailAfter arms fault injection: the next n Allocate calls succeed, then
// every following call fails with ErrNoSpace. FailAfter(0) fails the very
// next call. A negative n disarms injection.
func (c *Counting) FailAfter(n int) {
	c.failAfter = n
}

// Allocate delegates to the wrapped allocator, honoring fault injection.
func (c *Counting) Allocate(n int) ([]byte, error) {
	if c.failAfter == 0 {
		return nil, ErrNoSpace
	}
	if c.failAfter > 0 {
		c.failAfter--
	}
	buf, err := c.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	c.stats.Allocs++
	c.stats.LiveBytes += n
	return buf, nil
}

// Deallocate delegates to the wrapped allocator and records the return.
func (c *Counting) Deallocate(buf []byte, n int) {
	c.stats.Frees++
	c.stats.LiveBytes -= n
	c.inner.Deallocate(buf, n)
}

// Live returns the number of outstanding allocations.
func (c *Counting) Live() int {
	return int(c.stats.Allocs) - int(c.stats.Frees)
}

// Stats returns a snapshot of the accounting.
func (c *Counting) Stats() Stats {
	return c.stats
}
