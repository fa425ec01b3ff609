// Package testutil provides shared fixtures for lifecycle and storage
// accounting tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/refkit/ref/alloc"
)

// Probe records teardown invocations so tests can assert a destruction
// policy ran exactly once, with the expected pointer.
type Probe[T any] struct {
	Calls int
	Last  *T
}

// Finalizer returns a destruction policy that records each invocation.
func (p *Probe[T]) Finalizer() func(*T) {
	return func(v *T) {
		p.Calls++
		p.Last = v
	}
}

// NewCountingAlloc returns a counting allocator over the default heap
// strategy.
func NewCountingAlloc(tb testing.TB) *alloc.Counting {
	tb.Helper()
	return alloc.NewCounting(nil)
}

// RequireBalanced asserts that every allocation was returned: frees match
// allocs and no bytes remain outstanding.
func RequireBalanced(tb testing.TB, c *alloc.Counting) {
	tb.Helper()
	st := c.Stats()
	require.Equal(tb, st.Allocs, st.Frees, "every Allocate should be matched by one Deallocate")
	require.Zero(tb, c.Live(), "no allocations should remain outstanding")
	require.Zero(tb, st.LiveBytes, "no bytes should remain outstanding")
}

// LogAlloc wraps an allocator and appends an event string on every call, so
// tests can assert ordering between object destruction and block release.
type LogAlloc struct {
	Events *[]string
	Inner  alloc.Allocator
}

// NewLogAlloc creates a LogAlloc over the default heap strategy, recording
// into events.
func NewLogAlloc(events *[]string) *LogAlloc {
	return &LogAlloc{Events: events, Inner: alloc.Default}
}

func (l *LogAlloc) Allocate(n int) ([]byte, error) {
	*l.Events = append(*l.Events, "allocate")
	return l.Inner.Allocate(n)
}

func (l *LogAlloc) Deallocate(buf []byte, n int) {
	*l.Events = append(*l.Events, "free")
	l.Inner.Deallocate(buf, n)
}
