package alloc

// Allocator defines the interface for acquiring and returning raw block
// storage.
//
// Implementations:
//   - Heap: Go-heap backed, garbage collected (the default)
//   - Arena: bump-pointer allocation over fixed slabs
//   - Counting: accounting and fault-injection wrapper
//
// This interface enables different storage strategies while keeping the
// acquire/return protocol identical: storage obtained from Allocate must be
// returned to Deallocate exactly once, with the same size.
type Allocator interface {
	// Allocate acquires n bytes of storage.
	// Returns ErrBadSize for non-positive n; other errors indicate the
	// strategy ran out of space.
	Allocate(n int) ([]byte, error)

	// Deallocate returns storage previously acquired with Allocate(n).
	// Strategies that rely on the garbage collector may treat this as a
	// no-op, but callers must still pair every Allocate with exactly one
	// Deallocate.
	Deallocate(buf []byte, n int)
}

// Default is the allocator used when callers pass nil. It is the Go heap.
var Default Allocator = Heap{}
