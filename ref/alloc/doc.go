// Package alloc provides block-storage allocation strategies for reference
// counted ownership.
//
// # Overview
//
// This package implements the storage capability consumed by the ref package:
// every control block acquires its footprint through an Allocator at
// construction time and returns it exactly once when the block is freed.
// The same interface is usable on its own for fixed-size record storage.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface:
//
//   - Allocate(n): Acquire n bytes of storage
//   - Deallocate(buf, n): Return storage previously acquired with Allocate
//
// # Implementations
//
// Heap: Default strategy backed by the Go heap
//
//   - Allocate is a plain make; Deallocate is a no-op (the garbage
//     collector reclaims storage once the last reference drops)
//   - Zero value is ready to use
//
// Arena: Bump-pointer allocator over fixed-size slabs
//
//   - O(1) allocation, 8-byte aligned
//   - Deallocate rewinds only when the freed storage is the most recent
//     allocation; everything else is reclaimed in bulk by Reset
//   - Slabs are anonymously memory-mapped on unix, heap-backed elsewhere
//
// Counting: Accounting wrapper around any Allocator
//
//   - Tracks outstanding allocations and live bytes
//   - Supports fault injection (FailAfter) for allocation-failure tests
//
// # Usage Example
//
//	a, err := alloc.NewArena(64 * 1024)
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	buf, err := a.Allocate(256)
//	if err != nil {
//	    return err
//	}
//	// ... use buf ...
//	a.Deallocate(buf, 256)
//
// # Alignment
//
// Arena rounds every allocation up to 8 bytes. Requested and returned sizes
// must match: Deallocate must be called with the same n that was passed to
// Allocate.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
//
// # Related Packages
//
//   - github.com/joshuapare/refkit/ref: reference-counted owners built on
//     this capability
package alloc
