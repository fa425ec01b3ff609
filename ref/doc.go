// Package ref provides reference-counted shared ownership of heap objects,
// with weak observers that can detect liveness and promote themselves back
// into owners.
//
// # Overview
//
// Three pieces cooperate:
//
//   - A control block tracks how many strong owners and weak observers
//     reference one managed object, and knows how to destroy the object and
//     return the block's own storage.
//   - Shared[T] is the strong owner. The object stays alive while at least
//     one strong owner holds a vote.
//   - Weak[T] is the non-owning observer. It can ask whether the object is
//     still alive (Expired) and attempt promotion to an owner (Lock).
//
// Go has no destructors, so ownership votes are paired explicitly: every
// constructor and Clone registers exactly one vote, and every owner must be
// given to exactly one Release. Helpers like Assign and Reset follow the
// same discipline internally.
//
//	s := ref.Make(42)          // strong count 1
//	c := s.Clone()             // strong count 2
//	w := s.Downgrade()         // weak count 1
//	s.Release()                // strong count 1, object alive
//	c.Release()                // object torn down; block held for w
//	fmt.Println(w.Expired())   // true
//	w.Release()                // block storage returned
//
// # Ownership protocol
//
// A block moves through three states. While any strong owner exists the
// object is alive and reachable. When the last strong owner releases, the
// destruction policy runs exactly once; if no weak observer remains the
// block's storage is returned immediately, otherwise the block metadata
// survives so observers can still query liveness. When the last observer of
// a destroyed object releases, the storage is returned. Storage is returned
// exactly once per block, always after destruction.
//
// # Allocation strategies
//
// Two block layouts exist. Adopt wraps an independently allocated object:
// the block holds a pointer, the caller's destruction policy, and its own
// separately acquired storage. Make and MakeIn embed the object inside the
// block, one combined allocation for object plus metadata; this is the
// preferred default, at the cost of tying the object's storage lifetime to
// the block's.
//
// # Storage model
//
// Block storage is acquired through the alloc.Allocator capability and
// retained by the block until it is freed. Control blocks themselves are
// native Go values so the garbage collector always sees the managed
// object's pointers; destruction drops those references (and runs the
// caller's Finalizer, if any), and the allocator's Deallocate receives the
// block footprint back exactly once. With the default Heap strategy this
// delegates reclamation to the collector; with an Arena it bounds and
// recycles real storage.
//
// # Caller contract
//
// Dereferencing an empty or expired owner, releasing the same owner twice
// through separate copies of the value, and strong construction from an
// expired observer (FromWeak) are caller errors. They are documented
// preconditions, not runtime-signaled conditions; use Expired and Lock when
// liveness is not externally guaranteed. Count-discipline violations that
// can only arise from a bug in this package panic.
//
// # Thread Safety
//
// Not thread-safe. Counts are plain integers; callers sharing a block
// across goroutines must synchronize every copy, move, and release
// externally.
//
// # Related Packages
//
//   - github.com/joshuapare/refkit/ref/alloc: block storage strategies
package ref
