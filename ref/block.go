package ref

import (
	"unsafe"

	"github.com/joshuapare/refkit/ref/alloc"
)

// Finalizer is the destruction policy for a managed object. It is invoked
// exactly once, with the original object pointer, when the last strong owner
// releases. A nil Finalizer means default teardown: drop the reference (for
// adopted objects) or zero the object in place (for combined blocks) and let
// the garbage collector reclaim.
type Finalizer[T any] func(*T)

// control is the bookkeeping record shared by every owner and observer of
// one managed object. Counts are plain ints; see the package comment for the
// synchronization requirement.
type control struct {
	strong int
	weak   int
	slot   slot
}

// slot is the variant contract of a control block: where the object's
// storage lives, how the object is destroyed, and how the block's own
// storage is returned.
type slot interface {
	// destroy runs the destruction policy. Called exactly once, the moment
	// the strong count reaches zero.
	destroy()

	// pointer returns type-erased access to the managed object. Valid only
	// while the object is alive.
	pointer() unsafe.Pointer

	// release returns the block's storage to its allocator. Called exactly
	// once, after destroy, once no observer can still reach the block.
	release()
}

var controlSize = int(unsafe.Sizeof(control{}))

func (c *control) retainStrong() {
	if c.strong < 0 {
		panic("ref: negative strong count")
	}
	c.strong++
}

func (c *control) retainWeak() {
	if c.weak < 0 {
		panic("ref: negative weak count")
	}
	c.weak++
}

// releaseStrong removes one strong vote and drives the destruction protocol:
// at zero the object is destroyed, and the block is freed too unless weak
// observers still need its metadata.
func (c *control) releaseStrong() {
	if c.strong <= 0 {
		panic("ref: strong count underflow")
	}
	c.strong--
	if c.strong > 0 {
		return
	}
	c.slot.destroy()
	if c.weak == 0 {
		c.slot.release()
	}
}

// releaseWeak removes one weak vote. The block is freed when the last
// observer of an already-destroyed object lets go; while strong owners
// remain the block stays with them.
func (c *control) releaseWeak() {
	if c.weak <= 0 {
		panic("ref: weak count underflow")
	}
	c.weak--
	if c.weak == 0 && c.strong == 0 {
		c.slot.release()
	}
}

// splitSlot is the separate-allocation variant: the object was allocated
// independently and the block only points at it. destroy applies the
// caller's policy to the object; release returns just the block footprint.
type splitSlot[T any] struct {
	ptr   *T
	fin   Finalizer[T]
	mem   alloc.Allocator
	store []byte
	size  int
}

func newSplitControl[T any](ptr *T, fin Finalizer[T], mem alloc.Allocator) (*control, error) {
	if mem == nil {
		mem = alloc.Default
	}
	var probe splitSlot[T]
	size := int(unsafe.Sizeof(probe)) + controlSize

	store, err := mem.Allocate(size)
	if err != nil {
		return nil, err
	}
	s := &splitSlot[T]{ptr: ptr, fin: fin, mem: mem, store: store, size: size}
	return &control{strong: 1, slot: s}, nil
}

func (s *splitSlot[T]) destroy() {
	if s.fin != nil {
		s.fin(s.ptr)
	}
	s.ptr = nil
	s.fin = nil
}

func (s *splitSlot[T]) pointer() unsafe.Pointer {
	return unsafe.Pointer(s.ptr)
}

func (s *splitSlot[T]) release() {
	s.mem.Deallocate(s.store, s.size)
	s.store = nil
	s.mem = nil
}

// inlineSlot is the combined-allocation variant: the object lives inside the
// block, one allocation for object plus metadata. destroy tears the object
// down in place without touching storage; release returns the single
// combined footprint.
type inlineSlot[T any] struct {
	obj   T
	fin   Finalizer[T]
	mem   alloc.Allocator
	store []byte
	size  int
}

func newInlineControl[T any](v T, fin Finalizer[T], mem alloc.Allocator) (*control, *T, error) {
	if mem == nil {
		mem = alloc.Default
	}
	var probe inlineSlot[T]
	size := int(unsafe.Sizeof(probe)) + controlSize

	store, err := mem.Allocate(size)
	if err != nil {
		return nil, nil, err
	}
	s := &inlineSlot[T]{obj: v, fin: fin, mem: mem, store: store, size: size}
	return &control{strong: 1, slot: s}, &s.obj, nil
}

func (s *inlineSlot[T]) destroy() {
	if s.fin != nil {
		s.fin(&s.obj)
	}
	var zero T
	s.obj = zero
	s.fin = nil
}

func (s *inlineSlot[T]) pointer() unsafe.Pointer {
	return unsafe.Pointer(&s.obj)
}

func (s *inlineSlot[T]) release() {
	s.mem.Deallocate(s.store, s.size)
	s.store = nil
	s.mem = nil
}
