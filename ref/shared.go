package ref

import (
	"github.com/joshuapare/refkit/ref/alloc"
)

// Shared is a reference-counted owning handle. The managed object stays
// alive while at least one Shared holds a vote on its control block.
//
// The zero value is an empty owner. Shared values are cheap to pass around,
// but each copy of the struct is the same vote: use Clone to register a new
// vote and give every cloned or constructed owner to exactly one Release.
type Shared[T any] struct {
	// ptr is this owner's typed view of the object. It may differ from the
	// block's own pointer (see Alias).
	ptr *T
	ctl *control
}

// Adopt takes ownership of an independently allocated object, creating a
// separate-allocation control block. fin is the destruction policy applied
// to ptr when the last owner releases (nil means drop the reference). mem
// supplies the block's storage (nil means alloc.Default).
//
// On allocation failure no block is created and the caller keeps ownership
// of ptr; the finalizer is not invoked.
func Adopt[T any](ptr *T, fin Finalizer[T], mem alloc.Allocator) (Shared[T], error) {
	if ptr == nil {
		return Shared[T]{}, ErrNilPointer
	}
	ctl, err := newSplitControl(ptr, fin, mem)
	if err != nil {
		return Shared[T]{}, err
	}
	return Shared[T]{ptr: ptr, ctl: ctl}, nil
}

// Make constructs a combined block on the default allocator: one allocation
// holding both the object and its bookkeeping. This is the preferred way to
// create an owner.
func Make[T any](v T) Shared[T] {
	s, err := MakeIn(nil, v)
	if err != nil {
		// The default heap strategy does not fail for positive sizes.
		panic(err)
	}
	return s
}

// MakeIn is Make with an explicit allocator for the combined block. A nil
// allocator selects alloc.Default.
func MakeIn[T any](mem alloc.Allocator, v T) (Shared[T], error) {
	return MakeWith(mem, v, nil)
}

// MakeWith is MakeIn with a teardown policy run in place on the embedded
// object before its storage is reclaimed with the block.
func MakeWith[T any](mem alloc.Allocator, v T, fin Finalizer[T]) (Shared[T], error) {
	ctl, ptr, err := newInlineControl(v, fin, mem)
	if err != nil {
		return Shared[T]{}, err
	}
	return Shared[T]{ptr: ptr, ctl: ctl}, nil
}

// Clone registers a new vote and returns a new owner of the same object.
// Cloning an empty owner returns an empty owner without touching any count.
func (s Shared[T]) Clone() Shared[T] {
	if s.ctl != nil {
		s.ctl.retainStrong()
	}
	return s
}

// Move transfers this owner's vote into the returned value, leaving s
// empty. No count changes.
func (s *Shared[T]) Move() Shared[T] {
	out := Shared[T]{ptr: s.ptr, ctl: s.ctl}
	s.ptr, s.ctl = nil, nil
	return out
}

// Release gives up this owner's vote and empties s. When the last strong
// vote goes, the object is destroyed and, if no observers remain, the block
// storage is returned. Releasing an empty owner is a no-op.
func (s *Shared[T]) Release() {
	if s.ctl == nil {
		s.ptr = nil
		return
	}
	ctl := s.ctl
	s.ptr, s.ctl = nil, nil
	ctl.releaseStrong()
}

// Swap exchanges the contents of two owners. No count changes.
func (s *Shared[T]) Swap(other *Shared[T]) {
	*s, *other = *other, *s
}

// Assign replaces what s owns with a new vote on other's object,
// releasing the previous ownership. Implemented as clone-then-swap, so s is
// never left in a partial state.
func (s *Shared[T]) Assign(other Shared[T]) {
	tmp := other.Clone()
	s.Swap(&tmp)
	tmp.Release()
}

// AssignMove replaces what s owns with other's vote, emptying other and
// releasing s's previous ownership.
func (s *Shared[T]) AssignMove(other *Shared[T]) {
	tmp := other.Move()
	s.Swap(&tmp)
	tmp.Release()
}

// Reset releases current ownership, leaving the owner empty.
func (s *Shared[T]) Reset() {
	s.Release()
}

// ResetTo adopts a new object in place of the current one. The previous
// ownership is released only after the new block is fully constructed; on
// allocation failure s is left untouched.
func (s *Shared[T]) ResetTo(ptr *T, fin Finalizer[T], mem alloc.Allocator) error {
	next, err := Adopt(ptr, fin, mem)
	if err != nil {
		return err
	}
	s.Swap(&next)
	next.Release()
	return nil
}

// Get returns this owner's typed pointer, or nil for an empty owner.
// The pointer is valid only while a strong owner keeps the object alive.
func (s Shared[T]) Get() *T {
	return s.ptr
}

// Value dereferences the owner. Precondition: the owner is not empty.
func (s Shared[T]) Value() T {
	return *s.ptr
}

// Empty reports whether the owner holds no block.
func (s Shared[T]) Empty() bool {
	return s.ctl == nil
}

// UseCount returns the current number of strong owners of the block, or 0
// for an empty owner. Informational only.
func (s Shared[T]) UseCount() int {
	if s.ctl == nil {
		return 0
	}
	return s.ctl.strong
}

// WeakCount returns the current number of weak observers of the block, or 0
// for an empty owner. Informational only.
func (s Shared[T]) WeakCount() int {
	if s.ctl == nil {
		return 0
	}
	return s.ctl.weak
}

// Equal reports whether two owners share the same block and view the same
// object pointer.
func (s Shared[T]) Equal(other Shared[T]) bool {
	return s.ptr == other.ptr && s.ctl == other.ctl
}

// Downgrade creates a weak observer of this owner's block.
// Precondition: the owner is not empty.
func (s Shared[T]) Downgrade() Weak[T] {
	if s.ctl == nil {
		panic("ref: downgrade of empty owner")
	}
	s.ctl.retainWeak()
	return Weak[T]{ctl: s.ctl}
}

// Alias returns an owner that shares owner's block but dereferences to ptr,
// typically a field of the managed object or a converted view of it. The
// aliased owner keeps the whole object alive. An empty owner aliases to an
// empty owner.
func Alias[T, U any](owner Shared[U], ptr *T) Shared[T] {
	if owner.ctl == nil {
		return Shared[T]{}
	}
	owner.ctl.retainStrong()
	return Shared[T]{ptr: ptr, ctl: owner.ctl}
}

// AliasMove is Alias transferring owner's existing vote instead of
// registering a new one. owner is left empty and no count changes.
func AliasMove[T, U any](owner *Shared[U], ptr *T) Shared[T] {
	if owner.ctl == nil {
		owner.ptr = nil
		return Shared[T]{}
	}
	out := Shared[T]{ptr: ptr, ctl: owner.ctl}
	owner.ptr, owner.ctl = nil, nil
	return out
}

// FromWeak constructs an owner directly from an observer, without checking
// liveness. Precondition: the observed object is alive. Calling this on an
// expired observer yields an owner bound to a destroyed object, a caller
// error this package does not detect; use Weak.Lock when liveness is not
// guaranteed externally. Panics if w observes nothing.
func FromWeak[T any](w Weak[T]) Shared[T] {
	if w.ctl == nil {
		panic("ref: strong construction from unbound observer")
	}
	w.ctl.retainStrong()
	return Shared[T]{ptr: (*T)(w.ctl.slot.pointer()), ctl: w.ctl}
}
