package ref

// Weak is a non-owning observer of a control block. It never keeps the
// object alive, but its vote keeps the block's metadata reachable so that
// liveness can be queried after the object is gone.
//
// The zero value observes nothing. Like Shared, every Clone or construction
// must be paired with exactly one Release.
type Weak[T any] struct {
	ctl *control
}

// AliasWeak creates an observer of owner's block under a different element
// type. Lock on the result casts the block's object pointer to *T, so T must
// describe the object at the same address (for example the first embedded
// field of the managed struct).
func AliasWeak[T, U any](owner Shared[U]) Weak[T] {
	if owner.ctl == nil {
		panic("ref: observe of empty owner")
	}
	owner.ctl.retainWeak()
	return Weak[T]{ctl: owner.ctl}
}

// Clone registers a new weak vote and returns a new observer of the same
// block. Cloning an unbound observer returns an unbound observer.
func (w Weak[T]) Clone() Weak[T] {
	if w.ctl != nil {
		w.ctl.retainWeak()
	}
	return w
}

// Move transfers this observer's vote into the returned value, leaving w
// unbound. No count changes.
func (w *Weak[T]) Move() Weak[T] {
	out := Weak[T]{ctl: w.ctl}
	w.ctl = nil
	return out
}

// Release gives up this observer's vote and unbinds w. If the object was
// already destroyed and this was the last observer, the block storage is
// returned. Releasing an unbound observer is a no-op.
func (w *Weak[T]) Release() {
	if w.ctl == nil {
		return
	}
	ctl := w.ctl
	w.ctl = nil
	ctl.releaseWeak()
}

// Swap exchanges the contents of two observers. No count changes.
func (w *Weak[T]) Swap(other *Weak[T]) {
	*w, *other = *other, *w
}

// Assign replaces what w observes with a new vote on other's block,
// releasing the previous vote. Clone-then-swap, as with Shared.Assign.
func (w *Weak[T]) Assign(other Weak[T]) {
	tmp := other.Clone()
	w.Swap(&tmp)
	tmp.Release()
}

// AssignMove replaces what w observes with other's vote, unbinding other.
func (w *Weak[T]) AssignMove(other *Weak[T]) {
	tmp := other.Move()
	w.Swap(&tmp)
	tmp.Release()
}

// Expired reports whether the observed object is no longer alive. Safe to
// call at any point before this observer's own Release, including after the
// object has been destroyed. An unbound observer is expired.
func (w Weak[T]) Expired() bool {
	return w.ctl == nil || w.ctl.strong == 0
}

// Lock attempts promotion to a strong owner. If the object is alive it
// returns an owner sharing the block, with the strong count incremented by
// one; otherwise it returns an empty owner and no count changes. This is
// the race-free way to reach an object whose liveness is not guaranteed.
func (w Weak[T]) Lock() Shared[T] {
	if w.Expired() {
		return Shared[T]{}
	}
	w.ctl.retainStrong()
	return Shared[T]{ptr: (*T)(w.ctl.slot.pointer()), ctl: w.ctl}
}

// Empty reports whether the observer is bound to a block.
func (w Weak[T]) Empty() bool {
	return w.ctl == nil
}

// UseCount returns the number of strong owners of the observed block, or 0
// when unbound. Informational only.
func (w Weak[T]) UseCount() int {
	if w.ctl == nil {
		return 0
	}
	return w.ctl.strong
}

// WeakCount returns the number of weak observers of the block, or 0 when
// unbound. Informational only.
func (w Weak[T]) WeakCount() int {
	if w.ctl == nil {
		return 0
	}
	return w.ctl.weak
}
