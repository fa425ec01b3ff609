package alloc

import "fmt"

// DefaultSlabSize is the slab size used when NewArena is given zero.
const DefaultSlabSize = 64 * 1024

// Arena is a bump-pointer allocator over fixed-size slabs. It provides O(1)
// allocation with no per-allocation metadata.
//
// Key characteristics:
//   - O(1) allocation: pure bump pointer within the current slab
//   - 8-byte alignment for all allocations
//   - Deallocate rewinds the bump pointer only when the freed storage is the
//     most recent allocation; other frees are recorded and reclaimed in bulk
//     by Reset
//   - Requests larger than the slab size get a dedicated slab
//
// Slabs are anonymously memory-mapped on unix platforms and heap-backed
// elsewhere (see slab_unix.go / slab_other.go).
type Arena struct {
	slabSize int
	slabs    []slab
	closed   bool
	stats    Stats
}

type slab struct {
	buf   []byte
	off   int
	unmap func()
}

// NewArena creates an arena with the given slab size. A slabSize of 0 selects
// DefaultSlabSize. The first slab is mapped eagerly so that allocation
// failure surfaces at construction time rather than on first use.
func NewArena(slabSize int) (*Arena, error) {
	if slabSize < 0 {
		return nil, ErrBadSize
	}
	if slabSize == 0 {
		slabSize = DefaultSlabSize
	}
	slabSize = align8(slabSize)

	a := &Arena{slabSize: slabSize}
	if err := a.grow(slabSize); err != nil {
		return nil, err
	}
	return a, nil
}

// Allocate acquires n bytes, rounded up to 8-byte alignment, from the
// current slab. A new slab is mapped when the current one cannot fit the
// request; requests larger than the slab size get a dedicated slab.
func (a *Arena) Allocate(n int) ([]byte, error) {
	if a.closed {
		return nil, ErrClosed
	}
	if n <= 0 {
		return nil, ErrBadSize
	}
	need := align8(n)

	s := &a.slabs[len(a.slabs)-1]
	if s.off+need > len(s.buf) {
		if err := a.grow(need); err != nil {
			return nil, err
		}
		s = &a.slabs[len(a.slabs)-1]
	}

	buf := s.buf[s.off : s.off+n : s.off+need]
	s.off += need

	a.stats.Allocs++
	a.stats.LiveBytes += need
	return buf, nil
}

// Deallocate returns storage acquired from Allocate. If buf was the most
// recent allocation the bump pointer rewinds and the space is immediately
// reusable; otherwise the bytes stay occupied until Reset or Close.
func (a *Arena) Deallocate(buf []byte, n int) {
	if a.closed || n <= 0 {
		return
	}
	need := align8(n)

	a.stats.Frees++
	a.stats.LiveBytes -= need

	if len(buf) == 0 {
		return
	}
	s := &a.slabs[len(a.slabs)-1]
	if s.off >= need && &s.buf[s.off-need] == &buf[0] {
		s.off -= need
	}
}

// Reset reclaims all allocations in bulk. The first slab is kept and
// rewound; any additional slabs are released.
func (a *Arena) Reset() {
	if a.closed {
		return
	}
	for i := 1; i < len(a.slabs); i++ {
		if a.slabs[i].unmap != nil {
			a.slabs[i].unmap()
		}
	}
	a.slabs = a.slabs[:1]
	a.slabs[0].off = 0
	a.stats.LiveBytes = 0
	a.stats.Slabs = 1
}

// Close releases all slabs. The arena must not be used afterwards.
func (a *Arena) Close() error {
	if a.closed {
		return ErrClosed
	}
	for i := range a.slabs {
		if a.slabs[i].unmap != nil {
			a.slabs[i].unmap()
		}
	}
	a.slabs = nil
	a.closed = true
	return nil
}

// Stats returns a snapshot of the arena's accounting.
func (a *Arena) Stats() Stats {
	return a.stats
}

// grow maps a new slab large enough for need bytes.
func (a *Arena) grow(need int) error {
	size := a.slabSize
	if need > size {
		size = align8(need)
	}
	buf, unmap, err := mapSlab(size)
	if err != nil {
		return fmt.Errorf("alloc: grow arena: %w", err)
	}
	a.slabs = append(a.slabs, slab{buf: buf, unmap: unmap})
	a.stats.Slabs = len(a.slabs)
	return nil
}
