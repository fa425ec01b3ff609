package alloc

// Heap is the default storage strategy: Allocate draws from the Go heap and
// Deallocate is a no-op, leaving reclamation to the garbage collector once
// the last reference to the storage drops.
//
// The zero value is ready to use.
type Heap struct{}

// Allocate returns a fresh zeroed buffer of n bytes.
func (Heap) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}
	return make([]byte, n), nil
}

// Deallocate is a no-op. The garbage collector reclaims the buffer.
func (Heap) Deallocate(buf []byte, n int) {}
