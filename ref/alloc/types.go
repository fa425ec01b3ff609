package alloc

// Stats reports allocator accounting.
type Stats struct {
	// Allocs is the total number of successful Allocate calls.
	Allocs uint64

	// Frees is the total number of Deallocate calls.
	Frees uint64

	// LiveBytes is the number of bytes currently allocated and not yet
	// returned.
	LiveBytes int

	// Slabs is the number of slabs currently held (Arena only).
	Slabs int
}

// align8 rounds n up to the next multiple of 8.
func align8(n int) int {
	return (n + 7) &^ 7
}
