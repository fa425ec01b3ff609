//go:build !unix

package alloc

// mapSlab allocates a heap-backed slab when anonymous mappings are not
// available. Release is left to the garbage collector.
func mapSlab(size int) ([]byte, func(), error) {
	return make([]byte, size), nil, nil
}
