//go:build unix

package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mapSlab reserves an anonymous private mapping for a new slab. Keeping
// slabs out of the Go heap means bulk release via munmap actually returns
// the pages to the OS.
func mapSlab(size int) ([]byte, func(), error) {
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap %d bytes: %w", size, err)
	}
	unmap := func() {
		_ = unix.Munmap(buf)
	}
	return buf, unmap, nil
}
