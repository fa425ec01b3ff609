package alloc

import "errors"

var (
	// ErrBadSize indicates a non-positive allocation size.
	ErrBadSize = errors.New("alloc: size must be positive")

	// ErrNoSpace indicates that the allocator cannot satisfy the request.
	ErrNoSpace = errors.New("alloc: no space available")

	// ErrClosed indicates use of an arena after Close.
	ErrClosed = errors.New("alloc: arena closed")
)
