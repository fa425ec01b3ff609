package ref

import "errors"

var (
	// ErrNilPointer indicates an attempt to adopt a nil object pointer.
	ErrNilPointer = errors.New("ref: nil object pointer")
)
