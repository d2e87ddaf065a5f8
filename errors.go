package vector

import "github.com/pkg/errors"

var (
	// ErrAllocation is returned when a slot block of the requested size
	// cannot be reserved.
	ErrAllocation = errors.New("vector: allocation failed")

	// ErrNegativeSize is returned for negative sizes and capacities.
	ErrNegativeSize = errors.New("vector: negative size")

	// ErrOutOfRange is returned by the checked accessors and by position
	// based operations when the position is outside the live sequence.
	ErrOutOfRange = errors.New("vector: position out of range")

	// ErrNotCopyable is returned when an operation needs to copy elements
	// of a type that implements NoCopier.
	ErrNotCopyable = errors.New("vector: element type is not copyable")
)
