package vector

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
)

// maxAllocBytes bounds a single block request: 1<<47 bytes on 64-bit
// platforms, 2 GiB on 32-bit ones.
const maxAllocBytes uintptr = 1<<(31+16*(^uintptr(0)>>63)) - 1

// RawStorage is an exclusively owned block of capacity slots of T.
//
// RawStorage never constructs or destroys elements: which slots hold live
// values is the owner's business. A fresh block holds the zero value of T in
// every slot. RawStorage is move-only; use Swap or MoveFrom to transfer a
// block, never struct assignment.
type RawStorage[T any] struct {
	buf []T // len(buf) == capacity
}

// Allocate reserves a block of exactly n slots.
// n == 0 yields the empty block. A failed request has no side effects.
func Allocate[T any](n int) (s RawStorage[T], err error) {
	if n < 0 {
		return RawStorage[T]{}, errors.Wrapf(ErrNegativeSize, "allocate %d slots", n)
	}
	if n == 0 {
		return RawStorage[T]{}, nil
	}
	elem := elemSize[T]()
	if elem != 0 && uintptr(n) > maxAllocBytes/elem {
		return RawStorage[T]{}, errors.Wrapf(ErrAllocation, "allocate %d slots of %d bytes", n, elem)
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			s, err = RawStorage[T]{}, errors.Wrapf(ErrAllocation, "allocate %d slots: %v", n, r)
		}
	}()
	return RawStorage[T]{buf: make([]T, n)}, nil
}

// Deallocate drops the block without running any element hook.
// Deallocating the empty block is a no-op.
func (s *RawStorage[T]) Deallocate() {
	s.buf = nil
}

// AddressOf returns the address of slot i. i == Capacity() is the end
// position and yields nil; any other index outside [0, Capacity()) panics.
// The end position is not a usable pointer: compute positions with slot
// indices, never from the returned address.
func (s *RawStorage[T]) AddressOf(i int) *T {
	if i == len(s.buf) {
		return nil
	}
	if uint(i) > uint(len(s.buf)) {
		panic(fmt.Sprintf("vector: slot %d outside block of %d", i, len(s.buf)))
	}
	return &s.buf[i]
}

// Capacity returns the number of slots in the block.
func (s *RawStorage[T]) Capacity() int {
	return len(s.buf)
}

// SizeBytes returns the size of the block in bytes.
func (s *RawStorage[T]) SizeBytes() int {
	return len(s.buf) * int(elemSize[T]())
}

// Swap exchanges blocks with other.
func (s *RawStorage[T]) Swap(other *RawStorage[T]) {
	s.buf, other.buf = other.buf, s.buf
}

// MoveFrom releases the current block and takes over other's, leaving
// other empty.
func (s *RawStorage[T]) MoveFrom(other *RawStorage[T]) {
	if s == other {
		return
	}
	s.Deallocate()
	s.Swap(other)
}

// slots returns the slot range [i, j).
func (s *RawStorage[T]) slots(i, j int) []T {
	return s.buf[i:j]
}

func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
