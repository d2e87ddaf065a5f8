package vector

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// noCopy makes go vet's copylocks check flag Vector values that are copied
// after first use. A copied Vector would alias its block.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Vector is a growable array of T with value semantics.
//
// Slots [0, Size()) hold live elements; slots [Size(), Capacity()) are dead.
// Pointers returned by At, Get, PushBack and EmplaceBack stay valid until the
// next operation that reallocates, inserts before them or erases them.
//
// The zero value is an empty vector ready to use. Vector is not safe for
// concurrent use.
type Vector[T any] struct {
	noCopy noCopy

	data     RawStorage[T]
	size     int
	ops      *elementOps[T]
	cfg      *config
	reallocs int
}

// New returns an empty vector.
func New[T any](opts ...Option) *Vector[T] {
	return &Vector[T]{ops: resolveOps[T](), cfg: newConfig(opts)}
}

// NewWithSize returns a vector of n default-constructed elements.
// If a construction fails, the elements built so far are destroyed.
func NewWithSize[T any](n int, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	data, err := Allocate[T](n)
	if err != nil {
		return nil, errors.Wrap(err, "vector: construct")
	}
	if err := constructN(v.ops, data.slots(0, n)); err != nil {
		data.Deallocate()
		return nil, errors.Wrap(err, "vector: construct")
	}
	v.data.MoveFrom(&data)
	v.size = n
	return v, nil
}

// NewFrom returns a vector holding copies of the elements of src.
func NewFrom[T any](src []T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.copyConstruct(src); err != nil {
		return nil, errors.Wrap(err, "vector: construct")
	}
	return v, nil
}

// copyConstruct fills an empty v with copies of src in a block of exactly
// len(src) slots.
func (v *Vector[T]) copyConstruct(src []T) error {
	ops := v.elem()
	if ops.copy == nil {
		return ErrNotCopyable
	}
	data, err := Allocate[T](len(src))
	if err != nil {
		return err
	}
	if err := transferN(ops, ops.copy, data.slots(0, len(src)), src); err != nil {
		data.Deallocate()
		return err
	}
	v.data.MoveFrom(&data)
	v.size = len(src)
	return nil
}

// Clone returns a copy of v whose capacity equals v.Size().
// The clone shares v's options.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{ops: v.elem(), cfg: v.conf()}
	if err := c.copyConstruct(v.live()); err != nil {
		return nil, errors.Wrap(err, "vector: clone")
	}
	return c, nil
}

// Take moves v's contents into a new vector, leaving v empty with no
// storage. It never fails.
func (v *Vector[T]) Take() *Vector[T] {
	t := &Vector[T]{ops: v.elem(), cfg: v.conf(), reallocs: v.reallocs}
	t.data.MoveFrom(&v.data)
	t.size = v.size
	v.size = 0
	v.reallocs = 0
	return t
}

// Destroy ends the lifetime of every live element and releases the block.
// The vector is empty afterwards and may be reused.
func (v *Vector[T]) Destroy() {
	destroyN(v.elem(), v.live())
	v.data.Deallocate()
	v.size = 0
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of slots in the block.
func (v *Vector[T]) Capacity() int {
	return v.data.Capacity()
}

// Empty reports whether the vector has no live elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns the element at i. It panics if i is outside [0, Size()).
func (v *Vector[T]) At(i int) *T {
	if uint(i) >= uint(v.size) {
		panic(fmt.Sprintf("vector: index %d out of range [0:%d]", i, v.size))
	}
	return &v.data.buf[i]
}

// Get is the checked form of At.
func (v *Vector[T]) Get(i int) (*T, error) {
	if uint(i) >= uint(v.size) {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d, size %d", i, v.size)
	}
	return &v.data.buf[i], nil
}

// Front returns the first element. It panics on an empty vector.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns the last element. It panics on an empty vector.
func (v *Vector[T]) Back() *T {
	return v.At(v.size - 1)
}

// All iterates over the live elements from first to last.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, &v.data.buf[i]) {
				return
			}
		}
	}
}

// Backward iterates over the live elements from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, &v.data.buf[i]) {
				return
			}
		}
	}
}

// Swap exchanges contents with other, including the reallocation counts
// reported by Metrics. It never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.swapBlocks(other)
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
}

func (v *Vector[T]) swapBlocks(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Assign makes v a copy of other.
//
// When other does not fit in v's block, a full copy is built first and
// swapped in, so a failure leaves v untouched. Otherwise v's block is
// reused: the common prefix is copy-assigned, then v's extra tail is
// destroyed or other's extra tail is copy-constructed. A failure on that
// path leaves v valid with size unchanged, but with the prefix possibly
// already overwritten.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == other {
		return nil
	}
	ops := v.elem()
	if ops.copy == nil || ops.assign == nil {
		return errors.Wrap(ErrNotCopyable, "vector: assign")
	}

	if other.size > v.data.Capacity() {
		c := &Vector[T]{ops: ops, cfg: v.conf()}
		if err := c.copyConstruct(other.live()); err != nil {
			return errors.Wrap(err, "vector: assign")
		}
		oldCap := v.data.Capacity()
		v.swapBlocks(c)
		c.Destroy()
		v.observeRealloc(oldCap, relocateCopy, 0)
		return nil
	}

	n := min(v.size, other.size)
	if err := assignN(ops, ops.assign, v.data.slots(0, n), other.data.slots(0, n)); err != nil {
		return errors.Wrap(err, "vector: assign")
	}
	if v.size > other.size {
		destroyN(ops, v.data.slots(other.size, v.size))
	} else {
		dst := v.data.slots(v.size, other.size)
		if err := transferN(ops, ops.copy, dst, other.data.slots(v.size, other.size)); err != nil {
			return errors.Wrap(err, "vector: assign")
		}
	}
	v.size = other.size
	return nil
}

// MoveAssign exchanges contents with other, so other ends up holding v's
// previous elements. It never fails.
func (v *Vector[T]) MoveAssign(other *Vector[T]) {
	if v != other {
		v.Swap(other)
	}
}

// live returns the live slot range.
func (v *Vector[T]) live() []T {
	return v.data.slots(0, v.size)
}

func (v *Vector[T]) elem() *elementOps[T] {
	if v.ops == nil {
		v.ops = resolveOps[T]()
	}
	return v.ops
}

func (v *Vector[T]) conf() *config {
	if v.cfg == nil {
		v.cfg = defaultConfig()
	}
	return v.cfg
}
