package vector

import (
	"math"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Reserve makes room for at least n elements without further reallocation.
//
// If n does not exceed the capacity, Reserve does nothing. Otherwise it
// allocates a block of exactly n slots and relocates the live elements into
// it. Elements are moved when their move cannot fail or when they cannot be
// copied; otherwise they are copied and the originals are only destroyed
// once every copy succeeded, so a failing copy leaves the vector exactly as
// it was. A failing move of a type without a copy constructor leaves the
// vector valid, with some elements in their moved-from state.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrNegativeSize, "vector: reserve %d", n)
	}
	if n <= v.data.Capacity() {
		return nil
	}
	ops := v.elem()
	data, err := Allocate[T](n)
	if err != nil {
		return errors.Wrap(err, "vector: reserve")
	}
	s := ops.relocation()
	if err := transferN(ops, ops.relocator(s), data.slots(0, v.size), v.live()); err != nil {
		data.Deallocate()
		v.observeFailure("reserve", s, err)
		return errors.Wrap(err, "vector: reserve")
	}
	v.adopt(&data, s, v.size)
	return nil
}

// Resize changes the number of live elements to n, default-constructing
// new elements at the end or destroying surplus ones.
// If a construction fails, the new elements built so far are destroyed and
// the size is unchanged; the capacity may already have grown.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrNegativeSize, "vector: resize %d", n)
	}
	ops := v.elem()
	if n > v.size {
		if err := v.Reserve(n); err != nil {
			return err
		}
		if err := constructN(ops, v.data.slots(v.size, n)); err != nil {
			return errors.Wrap(err, "vector: resize")
		}
	} else {
		destroyN(ops, v.data.slots(n, v.size))
	}
	v.size = n
	return nil
}

// grownCapacity is the capacity used when a full vector takes one more
// element.
func (v *Vector[T]) grownCapacity() (int, error) {
	c := v.data.Capacity()
	if c == 0 {
		return 1, nil
	}
	f := v.conf().growthFactor
	if c > math.MaxInt/f {
		return 0, errors.Wrapf(ErrAllocation, "grow capacity %d", c)
	}
	return c * f, nil
}

// adopt destroys the first live elements of the current block and replaces
// the block with data, whose leading slots already hold the relocated
// elements. The size is left to the caller.
func (v *Vector[T]) adopt(data *RawStorage[T], s strategy, live int) {
	oldCap := v.data.Capacity()
	// Relocating bits leaves the sources dead.
	if ops := v.elem(); s == relocateCopy || !ops.bitwise {
		destroyN(ops, v.data.slots(0, live))
	}
	v.data.MoveFrom(data)
	v.observeRealloc(oldCap, s, live)
}

func (v *Vector[T]) observeRealloc(oldCap int, s strategy, relocated int) {
	v.reallocs++
	cfg := v.conf()
	level.Debug(cfg.logger).Log(
		"msg", "vector reallocated",
		"old_capacity", oldCap,
		"new_capacity", v.data.Capacity(),
		"relocated", relocated,
		"strategy", s,
	)
	if cfg.instr != nil {
		cfg.instr.observeRealloc(v.data.SizeBytes(), s, relocated)
	}
}

func (v *Vector[T]) observeFailure(op string, s strategy, err error) {
	cfg := v.conf()
	level.Debug(cfg.logger).Log("msg", "vector relocation failed", "op", op, "strategy", s, "err", err)
	if cfg.instr != nil {
		cfg.instr.observeFailure(op)
	}
}
