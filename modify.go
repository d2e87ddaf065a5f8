package vector

import (
	"github.com/pkg/errors"
)

// PushBack appends value and returns a pointer to the stored element.
// The vector takes ownership of value. When the vector is full the capacity
// grows by the growth factor (to 1 from empty) with the same failure
// guarantee as Reserve.
func (v *Vector[T]) PushBack(value T) (*T, error) {
	if v.size < v.data.Capacity() {
		p := &v.data.buf[v.size]
		*p = value
		v.size++
		return p, nil
	}
	return v.EmplaceBack(func(p *T) error {
		*p = value
		return nil
	})
}

// EmplaceBack constructs a new last element in place with ctor, which
// receives the dead slot. A nil ctor default-constructs the element.
// On a full vector the element is built in the new block before the
// existing elements are relocated, so ctor may read from the vector.
func (v *Vector[T]) EmplaceBack(ctor func(*T) error) (*T, error) {
	ops := v.elem()
	if ctor == nil {
		ctor = ops.construct
	}
	if v.size == v.data.Capacity() {
		if err := v.emplaceRealloc(v.size, ctor); err != nil {
			return nil, errors.Wrap(err, "vector: emplace back")
		}
		return &v.data.buf[v.size-1], nil
	}
	p := &v.data.buf[v.size]
	if err := ctor(p); err != nil {
		return nil, errors.Wrap(err, "vector: emplace back")
	}
	v.size++
	return p, nil
}

// PopBack destroys the last element. It does nothing on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.elem().destroy(&v.data.buf[v.size-1])
	v.size--
}

// Insert places value at pos, shifting later elements right, and returns
// the position of the inserted element. pos == Size() appends.
// The failure guarantees are those of Emplace.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	return v.Emplace(pos, func(p *T) error {
		*p = value
		return nil
	})
}

// Emplace constructs a new element at pos with ctor, shifting later
// elements right, and returns pos. A nil ctor default-constructs the
// element. pos must be in [0, Size()], otherwise ErrOutOfRange is returned.
//
// If the vector is full, a block of grown capacity is populated around the
// new element and swapped in only when complete: any failure leaves the
// vector exactly as it was.
//
// Otherwise the shift happens in place. Types without move or copy
// constructors are shifted by their bits and never fail. For the others
// only the basic guarantee holds: the new element is built aside, the last
// element is move-constructed into the first dead slot, the range
// [pos, Size()-1) is move-assigned one slot right from the back, and the
// new element is move-assigned into pos. If a
// move or assignment fails, the extra slot is destroyed and the error is
// returned with the size unchanged, but elements may already have been
// shifted.
func (v *Vector[T]) Emplace(pos int, ctor func(*T) error) (int, error) {
	if uint(pos) > uint(v.size) {
		return 0, errors.Wrapf(ErrOutOfRange, "vector: emplace at %d, size %d", pos, v.size)
	}
	ops := v.elem()
	if ctor == nil {
		ctor = ops.construct
	}
	if v.size == v.data.Capacity() {
		if err := v.emplaceRealloc(pos, ctor); err != nil {
			return 0, errors.Wrap(err, "vector: emplace")
		}
		return pos, nil
	}

	buf := v.data.buf
	if pos == v.size {
		if err := ctor(&buf[pos]); err != nil {
			return 0, errors.Wrap(err, "vector: emplace")
		}
		v.size++
		return pos, nil
	}

	var tmp T
	if err := ctor(&tmp); err != nil {
		return 0, errors.Wrap(err, "vector: emplace")
	}
	if ops.bitwise {
		copy(buf[pos+1:v.size+1], buf[pos:v.size])
		buf[pos] = tmp
		v.size++
		return pos, nil
	}

	end := &buf[v.size]
	if err := ops.move(end, &buf[v.size-1]); err != nil {
		ops.destroy(&tmp)
		return 0, errors.Wrap(err, "vector: emplace")
	}
	for i := v.size - 1; i > pos; i-- {
		if err := ops.moveAssign(&buf[i], &buf[i-1]); err != nil {
			ops.destroy(end)
			ops.destroy(&tmp)
			return 0, errors.Wrap(err, "vector: emplace")
		}
	}
	err := ops.moveAssign(&buf[pos], &tmp)
	ops.destroy(&tmp)
	if err != nil {
		ops.destroy(end)
		return 0, errors.Wrap(err, "vector: emplace")
	}
	v.size++
	return pos, nil
}

// emplaceRealloc inserts at pos into a new block of grown capacity.
// The new element is constructed first, at its final slot, and the old
// block is only released once the new one is fully populated.
func (v *Vector[T]) emplaceRealloc(pos int, ctor func(*T) error) error {
	ops := v.elem()
	n, err := v.grownCapacity()
	if err != nil {
		return err
	}
	data, err := Allocate[T](n)
	if err != nil {
		return err
	}
	if err := ctor(data.AddressOf(pos)); err != nil {
		data.Deallocate()
		return err
	}

	s := ops.relocation()
	relocate := ops.relocator(s)
	if err := transferN(ops, relocate, data.slots(0, pos), v.data.slots(0, pos)); err != nil {
		ops.destroy(data.AddressOf(pos))
		data.Deallocate()
		v.observeFailure("emplace", s, err)
		return err
	}
	if err := transferN(ops, relocate, data.slots(pos+1, v.size+1), v.data.slots(pos, v.size)); err != nil {
		destroyN(ops, data.slots(0, pos+1))
		data.Deallocate()
		v.observeFailure("emplace", s, err)
		return err
	}
	v.adopt(&data, s, v.size)
	v.size++
	return nil
}

// Erase removes the element at pos, shifting later elements left by
// move-assignment (or by their bits for types without move or copy
// constructors), and returns pos, which now holds the element that
// followed the erased one. pos must be in [0, Size()), otherwise
// ErrOutOfRange is returned. An error from an element's move-assignment
// leaves the size unchanged with the elements before the failure shifted.
func (v *Vector[T]) Erase(pos int) (int, error) {
	if uint(pos) >= uint(v.size) {
		return 0, errors.Wrapf(ErrOutOfRange, "vector: erase at %d, size %d", pos, v.size)
	}
	ops := v.elem()
	buf := v.data.buf
	if ops.bitwise {
		ops.destroy(&buf[pos])
		copy(buf[pos:v.size-1], buf[pos+1:v.size])
		var zero T
		buf[v.size-1] = zero
	} else {
		for i := pos; i < v.size-1; i++ {
			if err := ops.moveAssign(&buf[i], &buf[i+1]); err != nil {
				return 0, errors.Wrap(err, "vector: erase")
			}
		}
		ops.destroy(&buf[v.size-1])
	}
	v.size--
	return pos, nil
}
