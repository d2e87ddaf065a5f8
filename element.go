package vector

// Element types opt into lifecycle hooks by implementing the interfaces
// below on their pointer type. A type that implements none of them is
// treated like a plain Go value: construction yields the zero value and
// copies, moves and assignments are struct assignment, none of which fail.
//
// A type without a move or copy constructor is relocated by its bits: the
// destination takes the value and the source slot becomes dead without its
// Destroy being called. A type that implements Destroyer owns what it
// releases, so it is only copyable when it also implements Copier, and
// assignments without a hook destroy the receiver before it takes the new
// value.
//
// Hooks that take a destination receiver are called on a dead slot (for the
// constructors) or a live slot (for the assignments). A constructor that
// returns an error must leave its receiver dead: the vector will not
// destroy it.

// Constructor is implemented by types whose default construction can do
// work beyond the zero value, or fail.
type Constructor interface {
	Construct() error
}

// Copier is implemented by types whose copy constructor is not a plain
// struct assignment.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// NoCopier marks a type that can be neither copy-constructed nor
// copy-assigned. Such a type can still be stored and relocated by move.
type NoCopier interface {
	NoCopy()
}

// Mover is implemented by types with a move constructor that never fails.
// The source stays live in a moved-from state and is destroyed later.
type Mover[T any] interface {
	MoveFrom(src *T)
}

// FallibleMover is implemented by types with a move constructor that can
// fail. Vectors of such types relocate by copy when a copy is available.
type FallibleMover[T any] interface {
	TryMoveFrom(src *T) error
}

// Assigner is implemented by types with a custom copy assignment.
type Assigner[T any] interface {
	AssignFrom(src *T) error
}

// MoveAssigner is implemented by types with a custom move assignment.
// Without one, the copy assignment is used.
type MoveAssigner[T any] interface {
	MoveAssignFrom(src *T) error
}

// Destroyer is implemented by types that release resources when their
// lifetime ends. Destroy must not fail.
type Destroyer interface {
	Destroy()
}

// strategy is how live elements are carried into a new block.
type strategy int

const (
	relocateMove strategy = iota
	relocateCopy
)

func (s strategy) String() string {
	if s == relocateCopy {
		return "copy"
	}
	return "move"
}

// elementOps is the resolved lifecycle of T.
type elementOps[T any] struct {
	construct  func(p *T) error
	copy       func(dst, src *T) error // nil when T is not copyable
	move       func(dst, src *T) error
	moveNoFail bool
	assign     func(dst, src *T) error // nil when T is not copyable
	moveAssign func(dst, src *T) error
	destroy    func(p *T)

	// bitwise is set when T has no copy or move constructor. Moves then
	// transfer the bits and leave the source dead, so ranges can be shifted
	// with the builtin copy.
	bitwise bool

	// trivial is set when T has no copy, move, assignment or destroy hooks,
	// so whole ranges can be moved with the builtin copy and cleared.
	trivial bool
}

func plainAssign[T any](dst, src *T) error {
	*dst = *src
	return nil
}

func relocateBits[T any](dst, src *T) error {
	var zero T
	*dst, *src = *src, zero
	return nil
}

// replaceWith builds a value from src with f aside, then destroys dst and
// puts the new value in its place. dst is untouched when f fails.
func replaceWith[T any](f func(dst, src *T) error, destroy func(*T)) func(dst, src *T) error {
	return func(dst, src *T) error {
		var tmp T
		if err := f(&tmp, src); err != nil {
			return err
		}
		destroy(dst)
		*dst = tmp
		return nil
	}
}

func resolveOps[T any]() *elementOps[T] {
	var probe any = (*T)(nil)
	ops := &elementOps[T]{}

	if _, ok := probe.(Constructor); ok {
		ops.construct = func(p *T) error { return any(p).(Constructor).Construct() }
	} else {
		ops.construct = func(*T) error { return nil }
	}

	_, noCopy := probe.(NoCopier)
	_, hasCopier := probe.(Copier[T])
	_, hasDestroyer := probe.(Destroyer)
	canCopy := !noCopy && (hasCopier || !hasDestroyer)
	switch {
	case !canCopy:
	case hasCopier:
		ops.copy = func(dst, src *T) error { return any(dst).(Copier[T]).CopyFrom(src) }
	default:
		ops.copy = plainAssign[T]
	}

	_, hasMover := probe.(Mover[T])
	_, hasFallible := probe.(FallibleMover[T])
	switch {
	case hasMover:
		ops.move = func(dst, src *T) error {
			any(dst).(Mover[T]).MoveFrom(src)
			return nil
		}
		ops.moveNoFail = true
	case hasFallible:
		ops.move = func(dst, src *T) error { return any(dst).(FallibleMover[T]).TryMoveFrom(src) }
	case hasCopier && ops.copy != nil:
		// A user copy constructor suppresses the implicit move.
		ops.move = ops.copy
	default:
		ops.move = relocateBits[T]
		ops.moveNoFail = true
		ops.bitwise = true
	}

	_, hasAssigner := probe.(Assigner[T])
	_, hasMoveAssigner := probe.(MoveAssigner[T])
	ops.trivial = ops.bitwise && !noCopy && !hasAssigner && !hasMoveAssigner && !hasDestroyer

	if hasDestroyer {
		ops.destroy = func(p *T) {
			any(p).(Destroyer).Destroy()
			var zero T
			*p = zero
		}
	} else {
		ops.destroy = func(p *T) {
			var zero T
			*p = zero
		}
	}

	switch {
	case !canCopy:
	case hasAssigner:
		ops.assign = func(dst, src *T) error { return any(dst).(Assigner[T]).AssignFrom(src) }
	case hasDestroyer:
		ops.assign = replaceWith(ops.copy, ops.destroy)
	default:
		ops.assign = plainAssign[T]
	}

	switch {
	case hasMoveAssigner:
		ops.moveAssign = func(dst, src *T) error { return any(dst).(MoveAssigner[T]).MoveAssignFrom(src) }
	case hasAssigner && ops.assign != nil:
		ops.moveAssign = ops.assign
	case hasDestroyer:
		ops.moveAssign = replaceWith(ops.move, ops.destroy)
	default:
		ops.moveAssign = plainAssign[T]
	}
	return ops
}

// relocation picks the growth strategy: move when it cannot fail or when
// there is no copy to fall back on, copy otherwise.
func (o *elementOps[T]) relocation() strategy {
	if o.moveNoFail || o.copy == nil {
		return relocateMove
	}
	return relocateCopy
}

func (o *elementOps[T]) relocator(s strategy) func(dst, src *T) error {
	if s == relocateCopy {
		return o.copy
	}
	return o.move
}
