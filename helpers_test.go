package vector

import (
	"testing"

	"github.com/pkg/errors"
)

var errInjected = errors.New("injected failure")

// budget allows a number of calls before failing. A disarmed budget never
// fails.
type budget struct {
	armed bool
	n     int
}

func (b *budget) take() bool {
	if !b.armed {
		return true
	}
	if b.n == 0 {
		return false
	}
	b.n--
	return true
}

func (b *budget) arm(n int) { *b = budget{armed: true, n: n} }

// tracker observes the lifetimes of the instrumented element types below.
type tracker struct {
	live      int
	bad       int // operations on dead sources or receivers
	copies    int
	moves     int
	assigns   int
	destroys  int
	construct budget
	copy      budget
	move      budget
	assign    budget
}

var track tracker

func resetTracker(t *testing.T) {
	t.Helper()
	track = tracker{}
	t.Cleanup(func() { track = tracker{} })
}

// checkLifetimes fails the test if an element leaked or was mistreated.
func checkLifetimes(t *testing.T) {
	t.Helper()
	if track.live != 0 {
		t.Errorf("live elements = %d, want 0", track.live)
	}
	if track.bad != 0 {
		t.Errorf("operations on dead slots = %d, want 0", track.bad)
	}
}

// state is the payload shared by the instrumented types.
type state struct {
	val   int
	alive bool
}

// born returns a live state produced outside any vector.
func born(val int) state {
	track.live++
	return state{val: val, alive: true}
}

func (s *state) construct() error {
	if s.alive {
		track.bad++
	}
	if !track.construct.take() {
		return errInjected
	}
	s.alive = true
	track.live++
	return nil
}

func (s *state) copyFrom(src *state) error {
	if s.alive || !src.alive {
		track.bad++
	}
	if !track.copy.take() {
		return errInjected
	}
	*s = state{val: src.val, alive: true}
	track.live++
	track.copies++
	return nil
}

func (s *state) moveFrom(src *state) {
	if s.alive || !src.alive {
		track.bad++
	}
	*s = state{val: src.val, alive: true}
	src.val = -1
	track.live++
	track.moves++
}

func (s *state) tryMoveFrom(src *state) error {
	if !track.move.take() {
		return errInjected
	}
	s.moveFrom(src)
	return nil
}

func (s *state) assignFrom(src *state) error {
	if !s.alive || !src.alive {
		track.bad++
	}
	if !track.assign.take() {
		return errInjected
	}
	s.val = src.val
	track.assigns++
	return nil
}

func (s *state) destroy() {
	if !s.alive {
		track.bad++
	}
	s.alive = false
	track.live--
	track.destroys++
}

// copyable has a copy constructor that may fail and no move constructor,
// so vectors relocate it by copy.
type copyable struct{ state }

func (c *copyable) Construct() error { return c.construct() }
func (c *copyable) CopyFrom(src *copyable) error { return c.copyFrom(&src.state) }
func (c *copyable) AssignFrom(src *copyable) error { return c.assignFrom(&src.state) }
func (c *copyable) Destroy() { c.destroy() }

// movable adds a move constructor that never fails.
type movable struct{ state }

func (m *movable) Construct() error { return m.construct() }
func (m *movable) CopyFrom(src *movable) error { return m.copyFrom(&src.state) }
func (m *movable) MoveFrom(src *movable) { m.moveFrom(&src.state) }
func (m *movable) AssignFrom(src *movable) error { return m.assignFrom(&src.state) }
func (m *movable) MoveAssignFrom(src *movable) error { return m.assignFrom(&src.state) }
func (m *movable) Destroy() { m.destroy() }

// moveOnly cannot be copied.
type moveOnly struct{ state }

func (m *moveOnly) NoCopy() {}
func (m *moveOnly) Construct() error { return m.construct() }
func (m *moveOnly) MoveFrom(src *moveOnly) { m.moveFrom(&src.state) }
func (m *moveOnly) MoveAssignFrom(src *moveOnly) error { return m.assignFrom(&src.state) }
func (m *moveOnly) Destroy() { m.destroy() }

// fallibleMoveOnly cannot be copied and its move may fail.
type fallibleMoveOnly struct{ state }

func (f *fallibleMoveOnly) NoCopy() {}
func (f *fallibleMoveOnly) Construct() error { return f.construct() }
func (f *fallibleMoveOnly) TryMoveFrom(src *fallibleMoveOnly) error { return f.tryMoveFrom(&src.state) }
func (f *fallibleMoveOnly) MoveAssignFrom(src *fallibleMoveOnly) error { return f.assignFrom(&src.state) }
func (f *fallibleMoveOnly) Destroy() { f.destroy() }

// destroyOnly has no hook besides Destroy, so vectors relocate it by its
// bits and cannot copy it.
type destroyOnly struct{ state }

func (d *destroyOnly) Destroy() { d.destroy() }

// copyDestroyer has a copy constructor and a destructor but no assignment.
type copyDestroyer struct{ state }

func (c *copyDestroyer) CopyFrom(src *copyDestroyer) error { return c.copyFrom(&src.state) }
func (c *copyDestroyer) Destroy() { c.destroy() }

type valuer interface {
	copyable | movable | moveOnly | fallibleMoveOnly | destroyOnly | copyDestroyer
}

// vals returns the payloads of the live elements.
func vals[T valuer](v *Vector[T]) []int {
	out := make([]int, 0, v.Size())
	for _, p := range v.All() {
		out = append(out, any(p).(interface{ payload() int }).payload())
	}
	return out
}

func (s *state) payload() int { return s.val }

// ints returns the live elements of an int vector.
func ints(v *Vector[int]) []int {
	out := make([]int, 0, v.Size())
	for _, p := range v.All() {
		out = append(out, *p)
	}
	return out
}

// fillInts pushes xs onto v.
func fillInts(t *testing.T, v *Vector[int], xs ...int) {
	t.Helper()
	for _, x := range xs {
		if _, err := v.PushBack(x); err != nil {
			t.Fatalf("PushBack(%d) error = %v", x, err)
		}
	}
}
