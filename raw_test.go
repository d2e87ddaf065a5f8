package vector

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected int
	}{
		{"empty block", 0, 0},
		{"single slot", 1, 1},
		{"many slots", 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Allocate[int64](tt.n)
			if err != nil {
				t.Fatalf("Allocate(%d) error = %v", tt.n, err)
			}
			if s.Capacity() != tt.expected {
				t.Errorf("Allocate(%d) capacity = %d, want %d", tt.n, s.Capacity(), tt.expected)
			}
			if s.SizeBytes() != tt.expected*8 {
				t.Errorf("Allocate(%d) size = %d bytes, want %d", tt.n, s.SizeBytes(), tt.expected*8)
			}
		})
	}
}

func TestAllocateEmptyIsNil(t *testing.T) {
	s, err := Allocate[string](0)
	require.NoError(t, err)
	if s.buf != nil {
		t.Errorf("Allocate(0) buffer = %v, want nil", s.buf)
	}
}

func TestAllocateFailures(t *testing.T) {
	_, err := Allocate[int](-1)
	require.ErrorIs(t, err, ErrNegativeSize)

	_, err = Allocate[[1024]byte](math.MaxInt)
	require.ErrorIs(t, err, ErrAllocation)

	// Zero-sized elements never exhaust memory.
	s, err := Allocate[struct{}](math.MaxInt32)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt32, s.Capacity())
	require.Zero(t, s.SizeBytes())
}

func TestAddressOf(t *testing.T) {
	s, err := Allocate[int](4)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		p := s.AddressOf(i)
		if p == nil {
			t.Fatalf("AddressOf(%d) = nil", i)
		}
		*p = i * 10
	}
	for i := 0; i < 4; i++ {
		if s.buf[i] != i*10 {
			t.Errorf("slot %d = %d, want %d", i, s.buf[i], i*10)
		}
	}

	// The end position is addressable but yields nothing to dereference.
	if p := s.AddressOf(4); p != nil {
		t.Errorf("AddressOf(capacity) = %p, want nil", p)
	}
	var empty RawStorage[int]
	if p := empty.AddressOf(0); p != nil {
		t.Errorf("AddressOf(0) on empty block = %p, want nil", p)
	}

	for _, i := range []int{-1, 5} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("AddressOf(%d) did not panic", i)
				}
			}()
			s.AddressOf(i)
		}()
	}
}

func TestRawStorageSwapAndMove(t *testing.T) {
	a, err := Allocate[int](2)
	require.NoError(t, err)
	b, err := Allocate[int](5)
	require.NoError(t, err)
	*a.AddressOf(0) = 7

	a.Swap(&b)
	if a.Capacity() != 5 || b.Capacity() != 2 {
		t.Errorf("after Swap capacities = %d, %d, want 5, 2", a.Capacity(), b.Capacity())
	}
	if *b.AddressOf(0) != 7 {
		t.Errorf("Swap copied instead of exchanging blocks")
	}

	block := &b.buf[0]
	a.MoveFrom(&b)
	if a.Capacity() != 2 || b.Capacity() != 0 {
		t.Errorf("after MoveFrom capacities = %d, %d, want 2, 0", a.Capacity(), b.Capacity())
	}
	if a.AddressOf(0) != block {
		t.Error("MoveFrom did not transfer the block")
	}

	// Moving from itself keeps the block.
	a.MoveFrom(&a)
	require.Equal(t, 2, a.Capacity())
}

func TestDeallocate(t *testing.T) {
	s, err := Allocate[int](8)
	require.NoError(t, err)

	s.Deallocate()
	if s.Capacity() != 0 {
		t.Errorf("Capacity after Deallocate = %d, want 0", s.Capacity())
	}

	// Deallocating the empty block is a no-op.
	s.Deallocate()
	s.Deallocate()
}

func BenchmarkAllocate(b *testing.B) {
	sizes := []int{8, 64, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("slots-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s, _ := Allocate[int](size)
				s.Deallocate()
			}
		})
	}
}
