// Package vector implements a generic growable array with value semantics
// for Go.
//
// # Overview
//
// A Vector owns exactly one RawStorage, a block of slots of its element
// type, and tracks how many leading slots hold live elements. Growth
// doubles the capacity, which makes appends amortized O(1). Unlike a plain
// slice, a Vector runs the element type's lifecycle hooks when elements
// are constructed, copied, moved, assigned and destroyed, and it keeps
// strong failure guarantees while doing so:
//
//   - Reserve and growing appends either succeed or leave the vector as it was
//   - Inserting into a full vector either succeeds or leaves it as it was
//   - Inserting into a vector with spare capacity keeps it valid on failure
//   - Copy assignment that needs a larger block either succeeds or changes nothing
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Destroy()
//
//	for i := 1; i <= 5; i++ {
//		if _, err := v.PushBack(i); err != nil {
//			return err
//		}
//	}
//	v.Insert(0, 0) // [0 1 2 3 4 5]
//	v.Erase(1)     // [0 2 3 4 5]
//
//	for i, p := range v.All() {
//		fmt.Println(i, *p)
//	}
//
// # Element Lifecycle
//
// Plain types need nothing: the zero value is the default element and
// struct assignment copies and moves it. Types that manage resources
// implement any of Constructor, Copier, NoCopier, Mover, FallibleMover,
// Assigner, MoveAssigner and Destroyer on their pointer type.
//
// When a vector reallocates it moves elements into the new block if the
// type's move cannot fail (a Mover, or a type with no hooks) or if the type
// cannot be copied (a NoCopier). Otherwise it copies them and destroys the
// originals only after every copy succeeded.
//
// A type whose only hook is Destroy is relocated by its bits, so exactly one
// slot ever owns what Destroy releases. Such a type cannot be copied; give it
// a Copier to make it copyable.
//
// # Thread Safety
//
// Vector is not safe for concurrent use. Concurrent reads are fine as long
// as nothing mutates the vector at the same time.
//
// # Performance Characteristics
//
//   - PushBack / EmplaceBack: O(1) amortized
//   - At, Size, Capacity, Swap, Take, MoveAssign: O(1)
//   - Insert, Emplace, Erase: O(n) in the number of elements after the position
//   - Reserve, Clone, Assign: O(n)
//
// # Metrics and Monitoring
//
// Every vector keeps a few cheap statistics:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
//
// Reallocations can also be exported to Prometheus with WithInstrumentation
// and traced through a go-kit logger with WithLogger.
package vector
