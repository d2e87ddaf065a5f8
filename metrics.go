package vector

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.size * int(elemSize[T]())
}

// SizeReserved returns the size of the block in bytes.
func (v *Vector[T]) SizeReserved() int {
	return v.data.SizeBytes()
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Reallocations returns how many times the vector replaced its block.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:          v.Size(),
		Capacity:      v.Capacity(),
		ElementSize:   int(elemSize[T]()),
		SizeInUse:     v.SizeInUse(),
		SizeReserved:  v.SizeReserved(),
		Utilization:   v.Utilization(),
		Reallocations: v.Reallocations(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size          int     // Live elements
	Capacity      int     // Slots in the block
	ElementSize   int     // Bytes per slot
	SizeInUse     int     // Bytes held by live elements
	SizeReserved  int     // Bytes in the block
	Utilization   float64 // Ratio of live elements to capacity (0.0-1.0)
	Reallocations int     // Blocks replaced so far
}
