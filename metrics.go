package linear

// PoolMetrics contains statistical information about a static list's slot pool.
type PoolMetrics struct {
	Capacity    int     // Fixed number of slots
	InUse       int     // Slots on the logical chain
	Free        int     // Slots on the free chain
	Utilization float64 // Ratio of in-use to total slots (0.0-1.0)
	Allocations uint64  // Slots handed out since construction
	Releases    uint64  // Slots returned since construction
	Exhausted   uint64  // Insertions rejected for lack of a free slot
}

// Utilization returns the ratio of in-use slots to capacity (0.0 to 1.0).
// Returns 0.0 if the list has been released.
func (l *StaticList[T]) Utilization() float64 {
	capacity := l.arena.capacity()
	if capacity == 0 {
		return 0
	}
	return float64(l.arena.inUse()) / float64(capacity)
}

// Metrics returns a snapshot of pool statistics.
func (l *StaticList[T]) Metrics() PoolMetrics {
	a := l.arena
	return PoolMetrics{
		Capacity:    a.capacity(),
		InUse:       a.inUse(),
		Free:        a.free,
		Utilization: l.Utilization(),
		Allocations: a.allocations,
		Releases:    a.releases,
		Exhausted:   a.exhausted,
	}
}

// Metrics thread-safely returns a snapshot of pool statistics.
func (s *SafeStaticList[T]) Metrics() PoolMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Metrics()
}

// Utilization thread-safely returns the ratio of in-use slots to capacity.
func (s *SafeStaticList[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Utilization()
}
