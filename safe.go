package linear

import (
	"iter"
	"sync"
)

// SafeStaticList is a mutex-protected wrapper around StaticList for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
type SafeStaticList[T comparable] struct {
	mu sync.Mutex
	l  *StaticList[T]
}

// NewSafeStaticList creates a new thread-safe static list with capacity slots.
// If capacity <= 0, DefaultCapacity is used.
func NewSafeStaticList[T comparable](capacity int, opts ...Option) *SafeStaticList[T] {
	return &SafeStaticList[T]{l: NewStaticList[T](capacity, opts...)}
}

// Add thread-safely appends item at the tail.
func (s *SafeStaticList[T]) Add(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Add(item)
}

// AddFirst thread-safely prepends item.
func (s *SafeStaticList[T]) AddFirst(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.AddFirst(item)
}

// Insert thread-safely places item at 1-based position index.
func (s *SafeStaticList[T]) Insert(item T, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Insert(item, index)
}

// GetElement thread-safely returns the element at 1-based position index.
func (s *SafeStaticList[T]) GetElement(index int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.GetElement(index)
}

// Remove thread-safely deletes the first element equal to item.
func (s *SafeStaticList[T]) Remove(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Remove(item)
}

// RemoveAt thread-safely deletes the element at 1-based position index.
func (s *SafeStaticList[T]) RemoveAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveAt(index)
}

// Clear thread-safely returns every in-use slot to the free chain.
func (s *SafeStaticList[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Clear()
}

// Reset thread-safely rethreads every slot into the free chain.
func (s *SafeStaticList[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Reset()
}

// Release thread-safely drops the slot array.
func (s *SafeStaticList[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Release()
}

// Count thread-safely returns the number of elements.
func (s *SafeStaticList[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Count()
}

// IsEmpty thread-safely reports whether the list holds no elements.
func (s *SafeStaticList[T]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.IsEmpty()
}

// Capacity returns the fixed number of slots.
func (s *SafeStaticList[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Capacity()
}

// Values thread-safely returns the elements in list order.
func (s *SafeStaticList[T]) Values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Values()
}

// All iterates over a snapshot taken under the lock when ranging starts,
// so the caller may mutate the list while ranging. Each range takes a
// fresh snapshot.
func (s *SafeStaticList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

// String thread-safely renders the elements.
func (s *SafeStaticList[T]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.String()
}

// Validate thread-safely checks the slot chains.
func (s *SafeStaticList[T]) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Validate()
}
