package stack

import (
	"iter"

	"github.com/pavanmanishd/linear"
	"github.com/pavanmanishd/linear/internal/render"
)

// DefaultCapacity is the initial slot count of a Sequential stack.
const DefaultCapacity = 1000

// growIncrement is the number of slots added when a Sequential stack is full.
const growIncrement = 4

// Sequential is an array-backed stack. The top is the last used slot.
type Sequential[T any] struct {
	items []T
	top   int
}

// NewSequential creates an empty stack with room for capacity items.
// If capacity <= 0, DefaultCapacity is used.
func NewSequential[T any](capacity int) *Sequential[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Sequential[T]{items: make([]T, capacity)}
}

// Push puts item on top, growing the array when full.
func (s *Sequential[T]) Push(item T) {
	if s.top == len(s.items) {
		grown := make([]T, len(s.items)+growIncrement)
		copy(grown, s.items)
		s.items = grown
	}
	s.items[s.top] = item
	s.top++
}

// Pop removes and returns the top item.
func (s *Sequential[T]) Pop() (T, error) {
	var zero T
	if s.top == 0 {
		return zero, linear.ErrEmpty
	}
	s.top--
	item := s.items[s.top]
	s.items[s.top] = zero
	return item, nil
}

// Peek returns the top item without removing it.
func (s *Sequential[T]) Peek() (T, error) {
	if s.top == 0 {
		var zero T
		return zero, linear.ErrEmpty
	}
	return s.items[s.top-1], nil
}

// Clear drops every item but keeps the array.
func (s *Sequential[T]) Clear() {
	clear(s.items[:s.top])
	s.top = 0
}

// Count returns the number of items.
func (s *Sequential[T]) Count() int { return s.top }

// IsEmpty reports whether the stack holds no items.
func (s *Sequential[T]) IsEmpty() bool { return s.top == 0 }

// Capacity returns the length of the backing array.
func (s *Sequential[T]) Capacity() int { return len(s.items) }

// All iterates from top to bottom.
func (s *Sequential[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.top - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// String renders the stack from top to bottom, or "empty".
func (s *Sequential[T]) String() string {
	return render.Join(s.All())
}
