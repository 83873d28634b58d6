package stack

import (
	"iter"

	"github.com/pavanmanishd/linear"
	"github.com/pavanmanishd/linear/internal/render"
)

type node[T any] struct {
	data T
	prev *node[T]
}

// Linked is a stack of nodes each pointing at the one below it.
// The zero value is an empty stack ready to use.
type Linked[T any] struct {
	top   *node[T]
	count int
}

// NewLinked creates an empty Linked stack.
func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{}
}

// Push puts item on top.
func (s *Linked[T]) Push(item T) {
	s.top = &node[T]{data: item, prev: s.top}
	s.count++
}

// Pop removes and returns the top item.
func (s *Linked[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, linear.ErrEmpty
	}
	n := s.top
	s.top = n.prev
	n.prev = nil
	s.count--
	return n.data, nil
}

// Peek returns the top item without removing it.
func (s *Linked[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, linear.ErrEmpty
	}
	return s.top.data, nil
}

// Clear drops every item.
func (s *Linked[T]) Clear() {
	s.top = nil
	s.count = 0
}

// Count returns the number of items.
func (s *Linked[T]) Count() int { return s.count }

// IsEmpty reports whether the stack holds no items.
func (s *Linked[T]) IsEmpty() bool { return s.count == 0 }

// All iterates from top to bottom.
func (s *Linked[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.top; n != nil; n = n.prev {
			if !yield(n.data) {
				return
			}
		}
	}
}

// String renders the stack from top to bottom, or "empty".
func (s *Linked[T]) String() string {
	return render.Join(s.All())
}
