package queue

import (
	"iter"

	"github.com/pavanmanishd/linear"
	"github.com/pavanmanishd/linear/internal/render"
)

type node[T any] struct {
	data T
	next *node[T]
}

// Linked is a queue of nodes with front and rear pointers, so both ends
// are O(1). The zero value is an empty queue ready to use.
type Linked[T any] struct {
	front *node[T]
	rear  *node[T]
	count int
}

// NewLinked creates an empty Linked queue.
func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{}
}

// Enqueue appends item at the rear.
func (q *Linked[T]) Enqueue(item T) {
	n := &node[T]{data: item}
	if q.rear == nil {
		q.front = n
	} else {
		q.rear.next = n
	}
	q.rear = n
	q.count++
}

// Dequeue removes and returns the front item.
func (q *Linked[T]) Dequeue() (T, error) {
	if q.front == nil {
		var zero T
		return zero, linear.ErrEmpty
	}
	n := q.front
	q.front = n.next
	if q.front == nil {
		q.rear = nil
	}
	n.next = nil
	q.count--
	return n.data, nil
}

// Peek returns the front item without removing it.
func (q *Linked[T]) Peek() (T, error) {
	if q.front == nil {
		var zero T
		return zero, linear.ErrEmpty
	}
	return q.front.data, nil
}

// Clear drops every item.
func (q *Linked[T]) Clear() {
	q.front = nil
	q.rear = nil
	q.count = 0
}

// Count returns the number of items.
func (q *Linked[T]) Count() int { return q.count }

// IsEmpty reports whether the queue holds no items.
func (q *Linked[T]) IsEmpty() bool { return q.count == 0 }

// All iterates from front to rear.
func (q *Linked[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.front; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// String renders the queue from front to rear, or "empty".
func (q *Linked[T]) String() string {
	return render.Join(q.All())
}
