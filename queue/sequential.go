package queue

import (
	"iter"

	"github.com/pavanmanishd/linear"
	"github.com/pavanmanishd/linear/internal/render"
)

// DefaultCapacity is the initial slot count of a Sequential queue.
const DefaultCapacity = 1000

// Sequential is a ring buffer queue. When full it doubles its array and
// unwraps the contents so the front is at slot 0 again.
type Sequential[T any] struct {
	items []T
	front int
	count int
}

// NewSequential creates an empty queue with room for capacity items.
// If capacity <= 0, DefaultCapacity is used.
func NewSequential[T any](capacity int) *Sequential[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Sequential[T]{items: make([]T, capacity)}
}

// Enqueue appends item at the rear.
func (q *Sequential[T]) Enqueue(item T) {
	if q.count == len(q.items) {
		q.grow()
	}
	q.items[(q.front+q.count)%len(q.items)] = item
	q.count++
}

// Dequeue removes and returns the front item in O(1).
func (q *Sequential[T]) Dequeue() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, linear.ErrEmpty
	}
	item := q.items[q.front]
	q.items[q.front] = zero
	q.front = (q.front + 1) % len(q.items)
	q.count--
	return item, nil
}

// Peek returns the front item without removing it.
func (q *Sequential[T]) Peek() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, linear.ErrEmpty
	}
	return q.items[q.front], nil
}

// Clear drops every item but keeps the array.
func (q *Sequential[T]) Clear() {
	clear(q.items)
	q.front = 0
	q.count = 0
}

// Count returns the number of items.
func (q *Sequential[T]) Count() int { return q.count }

// IsEmpty reports whether the queue holds no items.
func (q *Sequential[T]) IsEmpty() bool { return q.count == 0 }

// Capacity returns the length of the backing array.
func (q *Sequential[T]) Capacity() int { return len(q.items) }

// All iterates from front to rear.
func (q *Sequential[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.count; i++ {
			if !yield(q.items[(q.front+i)%len(q.items)]) {
				return
			}
		}
	}
}

// String renders the queue from front to rear, or "empty".
func (q *Sequential[T]) String() string {
	return render.Join(q.All())
}

func (q *Sequential[T]) grow() {
	size := 2 * len(q.items)
	if size == 0 {
		size = 4
	}
	grown := make([]T, size)
	for i := 0; i < q.count; i++ {
		grown[i] = q.items[(q.front+i)%len(q.items)]
	}
	q.items = grown
	q.front = 0
}
