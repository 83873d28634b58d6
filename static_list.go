package linear

import (
	"iter"

	"github.com/pavanmanishd/linear/internal/render"
)

// StaticList is a singly-linked list whose nodes live in a fixed-capacity
// slot arena. Links are slot indices; released slots are recycled through
// a free chain threaded through the same array.
//
// StaticList is not goroutine-safe. Use SafeStaticList for concurrent access.
type StaticList[T comparable] struct {
	arena  *arena[T]
	head   SlotIndex
	count  int
	logger *Logger
	debug  bool
}

// NewStaticList creates an empty list backed by capacity slots.
// If capacity <= 0, DefaultCapacity is used. It panics if capacity
// exceeds MaxCapacity.
func NewStaticList[T comparable](capacity int, opts ...Option) *StaticList[T] {
	o := applyOptions(opts)
	a := newArena[T](capacity, o.debugChecks)
	return &StaticList[T]{
		arena:  a,
		head:   NullIndex,
		logger: o.logger.WithCapacity(a.capacity()),
		debug:  o.debugChecks,
	}
}

// Add appends item at the tail. The tail is found by walking from the
// head, so Add is O(n).
func (l *StaticList[T]) Add(item T) error {
	l.panicIfReleased()
	prev := NullIndex
	for i := l.head; i != NullIndex; i = l.arena.slots[i].next {
		prev = i
	}
	return l.link("add", prev, item)
}

// AddFirst prepends item in O(1).
func (l *StaticList[T]) AddFirst(item T) error {
	l.panicIfReleased()
	return l.link("add_first", NullIndex, item)
}

// Insert places item before the element at 1-based position index, so that
// item ends up at position index. Valid positions are [1, Count()].
func (l *StaticList[T]) Insert(item T, index int) error {
	l.panicIfReleased()
	if err := checkPosition(index, l.count); err != nil {
		return err
	}
	return l.link("insert", l.predecessor(index), item)
}

// GetElement returns the element at 1-based position index.
func (l *StaticList[T]) GetElement(index int) (T, error) {
	l.panicIfReleased()
	if err := checkPosition(index, l.count); err != nil {
		var zero T
		return zero, err
	}
	i := l.head
	for step := 1; step < index; step++ {
		i = l.arena.slots[i].next
	}
	return l.arena.slots[i].data, nil
}

// Remove deletes the first element equal to item.
func (l *StaticList[T]) Remove(item T) error {
	l.panicIfReleased()
	prev := NullIndex
	for i := l.head; i != NullIndex; i = l.arena.slots[i].next {
		if l.arena.slots[i].data == item {
			l.unlink(prev)
			return nil
		}
		prev = i
	}
	return notFound(item)
}

// RemoveAt deletes the element at 1-based position index.
func (l *StaticList[T]) RemoveAt(index int) error {
	l.panicIfReleased()
	if err := checkPosition(index, l.count); err != nil {
		return err
	}
	l.unlink(l.predecessor(index))
	return nil
}

// Clear returns every in-use slot to the free chain. The slot array itself
// is only relinked, never reallocated.
func (l *StaticList[T]) Clear() {
	l.panicIfReleased()
	released := l.count
	for l.head != NullIndex {
		l.unlink(NullIndex)
	}
	l.logger.LogClear(released)
}

// Reset empties the list and rethreads all slots into the free chain in
// index order, as right after construction. Unlike Clear it is O(capacity).
func (l *StaticList[T]) Reset() {
	l.panicIfReleased()
	l.arena.reset()
	l.head = NullIndex
	l.count = 0
	l.logger.LogReset(l.arena.capacity())
}

// Release drops the slot array. Any subsequent operation panics.
func (l *StaticList[T]) Release() {
	l.arena.discard()
	l.head = NullIndex
	l.count = 0
}

// Count returns the number of elements.
func (l *StaticList[T]) Count() int {
	return l.count
}

// IsEmpty reports whether the list holds no elements.
func (l *StaticList[T]) IsEmpty() bool {
	return l.count == 0
}

// Capacity returns the fixed number of slots.
func (l *StaticList[T]) Capacity() int {
	return l.arena.capacity()
}

// All returns an iterator over the elements from head to tail.
// Mutating the list while iterating gives undefined results.
func (l *StaticList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.panicIfReleased()
		for i := l.head; i != NullIndex; i = l.arena.slots[i].next {
			if !yield(l.arena.slots[i].data) {
				return
			}
		}
	}
}

// Values returns the elements in list order as a new slice.
func (l *StaticList[T]) Values() []T {
	out := make([]T, 0, l.count)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// String renders the elements comma-separated, or "empty".
func (l *StaticList[T]) String() string {
	return render.Join(l.All())
}

// predecessor returns the slot before 1-based position index, or NullIndex
// for index 1. index must already be validated.
func (l *StaticList[T]) predecessor(index int) SlotIndex {
	if index == 1 {
		return NullIndex
	}
	i := l.head
	for step := 1; step < index-1; step++ {
		i = l.arena.slots[i].next
	}
	return i
}

func (l *StaticList[T]) check() {
	if !l.debug {
		return
	}
	if err := l.Validate(); err != nil {
		panic(err)
	}
}

func (l *StaticList[T]) panicIfReleased() {
	if l.arena.released() {
		panic("linear: use after Release()")
	}
}
