package linear

import (
	"fmt"
	"iter"

	"github.com/pavanmanishd/linear/internal/render"
)

const (
	// sequentialInitSize is the slot count of a new SequentialList.
	sequentialInitSize = 2
	// sequentialIncrement is the number of slots added when a SequentialList is full.
	sequentialIncrement = 4
)

// SequentialList is an array-backed list that grows by a fixed increment
// when full.
type SequentialList[T comparable] struct {
	items []T
	count int
}

// NewSequentialList creates an empty SequentialList.
func NewSequentialList[T comparable]() *SequentialList[T] {
	return &SequentialList[T]{items: make([]T, sequentialInitSize)}
}

// Add appends item at the tail in amortised O(1).
func (l *SequentialList[T]) Add(item T) error {
	l.ensureRoom()
	l.items[l.count] = item
	l.count++
	return nil
}

// AddFirst prepends item, shifting every element right.
func (l *SequentialList[T]) AddFirst(item T) error {
	l.ensureRoom()
	copy(l.items[1:l.count+1], l.items[:l.count])
	l.items[0] = item
	l.count++
	return nil
}

// Insert places item at 1-based position index, valid in [1, Count()].
func (l *SequentialList[T]) Insert(item T, index int) error {
	if err := checkPosition(index, l.count); err != nil {
		return err
	}
	l.ensureRoom()
	pos := index - 1
	copy(l.items[pos+1:l.count+1], l.items[pos:l.count])
	l.items[pos] = item
	l.count++
	return nil
}

// GetElement returns the element at 1-based position index.
func (l *SequentialList[T]) GetElement(index int) (T, error) {
	if err := checkPosition(index, l.count); err != nil {
		var zero T
		return zero, err
	}
	return l.items[index-1], nil
}

// At returns the element at 0-based position pos.
func (l *SequentialList[T]) At(pos int) (T, error) {
	if err := l.checkOffset(pos); err != nil {
		var zero T
		return zero, err
	}
	return l.items[pos], nil
}

// Set overwrites the element at 0-based position pos.
func (l *SequentialList[T]) Set(pos int, item T) error {
	if err := l.checkOffset(pos); err != nil {
		return err
	}
	l.items[pos] = item
	return nil
}

func (l *SequentialList[T]) checkOffset(pos int) error {
	if pos < 0 || pos >= l.count {
		return fmt.Errorf("%w: position %d not in [0, %d)", ErrIndexOutOfRange, pos, l.count)
	}
	return nil
}

// Remove deletes the first element equal to item.
func (l *SequentialList[T]) Remove(item T) error {
	for i := 0; i < l.count; i++ {
		if l.items[i] == item {
			l.deleteAt(i)
			return nil
		}
	}
	return notFound(item)
}

// RemoveAt deletes the element at 1-based position index.
func (l *SequentialList[T]) RemoveAt(index int) error {
	if err := checkPosition(index, l.count); err != nil {
		return err
	}
	l.deleteAt(index - 1)
	return nil
}

// Clear empties the list but keeps the backing array.
func (l *SequentialList[T]) Clear() {
	clear(l.items[:l.count])
	l.count = 0
}

// Count returns the number of elements.
func (l *SequentialList[T]) Count() int { return l.count }

// IsEmpty reports whether the list holds no elements.
func (l *SequentialList[T]) IsEmpty() bool { return l.count == 0 }

// Capacity returns the length of the backing array.
func (l *SequentialList[T]) Capacity() int { return len(l.items) }

// All returns an iterator over the elements in order.
func (l *SequentialList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.count; i++ {
			if !yield(l.items[i]) {
				return
			}
		}
	}
}

// String renders the elements comma-separated, or "empty".
func (l *SequentialList[T]) String() string {
	return render.Join(l.All())
}

func (l *SequentialList[T]) ensureRoom() {
	if l.count < len(l.items) {
		return
	}
	grown := make([]T, len(l.items)+sequentialIncrement)
	copy(grown, l.items)
	l.items = grown
}

func (l *SequentialList[T]) deleteAt(pos int) {
	copy(l.items[pos:l.count-1], l.items[pos+1:l.count])
	var zero T
	l.items[l.count-1] = zero
	l.count--
}
