package linear

import (
	"iter"

	"github.com/pavanmanishd/linear/internal/render"
)

type linkedNode[T any] struct {
	data T
	next *linkedNode[T]
}

// LinkedList is a pointer-linked singly list. The zero value is an empty
// list ready to use.
type LinkedList[T comparable] struct {
	head  *linkedNode[T]
	count int
}

// NewLinkedList creates an empty LinkedList.
func NewLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Add appends item at the tail in O(n).
func (l *LinkedList[T]) Add(item T) error {
	node := &linkedNode[T]{data: item}
	if l.head == nil {
		l.head = node
	} else {
		p := l.head
		for p.next != nil {
			p = p.next
		}
		p.next = node
	}
	l.count++
	return nil
}

// AddFirst prepends item in O(1).
func (l *LinkedList[T]) AddFirst(item T) error {
	l.head = &linkedNode[T]{data: item, next: l.head}
	l.count++
	return nil
}

// Insert places item at 1-based position index, valid in [1, Count()].
func (l *LinkedList[T]) Insert(item T, index int) error {
	if err := checkPosition(index, l.count); err != nil {
		return err
	}
	if index == 1 {
		return l.AddFirst(item)
	}
	p := l.nodeAt(index - 1)
	p.next = &linkedNode[T]{data: item, next: p.next}
	l.count++
	return nil
}

// GetElement returns the element at 1-based position index.
func (l *LinkedList[T]) GetElement(index int) (T, error) {
	if err := checkPosition(index, l.count); err != nil {
		var zero T
		return zero, err
	}
	return l.nodeAt(index).data, nil
}

// Remove deletes the first element equal to item.
func (l *LinkedList[T]) Remove(item T) error {
	for pp := &l.head; *pp != nil; pp = &(*pp).next {
		if (*pp).data == item {
			*pp = (*pp).next
			l.count--
			return nil
		}
	}
	return notFound(item)
}

// RemoveAt deletes the element at 1-based position index.
func (l *LinkedList[T]) RemoveAt(index int) error {
	if err := checkPosition(index, l.count); err != nil {
		return err
	}
	if index == 1 {
		l.head = l.head.next
	} else {
		p := l.nodeAt(index - 1)
		p.next = p.next.next
	}
	l.count--
	return nil
}

// Clear drops every node.
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.count = 0
}

// Count returns the number of elements.
func (l *LinkedList[T]) Count() int { return l.count }

// IsEmpty reports whether the list holds no elements.
func (l *LinkedList[T]) IsEmpty() bool { return l.count == 0 }

// All returns an iterator over the elements from head to tail.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := l.head; p != nil; p = p.next {
			if !yield(p.data) {
				return
			}
		}
	}
}

// String renders the elements comma-separated, or "empty".
func (l *LinkedList[T]) String() string {
	return render.Join(l.All())
}

// nodeAt returns the node at a validated 1-based position.
func (l *LinkedList[T]) nodeAt(index int) *linkedNode[T] {
	p := l.head
	for i := 1; i < index; i++ {
		p = p.next
	}
	return p
}
