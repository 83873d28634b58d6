package linear

import (
	"iter"

	"github.com/pavanmanishd/linear/internal/render"
)

// CircularList is a circular singly-linked list: the last node links back
// to the head. The zero value is an empty list ready to use.
type CircularList[T comparable] struct {
	head  *linkedNode[T]
	count int
}

// NewCircularList creates an empty CircularList.
func NewCircularList[T comparable]() *CircularList[T] {
	return &CircularList[T]{}
}

// Add appends item before the head, i.e. at the logical tail.
func (l *CircularList[T]) Add(item T) error {
	l.pushBack(item)
	return nil
}

// AddFirst prepends item; the new node becomes the head.
func (l *CircularList[T]) AddFirst(item T) error {
	l.head = l.pushBack(item)
	return nil
}

// Insert places item at 1-based position index, valid in [1, Count()].
func (l *CircularList[T]) Insert(item T, index int) error {
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
func (l *CircularList[T]) GetElement(index int) (T, error) {
	if err := checkPosition(index, l.count); err != nil {
		var zero T
		return zero, err
	}
	return l.nodeAt(index).data, nil
}

// Remove deletes the first element equal to item.
func (l *CircularList[T]) Remove(item T) error {
	prev := l.tail()
	for i := 0; i < l.count; i++ {
		cur := prev.next
		if cur.data == item {
			l.unlinkAfter(prev)
			return nil
		}
		prev = cur
	}
	return notFound(item)
}

// RemoveAt deletes the element at 1-based position index.
func (l *CircularList[T]) RemoveAt(index int) error {
	if err := checkPosition(index, l.count); err != nil {
		return err
	}
	if index == 1 {
		l.unlinkAfter(l.tail())
	} else {
		l.unlinkAfter(l.nodeAt(index - 1))
	}
	return nil
}

// Clear drops every node. The ring is broken first so no node keeps the
// others reachable.
func (l *CircularList[T]) Clear() {
	if l.head != nil {
		l.tail().next = nil
	}
	l.head = nil
	l.count = 0
}

// Count returns the number of elements.
func (l *CircularList[T]) Count() int { return l.count }

// IsEmpty reports whether the list holds no elements.
func (l *CircularList[T]) IsEmpty() bool { return l.count == 0 }

// All returns an iterator visiting each element once, starting at the head.
func (l *CircularList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		p := l.head
		for i := 0; i < l.count; i++ {
			if !yield(p.data) {
				return
			}
			p = p.next
		}
	}
}

// String renders the elements comma-separated, or "empty".
func (l *CircularList[T]) String() string {
	return render.Join(l.All())
}

// pushBack links a new node between the tail and the head and returns it.
func (l *CircularList[T]) pushBack(item T) *linkedNode[T] {
	node := &linkedNode[T]{data: item}
	if l.head == nil {
		node.next = node
		l.head = node
	} else {
		t := l.tail()
		node.next = l.head
		t.next = node
	}
	l.count++
	return node
}

// unlinkAfter removes prev.next, moving the head if needed.
func (l *CircularList[T]) unlinkAfter(prev *linkedNode[T]) {
	victim := prev.next
	if l.count == 1 {
		l.head = nil
	} else {
		prev.next = victim.next
		if victim == l.head {
			l.head = victim.next
		}
	}
	victim.next = nil
	l.count--
}

// tail returns the node before the head, or nil when empty.
func (l *CircularList[T]) tail() *linkedNode[T] {
	if l.head == nil {
		return nil
	}
	p := l.head
	for p.next != l.head {
		p = p.next
	}
	return p
}

func (l *CircularList[T]) nodeAt(index int) *linkedNode[T] {
	p := l.head
	for i := 1; i < index; i++ {
		p = p.next
	}
	return p
}
