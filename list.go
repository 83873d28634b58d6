package linear

import (
	"fmt"
	"iter"
)

// List is the contract shared by every list in this package. Positions
// are 1-based.
type List[T comparable] interface {
	Add(item T) error
	AddFirst(item T) error
	Insert(item T, index int) error
	GetElement(index int) (T, error)
	Remove(item T) error
	RemoveAt(index int) error
	Clear()
	Count() int
	IsEmpty() bool
	All() iter.Seq[T]
	fmt.Stringer
}

var (
	_ List[int] = (*StaticList[int])(nil)
	_ List[int] = (*SafeStaticList[int])(nil)
	_ List[int] = (*LinkedList[int])(nil)
	_ List[int] = (*CircularList[int])(nil)
	_ List[int] = (*SequentialList[int])(nil)
)
