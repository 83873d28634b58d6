package linear

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates a position outside the valid range of a list.
	ErrIndexOutOfRange = errors.New("linear: index out of range")

	// ErrCapacityExhausted indicates that a fixed-capacity list has no free slot left.
	ErrCapacityExhausted = errors.New("linear: capacity exhausted")

	// ErrNotFound indicates that a removal by value found no matching element.
	ErrNotFound = errors.New("linear: item not found")

	// ErrEmpty indicates a pop, peek or dequeue on an empty stack or queue.
	ErrEmpty = errors.New("linear: container is empty")

	// ErrCorrupted indicates a broken free chain or logical chain.
	ErrCorrupted = errors.New("linear: slot chains corrupted")
)

// IndexError reports a rejected 1-based position together with the list
// length at the time of the call.
//
// IndexError unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("linear: index %d out of range [1, %d]", e.Index, e.Count)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// checkPosition returns an *IndexError unless 1 <= index <= count.
func checkPosition(index, count int) error {
	if index < 1 || index > count {
		return &IndexError{Index: index, Count: count}
	}
	return nil
}

// notFound wraps ErrNotFound with the rendered item.
func notFound[T any](item T) error {
	return fmt.Errorf("%w: %v", ErrNotFound, item)
}
