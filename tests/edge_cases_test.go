package linear_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pavanmanishd/linear"
	"github.com/pavanmanishd/linear/queue"
	"github.com/pavanmanishd/linear/stack"
)

// TestEdgeCases covers boundary behaviour through the public API only
func TestEdgeCases(t *testing.T) {
	t.Run("ZeroAndNegativeCapacities", func(t *testing.T) {
		testCases := []struct {
			capacity int
			expected int
		}{
			{0, linear.DefaultCapacity},
			{-1, linear.DefaultCapacity},
			{-1000, linear.DefaultCapacity},
			{1, 1},
			{4096, 4096},
		}

		for _, tc := range testCases {
			l := linear.NewStaticList[int](tc.capacity)
			if l.Capacity() != tc.expected {
				t.Errorf("NewStaticList(%d): got capacity %d, want %d", tc.capacity, l.Capacity(), tc.expected)
			}
			l.Release()
		}
	})

	t.Run("SingleSlotPool", func(t *testing.T) {
		l := linear.NewStaticList[string](1, linear.WithDebugChecks(true))
		defer l.Release()

		for i := 0; i < 100; i++ {
			if err := l.AddFirst("x"); err != nil {
				t.Fatalf("AddFirst round %d: %v", i, err)
			}
			if err := l.Add("y"); !errors.Is(err, linear.ErrCapacityExhausted) {
				t.Fatalf("Add on full single-slot pool: got %v, want ErrCapacityExhausted", err)
			}
			if err := l.Remove("x"); err != nil {
				t.Fatalf("Remove round %d: %v", i, err)
			}
		}
		if err := l.Validate(); err != nil {
			t.Error(err)
		}
	})

	t.Run("UseAfterRelease", func(t *testing.T) {
		l := linear.NewStaticList[int](8)
		l.Release()

		testPanic := func(name string, fn func()) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s: expected panic after Release()", name)
				}
			}()
			fn()
		}

		testPanic("Add", func() { _ = l.Add(1) })
		testPanic("AddFirst", func() { _ = l.AddFirst(1) })
		testPanic("Insert", func() { _ = l.Insert(1, 1) })
		testPanic("GetElement", func() { _, _ = l.GetElement(1) })
		testPanic("Remove", func() { _ = l.Remove(1) })
		testPanic("RemoveAt", func() { _ = l.RemoveAt(1) })
		testPanic("Clear", func() { l.Clear() })
		testPanic("Reset", func() { l.Reset() })
		testPanic("Validate", func() { _ = l.Validate() })
		testPanic("String", func() { _ = l.String() })
	})

	t.Run("MultipleReleases", func(t *testing.T) {
		l := linear.NewStaticList[int](8)
		l.Release()
		// Multiple releases should be safe
		l.Release()
		l.Release()
	})

	t.Run("IndexErrorDetails", func(t *testing.T) {
		l := linear.NewLinkedList[int]()
		_ = l.Add(1)

		err := l.RemoveAt(7)
		var ie *linear.IndexError
		if !errors.As(err, &ie) {
			t.Fatalf("RemoveAt(7) error %T, want *IndexError", err)
		}
		if ie.Index != 7 || ie.Count != 1 {
			t.Errorf("IndexError = %+v, want Index 7 Count 1", ie)
		}
	})

	t.Run("NotFoundMessage", func(t *testing.T) {
		l := linear.NewStaticList[string](2)
		err := l.Remove("ghost")
		if !errors.Is(err, linear.ErrNotFound) {
			t.Fatalf("Remove on empty list: got %v, want ErrNotFound", err)
		}
		if err.Error() != "linear: item not found: ghost" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("EmptyContainers", func(t *testing.T) {
		if _, err := stack.NewLinked[int]().Pop(); !errors.Is(err, linear.ErrEmpty) {
			t.Errorf("Pop on empty linked stack: got %v", err)
		}
		if _, err := stack.NewSequential[int](1).Peek(); !errors.Is(err, linear.ErrEmpty) {
			t.Errorf("Peek on empty sequential stack: got %v", err)
		}
		if _, err := queue.NewLinked[int]().Dequeue(); !errors.Is(err, linear.ErrEmpty) {
			t.Errorf("Dequeue on empty linked queue: got %v", err)
		}
		if _, err := queue.NewSequential[int](1).Peek(); !errors.Is(err, linear.ErrEmpty) {
			t.Errorf("Peek on empty sequential queue: got %v", err)
		}
	})
}

// TestPartitionAcrossClearCycles checks that no slot leaks over many
// fill/clear rounds
func TestPartitionAcrossClearCycles(t *testing.T) {
	const capacity = 128
	l := linear.NewStaticList[int](capacity)
	defer l.Release()

	for round := 0; round < 50; round++ {
		for i := 0; i < capacity; i++ {
			var err error
			if i%2 == 0 {
				err = l.Add(i)
			} else {
				err = l.AddFirst(i)
			}
			if err != nil {
				t.Fatalf("round %d insert %d: %v", round, i, err)
			}
		}
		// Punch holes so the free chain is not in index order
		for pos := capacity / 2; pos >= 1; pos -= 7 {
			if err := l.RemoveAt(pos); err != nil {
				t.Fatalf("round %d RemoveAt(%d): %v", round, pos, err)
			}
		}
		if err := l.Validate(); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		l.Clear()
		if m := l.Metrics(); m.Free != capacity {
			t.Fatalf("round %d: free after Clear = %d, want %d", round, m.Free, capacity)
		}
	}
}

// TestLargeElements makes sure payload size does not matter to the pool
func TestLargeElements(t *testing.T) {
	type block [256]byte
	l := linear.NewStaticList[block](16)
	defer l.Release()

	for i := 0; i < 16; i++ {
		var b block
		b[0] = byte(i)
		if err := l.Add(b); err != nil {
			t.Fatal(err)
		}
	}
	for i := 1; i <= 16; i++ {
		b, err := l.GetElement(i)
		if err != nil {
			t.Fatal(err)
		}
		if b[0] != byte(i-1) {
			t.Errorf("element %d: got marker %d, want %d", i, b[0], i-1)
		}
	}
}

// TestStringRendering compares the rendering of every structure
func TestStringRendering(t *testing.T) {
	values := []int{3, 1, 2}

	lists := map[string]linear.List[int]{
		"static":     linear.NewStaticList[int](4),
		"linked":     linear.NewLinkedList[int](),
		"circular":   linear.NewCircularList[int](),
		"sequential": linear.NewSequentialList[int](),
	}
	for name, l := range lists {
		if got := l.String(); got != "empty" {
			t.Errorf("%s: empty rendering = %q", name, got)
		}
		for _, v := range values {
			_ = l.Add(v)
		}
		if got := l.String(); got != "3, 1, 2" {
			t.Errorf("%s: rendering = %q, want %q", name, got, "3, 1, 2")
		}
	}

	s := stack.NewLinked[int]()
	q := queue.NewSequential[int](2)
	for _, v := range values {
		s.Push(v)
		q.Enqueue(v)
	}
	if got := fmt.Sprint(s); got != "2, 1, 3" {
		t.Errorf("stack rendering = %q", got)
	}
	if got := fmt.Sprint(q); got != "3, 1, 2" {
		t.Errorf("queue rendering = %q", got)
	}
}
