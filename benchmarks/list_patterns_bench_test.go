package linear_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/linear"
	"github.com/pavanmanishd/linear/queue"
	"github.com/pavanmanishd/linear/stack"
)

var listKinds = []struct {
	name string
	new  func(capacity int) linear.List[int]
}{
	{"Static", func(c int) linear.List[int] { return linear.NewStaticList[int](c) }},
	{"Linked", func(int) linear.List[int] { return linear.NewLinkedList[int]() }},
	{"Circular", func(int) linear.List[int] { return linear.NewCircularList[int]() }},
	{"Sequential", func(int) linear.List[int] { return linear.NewSequentialList[int]() }},
}

// BenchmarkPrependChurn measures O(1) head insert/remove, the pattern a
// free-list pool is built for
func BenchmarkPrependChurn(b *testing.B) {
	for _, k := range listKinds {
		b.Run(k.name, func(b *testing.B) {
			l := k.new(1024)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = l.AddFirst(i)
				if l.Count() == 1024 {
					l.Clear()
				}
			}
		})
	}
}

// BenchmarkAppend measures tail insertion, which walks the chain on the
// linked variants
func BenchmarkAppend(b *testing.B) {
	sizes := []int{16, 256}

	for _, size := range sizes {
		for _, k := range listKinds {
			b.Run(fmt.Sprintf("%s_%d", k.name, size), func(b *testing.B) {
				l := k.new(size)
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_ = l.Add(i)
					if l.Count() == size {
						l.Clear()
					}
				}
			})
		}
	}
}

// BenchmarkRandomAccess measures GetElement over a full list
func BenchmarkRandomAccess(b *testing.B) {
	const size = 512
	for _, k := range listKinds {
		b.Run(k.name, func(b *testing.B) {
			l := k.new(size)
			for i := 0; i < size; i++ {
				_ = l.Add(i)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = l.GetElement(i%size + 1)
			}
		})
	}
}

// BenchmarkIterate measures a full range over All
func BenchmarkIterate(b *testing.B) {
	const size = 1024
	for _, k := range listKinds {
		b.Run(k.name, func(b *testing.B) {
			l := k.new(size)
			for i := 0; i < size; i++ {
				_ = l.AddFirst(i)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				sum := 0
				for v := range l.All() {
					sum += v
				}
				_ = sum
			}
		})
	}
}

// BenchmarkStackAndQueue compares the linked and array-backed forms
func BenchmarkStackAndQueue(b *testing.B) {
	b.Run("Stack_Linked", func(b *testing.B) {
		s := stack.NewLinked[int]()
		for i := 0; i < b.N; i++ {
			s.Push(i)
			if i%2 == 1 {
				_, _ = s.Pop()
			}
		}
	})

	b.Run("Stack_Sequential", func(b *testing.B) {
		s := stack.NewSequential[int](0)
		for i := 0; i < b.N; i++ {
			s.Push(i)
			if i%2 == 1 {
				_, _ = s.Pop()
			}
		}
	})

	b.Run("Queue_Linked", func(b *testing.B) {
		q := queue.NewLinked[int]()
		for i := 0; i < b.N; i++ {
			q.Enqueue(i)
			if i%2 == 1 {
				_, _ = q.Dequeue()
			}
		}
	})

	b.Run("Queue_Sequential", func(b *testing.B) {
		q := queue.NewSequential[int](0)
		for i := 0; i < b.N; i++ {
			q.Enqueue(i)
			if i%2 == 1 {
				_, _ = q.Dequeue()
			}
		}
	})
}
