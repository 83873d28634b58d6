// Package linear implements classic linear data structures, built around a
// static linked list: a singly-linked list whose nodes live in a fixed-size
// slot arena and are linked by slot indices instead of pointers.
//
// # Overview
//
// A StaticList multiplexes two singly-linked chains over one slot array:
//
//   - The logical chain holds the visible elements, in list order.
//   - The free chain holds every unused slot and acts as the allocator.
//
// Every slot is on exactly one chain at a time. Inserting pops a slot from
// the free chain and splices it into the logical chain; removing unlinks a
// slot and pushes it back. The arena is allocated once and never grows.
//
// The package also provides pointer-linked (LinkedList, CircularList) and
// array-backed (SequentialList) lists with the same List contract. Stacks
// and queues live in the stack and queue subpackages.
//
// # Basic Usage
//
//	l := linear.NewStaticList[int](64) // 64 slots, fixed
//	defer l.Release()
//
//	_ = l.Add(10)       // [10]
//	_ = l.AddFirst(5)   // [5 10]
//	_ = l.Insert(7, 2)  // [5 7 10]
//
//	v, _ := l.GetElement(2) // 7
//	_ = l.Remove(10)        // [5 7]
//
//	for v := range l.All() {
//		fmt.Println(v)
//	}
//
// Positions are 1-based throughout. Insert(item, i) places item at
// position i, so valid positions are [1, Count()].
//
// # Errors
//
// Operations return sentinel errors to be checked with errors.Is:
//
//   - ErrIndexOutOfRange for a bad position (as an *IndexError)
//   - ErrCapacityExhausted when a StaticList has no free slot
//   - ErrNotFound when Remove finds no equal element
//   - ErrEmpty from the stack and queue packages
//
// # Thread Safety
//
// None of the list types are thread-safe. For concurrent access to a
// static list, use SafeStaticList:
//
//	s := linear.NewSafeStaticList[string](128)
//	_ = s.Add("job")
//
// # Debugging
//
// WithDebugChecks makes the arena detect double releases and validates both
// chains after every mutation. Validate can also be called directly; it
// reports corruption as an error wrapping ErrCorrupted.
//
// # Metrics and Monitoring
//
//	m := l.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Free slots: %d of %d\n", m.Free, m.Capacity)
//
// The promstats subpackage exports the same figures to Prometheus.
package linear
