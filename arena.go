package linear

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// DefaultCapacity is the slot count used when a non-positive capacity is requested.
const DefaultCapacity = 1000

// MaxCapacity is the largest slot count a SlotIndex can address.
const MaxCapacity = math.MaxInt32

// SlotIndex addresses one slot of an arena. Links in both the free chain
// and the logical chain are SlotIndex values, never pointers.
type SlotIndex int32

// NullIndex terminates a chain.
const NullIndex SlotIndex = -1

// slot is one fixed cell of the arena. next belongs to whichever chain
// currently owns the slot.
type slot[T any] struct {
	data T
	next SlotIndex
}

// arena is a fixed-capacity slot store with a free-list allocator threaded
// through the unused slots. It never grows.
type arena[T any] struct {
	slots    []slot[T]
	freeHead SlotIndex
	free     int

	// freeSet mirrors the free chain when debug checks are on; nil otherwise.
	freeSet *bitset.BitSet

	allocations uint64
	releases    uint64
	exhausted   uint64
}

// newArena creates an arena with capacity slots, all of them free.
// If capacity <= 0, DefaultCapacity is used.
func newArena[T any](capacity int, tracked bool) *arena[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if capacity > MaxCapacity {
		panic(fmt.Sprintf("linear: capacity %d exceeds MaxCapacity", capacity))
	}
	a := &arena[T]{slots: make([]slot[T], capacity)}
	if tracked {
		a.freeSet = bitset.New(uint(capacity))
	}
	a.reset()
	return a
}

// reset threads every slot into the free chain in index order and zeroes
// all payloads.
func (a *arena[T]) reset() {
	var zero T
	last := len(a.slots) - 1
	for i := range a.slots {
		a.slots[i].data = zero
		if i == last {
			a.slots[i].next = NullIndex
		} else {
			a.slots[i].next = SlotIndex(i + 1)
		}
	}
	a.freeHead = 0
	a.free = len(a.slots)
	if a.freeSet != nil {
		a.freeSet.ClearAll()
		a.freeSet.FlipRange(0, uint(len(a.slots)))
	}
}

// discard drops the slot array and makes the arena unusable.
func (a *arena[T]) discard() {
	a.slots = nil
	a.freeHead = NullIndex
	a.free = 0
	a.freeSet = nil
}

func (a *arena[T]) released() bool {
	return a.slots == nil
}

// capacity returns the fixed number of slots.
func (a *arena[T]) capacity() int {
	return len(a.slots)
}

// inUse returns the number of slots outside the free chain.
func (a *arena[T]) inUse() int {
	return len(a.slots) - a.free
}
