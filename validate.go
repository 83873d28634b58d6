package linear

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Validate walks the logical chain and the free chain and checks that they
// partition the arena: no slot is reachable twice, the chains are disjoint,
// together they cover every slot, and their lengths match the bookkeeping.
// A violation is reported as an error wrapping ErrCorrupted.
func (l *StaticList[T]) Validate() error {
	l.panicIfReleased()
	a := l.arena

	used := roaring.New()
	n, err := walkChain(a.slots, l.head, used, "logical")
	if err != nil {
		return err
	}
	if n != l.count {
		return fmt.Errorf("%w: logical chain has %d slots, count is %d", ErrCorrupted, n, l.count)
	}

	free := roaring.New()
	m, err := walkChain(a.slots, a.freeHead, free, "free")
	if err != nil {
		return err
	}
	if m != a.free {
		return fmt.Errorf("%w: free chain has %d slots, expected %d", ErrCorrupted, m, a.free)
	}

	if used.Intersects(free) {
		shared := roaring.And(used, free)
		return fmt.Errorf("%w: slot %d is on both chains", ErrCorrupted, shared.Minimum())
	}
	if total := n + m; total != a.capacity() {
		return fmt.Errorf("%w: %d of %d slots reachable", ErrCorrupted, total, a.capacity())
	}

	if a.freeSet != nil && a.freeSet.Count() != uint(m) {
		return fmt.Errorf("%w: %d slots marked free, free chain has %d", ErrCorrupted, a.freeSet.Count(), m)
	}
	return nil
}

// walkChain follows next links from start, recording every index in seen.
func walkChain[T any](slots []slot[T], start SlotIndex, seen *roaring.Bitmap, name string) (int, error) {
	n := 0
	for i := start; i != NullIndex; i = slots[i].next {
		if i < 0 || int(i) >= len(slots) {
			return n, fmt.Errorf("%w: %s chain points outside the arena at %d", ErrCorrupted, name, i)
		}
		if !seen.CheckedAdd(uint32(i)) {
			return n, fmt.Errorf("%w: %s chain revisits slot %d", ErrCorrupted, name, i)
		}
		n++
	}
	return n, nil
}
