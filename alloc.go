package linear

import "fmt"

// allocate pops the head of the free chain. The popped slot's next field
// is left stale; the caller must splice it into the logical chain.
func (a *arena[T]) allocate() (SlotIndex, error) {
	if a.freeHead == NullIndex {
		a.exhausted++
		return NullIndex, ErrCapacityExhausted
	}
	i := a.freeHead
	a.freeHead = a.slots[i].next
	a.free--
	a.allocations++
	if a.freeSet != nil {
		a.freeSet.Clear(uint(i))
	}
	return i, nil
}

// release pushes i onto the free chain and zeroes its payload.
// Each index must be released exactly once per allocation; with debug
// checks a violation panics, without them it silently corrupts the chain.
func (a *arena[T]) release(i SlotIndex) {
	if a.freeSet != nil {
		if i < 0 || int(i) >= len(a.slots) {
			panic(fmt.Sprintf("linear: release of slot %d outside arena of %d", i, len(a.slots)))
		}
		if a.freeSet.Test(uint(i)) {
			panic(fmt.Sprintf("linear: double release of slot %d", i))
		}
		a.freeSet.Set(uint(i))
	}
	var zero T
	s := &a.slots[i]
	s.data = zero
	s.next = a.freeHead
	a.freeHead = i
	a.free++
	a.releases++
}

// link allocates a slot for item and splices it in after prev, or at the
// head when prev is NullIndex. It is the only caller of allocate.
func (l *StaticList[T]) link(op string, prev SlotIndex, item T) error {
	i, err := l.arena.allocate()
	if err != nil {
		l.logger.LogExhausted(op, l.count)
		return err
	}
	slots := l.arena.slots
	s := &slots[i]
	s.data = item
	if prev == NullIndex {
		s.next = l.head
		l.head = i
	} else {
		p := &slots[prev]
		s.next = p.next
		p.next = i
	}
	l.count++
	l.check()
	return nil
}

// unlink detaches the slot after prev, or the head when prev is NullIndex,
// and hands it back to the allocator. It is the only caller of release.
func (l *StaticList[T]) unlink(prev SlotIndex) {
	slots := l.arena.slots
	var i SlotIndex
	if prev == NullIndex {
		i = l.head
		l.head = slots[i].next
	} else {
		p := &slots[prev]
		i = p.next
		p.next = slots[i].next
	}
	l.count--
	l.arena.release(i)
	l.check()
}
