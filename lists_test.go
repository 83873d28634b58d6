package linear

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listFactories = []struct {
	name string
	new  func() List[int]
}{
	{"static", func() List[int] { return NewStaticList[int](16, WithDebugChecks(true)) }},
	{"safe static", func() List[int] { return NewSafeStaticList[int](16) }},
	{"linked", func() List[int] { return NewLinkedList[int]() }},
	{"circular", func() List[int] { return NewCircularList[int]() }},
	{"sequential", func() List[int] { return NewSequentialList[int]() }},
	{"zero linked", func() List[int] { return &LinkedList[int]{} }},
	{"zero circular", func() List[int] { return &CircularList[int]{} }},
	{"zero sequential", func() List[int] { return &SequentialList[int]{} }},
}

func fill(t *testing.T, l List[int], values ...int) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, l.Add(v))
	}
}

func TestLists_Contract(t *testing.T) {
	for _, f := range listFactories {
		t.Run(f.name, func(t *testing.T) {
			l := f.new()
			assert.True(t, l.IsEmpty())
			assert.Equal(t, "empty", l.String())

			fill(t, l, 10, 20, 30)
			require.NoError(t, l.AddFirst(5))
			require.NoError(t, l.Insert(15, 3))
			assert.Equal(t, []int{5, 10, 15, 20, 30}, slices.Collect(l.All()))
			assert.Equal(t, "5, 10, 15, 20, 30", l.String())
			assert.Equal(t, 5, l.Count())

			v, err := l.GetElement(1)
			require.NoError(t, err)
			assert.Equal(t, 5, v)
			v, err = l.GetElement(5)
			require.NoError(t, err)
			assert.Equal(t, 30, v)

			require.NoError(t, l.Remove(15))
			require.NoError(t, l.RemoveAt(1))
			require.NoError(t, l.RemoveAt(l.Count()))
			assert.Equal(t, []int{10, 20}, slices.Collect(l.All()))

			l.Clear()
			assert.True(t, l.IsEmpty())
			assert.Empty(t, slices.Collect(l.All()))

			fill(t, l, 1)
			assert.Equal(t, "1", l.String())
		})
	}
}

func TestLists_Errors(t *testing.T) {
	for _, f := range listFactories {
		t.Run(f.name, func(t *testing.T) {
			l := f.new()

			_, err := l.GetElement(1)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			assert.ErrorIs(t, l.RemoveAt(1), ErrIndexOutOfRange)
			assert.ErrorIs(t, l.Insert(1, 1), ErrIndexOutOfRange)
			assert.ErrorIs(t, l.Remove(1), ErrNotFound)

			fill(t, l, 10, 20, 30)
			_, err = l.GetElement(0)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			_, err = l.GetElement(4)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			assert.ErrorIs(t, l.Insert(1, 4), ErrIndexOutOfRange)
			assert.ErrorIs(t, l.Remove(99), ErrNotFound)
			assert.Equal(t, []int{10, 20, 30}, slices.Collect(l.All()))
		})
	}
}

func TestLists_RemoveFirstMatchOnly(t *testing.T) {
	for _, f := range listFactories {
		t.Run(f.name, func(t *testing.T) {
			l := f.new()
			fill(t, l, 5, 7, 7, 9)

			require.NoError(t, l.Remove(7))
			assert.Equal(t, []int{5, 7, 9}, slices.Collect(l.All()))
		})
	}
}

func TestLists_DrainFromEitherEnd(t *testing.T) {
	for _, f := range listFactories {
		t.Run(f.name, func(t *testing.T) {
			l := f.new()
			fill(t, l, 1, 2, 3, 4)

			require.NoError(t, l.RemoveAt(4))
			require.NoError(t, l.RemoveAt(1))
			require.NoError(t, l.Remove(3))
			require.NoError(t, l.Remove(2))
			assert.True(t, l.IsEmpty())
			assert.Equal(t, "empty", l.String())

			require.NoError(t, l.AddFirst(8))
			require.NoError(t, l.Add(9))
			assert.Equal(t, "8, 9", l.String())
		})
	}
}

func TestCircularList_RingStaysClosed(t *testing.T) {
	l := NewCircularList[int]()
	fill(t, l, 1, 2, 3)
	require.NoError(t, l.AddFirst(0))
	require.NoError(t, l.RemoveAt(4))

	// walking Count() steps from the tail must land back on the head
	p := l.tail()
	require.NotNil(t, p)
	assert.Same(t, l.head, p.next)
	assert.Equal(t, 2, p.data)

	require.NoError(t, l.Remove(0))
	assert.Equal(t, 1, l.head.data)
	assert.Same(t, l.head, l.tail().next)

	l.Clear()
	assert.Nil(t, l.tail())
}

func TestCircularList_SingleElement(t *testing.T) {
	l := NewCircularList[string]()
	require.NoError(t, l.Add("only"))
	assert.Same(t, l.head, l.head.next)

	require.NoError(t, l.RemoveAt(1))
	assert.Nil(t, l.head)
	assert.Equal(t, 0, l.Count())
}

func TestSequentialList_Growth(t *testing.T) {
	l := NewSequentialList[int]()
	assert.Equal(t, 2, l.Capacity())

	fill(t, l, 1, 2)
	assert.Equal(t, 2, l.Capacity())
	fill(t, l, 3)
	assert.Equal(t, 6, l.Capacity())
	fill(t, l, 4, 5, 6, 7)
	assert.Equal(t, 10, l.Capacity())

	l.Clear()
	assert.Equal(t, 10, l.Capacity(), "Clear keeps the backing array")
}

func TestSequentialList_AtAndSet(t *testing.T) {
	l := NewSequentialList[string]()
	fill := func(vs ...string) {
		for _, v := range vs {
			require.NoError(t, l.Add(v))
		}
	}
	fill("a", "b", "c")

	v, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	require.NoError(t, l.Set(2, "z"))
	assert.Equal(t, "a, b, z", l.String())

	_, err = l.At(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.EqualError(t, err, "linear: index out of range: position 3 not in [0, 3)")
	err = l.Set(-1, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.EqualError(t, err, "linear: index out of range: position -1 not in [0, 3)")
}

func TestSequentialList_RemoveZeroesVacatedSlot(t *testing.T) {
	l := NewSequentialList[*int]()
	a, b := 1, 2
	require.NoError(t, l.Add(&a))
	require.NoError(t, l.Add(&b))

	require.NoError(t, l.RemoveAt(1))
	assert.Nil(t, l.items[1])
	assert.Same(t, &b, l.items[0])
}
