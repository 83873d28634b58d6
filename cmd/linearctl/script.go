package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pavanmanishd/linear"
	"github.com/pavanmanishd/linear/queue"
	"github.com/pavanmanishd/linear/stack"
)

// Kinds accepted by --kind.
var kinds = []string{"static", "linked", "circular", "sequential", "stack", "seqstack", "queue", "seqqueue"}

// op is one script operation taking a fixed number of integer operands.
type op struct {
	arity int
	run   func(w io.Writer, args []int) error
}

// machine holds one structure and the operations valid on it.
type machine struct {
	ops    map[string]op
	static *linear.StaticList[int]
}

func newMachine(kind string, capacity int, opts []linear.Option) (*machine, error) {
	switch kind {
	case "static":
		l := linear.NewStaticList[int](capacity, opts...)
		m := listMachine(l)
		m.static = l
		return m, nil
	case "linked":
		return listMachine(linear.NewLinkedList[int]()), nil
	case "circular":
		return listMachine(linear.NewCircularList[int]()), nil
	case "sequential":
		return listMachine(linear.NewSequentialList[int]()), nil
	case "stack":
		return stackMachine(stack.NewLinked[int]()), nil
	case "seqstack":
		return stackMachine(stack.NewSequential[int](capacity)), nil
	case "queue":
		return queueMachine(queue.NewLinked[int]()), nil
	case "seqqueue":
		return queueMachine(queue.NewSequential[int](capacity)), nil
	default:
		return nil, fmt.Errorf("unknown kind %q (want one of %s)", kind, strings.Join(kinds, ", "))
	}
}

func listMachine(l linear.List[int]) *machine {
	return &machine{ops: map[string]op{
		"add":      {1, func(_ io.Writer, a []int) error { return l.Add(a[0]) }},
		"addfirst": {1, func(_ io.Writer, a []int) error { return l.AddFirst(a[0]) }},
		"insert":   {2, func(_ io.Writer, a []int) error { return l.Insert(a[0], a[1]) }},
		"remove":   {1, func(_ io.Writer, a []int) error { return l.Remove(a[0]) }},
		"removeat": {1, func(_ io.Writer, a []int) error { return l.RemoveAt(a[0]) }},
		"get": {1, func(w io.Writer, a []int) error {
			v, err := l.GetElement(a[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, v)
			return err
		}},
		"clear": {0, func(_ io.Writer, _ []int) error { l.Clear(); return nil }},
		"count": {0, func(w io.Writer, _ []int) error { _, err := fmt.Fprintln(w, l.Count()); return err }},
		"print": {0, func(w io.Writer, _ []int) error { _, err := fmt.Fprintln(w, l); return err }},
	}}
}

type stackLike interface {
	Push(int)
	Pop() (int, error)
	Peek() (int, error)
	Clear()
	Count() int
	String() string
}

func stackMachine(s stackLike) *machine {
	return &machine{ops: map[string]op{
		"push":  {1, func(_ io.Writer, a []int) error { s.Push(a[0]); return nil }},
		"pop":   {0, func(w io.Writer, _ []int) error { return printValue(w, s.Pop) }},
		"peek":  {0, func(w io.Writer, _ []int) error { return printValue(w, s.Peek) }},
		"clear": {0, func(_ io.Writer, _ []int) error { s.Clear(); return nil }},
		"count": {0, func(w io.Writer, _ []int) error { _, err := fmt.Fprintln(w, s.Count()); return err }},
		"print": {0, func(w io.Writer, _ []int) error { _, err := fmt.Fprintln(w, s); return err }},
	}}
}

type queueLike interface {
	Enqueue(int)
	Dequeue() (int, error)
	Peek() (int, error)
	Clear()
	Count() int
	String() string
}

func queueMachine(q queueLike) *machine {
	return &machine{ops: map[string]op{
		"enqueue": {1, func(_ io.Writer, a []int) error { q.Enqueue(a[0]); return nil }},
		"dequeue": {0, func(w io.Writer, _ []int) error { return printValue(w, q.Dequeue) }},
		"peek":    {0, func(w io.Writer, _ []int) error { return printValue(w, q.Peek) }},
		"clear":   {0, func(_ io.Writer, _ []int) error { q.Clear(); return nil }},
		"count":   {0, func(w io.Writer, _ []int) error { _, err := fmt.Fprintln(w, q.Count()); return err }},
		"print":   {0, func(w io.Writer, _ []int) error { _, err := fmt.Fprintln(w, q); return err }},
	}}
}

func printValue(w io.Writer, get func() (int, error)) error {
	v, err := get()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v)
	return err
}

// exec runs the words of a script in order and stops at the first error.
func (m *machine) exec(w io.Writer, words []string) error {
	for i := 0; i < len(words); {
		name := strings.ToLower(words[i])
		o, ok := m.ops[name]
		if !ok {
			return fmt.Errorf("unknown operation %q", words[i])
		}
		if i+o.arity >= len(words) {
			return fmt.Errorf("%s: expected %d operand(s)", name, o.arity)
		}
		args := make([]int, o.arity)
		for j := range args {
			n, err := strconv.Atoi(words[i+1+j])
			if err != nil {
				return fmt.Errorf("%s: operand %q is not an integer", name, words[i+1+j])
			}
			args[j] = n
		}
		if err := o.run(w, args); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		i += 1 + o.arity
	}
	return nil
}
