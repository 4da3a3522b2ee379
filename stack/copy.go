package stack

import "github.com/samber/mo"

// Copy returns an independent stack with the same capacity holding copies of every element.
// The copy draws its buffer from the receiver's allocator.
// If an element fails to copy, the copies made so far are destroyed and the receiver is untouched.
func (s *Stack[T]) Copy() (*Stack[T], error) {
	if s == nil {
		return nil, nil
	}
	return s.copyInto(s.alloc)
}

// copyInto copies the receiver into a new stack whose buffer comes from alloc.
func (s *Stack[T]) copyInto(alloc Allocator) (*Stack[T], error) {
	c := &Stack[T]{alloc: alloc}

	slots, err := c.allocate(len(s.slots))
	if err != nil {
		return nil, err
	}

	t := traitsOf[T]()
	for i := 0; i < s.size; i++ {
		v, err := t.copy(s.slots[i].MustGet())
		if err != nil {
			t.destroyAll(slots[:i])
			c.release(slots)
			return nil, &ConstructionError{Op: "copy", Index: i, Err: err}
		}
		slots[i] = mo.Some(v)
	}

	c.slots = slots
	c.size = s.size
	return c, nil
}

// Move returns a stack that owns the receiver's buffer and elements.
// The receiver is left empty with no buffer. No element is touched.
func (s *Stack[T]) Move() *Stack[T] {
	if s == nil {
		return nil
	}

	m := &Stack[T]{alloc: s.alloc}
	m.Swap(s)
	return m
}

// Assign replaces the receiver's contents with a copy of other.
// The receiver keeps its own allocator, so the copy is charged to it.
// If the copy fails the receiver keeps its previous contents.
func (s *Stack[T]) Assign(other *Stack[T]) error {
	tmp := &Stack[T]{alloc: s.alloc}
	if other != nil {
		var err error
		if tmp, err = other.copyInto(s.alloc); err != nil {
			return err
		}
	}

	s.slots, tmp.slots = tmp.slots, s.slots
	s.size, tmp.size = tmp.size, s.size
	tmp.Destroy()
	return nil
}

// MoveAssign exchanges contents with other, which ends up holding what the receiver held.
func (s *Stack[T]) MoveAssign(other *Stack[T]) {
	if other == nil || other == s {
		return
	}
	s.Swap(other)
}

// Swap exchanges the buffers, sizes and allocators of two stacks.
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.slots, other.slots = other.slots, s.slots
	s.size, other.size = other.size, s.size
	s.alloc, other.alloc = other.alloc, s.alloc
}
