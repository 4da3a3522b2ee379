// Package stack implements a resizable LIFO container with explicit slot lifetimes and strong failure guarantees.
package stack

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// Stack is a LIFO container backed by a buffer of slots.
//
// Slots [0, Size()) hold live elements, slots [Size(), Capacity()) are allocated but empty.
// The zero value is an empty stack ready to use. A Stack is not safe for concurrent use.
type Stack[T any] struct {
	slots []mo.Option[T]
	size  int
	alloc Allocator
}

// Option configures a Stack created by New.
type Option func(*options)

type options struct {
	alloc Allocator
}

// WithAllocator makes the stack draw its buffers from a.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

// New returns an empty stack with no buffer.
func New[T any](opts ...Option) *Stack[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Stack[T]{alloc: o.alloc}
}

// NextCapacity returns the capacity a full stack of capacity c grows to.
func NextCapacity(c int) int {
	return (c + 1) * 2
}

// Size returns the number of live elements.
func (s *Stack[T]) Size() int {
	return s.size
}

// Capacity returns the number of allocated slots.
func (s *Stack[T]) Capacity() int {
	return len(s.slots)
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.Size() == 0
}

// Push copies v onto the top of the stack, growing the buffer when it is full.
// On failure the stack is left unchanged.
func (s *Stack[T]) Push(v T) error {
	t := traitsOf[T]()

	c, err := t.copy(v)
	if err != nil {
		return &ConstructionError{Op: "push", Index: s.size, Err: err}
	}

	if err := s.place(c); err != nil {
		t.destroy(c)
		return err
	}

	return nil
}

// Emplace builds a new top element with construct, growing the buffer when it is full.
// The value returned by construct is stored as is, without a copy.
// On failure the stack is left unchanged.
func (s *Stack[T]) Emplace(construct func() (T, error)) error {
	v, err := construct()
	if err != nil {
		return &ConstructionError{Op: "emplace", Index: s.size, Err: err}
	}

	if err := s.place(v); err != nil {
		traitsOf[T]().destroy(v)
		return err
	}

	return nil
}

func (s *Stack[T]) place(v T) error {
	if s.size == len(s.slots) {
		if err := s.Reserve(NextCapacity(len(s.slots))); err != nil {
			return err
		}
	}

	s.slots[s.size] = mo.Some(v)
	s.size++
	return nil
}

// Pop removes the top element and hands it to the caller.
func (s *Stack[T]) Pop() (T, error) {
	if s.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}

	s.size--
	v := s.slots[s.size].MustGet()
	s.slots[s.size] = mo.None[T]()

	return v, nil
}

// Reserve grows the buffer to n slots, moving live elements when their type moves without failing
// and copying them otherwise. If a copy fails the stack keeps its previous buffer and contents.
func (s *Stack[T]) Reserve(n int) error {
	switch {
	case n < len(s.slots):
		return fmt.Errorf("%w: %d < %d", ErrCapacityShrink, n, len(s.slots))
	case n == len(s.slots):
		return nil
	}

	slots, err := s.allocate(n)
	if err != nil {
		return err
	}

	t := traitsOf[T]()
	strategy := t.strategy()

	for i := 0; i < s.size; i++ {
		v := s.slots[i].MustGet()

		switch strategy {
		case moveTransfer:
			v = t.move(v)
		case copyTransfer:
			c, err := t.copy(v)
			if err != nil {
				t.destroyAll(slots[:i])
				s.release(slots)
				return &ConstructionError{Op: "reserve", Index: i, Err: err}
			}
			v = c
		}

		slots[i] = mo.Some(v)
	}

	// Only copied-from elements still own anything.
	if strategy == copyTransfer {
		t.destroyAll(s.slots[:s.size])
	}

	s.release(s.slots)
	s.slots = slots
	return nil
}

// Destroy destructs every live element from the top down and releases the buffer.
// The stack is empty and reusable afterwards.
func (s *Stack[T]) Destroy() {
	if s == nil {
		return
	}

	traitsOf[T]().destroyAll(s.slots[:s.size])
	s.release(s.slots)
	s.slots = nil
	s.size = 0
}

func (s *Stack[T]) allocator() Allocator {
	if s.alloc == nil {
		return Heap{}
	}
	return s.alloc
}

func (s *Stack[T]) allocate(n int) ([]mo.Option[T], error) {
	if err := s.allocator().Allocate(n); err != nil {
		if !errors.Is(err, ErrAllocation) {
			err = fmt.Errorf("%w: %w", ErrAllocation, err)
		}
		return nil, err
	}

	if n == 0 {
		return nil, nil
	}
	return make([]mo.Option[T], n), nil
}

func (s *Stack[T]) release(slots []mo.Option[T]) {
	if len(slots) > 0 {
		s.allocator().Release(len(slots))
	}
}
