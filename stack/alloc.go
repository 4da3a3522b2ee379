package stack

import (
	"fmt"
	"sync"
)

// Allocator accounts for the slot buffers a stack creates and discards.
type Allocator interface {
	// Allocate reserves room for the given number of slots.
	Allocate(slots int) error
	// Release returns slots obtained from Allocate.
	Release(slots int)
}

// Heap is the default allocator. It only rejects negative requests.
type Heap struct{}

// Allocate accepts any non-negative request.
func (Heap) Allocate(slots int) error {
	if slots < 0 {
		return fmt.Errorf("%w: negative slot count %d", ErrAllocation, slots)
	}
	return nil
}

// Release does nothing; the garbage collector reclaims heap buffers.
func (Heap) Release(int) {}

// Budget is an Allocator with a fixed number of slots, shareable between stacks.
type Budget struct {
	mu   sync.Mutex
	max  int
	used int
}

// NewBudget returns a Budget that hands out at most max slots at a time.
func NewBudget(max int) *Budget {
	return &Budget{max: max}
}

// Allocate reserves slots, failing with ErrAllocation when they would exceed the budget.
func (b *Budget) Allocate(slots int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if slots < 0 || b.used+slots > b.max {
		return fmt.Errorf("%w: %d slots requested, %d of %d in use", ErrAllocation, slots, b.used, b.max)
	}

	b.used += slots
	return nil
}

// Release returns slots to the budget. Usage never drops below zero.
func (b *Budget) Release(slots int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.used -= slots
	if b.used < 0 {
		b.used = 0
	}
}

// InUse returns the number of slots currently handed out.
func (b *Budget) InUse() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}

// Max returns the budget size.
func (b *Budget) Max() int {
	return b.max
}
