// Package stack implements a resizable LIFO container with explicit slot lifetimes and strong failure guarantees.
package stack

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyContainer is returned by Pop when no elements are present.
	ErrEmptyContainer = errors.New("empty container")

	// ErrElementConstruction reports that copying or constructing an element failed.
	ErrElementConstruction = errors.New("element construction failed")

	// ErrAllocation reports that backing storage could not be allocated.
	ErrAllocation = errors.New("allocation failed")

	// ErrCapacityShrink is returned by Reserve when asked for less than the current capacity.
	ErrCapacityShrink = errors.New("capacity cannot shrink")
)

// ConstructionError describes an element that could not be copied or constructed.
//
// It matches ErrElementConstruction and the element's own error under errors.Is.
type ConstructionError struct {
	// Op is the stack operation that was running: copy, reserve, push or emplace.
	Op string
	// Index is the slot the element was destined for.
	Index int
	// Err is the error returned by the element.
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: element %d: %v", e.Op, e.Index, e.Err)
}

func (e *ConstructionError) Unwrap() []error {
	return []error{ErrElementConstruction, e.Err}
}
