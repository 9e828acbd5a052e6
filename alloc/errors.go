package alloc

import "errors"

var (
	// ErrArenaExhausted is returned by NewHeap and NewHeapWithOptions
	// when the provider cannot grant even the initial chunk of memory.
	ErrArenaExhausted = errors.New("alloc: arena exhausted")

	// ErrInvalidSize is returned by NewHeapWithOptions when Options
	// describe a geometrically inconsistent size-class schedule.
	ErrInvalidSize = errors.New("alloc: invalid size configuration")

	// ErrCorruptHeap is returned by Heap.Check when a walk of the arena
	// or free-list registry finds a violated invariant.
	ErrCorruptHeap = errors.New("alloc: corrupt heap")
)
