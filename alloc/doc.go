// Package alloc implements a single-threaded, boundary-tag heap
// allocator over a contiguously-growable byte arena.
//
// The arena is supplied by a caller-provided Provider (see provider.go);
// alloc itself never touches the OS, a syscall, or goroutines. A Heap
// value owns the entire allocator state — arena bounds, free-list heads,
// sentinel offsets — and is not safe for concurrent use from more than
// one goroutine without external serialization.
//
// Payload pointers are represented as the exported Ptr type, an int
// byte-offset into the arena rather than a raw unsafe.Pointer, so that
// a pointer value stays valid across an arena growth that reallocates
// the backing slice.
package alloc
