package alloc

import "sync"

// Package-level singleton wrapper, in the style of a package-level
// Malloc/Free over an unexported pool registry. Most programs should
// just hold a *Heap; this exists for callers that want one shared heap
// without threading it everywhere.
var (
	defaultMu   sync.Mutex
	defaultHeap *Heap
)

// InitDefault installs provider as the process-wide default heap used
// by Alloc/Free/Realloc. It is not safe to call concurrently with
// those functions.
func InitDefault(provider Provider) error {
	h, err := NewHeap(provider)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	defaultHeap = h
	defaultMu.Unlock()
	return nil
}

// Default returns the process-wide default heap, or nil if InitDefault
// has not been called.
func Default() *Heap {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultHeap
}

// Alloc allocates from the process-wide default heap. Panics if
// InitDefault has not been called.
func Alloc(size int) Ptr { return mustDefault().Alloc(size) }

// Free releases a payload pointer back to the process-wide default heap.
func Free(p Ptr) { mustDefault().Free(p) }

// Realloc resizes a payload pointer on the process-wide default heap.
func Realloc(p Ptr, size int) Ptr { return mustDefault().Realloc(p, size) }

func mustDefault() *Heap {
	h := Default()
	if h == nil {
		panic("alloc: InitDefault has not been called")
	}
	return h
}
