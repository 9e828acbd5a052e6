package alloc

import "fmt"

// checkLive runs the cheap tag sanity check Free and Realloc apply to an
// incoming Ptr before trusting it, panicking on an obviously-foreign or
// already-free pointer instead of letting it silently corrupt the
// free-list registry. It does not walk the registry itself — that
// belongs to Check, which is far more expensive and only runs
// automatically under Options.Strict.
func (h *Heap) checkLive(bp int) {
	if bp < h.firstBp || bp+wordSize > len(h.mem) {
		panic("alloc: free of out-of-range pointer")
	}
	headerTag := h.readTag(header(bp))
	size := tagSize(headerTag)
	if size < minBlock || size%dwordSize != 0 || bp+size-wordSize > len(h.mem) {
		panic("alloc: free of invalid pointer")
	}
	if h.readTag(bp+size-dwordSize) != headerTag {
		panic("alloc: free of invalid pointer")
	}
	if !tagAlloc(headerTag) {
		panic("alloc: double free")
	}
}

// Check walks the arena and the free-list registry and cross-validates
// the two against each other: header/footer agreement, alignment and
// minimum size, no two adjacent free blocks, arena length accounting,
// and registry membership in both directions. It is not called
// automatically unless Options.Strict is set; it exists for tests and
// for callers debugging a suspected corruption.
func (h *Heap) Check() error {
	freeByWalk := map[int]int{} // offset -> size, from the linear arena walk
	prevFree := false
	totalBlockBytes := 0

	var walkErr error
	h.walk(func(b BlockInfo) {
		if walkErr != nil {
			return
		}
		headerTag := h.readTag(header(b.Offset))
		footerTag := h.readTag(h.footer(b.Offset))
		if headerTag != footerTag {
			walkErr = fmt.Errorf("%w: block at %d: header %#x != footer %#x", ErrCorruptHeap, b.Offset, headerTag, footerTag)
			return
		}
		if b.Size%dwordSize != 0 || b.Size < minBlock {
			walkErr = fmt.Errorf("%w: block at %d: size %d violates alignment/minimum", ErrCorruptHeap, b.Offset, b.Size)
			return
		}
		if prevFree && !b.Allocated {
			walkErr = fmt.Errorf("%w: block at %d: adjacent free blocks", ErrCorruptHeap, b.Offset)
			return
		}
		prevFree = !b.Allocated
		totalBlockBytes += b.Size
		if !b.Allocated {
			freeByWalk[b.Offset] = b.Size
		}
	})
	if walkErr != nil {
		return walkErr
	}

	// Arena size must equal blocks + prologue(D) + epilogue(W) + initial
	// pad(W).
	wantLen := totalBlockBytes + dwordSize + wordSize + wordSize
	if len(h.mem) != wantLen {
		return fmt.Errorf("%w: arena length %d != blocks(%d)+prologue+epilogue+pad(%d)", ErrCorruptHeap, len(h.mem), totalBlockBytes, wantLen)
	}

	numClasses := len(h.free.heads)
	seenInList := map[int]bool{}
	for class := 0; class < numClasses; class++ {
		lo, hi := classRange(class, numClasses)
		for bp := h.free.heads[class]; bp != nilLink; bp = h.readSucc(bp) {
			if seenInList[bp] {
				return fmt.Errorf("%w: block at %d appears twice in free lists", ErrCorruptHeap, bp)
			}
			seenInList[bp] = true

			if h.isAllocated(bp) {
				return fmt.Errorf("%w: block at %d is linked but marked allocated", ErrCorruptHeap, bp)
			}
			size := h.blockSize(bp)
			if size <= lo || size > hi {
				return fmt.Errorf("%w: block at %d size %d outside class %d range (%d,%d]", ErrCorruptHeap, bp, size, class, lo, hi)
			}
			if _, ok := freeByWalk[bp]; !ok {
				return fmt.Errorf("%w: block at %d is in a free list but not found by arena walk", ErrCorruptHeap, bp)
			}
		}
	}
	for off := range freeByWalk {
		if !seenInList[off] {
			return fmt.Errorf("%w: block at %d is free by arena walk but not linked in any free list", ErrCorruptHeap, off)
		}
	}

	return nil
}
