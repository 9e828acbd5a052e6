package alloc

// coalesceAndInsert merges a just-freed block bp with its immediately
// adjacent free neighbours and reinserts the resulting block into the
// free-list registry. bp's own tags must already say free before
// calling this; the prologue and epilogue are always allocated, so
// prevBp/nextBp are safe to dereference unconditionally.
//
// Neighbours are unlinked from their free lists before any tag is
// rewritten, so a class lookup never runs against a size that is about
// to change.
func (h *Heap) coalesceAndInsert(bp int) int {
	prevAlloc := h.isAllocated(h.prevBp(bp))
	nextAlloc := h.isAllocated(h.nextBp(bp))

	switch {
	case prevAlloc && nextAlloc:
		// case (1,1): no merge.

	case prevAlloc && !nextAlloc:
		next := h.nextBp(bp)
		h.removeFree(next)
		merged := h.blockSize(bp) + h.blockSize(next)
		h.setTags(bp, merged, false)

	case !prevAlloc && nextAlloc:
		prev := h.prevBp(bp)
		h.removeFree(prev)
		merged := h.blockSize(prev) + h.blockSize(bp)
		h.setTags(prev, merged, false)
		bp = prev

	default: // !prevAlloc && !nextAlloc
		prev := h.prevBp(bp)
		next := h.nextBp(bp)
		h.removeFree(prev)
		h.removeFree(next)
		merged := h.blockSize(prev) + h.blockSize(bp) + h.blockSize(next)
		h.setTags(prev, merged, false)
		bp = prev
	}

	h.insertFree(bp)
	return bp
}
