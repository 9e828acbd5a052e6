package alloc

// findFit performs a global best-fit traversal: starting from the size
// class of asize, scan every class upward, tracking the smallest free
// block seen that is still large enough. An exact match returns
// immediately without looking further.
func (h *Heap) findFit(asize int) (int, bool) {
	numClasses := len(h.free.heads)
	startClass := classOf(asize, numClasses)

	best := nilLink
	bestSize := int(^uint(0) >> 1)

	for class := startClass; class < numClasses; class++ {
		for bp := h.free.heads[class]; bp != nilLink; bp = h.readSucc(bp) {
			size := h.blockSize(bp)
			if size < asize {
				continue
			}
			if size == asize {
				return bp, true
			}
			if size < bestSize {
				best, bestSize = bp, size
			}
		}
	}

	if best == nilLink {
		return 0, false
	}
	return best, true
}

// place carves an allocation of asize bytes out of the free block f.
// f is unlinked first so its stale size never drives a class lookup.
// If the residue left behind would be too small to host a free block's
// (pred, succ) pair, the whole block is handed over and the residue is
// accepted as internal fragmentation.
func (h *Heap) place(f, asize int) int {
	h.removeFree(f)
	csize := h.blockSize(f)

	residue := csize - asize
	if residue >= minBlock {
		h.setTags(f, asize, true)
		trailing := h.nextBp(f)
		h.setTags(trailing, residue, false)
		h.coalesceAndInsert(trailing)
	} else {
		h.setTags(f, csize, true)
	}
	return f
}
