package alloc

// Realloc resizes the allocation at p to size bytes, trying in order:
// shrink-in-place, grow-by-absorbing-next, then allocate-copy-free. It
// returns Null (without freeing p) only when the provider is exhausted
// on the fallback path; p remains valid in that case. Panics if p is
// obviously foreign to this heap or already free.
func (h *Heap) Realloc(p Ptr, size int) Ptr {
	if p == Null {
		return h.Alloc(size)
	}

	bp := int(p)
	h.checkLive(bp)

	if size <= 0 {
		h.Free(p)
		return Null
	}

	oldBlockSize := h.blockSize(bp)
	newAsize := h.computeAsize(size)

	if newAsize <= oldBlockSize {
		h.shrinkInPlace(bp, oldBlockSize, newAsize)
		h.assertInvariants()
		return Ptr(bp)
	}

	if grown, ok := h.growInPlace(bp, oldBlockSize, newAsize); ok {
		h.assertInvariants()
		return Ptr(grown)
	}

	result := h.reallocFallback(bp, oldBlockSize, newAsize, size)
	h.assertInvariants()
	return result
}

// shrinkInPlace carves the trailing residue off a block being shrunk,
// provided the residue is large enough to stand alone as a free block;
// otherwise the block is left untouched.
func (h *Heap) shrinkInPlace(bp, oldBlockSize, newAsize int) {
	residue := oldBlockSize - newAsize
	if residue < minBlock {
		return
	}
	h.setTags(bp, newAsize, true)
	trailing := h.nextBp(bp)
	h.setTags(trailing, residue, false)
	h.coalesceAndInsert(trailing)
}

// growInPlace absorbs the physically-next block into bp if it is free
// and large enough, with no payload copy. It returns ok=false, leaving
// bp untouched, when the next block cannot supply enough room.
func (h *Heap) growInPlace(bp, oldBlockSize, newAsize int) (int, bool) {
	next := h.nextBp(bp)
	if h.isAllocated(next) {
		return 0, false
	}
	nextSize := h.blockSize(next)
	combined := oldBlockSize + nextSize
	if combined < newAsize {
		return 0, false
	}

	h.removeFree(next)
	residue := combined - newAsize
	if residue >= minBlock {
		h.setTags(bp, newAsize, true)
		trailing := bp + newAsize
		h.setTags(trailing, residue, false)
		// The block beyond `trailing` cannot itself be free: it was
		// next's successor before this call, and the no-two-adjacent-
		// free-blocks rule guaranteed it wasn't free while next was. A
		// full coalesce pass would be a correctness no-op here.
		h.insertFree(trailing)
	} else {
		h.setTags(bp, combined, true)
	}
	return bp, true
}

// reallocFallback allocates a new block, copies the live payload bytes
// over, and frees the old block. It applies Options.GrowthFactor to
// the new block's size only, as a heuristic to
// amortise repeated growth; the bytes actually copied are unaffected
// by it, but the new block, and so its reported capacity, may be
// larger than the request.
func (h *Heap) reallocFallback(bp, oldBlockSize, newAsize, requestedSize int) Ptr {
	fallbackAsize := newAsize
	if h.opts.GrowthFactor > 1 {
		if grown := roundUpD(oldBlockSize * h.opts.GrowthFactor); grown > fallbackAsize {
			fallbackAsize = grown
		}
	}

	newBp, ok := h.allocAsize(fallbackAsize)
	if !ok {
		return Null
	}

	oldPayload := oldBlockSize - dwordSize
	copyLen := requestedSize
	if oldPayload < copyLen {
		copyLen = oldPayload
	}
	copy(h.mem[newBp:newBp+copyLen], h.mem[bp:bp+copyLen])

	h.Free(Ptr(bp))
	return Ptr(newBp)
}
