package alloc

// nilLink is the free-list terminator, stored in a block's pred/succ
// slot and as a registry head when no block occupies that position.
const nilLink = -1

// freeListRegistry holds one doubly-linked free-list head per size
// class. Lists carry no sentinel node; a head of nilLink means the
// list is empty. Insert is LIFO so the most recently freed block is
// found first, maximising cache reuse on allocation-heavy phases.
type freeListRegistry struct {
	heads []int
}

func newFreeListRegistry(numClasses int) freeListRegistry {
	heads := make([]int, numClasses)
	for i := range heads {
		heads[i] = nilLink
	}
	return freeListRegistry{heads: heads}
}

// insertFree prepends bp to the free list for its size class.
func (h *Heap) insertFree(bp int) {
	class := classOf(h.blockSize(bp), len(h.free.heads))
	head := h.free.heads[class]
	h.writePred(bp, nilLink)
	h.writeSucc(bp, head)
	if head != nilLink {
		h.writePred(head, bp)
	}
	h.free.heads[class] = bp
}

// removeFree splices bp out of the free list for its size class. The
// caller must know bp is currently linked (i.e. its tags say free).
// After this call bp's pred/succ slots may be left stale; callers must
// not re-read them until the block is reinserted.
func (h *Heap) removeFree(bp int) {
	class := classOf(h.blockSize(bp), len(h.free.heads))
	pred := h.readPred(bp)
	succ := h.readSucc(bp)
	if pred != nilLink {
		h.writeSucc(pred, succ)
	} else {
		h.free.heads[class] = succ
	}
	if succ != nilLink {
		h.writePred(succ, pred)
	}
}
