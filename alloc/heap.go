package alloc

// Heap is a single explicit allocator value threaded through the
// public API; global.go layers an optional process-singleton wrapper
// on top for callers that want one shared heap. It is not safe for
// concurrent use from more than one goroutine without external
// serialization.
type Heap struct {
	mem      []byte
	provider Provider
	free     freeListRegistry
	opts     Options

	firstBp int // payload pointer of the block right after the prologue
}

// NewHeap initializes a Heap over provider using DefaultOptions.
func NewHeap(provider Provider) (*Heap, error) {
	return NewHeapWithOptions(provider, DefaultOptions())
}

// NewHeapWithOptions initializes a Heap over provider with custom
// Options.
func NewHeapWithOptions(provider Provider, opts Options) (*Heap, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	h := &Heap{
		provider: provider,
		free:     newFreeListRegistry(opts.NumClasses),
		opts:     opts,
	}

	// Lay down the initial pad + prologue + epilogue sentinels.
	mem, err := provider.Extend(dwordSize + 2*wordSize)
	if err != nil {
		return nil, errExhausted(err)
	}
	h.mem = mem

	// mem layout so far: [0, W) pad, [W, W+D) prologue, [W+D, W+D+W) epilogue.
	prologueHeader := wordSize
	h.writeTag(prologueHeader, pack(dwordSize, true))
	h.writeTag(prologueHeader+wordSize, pack(dwordSize, true))
	epilogueHeader := prologueHeader + dwordSize
	h.writeTag(epilogueHeader, pack(0, true))

	h.firstBp = prologueHeader + dwordSize + wordSize

	if _, err := h.extendArena(opts.ChunkSize); err != nil {
		return nil, errExhausted(err)
	}

	return h, nil
}

// computeAsize derives the block size to satisfy a payload request:
// asize = max(minBlock, round_up(s + 2W, D)), after running the
// configured Quantize policy.
func (h *Heap) computeAsize(size int) int {
	size = h.opts.Quantize(size)
	asize := roundUpD(size + dwordSize)
	if asize < minBlock {
		asize = minBlock
	}
	return asize
}

// Alloc allocates a payload of size bytes, returning Null if size is 0
// or the provider is exhausted.
func (h *Heap) Alloc(size int) Ptr {
	if size <= 0 {
		return Null
	}
	bp, ok := h.allocAsize(h.computeAsize(size))
	if !ok {
		return Null
	}
	h.assertInvariants()
	return Ptr(bp)
}

// assertInvariants runs Check when Options.Strict is set, panicking on
// a violation rather than returning it silently: a Strict violation
// means this package has a bug, not the caller.
func (h *Heap) assertInvariants() {
	if !h.opts.Strict {
		return
	}
	if err := h.Check(); err != nil {
		panic("alloc: " + err.Error())
	}
}

// allocAsize finds or carves a block of exactly asize bytes, extending
// the arena if nothing fits. asize must already be a D-aligned value
// >= minBlock.
func (h *Heap) allocAsize(asize int) (int, bool) {
	if bp, ok := h.findFit(asize); ok {
		return h.place(bp, asize), true
	}
	extendSize := asize
	if extendSize < h.opts.ChunkSize {
		extendSize = h.opts.ChunkSize
	}
	if _, err := h.extendArena(extendSize); err != nil {
		return 0, false
	}
	bp, ok := h.findFit(asize)
	if !ok {
		return 0, false
	}
	return h.place(bp, asize), true
}

// extendArena grows the arena via the Provider by nBytes (rounded up to
// a D multiple), absorbs the old epilogue into a single new free block,
// writes a fresh epilogue, and coalesces the new block with whatever
// preceded it.
func (h *Heap) extendArena(nBytes int) (int, error) {
	nBytes = roundUpD(nBytes)

	oldLen := len(h.mem)
	mem, err := h.provider.Extend(nBytes)
	if err != nil {
		return 0, errExhausted(err)
	}
	h.mem = mem

	blockHeader := oldLen - wordSize // overwrites the old epilogue header
	blockSize := nBytes              // the last new word becomes the new epilogue
	bp := blockHeader + wordSize

	h.setTags(bp, blockSize, false)

	newEpilogue := blockHeader + blockSize
	h.writeTag(newEpilogue, pack(0, true))

	return h.coalesceAndInsert(bp), nil
}

// Free releases a previously-allocated payload pointer back to the
// heap. Freeing Null is a no-op. Panics if p is obviously foreign to
// this heap or already free.
func (h *Heap) Free(p Ptr) {
	if p == Null {
		return
	}
	bp := int(p)
	h.checkLive(bp)
	size := h.blockSize(bp)
	h.setTags(bp, size, false)
	h.coalesceAndInsert(bp)
	h.assertInvariants()
}

// PayloadCapacity returns the number of usable payload bytes in the
// block at p, which may exceed the size originally requested: splitting
// leaves the residual in the block when it is smaller than minBlock.
func (h *Heap) PayloadCapacity(p Ptr) int {
	if p == Null {
		return 0
	}
	return h.payloadCapacity(int(p))
}

// Bytes returns a []byte view over the payload at p, sized to its
// current capacity. The slice aliases the heap's arena directly and is
// only valid until the next call that may grow the arena.
func (h *Heap) Bytes(p Ptr) []byte {
	if p == Null {
		return nil
	}
	bp := int(p)
	return h.mem[bp : bp+h.payloadCapacity(bp)]
}
