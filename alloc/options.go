package alloc

import (
	"fmt"
	"math/bits"
)

// DefaultNumClasses is the default size-class count: enough geometric
// doubling from minBlock to cover realistic workloads while keeping
// class scans cheap.
const DefaultNumClasses = 12

// DefaultChunkSize is the minimum amount requested from the Provider
// whenever the heap must grow.
const DefaultChunkSize = 4 * 1024

// DefaultGrowthFactor multiplies the old block size when Realloc falls
// back to allocate-copy-free, to amortise repeated growth. This is a
// heuristic, not a contract — a modest 2x rather than an aggressive
// double-digit multiplier that would over-allocate far more than this
// default aims for.
const DefaultGrowthFactor = 2

// Options configures a Heap. NewHeapWithOptions fills in a zero
// NumClasses or ChunkSize with its default and treats a nil Quantize as
// the identity; a zero GrowthFactor disables the realloc heuristic.
// DefaultOptions returns the full set of defaults NewHeap uses.
type Options struct {
	// NumClasses is the number of segregated free lists. Must be >= 1.
	NumClasses int

	// ChunkSize is the minimum number of bytes requested from the
	// Provider on each arena extension, rounded up to a double-word
	// multiple.
	ChunkSize int

	// GrowthFactor is the multiplier applied to a block's current size
	// when Realloc must fall back to allocate-copy-free, to reduce the
	// number of future reallocations for a growing buffer. A value
	// <= 1 disables the heuristic (the fallback allocates exactly the
	// requested size).
	GrowthFactor int

	// Quantize is applied to a payload request before it is sized into
	// a block, rounding specific sizes up to a friendlier bucket. This
	// is a documented policy, not an invariant other sizes must also
	// obey. A nil Quantize disables the transform.
	Quantize func(int) int

	// Strict, when true, runs Heap.Check after every public operation
	// and panics with its error instead of leaving the violation for a
	// later caller to discover. Intended for tests and debugging, not
	// production use — it turns an O(1) amortised operation into an
	// O(n) one.
	Strict bool
}

// DefaultOptions returns the Options a plain NewHeap call uses.
func DefaultOptions() Options {
	return Options{
		NumClasses:   DefaultNumClasses,
		ChunkSize:    DefaultChunkSize,
		GrowthFactor: DefaultGrowthFactor,
		Quantize:     DefaultQuantize,
	}
}

// defaultQuantizeTable captures two sizes known to sit awkwardly close
// to a class boundary in common allocation workloads. It is a literal
// lookup, not a generalised "round up to power of two" rule; other
// sizes pass through unaffected.
var defaultQuantizeTable = map[int]int{
	112: 128,
	448: 512,
}

// DefaultQuantize is the reference Quantize policy: it only rounds the
// two sizes named in defaultQuantizeTable and passes everything else
// through unchanged.
func DefaultQuantize(size int) int {
	if v, ok := defaultQuantizeTable[size]; ok {
		return v
	}
	return size
}

// normalize fills in zero-valued fields with their defaults and
// rejects a NumClasses too large for the geometric size-class schedule
// to represent: the top class covers up to minBlock << (NumClasses-1),
// and a NumClasses large enough to overflow that shift would wrap into
// a bogus, possibly negative class boundary instead of failing loudly.
func (o Options) normalize() (Options, error) {
	if o.NumClasses <= 0 {
		o.NumClasses = DefaultNumClasses
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.Quantize == nil {
		o.Quantize = func(s int) int { return s }
	}

	if o.NumClasses-1 >= bits.UintSize-bits.Len(uint(minBlock)) {
		return o, fmt.Errorf("%w: NumClasses %d overflows the size-class schedule for minBlock=%d", ErrInvalidSize, o.NumClasses, minBlock)
	}

	return o, nil
}
