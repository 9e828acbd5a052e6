package alloc

// classOf maps a block's total size to one of numClasses segregated
// free-list buckets. Class i covers (minBlock*2^(i-1), minBlock*2^i],
// with the last class absorbing every larger size; the schedule is
// geometric doubling starting at minBlock.
func classOf(size, numClasses int) int {
	class := 0
	bound := minBlock
	for size > bound && class < numClasses-1 {
		bound *= 2
		class++
	}
	return class
}

// classRange returns the size bounds (lo, hi] — lo exclusive, hi
// inclusive — a block must satisfy to legally sit in the given class, used by Heap.Check to verify that
// every block in a class's free list has a size within that class's
// range. The last class has no upper bound.
func classRange(class, numClasses int) (lo, hi int) {
	hi = minBlock << class
	if class == 0 {
		lo = 0
	} else {
		lo = minBlock << (class - 1)
	}
	if class == numClasses-1 {
		hi = int(^uint(0) >> 1) // no upper bound on the catch-all class
	}
	return lo, hi
}
