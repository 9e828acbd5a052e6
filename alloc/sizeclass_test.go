package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassOfGeometricSchedule(t *testing.T) {
	const numClasses = 12
	tests := []struct {
		size int
		want int
	}{
		{minBlock, 0},
		{minBlock + dwordSize, 1},
		{minBlock * 2, 1},
		{minBlock*2 + dwordSize, 2},
		{minBlock * 4096, numClasses - 1}, // far beyond the schedule, catch-all
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, classOf(tt.size, numClasses), "classOf(%d, %d)", tt.size, numClasses)
	}
}

func TestClassOfMonotonic(t *testing.T) {
	const numClasses = 12
	prev := classOf(minBlock, numClasses)
	for size := minBlock; size <= minBlock*4096; size += dwordSize {
		c := classOf(size, numClasses)
		require.GreaterOrEqualf(t, c, prev, "classOf regressed at size %d", size)
		prev = c
	}
}

func TestClassRangeCoversSchedule(t *testing.T) {
	const numClasses = 6
	for class := 0; class < numClasses; class++ {
		lo, hi := classRange(class, numClasses)
		if class < numClasses-1 {
			assert.Equalf(t, class, classOf(hi, numClasses), "classRange(%d) hi=%d", class, hi)
			assert.Equalf(t, class+1, classOf(hi+dwordSize, numClasses), "classRange(%d) hi+D should be in next class", class)
		}
		if class != numClasses-1 {
			assert.Lessf(t, lo, hi, "classRange(%d) = (%d, %d] is empty", class, lo, hi)
		}
	}
}

func TestNormalizeRejectsOverflowingNumClasses(t *testing.T) {
	o := DefaultOptions()
	o.NumClasses = 64
	_, err := o.normalize()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestNormalizeAcceptsDefaultSchedule(t *testing.T) {
	_, err := DefaultOptions().normalize()
	require.NoError(t, err)
}

func TestNormalizeFillsZeroValues(t *testing.T) {
	o, err := Options{}.normalize()
	require.NoError(t, err)
	assert.Equal(t, DefaultNumClasses, o.NumClasses)
	assert.Equal(t, DefaultChunkSize, o.ChunkSize)
	assert.NotNil(t, o.Quantize)
}
