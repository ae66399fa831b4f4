package search

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		lo, hi uint64
		n      int
		want   int
	}{
		{0, SpaceSize, 8, 8},
		{0, 10, 3, 3},
		{5, 7, 16, 2},
		{3, 3, 4, 0},
		{0, 100, 0, 1},
	}
	for _, tt := range tests {
		rs := Split(tt.lo, tt.hi, tt.n)
		require.Len(t, rs, tt.want)
		next := tt.lo
		for _, r := range rs {
			assert.Equal(t, next, r.Lo)
			assert.Greater(t, r.Len(), uint64(0))
			next = r.Hi
		}
		if tt.want > 0 {
			assert.Equal(t, tt.hi, next)
		}
	}
}

func TestScannerCoversRange(t *testing.T) {
	for _, workers := range []int{1, 3, 7, 64} {
		var sum, calls atomic.Uint64
		sc := newScanner("test", newOptions(WithWorkers(workers)))
		err := sc.run(context.Background(), 1000, 101000, func(seed uint32) {
			sum.Add(uint64(seed))
			calls.Add(1)
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(100000), calls.Load())
		// 1000 + ... + 100999
		assert.Equal(t, uint64(100000*(1000+100999)/2), sum.Load())
	}
}

func TestScannerHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sc := newScanner("test", newOptions(WithWorkers(2)))
	err := sc.run(ctx, 0, SpaceSize, func(uint32) {})
	assert.ErrorIs(t, err, context.Canceled)
}
