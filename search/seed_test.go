package search

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutils/bashrand/counter/period"
	"github.com/tutils/bashrand/random"
)

const testSpan = 1 << 21

func bruteForce(lo, hi uint64, target []uint16, v random.Variant) []uint32 {
	var out []uint32
	for s := lo; s < hi; s++ {
		if Verify(uint32(s), v, target) {
			out = append(out, uint32(s))
		}
	}
	return out
}

func seedsOf(ms []Match, v random.Variant) []uint32 {
	var out []uint32
	for _, m := range ms {
		if m.Variant == v {
			out = append(out, m.Seed)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestVerify(t *testing.T) {
	assert.True(t, Verify(42, random.Old, []uint16{17766, 11151, 23481}))
	assert.True(t, Verify(42, random.New, []uint16{17772, 26794, 1435}))
	assert.False(t, Verify(42, random.New, []uint16{17766, 11151, 23481}))
}

func TestFindAllOneValue(t *testing.T) {
	target := []uint16{17766}
	s, err := FindAll(context.Background(), target, []random.Variant{random.Old}, WithRange(0, testSpan), WithWorkers(4))
	require.NoError(t, err)
	got := s.Collect()

	for _, m := range got {
		assert.Equal(t, target[0], random.NewGenerator(m.Seed, random.Old).Next())
	}
	assert.Equal(t, bruteForce(0, testSpan, target, random.Old), seedsOf(got, random.Old))
	assert.Contains(t, seedsOf(got, random.Old), uint32(42))
}

func TestFindAllTwoValues(t *testing.T) {
	oldT := random.NewGenerator(1337, random.Old).Take(2)
	newT := random.NewGenerator(1337, random.New).Take(2)
	both := []random.Variant{random.New, random.Old}

	for _, target := range [][]uint16{oldT, newT} {
		s, err := FindAll(context.Background(), target, both, WithRange(0, testSpan), WithWorkers(3))
		require.NoError(t, err)
		got := s.Collect()
		for _, m := range got {
			assert.Equal(t, target, random.NewGenerator(m.Seed, m.Variant).Take(2))
		}
		assert.Equal(t, bruteForce(0, testSpan, target, random.Old), seedsOf(got, random.Old))
		assert.Equal(t, bruteForce(0, testSpan, target, random.New), seedsOf(got, random.New))
	}
}

func TestFindAllCountsCandidates(t *testing.T) {
	c := period.NewPeriodCounter(0)
	s, err := FindAll(context.Background(), []uint16{1, 2}, []random.Variant{random.New},
		WithRange(100, 100+testSpan), WithCounter(c))
	require.NoError(t, err)
	s.Collect()
	assert.Equal(t, int64(testSpan), c.Value())
}

func TestFindOneBounded(t *testing.T) {
	for _, v := range []random.Variant{random.Old, random.New} {
		target := random.NewGenerator(42, v).Take(3)
		// Park-Miller is a bijection below 2^31-1, so the seed is unique here
		m, ok, err := FindOne(context.Background(), target, []random.Variant{v}, WithRange(0, 0x7fffffff))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, Match{Seed: 42, Variant: v}, m)
	}
}

func TestFindOneFullSpace(t *testing.T) {
	if testing.Short() {
		t.Skip("scans the 32-bit space")
	}
	target := random.NewGenerator(42, random.Old).Take(3)
	// 2^31+41 draws the same values and sits one candidate into the upper half
	for _, workers := range []int{1, 2, 4, 8} {
		for i := 0; i < 5; i++ {
			m, ok, err := FindOne(context.Background(), target, []random.Variant{random.New, random.Old}, WithWorkers(workers))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, Match{Seed: 42, Variant: random.Old}, m, "workers %d", workers)
		}
	}
}

func TestFindOneUpperHalf(t *testing.T) {
	target := random.NewGenerator(42, random.Old).Take(3)
	m, ok, err := FindOne(context.Background(), target, []random.Variant{random.Old},
		WithRange(AliasBoundary, SpaceSize), WithWorkers(2))
	require.NoError(t, err)
	require.True(t, ok)
	assert.GreaterOrEqual(t, uint64(m.Seed), AliasBoundary)
	assert.True(t, Verify(m.Seed, random.Old, target))
}

func TestCanonicalFirst(t *testing.T) {
	assert.Equal(t, []Range{{0, AliasBoundary}, {AliasBoundary, SpaceSize}}, canonicalFirst(0, SpaceSize))
	assert.Equal(t, []Range{{5, 100}}, canonicalFirst(5, 100))
	assert.Equal(t, []Range{{AliasBoundary + 1, SpaceSize}}, canonicalFirst(AliasBoundary+1, SpaceSize))
}

func TestFindOneNotFound(t *testing.T) {
	target := random.NewGenerator(42, random.Old).Take(3)
	_, ok, err := FindOne(context.Background(), target, []random.Variant{random.Old}, WithRange(100, testSpan))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindOneCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := FindOne(ctx, []uint16{1, 2, 3}, []random.Variant{random.Old})
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := FindAll(ctx, []uint16{1, 2}, []random.Variant{random.Old})
	require.NoError(t, err)
	assert.Empty(t, s.Collect())
	assert.ErrorIs(t, s.Err(), context.Canceled)
}

func TestFindAllCompletedHasNoErr(t *testing.T) {
	s, err := FindAll(context.Background(), []uint16{1, 2}, []random.Variant{random.Old}, WithRange(0, 1<<16))
	require.NoError(t, err)
	s.Collect()
	assert.NoError(t, s.Err())
}

func TestTargetValidation(t *testing.T) {
	vs := []random.Variant{random.Old}
	_, err := FindAll(context.Background(), []uint16{1, random.MaxOutput + 1}, vs)
	assert.ErrorIs(t, err, random.ErrOutputRange)

	_, _, err = FindOne(context.Background(), []uint16{1, 2, 3, 4}, vs)
	assert.ErrorIs(t, err, ErrWindow)

	_, err = FindAll(context.Background(), nil, vs)
	assert.ErrorIs(t, err, ErrWindow)

	s, err := FindAll(context.Background(), []uint16{random.MaxOutput}, vs, WithRange(0, 1<<16))
	require.NoError(t, err)
	s.Collect()

	assert.Panics(t, func() {
		FindAll(context.Background(), []uint16{1}, nil)
	})
}
