package search

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutils/bashrand/random"
)

func sorted(ms []Match) []uint32 {
	var s []uint32
	for _, m := range ms {
		s = append(s, m.Seed)
	}
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

func TestCollideBoth(t *testing.T) {
	const n = 16807 // seed 1 draws this under both variants
	both := []random.Variant{random.New, random.Old}
	s, err := Collide(context.Background(), n, both, WithRange(0, testSpan), WithWorkers(5))
	require.NoError(t, err)
	ms := s.Collect()
	require.NoError(t, s.Err())
	for _, m := range ms {
		assert.Equal(t, random.New, m.Variant)
	}
	got := sorted(ms)

	var want []uint32
	for seed := uint64(0); seed < testSpan; seed++ {
		if random.NewGenerator(uint32(seed), random.Old).Next() == n &&
			random.NewGenerator(uint32(seed), random.New).Next() == n {
			want = append(want, uint32(seed))
		}
	}
	assert.Equal(t, want, got)
	assert.Contains(t, got, uint32(1))
}

func TestCollideSingleVariantIsOneValueSearch(t *testing.T) {
	const n = 846
	for _, v := range []random.Variant{random.Old, random.New} {
		s, err := Collide(context.Background(), n, []random.Variant{v}, WithRange(0, testSpan))
		require.NoError(t, err)
		got := sorted(s.Collect())

		all, err := FindAll(context.Background(), []uint16{n}, []random.Variant{v}, WithRange(0, testSpan))
		require.NoError(t, err)
		assert.Equal(t, seedsOf(all.Collect(), v), got, v.String())
	}
}

func TestCollideCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := Collide(ctx, 16807, []random.Variant{random.Old})
	require.NoError(t, err)
	assert.Empty(t, s.Collect())
	assert.ErrorIs(t, s.Err(), context.Canceled)
}

func TestCollideValidation(t *testing.T) {
	_, err := Collide(context.Background(), random.MaxOutput+1, []random.Variant{random.Old})
	assert.ErrorIs(t, err, random.ErrOutputRange)
}
