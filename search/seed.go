// Package search inverts bash's $RANDOM: it scans the seed space for states
// whose outputs reproduce what was observed.
package search

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tutils/bashrand/random"
	"github.com/tutils/bashrand/stream"
)

// AliasBoundary is the first seed whose states all repeat those of a
// smaller seed
const AliasBoundary = uint64(1) << 31

// MaxWindow is the longest observed window a search accepts
const MaxWindow = 3

// ErrWindow reports a target with no values or more than MaxWindow
var ErrWindow = errors.New("window must hold 1 to 3 values")

// Match is a seed confirmed to reproduce a target under a variant
type Match struct {
	Seed    uint32
	Variant random.Variant
}

func (m Match) String() string {
	return fmt.Sprintf("%d (%s)", m.Seed, m.Variant)
}

// Verify re-runs the generator from seed and reports whether its first
// draws equal target.
func Verify(seed uint32, v random.Variant, target []uint16) bool {
	s := seed
	for _, want := range target {
		s = random.NextSeed(s)
		if random.Extract(s, v) != want {
			return false
		}
	}
	return true
}

func checkTarget(target []uint16, variants []random.Variant) error {
	if len(variants) == 0 {
		panic("search: no variant selected")
	}
	if len(target) == 0 || len(target) > MaxWindow {
		return fmt.Errorf("%w (got %d)", ErrWindow, len(target))
	}
	return random.ValidateOutputs(target)
}

// FindAll streams every seed in the domain whose window under any of the
// variants equals target. The scan always runs to completion unless ctx is
// cancelled, in which case the stream's Err reports why. Delivery order is
// unspecified.
func FindAll(ctx context.Context, target []uint16, variants []random.Variant, opts ...Option) (*stream.Stream[Match], error) {
	if err := checkTarget(target, variants); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	want := append([]uint16(nil), target...)
	vs := append([]random.Variant(nil), variants...)

	out := stream.New[Match]()
	sc := newScanner(fmt.Sprintf("window%d", len(want)), o)
	go func() {
		out.CloseWithError(sc.run(ctx, o.lo, o.hi, func(seed uint32) {
			first := random.NextSeed(seed)
			for _, v := range vs {
				if random.Extract(first, v) == want[0] && Verify(seed, v, want) {
					out.Send(Match{Seed: seed, Variant: v})
				}
			}
		}))
	}()
	return out, nil
}

// FindOne returns the first confirmed seed for target and stops every
// worker as soon as one is found. Variants are tried in order for each
// candidate. Seeds below 2^31 are scanned before the ones above it, which
// only alias states already reachable from below, so a low seed is always
// preferred. ok is false when the whole domain holds no match.
func FindOne(ctx context.Context, target []uint16, variants []random.Variant, opts ...Option) (m Match, ok bool, err error) {
	if err := checkTarget(target, variants); err != nil {
		return Match{}, false, err
	}
	o := newOptions(opts...)
	want := append([]uint16(nil), target...)
	vs := append([]random.Variant(nil), variants...)

	for _, r := range canonicalFirst(o.lo, o.hi) {
		var once sync.Once
		sc := newScanner(fmt.Sprintf("window%d", len(want)), o)
		err = sc.run(ctx, r.Lo, r.Hi, func(seed uint32) {
			first := random.NextSeed(seed)
			for _, v := range vs {
				if random.Extract(first, v) == want[0] && Verify(seed, v, want) {
					once.Do(func() {
						m, ok = Match{Seed: seed, Variant: v}, true
						sc.Stop()
					})
					return
				}
			}
		})
		if ok {
			return m, true, nil
		}
		if err != nil {
			return Match{}, false, err
		}
	}
	return Match{}, false, nil
}

// canonicalFirst cuts [lo, hi) at AliasBoundary, low part first.
func canonicalFirst(lo, hi uint64) []Range {
	if lo >= AliasBoundary || hi <= AliasBoundary {
		return []Range{{Lo: lo, Hi: hi}}
	}
	return []Range{{Lo: lo, Hi: AliasBoundary}, {Lo: AliasBoundary, Hi: hi}}
}
