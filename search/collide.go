package search

import (
	"context"

	"github.com/tutils/bashrand/random"
	"github.com/tutils/bashrand/stream"
)

// Collide streams every seed whose first output is n under all of the
// given variants. With a single variant it is the one-value FindAll. Each
// match carries the first requested variant; it holds for all of them.
// A cancelled ctx ends the stream early with Err set.
func Collide(ctx context.Context, n uint16, variants []random.Variant, opts ...Option) (*stream.Stream[Match], error) {
	if err := checkTarget([]uint16{n}, variants); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	vs := append([]random.Variant(nil), variants...)

	out := stream.New[Match]()
	sc := newScanner("collide", o)
	go func() {
		out.CloseWithError(sc.run(ctx, o.lo, o.hi, func(seed uint32) {
			s := random.NextSeed(seed)
			for _, v := range vs {
				if random.Extract(s, v) != n {
					return
				}
			}
			out.Send(Match{Seed: seed, Variant: vs[0]})
		}))
	}()
	return out, nil
}
