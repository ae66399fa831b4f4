package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// candidates evaluated between cancellation checks
const batch = 1 << 14

// Range is a half-open interval of candidate seeds
type Range struct {
	Lo, Hi uint64
}

// Len returns the number of candidates in r.
func (r Range) Len() uint64 {
	return r.Hi - r.Lo
}

// Split cuts [lo, hi) into at most n contiguous, disjoint ranges covering
// it entirely.
func Split(lo, hi uint64, n int) []Range {
	if hi <= lo {
		return nil
	}
	total := hi - lo
	if n < 1 {
		n = 1
	}
	if uint64(n) > total {
		n = int(total)
	}
	size, rem := total/uint64(n), total%uint64(n)

	out := make([]Range, 0, n)
	start := lo
	for i := 0; i < n; i++ {
		end := start + size
		if uint64(i) < rem {
			end++
		}
		out = append(out, Range{Lo: start, Hi: end})
		start = end
	}
	return out
}

// scanner walks every candidate of a domain across worker goroutines
type scanner struct {
	opts *Options
	id   string
	log  zerolog.Logger
	halt atomic.Bool
}

func newScanner(kind string, opts *Options) *scanner {
	id := uuid.New().String()[:8]
	return &scanner{
		opts: opts,
		id:   id,
		log:  opts.logger.With().Str("search", id).Str("kind", kind).Logger(),
	}
}

// Stop asks every worker to return at its next check.
func (s *scanner) Stop() {
	s.halt.Store(true)
}

// run calls visit for every seed of [lo, hi) and returns once all workers
// have finished, been halted, or ctx is done.
func (s *scanner) run(ctx context.Context, lo, hi uint64, visit func(seed uint32)) error {
	ranges := Split(lo, hi, s.opts.workers)
	start := time.Now()
	s.log.Debug().Uint64("lo", lo).Uint64("hi", hi).Int("workers", len(ranges)).Msg("search started")

	g, ctx := errgroup.WithContext(ctx)
	for _, r := range ranges {
		g.Go(func() error {
			return s.scanRange(ctx, r, visit)
		})
	}
	err := g.Wait()

	s.log.Debug().Dur("elapsed", time.Since(start)).Bool("halted", s.halt.Load()).Err(err).Msg("search finished")
	return err
}

func (s *scanner) scanRange(ctx context.Context, r Range, visit func(seed uint32)) error {
	c := s.opts.counter
	for lo := r.Lo; lo < r.Hi; {
		if s.halt.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		hi := lo + batch
		if hi > r.Hi {
			hi = r.Hi
		}
		for seed := lo; seed < hi; seed++ {
			visit(uint32(seed))
		}
		c.Add(int64(hi - lo))
		lo = hi
	}
	return nil
}
