package search

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/tutils/bashrand/counter"
)

// SpaceSize is the number of 32-bit seeds
const SpaceSize = uint64(1) << 32

// Options for a single search call
type Options struct {
	workers int
	lo, hi  uint64
	counter counter.Counter
	logger  zerolog.Logger
	now     func() time.Time
}

// Option configures a search
type Option func(*Options)

func newOptions(opts ...Option) *Options {
	opt := &Options{
		hi:     SpaceSize,
		logger: zerolog.Nop(),
	}
	for _, o := range opts {
		o(opt)
	}

	if opt.workers <= 0 {
		opt.workers = runtime.NumCPU()
	}
	if opt.hi > SpaceSize {
		opt.hi = SpaceSize
	}
	if opt.lo > opt.hi {
		opt.lo = opt.hi
	}
	if opt.counter == nil {
		opt.counter = counter.Nop
	}
	if opt.now == nil {
		opt.now = time.Now
	}

	return opt
}

// WithWorkers sets the number of scanning goroutines (default NumCPU)
func WithWorkers(n int) Option {
	return func(opts *Options) {
		opts.workers = n
	}
}

// WithRange restricts candidates to [lo, hi)
func WithRange(lo, hi uint64) Option {
	return func(opts *Options) {
		opts.lo = lo
		opts.hi = hi
	}
}

// WithCounter receives the number of candidates scanned
func WithCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.counter = c
	}
}

// WithLogger logs search start and end at debug level
func WithLogger(l zerolog.Logger) Option {
	return func(opts *Options) {
		opts.logger = l
	}
}

// WithNow sets the clock bounding the password search
func WithNow(now func() time.Time) Option {
	return func(opts *Options) {
		opts.now = now
	}
}
