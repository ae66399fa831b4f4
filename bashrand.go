// Package bashrand recovers and replays the state behind bash's $RANDOM.
package bashrand

import (
	"context"
	"errors"
	"fmt"

	"github.com/tutils/bashrand/alphabet"
	"github.com/tutils/bashrand/random"
	"github.com/tutils/bashrand/search"
	"github.com/tutils/bashrand/stream"
)

// PasswordLength is how many values GenPass encodes
const PasswordLength = 10

var (
	// ErrOutputRange reports an output above random.MaxOutput
	ErrOutputRange = random.ErrOutputRange
	// ErrArgCount reports the wrong number of values for a command
	ErrArgCount = errors.New("wrong number of values")
	// ErrNotFound is a search that covered its domain without a match
	ErrNotFound = errors.New("couldn't find seed")
)

// CrackResult holds a definite seed for three values, or a stream of
// candidates for two.
type CrackResult struct {
	Definite bool
	Match    search.Match
	Found    bool
	Matches  *stream.Stream[search.Match]
}

// Crack searches the seed space for the 2 or 3 observed values. Three values
// pin down a single seed; two leave a handful of candidates which are
// streamed as they are found.
func Crack(ctx context.Context, values []uint16, variants []random.Variant, opts ...search.Option) (*CrackResult, error) {
	if len(values) != 2 && len(values) != 3 {
		return nil, fmt.Errorf("%w: crack takes 2 or 3 values, got %d", ErrArgCount, len(values))
	}
	if err := random.ValidateOutputs(values); err != nil {
		return nil, err
	}

	if len(values) == 3 {
		m, ok, err := search.FindOne(ctx, values, variants, opts...)
		if err != nil {
			return nil, err
		}
		return &CrackResult{Definite: true, Match: m, Found: ok}, nil
	}

	s, err := search.FindAll(ctx, values, variants, opts...)
	if err != nil {
		return nil, err
	}
	return &CrackResult{Matches: s}, nil
}

// Values are the outputs of one variant after skipping
type Values struct {
	Seed    uint32
	Skip    int
	Variant random.Variant
	Outputs []uint16
}

// Get replays count outputs per variant from seed after discarding skip.
func Get(seed uint32, skip, count int, variants []random.Variant) []Values {
	out := make([]Values, 0, len(variants))
	for _, v := range variants {
		g := random.NewGenerator(seed, v)
		g.Skip(skip)
		out = append(out, Values{Seed: seed, Skip: skip, Variant: v, Outputs: g.Take(count)})
	}
	return out
}

// Seeds returns the next count internal states after seed. The transition
// is the same for both variants.
func Seeds(seed uint32, count int) []uint32 {
	return random.NewGenerator(seed, random.New).Seeds(count)
}

// Collide streams seeds whose first output is n under every variant given.
func Collide(ctx context.Context, n uint16, variants []random.Variant, opts ...search.Option) (*stream.Stream[search.Match], error) {
	return search.Collide(ctx, n, variants, opts...)
}

// Password streams the timestamps that regenerate password.
func Password(ctx context.Context, password string, opts ...search.Option) (*stream.Stream[search.PasswordMatch], error) {
	return search.Password(ctx, password, opts...)
}

// GenPass encodes exactly PasswordLength known outputs as a password.
func GenPass(values []uint16) (string, error) {
	if len(values) != PasswordLength {
		return "", fmt.Errorf("%w: genpass takes %d values, got %d", ErrArgCount, PasswordLength, len(values))
	}
	if err := random.ValidateOutputs(values); err != nil {
		return "", err
	}
	return alphabet.EncodeAll(values), nil
}
