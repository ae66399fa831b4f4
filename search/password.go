package search

import (
	"context"
	"errors"
	"time"

	"github.com/tutils/bashrand/alphabet"
	"github.com/tutils/bashrand/random"
	"github.com/tutils/bashrand/stream"
)

// ErrEmptyPassword reports a password search with nothing to match
var ErrEmptyPassword = errors.New("password must not be empty")

// PasswordMatch is a timestamp seed that regenerates the password
type PasswordMatch struct {
	Seed uint32
	Time time.Time
}

// Password streams every Unix timestamp in [0, now) that, used as an old
// variant seed, encodes to password one draw per character. WithRange
// narrows the window further. A cancelled ctx ends the stream early with
// Err set.
func Password(ctx context.Context, password string, opts ...Option) (*stream.Stream[PasswordMatch], error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	o := newOptions(opts...)

	out := stream.New[PasswordMatch]()
	want, ok := alphabet.Indices(password)
	if !ok {
		// some character can never be drawn, so every trial fails
		out.Close()
		return out, nil
	}

	hi := o.hi
	if now := o.now().Unix(); now <= 0 {
		hi = 0
	} else if uint64(now) < hi {
		hi = uint64(now)
	}

	sc := newScanner("password", o)
	go func() {
		out.CloseWithError(sc.run(ctx, o.lo, hi, func(seed uint32) {
			s := seed
			for _, idx := range want {
				s = random.NextSeed(s)
				if int(random.Extract(s, random.Old))%alphabet.Size != idx {
					return
				}
			}
			out.Send(PasswordMatch{Seed: seed, Time: time.Unix(int64(seed), 0).UTC()})
		}))
	}()
	return out, nil
}
