package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tutils/bashrand"
	"github.com/tutils/bashrand/counter"
	"github.com/tutils/bashrand/log"
	"github.com/tutils/bashrand/random"
	"github.com/tutils/bashrand/search"
)

// how often a running search reports progress
var progressInterval = 5 * time.Second

func parseOutputs(args []string) ([]uint16, error) {
	out := make([]uint16, len(args))
	for i, a := range args {
		n, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		if n > random.MaxOutput {
			return nil, fmt.Errorf("%w (max: %d, got %d)", bashrand.ErrOutputRange, random.MaxOutput, n)
		}
		out[i] = uint16(n)
	}
	return out, nil
}

func parseSeed(arg string) (uint32, error) {
	n, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", arg, err)
	}
	return uint32(n), nil
}

func joinUints[T uint16 | uint32](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// printSeed prints a seed line followed by the next number values after
// skipping the first skip.
func printSeed(w io.Writer, seed uint32, skip int, variant random.Variant, number int) {
	suffix := ""
	if skip > 0 {
		suffix = fmt.Sprintf(" +%d", skip)
	}
	fmt.Fprintf(w, "Seed: %d%s (%s)\n", seed, suffix, variant)

	vals := bashrand.Get(seed, skip, number, []random.Variant{variant})[0].Outputs
	switch number {
	case 0:
	case 1:
		fmt.Fprintf(w, "  Next value: %d\n", vals[0])
	default:
		fmt.Fprintf(w, "  Next %d values: %s\n", number, joinUints(vals))
	}
}

func searchOptions(c counter.Counter) []search.Option {
	return []search.Option{
		search.WithWorkers(settings.Workers),
		search.WithCounter(c),
		search.WithLogger(log.L()),
	}
}

// startProgress logs scanned candidates out of total until the returned
// func is called.
func startProgress(ctx context.Context, c counter.Counter, total uint64) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		t := time.NewTicker(progressInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				scanned := c.Value()
				ev := log.L().Info().Int64("scanned", scanned).Int64("rate", c.RatePerSec())
				if total > 0 {
					ev = ev.Str("progress", fmt.Sprintf("%.1f%%", float64(scanned)*100/float64(total)))
				}
				ev.Msg("Searching for seeds...")
			}
		}
	}()
	return func() {
		cancel()
		<-done
	}
}
