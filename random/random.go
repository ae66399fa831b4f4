package random

import (
	"errors"
	"fmt"
	"strings"
)

// MaxOutput is the largest value $RANDOM yields (15 bits)
const MaxOutput = 0x7fff

// Park-Miller minimal standard parameters, split with Schrage's method
// so the product never leaves 32 bits.
const (
	a = 16807
	q = 127773 // m / a
	r = 2836   // m % a
	m = 0x7fffffff

	// bash replaces a zero state before every transition
	zeroState = 123459876
)

// ErrOutputRange reports a value above MaxOutput
var ErrOutputRange = errors.New("numbers must be at most 15 bits")

// Variant selects the output extraction of a bash release line
type Variant uint8

const (
	// Old is bash 5.0 and older: the low 15 bits of the state
	Old Variant = iota
	// New is bash 5.1 and newer: high and low halves folded together
	New
)

func (v Variant) String() string {
	switch v {
	case Old:
		return "old"
	case New:
		return "new"
	}
	return fmt.Sprintf("variant(%d)", uint8(v))
}

// ParseVersion maps "old", "new" or "both" to the variants to try, in the
// order they should be tried.
func ParseVersion(s string) ([]Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "old":
		return []Variant{Old}, nil
	case "new":
		return []Variant{New}, nil
	case "both", "":
		return []Variant{New, Old}, nil
	}
	return nil, fmt.Errorf("unknown version %q (want old, new or both)", s)
}

// ValidateOutputs checks every value fits in 15 bits.
func ValidateOutputs(values []uint16) error {
	for _, v := range values {
		if v > MaxOutput {
			return fmt.Errorf("%w (max: %d, got %d)", ErrOutputRange, MaxOutput, v)
		}
	}
	return nil
}

// NextSeed is the state transition shared by both variants.
func NextSeed(state uint32) uint32 {
	if state == 0 {
		state = zeroState
	}
	h := int32(state / q)
	l := int32(state - q*uint32(h))
	t := a*l - r*h
	if t < 0 {
		t += m
	}
	return uint32(t)
}

// Extract turns a freshly advanced state into the value $RANDOM expands to.
func Extract(state uint32, v Variant) uint16 {
	if v == New {
		state = (state >> 16) ^ (state & 0xffff)
	}
	return uint16(state & MaxOutput)
}

// Generator emulates the $RANDOM generator of one bash variant
type Generator struct {
	state   uint32
	variant Variant
}

// NewGenerator returns a generator as if RANDOM=seed had just been assigned.
func NewGenerator(seed uint32, v Variant) *Generator {
	return &Generator{state: seed, variant: v}
}

// State returns the current internal state.
func (g *Generator) State() uint32 {
	return g.state
}

// Variant returns the variant the generator was built with.
func (g *Generator) Variant() Variant {
	return g.variant
}

// NextSeed advances the state and returns it without extracting an output.
func (g *Generator) NextSeed() uint32 {
	g.state = NextSeed(g.state)
	return g.state
}

// Next advances the state and returns the next output.
func (g *Generator) Next() uint16 {
	return Extract(g.NextSeed(), g.variant)
}

// Skip discards n outputs.
func (g *Generator) Skip(n int) {
	for i := 0; i < n; i++ {
		g.state = NextSeed(g.state)
	}
}

// Take returns the next n outputs in draw order.
func (g *Generator) Take(n int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

// Seeds returns the next n states reached by advancing.
func (g *Generator) Seeds(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = g.NextSeed()
	}
	return out
}
