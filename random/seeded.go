package random

import (
	"errors"
	"hash/fnv"
)

// ErrEmptyInput is returned when a draw is requested from an empty range or slice
var ErrEmptyInput = errors.New("random: draw from empty input")

// State is one position in a Mulberry32 stream.
// It is a plain value, so a State can be copied and replayed.
type State struct {
	value uint32
}

// Seed hashes an arbitrary string into the initial state of a stream.
// Identical strings always produce identical streams on every platform.
func Seed(seed string) State {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return State{value: h.Sum32()}
}

// Next returns a float in [0, 1) and the state that follows it
func (s State) Next() (float64, State) {
	s.value += 0x6D2B79F5
	t := s.value
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0, s
}

// Generator is a mutable stream of draws keyed by a string seed
type Generator struct {
	state State
	seed  string
}

// New creates a generator seeded from the given string
func New(seed string) *Generator {
	return &Generator{
		state: Seed(seed),
		seed:  seed,
	}
}

// SeedString returns the string the generator was created with
func (g *Generator) SeedString() string {
	return g.seed
}

// Next draws the next float in [0, 1)
func (g *Generator) Next() float64 {
	var f float64
	f, g.state = g.state.Next()
	return f
}

// RandomInt draws a uniform integer in [min, max], both inclusive
func (g *Generator) RandomInt(min, max int) (int, error) {
	if max < min {
		return 0, ErrEmptyInput
	}
	return int(g.Next()*float64(max-min+1)) + min, nil
}

// Float draws a float in [min, max)
func (g *Generator) Float(min, max float64) float64 {
	return min + g.Next()*(max-min)
}
