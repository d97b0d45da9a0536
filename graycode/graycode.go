// Package graycode - reflected Gray-code sequencer.
//
// Design principles:
//   - Deterministic, side-effect free; only sentinel errors on bad input.
//   - No hidden allocations after construction; Next is O(1).
//   - Single-bit flips are located with math/bits, not shift loops.
package graycode

import (
	"errors"
	"math/bits"
)

// MaxOrder bounds the subset order so that 2ⁿ−1 fits in a uint64 step
// counter with headroom for the k>>1 decode.
const MaxOrder = 62

// ErrBadOrder is returned by New when n is outside [1, MaxOrder].
var ErrBadOrder = errors.New("graycode: order must be in [1, 62]")

// Code returns the reflected Gray code of k: k XOR (k >> 1).
// Consecutive arguments yield codes differing in exactly one bit.
//
// Complexity: O(1).
func Code(k uint64) uint64 {
	return k ^ (k >> 1)
}

// Step describes one transition of the minimal-change walk.
type Step struct {
	// Index is the bit position (0-based) that flipped at this step.
	Index int

	// Include is true when the flipped bit turned on (the index joined
	// the subset) and false when it turned off. Because only one bit
	// changes, Include also equals "new code > old code".
	Include bool

	// Code is the Gray code after the flip; bit i set ⇔ index i is
	// currently a member of the subset.
	Code uint64
}

// Sequencer walks the 2ⁿ−1 single-bit transitions of the reflected
// Gray code over n indices, starting from the empty subset (code 0).
//
// The walk is strictly sequential: Next mutates internal state derived
// from the previous step. Sequencers are not safe for concurrent use
// and cannot be rewound.
type Sequencer struct {
	n    int    // subset order
	k    uint64 // last consumed rank, 0..last
	last uint64 // final rank, 2ⁿ−1
	prev uint64 // Gray code at rank k
}

// New returns a Sequencer over subsets of {0..n−1}.
// Returns ErrBadOrder when n < 1 or n > MaxOrder.
//
// Complexity: O(1) time and space.
func New(n int) (*Sequencer, error) {
	if n < 1 || n > MaxOrder {
		return nil, ErrBadOrder
	}

	return &Sequencer{n: n, last: (uint64(1) << uint(n)) - 1}, nil
}

// Order returns n, the number of enumerated indices.
func (s *Sequencer) Order() int { return s.n }

// Len returns the total number of steps the walk produces: 2ⁿ−1.
func (s *Sequencer) Len() uint64 { return s.last }

// Next advances the walk by one rank and reports the transition.
// The second return value is false once all 2ⁿ−1 steps are consumed.
//
// Stage 1: advance the rank and decode its Gray code.
// Stage 2: XOR against the previous code — exactly one bit survives.
// Stage 3: locate that bit and its direction, then commit state.
//
// Complexity: O(1) per call, no allocations.
func (s *Sequencer) Next() (Step, bool) {
	if s.k >= s.last {
		return Step{}, false
	}
	s.k++

	cur := Code(s.k)
	diff := s.prev ^ cur // single set bit by Gray-code construction
	st := Step{
		Index:   bits.TrailingZeros64(diff),
		Include: cur&diff != 0,
		Code:    cur,
	}
	s.prev = cur

	return st, true
}
