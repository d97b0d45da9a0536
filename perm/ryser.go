package perm

import (
	"math"

	"github.com/katalvlaran/bosonperm/graycode"
)

// Ryser computes the exact permanent of a square complex matrix.
//
// Description:
//
//	The permanent is the determinant's unsigned cousin,
//	Σ_σ Π_i a[i][σ(i)], and is #P-hard. Ryser-style inclusion–
//	exclusion rewrites it as an alternating sum over 2^(n−1)
//	representative ±1 column patterns; walking those patterns in
//	Gray-code order turns each step into a single column update.
//
// Algorithm Outline:
//  1. v[i] ← Σ_j a[i][j] (row sums; the all-included pattern),
//     rho[j] ← true for all j, total ← Π_i v[i].
//  2. For each of the 2^(n−1)−1 Gray-code steps:
//     a. obtain the flipped column c from the sequencer;
//     b. if rho[c], v[i] −= 2·a[i][c] for all i, else v[i] += 2·a[i][c];
//     c. rho[c] = !rho[c];
//     d. total += sign · Π_i v[i], with sign alternating each step.
//  3. Return total · 2^(1−n).
//
// The update in 2b is the whole point of the Gray-code ordering: O(n)
// work per step instead of recomputing the n row sums from scratch.
//
// Numerically the alternating sum carries ordinary floating-point
// rounding; catastrophic cancellation on ill-conditioned inputs is not
// detected. Exact for integer-valued inputs that fit a float64 exactly.
//
// Errors:
//   - ErrEmptyMatrix — len(a) == 0.
//   - ErrNonSquare   — ragged or rectangular input.
//   - ErrTooLarge    — n exceeds the bitmask range.
//
// Complexity:
//
//	Time   = O(n·2ⁿ)
//	Memory = O(n)
func Ryser(a [][]complex128) (complex128, error) {
	n, err := validateSquare(a)
	if err != nil {
		return 0, err
	}

	// Stage 1 - initial state: full row sums, everything included.
	v := make([]complex128, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v[i] += a[i][j]
		}
	}
	rho := make([]bool, n)
	for j := range rho {
		rho[j] = true
	}

	total := prodVec(v)

	// Stage 2 - Gray-code walk over the remaining 2^(n-1)-1 patterns.
	// The sequencer enumerates 2^n-1 transitions; the first half keeps
	// the top bit clear, which is exactly the ±-symmetry restriction.
	seq, err := graycode.New(n)
	if err != nil {
		return 0, err
	}
	steps := uint64(1)<<uint(n-1) - 1
	sign := complex(-1, 0)
	for k := uint64(0); k < steps; k++ {
		st, _ := seq.Next()
		c := st.Index
		if rho[c] {
			for i := 0; i < n; i++ {
				v[i] -= 2 * a[i][c]
			}
		} else {
			for i := 0; i < n; i++ {
				v[i] += 2 * a[i][c]
			}
		}
		rho[c] = !rho[c]

		total += sign * prodVec(v)
		sign = -sign
	}

	// Stage 3 - normalize: each of the 2^(n-1) patterns carries 2^(1-n).
	return total * complex(math.Ldexp(1, 1-n), 0), nil
}

// prodVec returns Π_i v[i].
// Complexity: O(n).
func prodVec(v []complex128) complex128 {
	p := complex(1, 0)
	for _, x := range v {
		p *= x
	}

	return p
}
