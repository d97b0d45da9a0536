package perm

import (
	"math/bits"

	"github.com/katalvlaran/bosonperm/matrix"
)

// Tensor computes the exact permanent of a cubic 3-tensor, the quantity
// governing transition probabilities of partially distinguishable
// photons. For w built as W[k,l,j] = M[k,j]·conj(M[l,j])·S[l,k] the
// result is real; the engine only requires the cubic shape.
//
// Formula (subset-pairing form): over every pair of nonempty subsets
// (R, S) of {0..n−1} with mask(R) ≤ mask(S),
//
//	t(R,S) = Π_j Σ_{k∈R, l∈S} w[k][l][j]
//	result += (2 − [R=S]) · (−1)^(|R|+|S|) · Re t(R,S)
//
// The (2 − [R=S]) factor folds the (S,R) term of the underlying double
// inclusion–exclusion into its (R,S) mirror: for the Hermitian tensors
// this engine is built for, t(S,R) = conj(t(R,S)). The real-part
// projection discards residual imaginary rounding noise.
//
// No Gray-code acceleration is applied here; every pair is evaluated
// from scratch. That keeps the per-pair cost at O(n·|R|·|S|) and the
// total at O(4ⁿ) — markedly worse than the matrix engines' O(2ⁿ).
//
// Errors:
//   - ErrEmptyTensor — len(w) == 0.
//   - ErrNotCubic    — unequal extents in any axis.
//   - ErrTooLarge    — n exceeds the bitmask range.
//
// Complexity:
//
//	Time   = O(4ⁿ·n³) worst case
//	Memory = O(n)
func Tensor(w [][][]complex128) (float64, error) {
	n, err := validateCubic(w)
	if err != nil {
		return 0, err
	}

	full := uint64(1) << uint(n)
	idxR := make([]int, 0, n)
	idxS := make([]int, 0, n)

	var result float64
	for r := uint64(1); r < full; r++ {
		idxR = maskIndices(idxR[:0], r)
		for s := r; s < full; s++ {
			idxS = maskIndices(idxS[:0], s)

			t := complex(1, 0)
			for j := 0; j < n; j++ {
				var sum complex128
				for _, k := range idxR {
					row := w[k]
					for _, l := range idxS {
						sum += row[l][j]
					}
				}
				t *= sum
			}

			term := real(t)
			if (bits.OnesCount64(r)+bits.OnesCount64(s))&1 == 1 {
				term = -term
			}
			if r != s {
				term *= 2
			}
			result += term
		}
	}

	return result, nil
}

// TensorCubic is the typed entry point: it accepts a matrix.Cubic
// (e.g., from matrix.NewTransitionTensor) and delegates to Tensor.
//
// Errors: ErrNilTensor for a nil input, plus Tensor's own sentinels.
// Complexity: O(n³) export + Tensor's O(4ⁿ·n³).
func TensorCubic(t *matrix.Cubic) (float64, error) {
	if t == nil {
		return 0, ErrNilTensor
	}

	return Tensor(t.Slices())
}

// maskIndices appends the set-bit positions of mask to dst and returns
// it. dst is reused across calls to avoid per-pair allocations.
// Complexity: O(popcount).
func maskIndices(dst []int, mask uint64) []int {
	for m := mask; m != 0; m &= m - 1 {
		dst = append(dst, bits.TrailingZeros64(m))
	}

	return dst
}
