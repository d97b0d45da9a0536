// Package matrix - Cubic: a 3-index tensor with equal extent in every
// axis, plus the transition-tensor builder used in partial-
// distinguishability boson sampling.
package matrix

import (
	"fmt"
	"math/cmplx"
)

// cubicErrorf wraps an underlying sentinel with Cubic method context.
func cubicErrorf(method string, k, l, j int, err error) error {
	return fmt.Errorf("Cubic.%s(%d,%d,%d): %w", method, k, l, j, err)
}

// Cubic is a 3-tensor of complex128 values with extent n in all three
// axes, stored flat in (k,l,j) row-major order.
type Cubic struct {
	n    int
	data []complex128
}

// NewCubic creates an n×n×n tensor initialized to zeros.
// Returns ErrBadShape when n <= 0.
// Complexity: O(n³) time and memory.
func NewCubic(n int) (*Cubic, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &Cubic{n: n, data: make([]complex128, n*n*n)}, nil
}

// Extent returns n, the shared size of all three axes.
// Complexity: O(1).
func (t *Cubic) Extent() int { return t.n }

// indexOf computes the flat index for (k, l, j) or returns ErrOutOfRange.
// Complexity: O(1).
func (t *Cubic) indexOf(method string, k, l, j int) (int, error) {
	if k < 0 || k >= t.n || l < 0 || l >= t.n || j < 0 || j >= t.n {
		return 0, cubicErrorf(method, k, l, j, ErrOutOfRange)
	}

	return (k*t.n+l)*t.n + j, nil
}

// At retrieves the element at (k, l, j).
// Complexity: O(1).
func (t *Cubic) At(k, l, j int) (complex128, error) {
	idx, err := t.indexOf("At", k, l, j)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// Set assigns value v at (k, l, j).
// Complexity: O(1).
func (t *Cubic) Set(k, l, j int, v complex128) error {
	idx, err := t.indexOf("Set", k, l, j)
	if err != nil {
		return err
	}
	t.data[idx] = v

	return nil
}

// Clone returns a deep copy of the tensor.
// Complexity: O(n³).
func (t *Cubic) Clone() *Cubic {
	cp := make([]complex128, len(t.data))
	copy(cp, t.data)

	return &Cubic{n: t.n, data: cp}
}

// Slices exports the tensor as a freshly allocated [][][]complex128,
// the raw form consumed by perm.Tensor. Shares no storage with the
// receiver.
// Complexity: O(n³).
func (t *Cubic) Slices() [][][]complex128 {
	out := make([][][]complex128, t.n)
	for k := 0; k < t.n; k++ {
		out[k] = make([][]complex128, t.n)
		for l := 0; l < t.n; l++ {
			base := (k*t.n + l) * t.n
			out[k][l] = append([]complex128(nil), t.data[base:base+t.n]...)
		}
	}

	return out
}

// NewTransitionTensor assembles the bosonic transition tensor
//
//	W[k,l,j] = M[k,j] · conj(M[l,j]) · S[l,k]
//
// from a mode-mixing matrix M and a distinguishability Gram matrix S.
// With S all-ones (fully indistinguishable photons) the tensor
// permanent of W reduces to |perm(M)|².
//
// Stage 1 (Validate): both inputs non-nil, square, and of equal order.
// Stage 2 (Assemble): fill the cube from the closed-form rule.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(n³) time and memory.
func NewTransitionTensor(m, s *Dense) (*Cubic, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(s); err != nil {
		return nil, err
	}
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}
	if err := ValidateSquare(s); err != nil {
		return nil, err
	}
	if m.Rows() != s.Rows() {
		return nil, ErrDimensionMismatch
	}

	n := m.Rows()
	w := &Cubic{n: n, data: make([]complex128, n*n*n)}
	for k := 0; k < n; k++ {
		for l := 0; l < n; l++ {
			gram := s.data[l*n+k] // S[l,k]
			for j := 0; j < n; j++ {
				mk := m.data[k*n+j] // M[k,j]
				ml := m.data[l*n+j] // M[l,j]
				w.data[(k*n+l)*n+j] = mk * cmplx.Conj(ml) * gram
			}
		}
	}

	return w, nil
}
