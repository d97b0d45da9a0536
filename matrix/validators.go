// Package matrix - canonical validation helpers.
//
// Purpose:
//   - Provide a single source of truth for common shape checks.
//   - Keep constructors minimal by delegating nil/shape guards here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly when context is needed.
//
// All checks are pure, deterministic, and allocate nothing.

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare ensures m has equal row and column counts.
// Assumes m is non-nil (use ValidateNotNil first).
// Returns ErrNonSquare otherwise.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes both are non-nil.
// Returns ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateTensorNotNil ensures the tensor reference is non-nil.
// Returns ErrNilTensor if t == nil.
// Complexity: O(1).
func ValidateTensorNotNil(t *Cubic) error {
	if t == nil {
		return ErrNilTensor
	}

	return nil
}

// ValidateFinite rejects NaN or ±Inf components anywhere in m.
// Assumes m is non-nil. Returns ErrNaNInf on the first violation.
// Intended for pipelines ingesting external data: fail fast here rather
// than deep inside an exponential compute.
// Complexity: O(r·c).
func ValidateFinite(m *Dense) error {
	for _, v := range m.data {
		if !isFinite(real(v)) || !isFinite(imag(v)) {
			return ErrNaNInf
		}
	}

	return nil
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
