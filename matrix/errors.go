// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All constructors and accessors return these sentinels
// and tests check them via errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Do not
// %w-wrap these sentinels when returning directly; if context is
// essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the outer
// boundary — callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (e.g., rows <= 0, cols <= 0, or a nil/empty row set).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands or ragged input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument)
	// was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilTensor indicates that a nil *Cubic (receiver or argument)
	// was used.
	ErrNilTensor = errors.New("matrix: nil tensor")

	// ErrNotCubic signals that a 3-tensor with equal extent in all
	// three axes was required but the input wasn't.
	ErrNotCubic = errors.New("matrix: tensor is not cubic")

	// ErrNaNInf signals a NaN or ±Inf component was encountered where
	// finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
