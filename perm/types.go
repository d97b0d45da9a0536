// Package perm: sentinel error set and public result/diagnostic types.
// All algorithms return these sentinels and tests check them via
// errors.Is. No algorithm panics on user-triggered error conditions.

package perm

import "errors"

var (
	// ErrEmptyMatrix is returned when the input matrix has no rows.
	ErrEmptyMatrix = errors.New("perm: empty matrix")

	// ErrNonSquare is returned when the input matrix is not square
	// (including ragged rows).
	ErrNonSquare = errors.New("perm: matrix is not square")

	// ErrEmptyTensor is returned when the input tensor has extent zero.
	ErrEmptyTensor = errors.New("perm: empty tensor")

	// ErrNotCubic is returned when the 3-tensor does not have equal
	// extent in all three axes.
	ErrNotCubic = errors.New("perm: tensor is not cubic")

	// ErrTooLarge is returned when the matrix order exceeds the range
	// addressable by the Gray-code bitmask walk.
	ErrTooLarge = errors.New("perm: order exceeds bitmask range")

	// ErrNilTensor is returned when a nil *matrix.Cubic is passed to
	// TensorCubic.
	ErrNilTensor = errors.New("perm: nil tensor")

	// ErrBadTrials is returned when a trial count is below 1.
	ErrBadTrials = errors.New("perm: trials must be >= 1")

	// ErrBadRtol is returned when the relative tolerance is negative.
	ErrBadRtol = errors.New("perm: rtol must be non-negative")

	// ErrBadBudget is returned when the adaptive iteration budget is
	// inconsistent (minIter < 1, maxIter < minIter, or steps < 1).
	ErrBadBudget = errors.New("perm: invalid iteration budget")
)

// EstimateResult is the tagged outcome of EstimateAdaptive.
// Converged separates "the relative-difference criterion was met" from
// "the iteration budget ran out"; both carry the most recent estimate.
type EstimateResult struct {
	// Estimate is the latest batched Gurvits/Glynn estimate.
	Estimate complex128

	// Iterations is the cumulative number of estimator trials consumed
	// across all refinement rounds.
	Iterations int

	// Converged is true when the relative difference between the last
	// two round estimates fell below rtol, false when maxIter was
	// exhausted first.
	Converged bool
}

// WarningKind labels a non-fatal configuration diagnostic.
type WarningKind int

const (
	// WarnSlowGrowth flags a geometric growth factor ≤ 2: consecutive
	// round estimates share too much precision, so two noisy estimates
	// may agree by chance and trigger a false convergence.
	WarnSlowGrowth WarningKind = iota

	// WarnSmallMinIter flags minIter < 100: the first round estimate is
	// too noisy for the relative-difference criterion to be meaningful.
	WarnSmallMinIter
)

// Warning is a non-fatal diagnostic emitted through the configured
// sink. Execution proceeds; the caller is advised results may be
// unreliable.
type Warning struct {
	Kind    WarningKind
	Message string
}

// DiagnosticSink receives Warnings. The zero configuration discards
// them; inject a sink (WithDiagnostics) to observe guardrail hits
// without capturing process-wide output.
type DiagnosticSink func(Warning)
