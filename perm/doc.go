// Package perm computes the permanent of a complex square matrix and
// the permanent of the cubic 3-tensor arising from partially
// distinguishable photons.
//
// It includes two exact engines on a raw [][]complex128:
//
//   - Ryser — Gray-code walk over 2^(n−1) sign patterns with O(n)
//     incremental column updates.
//
//   - Complexity: O(n·2ⁿ)
//
//   - Glynn — the same identity with the transposed (row-combination)
//     update; a useful cross-check with a different rounding profile.
//
//   - Complexity: O(n·2ⁿ)
//
// One exact engine for cubic 3-tensors:
//
//   - Tensor — subset-pair inclusion–exclusion over all (R, S) with
//     R ≤ S; no Gray-code acceleration is applied.
//
//   - Complexity: O(4ⁿ)
//
// And a randomized path for matrices too large for exact work:
//
//   - Sample / Estimate — the unbiased Gurvits/Glynn ±1 estimator,
//     one draw or a batched mean.
//   - Combine — exact pooling of two independent batch means.
//   - EstimateAdaptive — geometric trial growth until a relative
//     stopping criterion or an iteration budget is hit; returns a
//     tagged result so convergence and budget exhaustion stay
//     distinguishable.
//
// The alternating sums in both exact engines accumulate ordinary
// floating-point rounding; for ill-conditioned inputs catastrophic
// cancellation is possible and is NOT detected. Use the two engines as
// mutual cross-checks when in doubt.
//
// All entry points are pure functions of their inputs: no goroutines,
// no I/O, no shared state. Randomness is explicit (WithSeed/WithRand)
// and warning diagnostics flow through an injected sink
// (WithDiagnostics).
package perm
