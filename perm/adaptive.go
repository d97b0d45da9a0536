package perm

import (
	"math"
	"math/cmplx"
)

// EstimateAdaptive refines a Gurvits/Glynn estimate until it stabilizes
// or an iteration budget runs out.
//
// State machine over rounds:
//  1. Round 0 draws minIter trials.
//  2. Each following round grows the trial count by the geometric
//     factor (maxIter/minIter)^(1/steps), draws a fresh independent
//     estimate from a derived RNG substream, and compares it to the
//     previous round via |e_k − e_{k−1}| / |(e_k + e_{k−1})/2|.
//  3. Terminate when that relative difference drops below rtol
//     (Converged=true) or when the cumulative trial count reaches
//     maxIter (Converged=false). Both outcomes return the most recent
//     estimate; the tag keeps them distinguishable.
//
// Guardrails: a growth factor ≤ 2 or minIter < 100 emits a Warning
// through the diagnostics sink — two noisy estimates that happen to
// agree would otherwise declare convergence falsely. Execution
// proceeds regardless.
//
// Configuration: WithRtol, WithMinIter, WithMaxIter, WithGrowthSteps,
// WithSeed/WithRand, WithDiagnostics. Defaults: rtol 1e−5, minIter
// 100, maxIter 100000, 5 growth steps.
//
// Errors:
//   - shape sentinels from validation;
//   - ErrBadRtol   — rtol < 0;
//   - ErrBadBudget — minIter < 1, steps < 1, or maxIter < minIter.
//
// Complexity: O(totalTrials·n²) time, O(n) space; totalTrials ≤
// maxIter + the final round's overshoot.
func EstimateAdaptive(a [][]complex128, opts ...Option) (EstimateResult, error) {
	n, err := validateSquare(a)
	if err != nil {
		return EstimateResult{}, err
	}
	o := gatherOptions(opts...)
	if err = o.validate(); err != nil {
		return EstimateResult{}, err
	}
	o.warnGuardrails()

	base := o.rng
	if base == nil {
		base = rngFromSeed(o.seed)
	}
	growth := o.growth()

	// Round 0.
	niter := o.minIter
	prev := batchEstimate(a, n, niter, deriveRNG(base, 0))
	total := niter

	for round := uint64(1); ; round++ {
		niter = int(math.Ceil(float64(niter) * growth))
		cur := batchEstimate(a, n, niter, deriveRNG(base, round))
		total += niter

		if relDiff(cur, prev) < o.rtol {
			return EstimateResult{Estimate: cur, Iterations: total, Converged: true}, nil
		}
		if total >= o.maxIter {
			return EstimateResult{Estimate: cur, Iterations: total, Converged: false}, nil
		}
		prev = cur
	}
}

// relDiff is the symmetric relative difference
// |a − b| / |(a + b)/2|, with the convention 0/0 = 0 so that two exact
// zeros count as converged.
// Complexity: O(1).
func relDiff(a, b complex128) float64 {
	num := cmplx.Abs(a - b)
	den := cmplx.Abs((a + b) / 2)
	if den == 0 {
		if num == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return num / den
}
