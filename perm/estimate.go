package perm

import "math/rand"

// Sample returns one unbiased Gurvits/Glynn sample of the permanent:
// draw x ∈ {−1,+1}ⁿ uniformly and evaluate
//
//	(Π_i x_i) · Π_j (Σ_i x_i·a[j][i]).
//
// The expectation over x equals perm(a); a single sample is typically
// far from it. If rng is nil the fixed default stream is used.
//
// Errors: ErrEmptyMatrix, ErrNonSquare, ErrTooLarge.
// Complexity: O(n²) time, O(n) space.
func Sample(a [][]complex128, rng *rand.Rand) (complex128, error) {
	n, err := validateSquare(a)
	if err != nil {
		return 0, err
	}
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}
	x := make([]float64, n)

	return oneSample(a, x, r), nil
}

// Estimate returns the mean of trials independent Gurvits/Glynn
// samples — itself unbiased, with variance shrinking as 1/trials.
// Randomness is configured via WithSeed or WithRand; diagnostics
// options are accepted but unused here.
//
// Errors: ErrBadTrials (trials < 1), plus the shape sentinels.
// Complexity: O(trials·n²) time, O(n) space.
func Estimate(a [][]complex128, trials int, opts ...Option) (complex128, error) {
	n, err := validateSquare(a)
	if err != nil {
		return 0, err
	}
	if trials < 1 {
		return 0, ErrBadTrials
	}
	o := gatherOptions(opts...)
	rng := o.rng
	if rng == nil {
		rng = rngFromSeed(o.seed)
	}

	return batchEstimate(a, n, trials, rng), nil
}

// Combine pools two independent batched estimates, e1 over n1 trials
// and e2 over n2 trials, into the estimate for n1+n2 trials:
//
//	(n1·e1 + n2·e2) / (n1 + n2)
//
// computed in weighted form so that pooling two equal estimates with
// equal trial counts returns the estimate bit-for-bit. This is the
// standard pooling of independent sample means and is exact under
// independence, not an approximation.
//
// Errors: ErrBadTrials when n1 < 1 or n2 < 1.
// Complexity: O(1).
func Combine(e1, e2 complex128, n1, n2 int) (complex128, error) {
	if n1 < 1 || n2 < 1 {
		return 0, ErrBadTrials
	}
	w1 := float64(n1) / float64(n1+n2)

	return complex(w1, 0)*e1 + complex(1-w1, 0)*e2, nil
}

// batchEstimate averages trials samples using a shared scratch vector.
// Callers guarantee a is a validated n×n matrix and rng is non-nil.
// Complexity: O(trials·n²).
func batchEstimate(a [][]complex128, n, trials int, rng *rand.Rand) complex128 {
	x := make([]float64, n)
	var sum complex128
	for t := 0; t < trials; t++ {
		sum += oneSample(a, x, rng)
	}

	return sum / complex(float64(trials), 0)
}

// oneSample draws one ±1 vector into x and evaluates the estimator.
// Complexity: O(n²).
func oneSample(a [][]complex128, x []float64, rng *rand.Rand) complex128 {
	fillSignVector(x, rng)

	sign := 1.0
	for _, xi := range x {
		sign *= xi
	}

	p := complex(sign, 0)
	for j := range a {
		var dot complex128
		row := a[j]
		for i, xi := range x {
			dot += complex(xi, 0) * row[i]
		}
		p *= dot
	}

	return p
}
