package perm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bosonperm/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEstimateAdaptive_ConvergesImmediately uses the zero-variance
// identity input: every round estimate is exactly 1, the relative
// difference is 0, and the controller stops at the first comparison.
func TestEstimateAdaptive_ConvergesImmediately(t *testing.T) {
	res, err := perm.EstimateAdaptive(identityMatrix(4))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, complex128(1), res.Estimate)
	assert.GreaterOrEqual(t, res.Iterations, perm.DefaultMinIter,
		"at least the first two rounds must have run")
	assert.Less(t, res.Iterations, perm.DefaultMaxIter,
		"convergence must beat the budget on zero-variance input")
}

// TestEstimateAdaptive_BudgetExhaustion forces rtol=0 so the strict
// criterion rel < 0 can never hold; the controller must stop at the
// budget and tag the result as not converged.
func TestEstimateAdaptive_BudgetExhaustion(t *testing.T) {
	res, err := perm.EstimateAdaptive(identityMatrix(3),
		perm.WithRtol(0),
		perm.WithMinIter(100),
		perm.WithMaxIter(2000),
	)
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.GreaterOrEqual(t, res.Iterations, 2000)
	assert.Equal(t, complex128(1), res.Estimate,
		"budget exhaustion still returns the latest estimate")
}

// TestEstimateAdaptive_LooseTolConverges exercises the rtol=1.0 branch
// on a noisy input: two successive estimates of the same quantity are
// within 100% of each other essentially always.
func TestEstimateAdaptive_LooseTolConverges(t *testing.T) {
	res, err := perm.EstimateAdaptive(onesMatrix(3),
		perm.WithRtol(1.0),
		perm.WithSeed(seedDet),
	)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 6.0, real(res.Estimate), 3.0)
}

// TestEstimateAdaptive_Deterministic: identical configuration ⇒
// identical trace and result.
func TestEstimateAdaptive_Deterministic(t *testing.T) {
	a := onesMatrix(4)
	r1, err := perm.EstimateAdaptive(a, perm.WithSeed(11))
	require.NoError(t, err)
	r2, err := perm.EstimateAdaptive(a, perm.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

// TestEstimateAdaptive_Guardrails asserts both warning conditions are
// delivered through the injected sink, and that execution proceeds.
func TestEstimateAdaptive_Guardrails(t *testing.T) {
	var got []perm.Warning
	sink := func(w perm.Warning) { got = append(got, w) }

	// minIter 50 (< 100) and maxIter 100 give growth (100/50)^(1/5) ≈ 1.15 ≤ 2:
	// both guardrails fire.
	res, err := perm.EstimateAdaptive(identityMatrix(3),
		perm.WithMinIter(50),
		perm.WithMaxIter(100),
		perm.WithDiagnostics(sink),
	)
	require.NoError(t, err)
	assert.True(t, res.Converged)

	require.Len(t, got, 2)
	kinds := []perm.WarningKind{got[0].Kind, got[1].Kind}
	assert.Contains(t, kinds, perm.WarnSlowGrowth)
	assert.Contains(t, kinds, perm.WarnSmallMinIter)
}

// TestEstimateAdaptive_NoWarningsByDefault: the documented defaults sit
// above both guardrail thresholds.
func TestEstimateAdaptive_NoWarningsByDefault(t *testing.T) {
	var got []perm.Warning
	_, err := perm.EstimateAdaptive(identityMatrix(2),
		perm.WithDiagnostics(func(w perm.Warning) { got = append(got, w) }),
	)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestEstimateAdaptive_ConfigErrors covers the option sentinels.
func TestEstimateAdaptive_ConfigErrors(t *testing.T) {
	_, err := perm.EstimateAdaptive(identityMatrix(2), perm.WithRtol(-1))
	require.ErrorIs(t, err, perm.ErrBadRtol)

	_, err = perm.EstimateAdaptive(identityMatrix(2), perm.WithMinIter(0))
	require.ErrorIs(t, err, perm.ErrBadBudget)

	_, err = perm.EstimateAdaptive(identityMatrix(2),
		perm.WithMinIter(1000), perm.WithMaxIter(10))
	require.ErrorIs(t, err, perm.ErrBadBudget)

	_, err = perm.EstimateAdaptive(identityMatrix(2), perm.WithGrowthSteps(0))
	require.ErrorIs(t, err, perm.ErrBadBudget)

	_, err = perm.EstimateAdaptive(nil)
	require.ErrorIs(t, err, perm.ErrEmptyMatrix)
}

// TestWithRtol_NaNPanics: NaN is a programmer error, not a configuration.
func TestWithRtol_NaNPanics(t *testing.T) {
	assert.Panics(t, func() { perm.WithRtol(math.NaN()) })
}
