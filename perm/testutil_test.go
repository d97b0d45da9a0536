// Package perm_test — shared helpers and brute-force oracles.
//
// The oracles enumerate permutations directly (O(n!)) and exist purely
// to validate the exponential engines on small inputs; they carry no
// algorithmic interest of their own.
package perm_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// seedDet is the fixed seed used by every randomized test input.
const seedDet = 42

// bruteForcePermanent sums Π_i a[i][σ(i)] over all n! permutations σ.
// O(n!·n); fine for n ≤ 8.
func bruteForcePermanent(a [][]complex128) complex128 {
	n := len(a)
	used := make([]bool, n)

	var rec func(row int) complex128
	rec = func(row int) complex128 {
		if row == n {
			return 1
		}
		var sum complex128
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			used[j] = true
			sum += a[row][j] * rec(row+1)
			used[j] = false
		}

		return sum
	}

	return rec(0)
}

// bruteForceTensorPermanent sums Π_j w[σ(j)][τ(j)][j] over all
// permutation pairs (σ, τ) and takes the real part. O((n!)²·n).
func bruteForceTensorPermanent(w [][][]complex128) float64 {
	n := len(w)
	perms := allPermutations(n)

	var total complex128
	for _, sigma := range perms {
		for _, tau := range perms {
			t := complex(1, 0)
			for j := 0; j < n; j++ {
				t *= w[sigma[j]][tau[j]][j]
			}
			total += t
		}
	}

	return real(total)
}

// allPermutations returns every permutation of 0..n-1.
func allPermutations(n int) [][]int {
	cur := make([]int, 0, n)
	used := make([]bool, n)
	var out [][]int

	var rec func()
	rec = func() {
		if len(cur) == n {
			out = append(out, append([]int(nil), cur...))

			return
		}
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			used[j] = true
			cur = append(cur, j)
			rec()
			cur = cur[:len(cur)-1]
			used[j] = false
		}
	}
	rec()

	return out
}

// randComplexMatrix builds an n×n matrix with entries drawn from the
// unit square in both components.
func randComplexMatrix(n int, rng *rand.Rand) [][]complex128 {
	a := make([][]complex128, n)
	for i := range a {
		a[i] = make([]complex128, n)
		for j := range a[i] {
			a[i][j] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
		}
	}

	return a
}

// randRealMatrix builds an n×n real-valued matrix (imaginary parts 0).
func randRealMatrix(n int, rng *rand.Rand) [][]complex128 {
	a := make([][]complex128, n)
	for i := range a {
		a[i] = make([]complex128, n)
		for j := range a[i] {
			a[i][j] = complex(rng.Float64()*2-1, 0)
		}
	}

	return a
}

// requireCmplxClose asserts |want−got| ≤ tol·max(1, |want|).
func requireCmplxClose(t *testing.T, want, got complex128, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	scale := cmplx.Abs(want)
	if scale < 1 {
		scale = 1
	}
	require.LessOrEqual(t, cmplx.Abs(want-got), tol*scale, msgAndArgs...)
}
