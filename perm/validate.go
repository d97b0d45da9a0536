// Package perm - validation helpers shared by exact and randomized
// entry points.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) for matrices, O(n²) for tensors; no hidden allocations.

package perm

import "github.com/katalvlaran/bosonperm/graycode"

// validateSquare verifies that a is a non-empty square matrix whose
// order fits the Gray-code bitmask walk. Returns n on success.
//
// Contract:
//   - len(a) >= 1, every row has length len(a).
//   - n <= graycode.MaxOrder (the subset masks must fit a uint64).
//
// Complexity: O(n) time, O(1) space.
func validateSquare(a [][]complex128) (int, error) {
	n := len(a)
	if n == 0 {
		return 0, ErrEmptyMatrix
	}
	if n > graycode.MaxOrder {
		return 0, ErrTooLarge
	}
	for i := 0; i < n; i++ {
		if len(a[i]) != n {
			return 0, ErrNonSquare
		}
	}

	return n, nil
}

// validateCubic verifies that w is a non-empty cubic 3-tensor: extent n
// in all three axes. Returns n on success.
//
// Complexity: O(n²) time, O(1) space.
func validateCubic(w [][][]complex128) (int, error) {
	n := len(w)
	if n == 0 {
		return 0, ErrEmptyTensor
	}
	if n > graycode.MaxOrder {
		return 0, ErrTooLarge
	}
	for k := 0; k < n; k++ {
		if len(w[k]) != n {
			return 0, ErrNotCubic
		}
		for l := 0; l < n; l++ {
			if len(w[k][l]) != n {
				return 0, ErrNotCubic
			}
		}
	}

	return n, nil
}
