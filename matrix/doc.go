// Package matrix offers the value types consumed by the permanent
// engines: a complex dense matrix and a cubic 3-tensor.
//
// The matrix package provides:
//
//   - Dense, a row-major n×m matrix of complex128 values with
//     bounds-checked accessors and deep cloning.
//   - Cubic, a 3-index tensor with equal extent in all three axes — the
//     shape required by the tensor-permanent engine.
//   - NewTransitionTensor, which assembles the bosonic transition
//     tensor W[k,l,j] = M[k,j]·conj(M[l,j])·S[l,k] from a mode-mixing
//     matrix M and a distinguishability Gram matrix S.
//
// All types are plain values: no locks, no shared state, no mutation of
// caller inputs. Errors are package-level sentinels matched with
// errors.Is; no function panics on user input.
package matrix
