// Package bosonperm computes matrix permanents and their tensor
// generalization — the quantities at the heart of boson-sampling
// simulation and analysis.
//
// 🚀 What is bosonperm?
//
//	A deterministic, zero-dependency library that brings together:
//		• Exact engines: Ryser and Glynn formulas with Gray-code updates, O(n·2ⁿ)
//		• Tensor permanent: subset-pair enumeration for partially
//		  distinguishable photons, O(4ⁿ)
//		• Randomized estimation: unbiased Gurvits/Glynn sampling with an
//		  adaptive precision controller
//		• Building blocks: complex dense matrices, cubic transition
//		  tensors, a reusable Gray-code sequencer
//
// ✨ Why choose bosonperm?
//
//   - Sentinel errors only – no panics on user input, no ambient logging
//   - Deterministic – randomness is an explicit, seeded dependency
//   - Pure Go – no cgo, no hidden deps
//   - Testable – diagnostics flow through an injected sink
//
// Everything is organized under three subpackages:
//
//	graycode/ — minimal-change subset enumeration (flip index + direction)
//	matrix/   — complex Dense matrix, Cubic 3-tensor, transition-tensor builder
//	perm/     — exact engines, randomized estimator, adaptive controller
//
// The permanent is #P-hard: exact engines are practical up to n ≈ 30,
// the estimator takes over beyond that. Inputs are caller-owned and
// never mutated; every call is a pure function of its arguments.
package bosonperm
