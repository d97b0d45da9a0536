// Package graycode provides minimal-change subset enumeration.
//
// A reflected Gray code orders the integers 0..2ⁿ−1 so that consecutive
// values differ in exactly one bit. Interpreting bit i as "index i is in
// the subset", the ordering walks the whole power set of {0..n−1} while
// adding or removing a single element at every step.
//
// The package exposes:
//
//   - Code — the encoding itself, gray(k) = k XOR (k >> 1).
//   - Sequencer — a finite iterator over the 2ⁿ−1 transitions, reporting
//     for each step which index flipped and in which direction.
//
// Exponential-time permanent algorithms (Ryser, Glynn) rely on this to
// maintain running sums incrementally: one O(n) delta per step instead
// of an O(n²) recomputation, dropping total work from O(n²·2ⁿ) to
// O(n·2ⁿ).
//
// A Sequencer is single-use and strictly sequential: each step's state
// depends on the previous step, so it cannot be restarted or advanced
// out of order. Create a fresh one per enumeration.
package graycode
