// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra core shared by the
// integral-equation solvers: a row-major float64 matrix with safe
// accessors, element-wise and product kernels, and the two solve
// primitives the discretized systems need — forward substitution for
// lower-triangular (causal) systems and Gaussian elimination with
// partial pivoting for dense ones.
//
// Purpose:
//   - Keep a single, cache-friendly storage layout with the explicit
//     index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors
//     instead of panicking.
//   - Keep algorithmic determinism: fixed loop orders, no map iteration,
//     no randomness.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Tril: O(r*c);
//   - Add/Scale/Hadamard/Transpose: O(r*c); Mul: O(r*n*c);
//   - MatVec: O(r*c); SolveLower: O(n²); Solve: O(n³).
//
// All kernels validate through the central validators (validators.go)
// and return plain sentinel errors (errors.go) wrapped with a stable
// operation tag, so callers match conditions via errors.Is.
package matrix
