// SPDX-License-Identifier: MIT
// Package matrix: linear solves for the discretized integral-equation
// systems.
//
// Two primitives cover every solver in the module:
//   - SolveLower — forward substitution; causal quadrature rules
//     (midpoint, trapezoid) discretize Volterra equations into
//     lower-triangular systems, so O(n²) is enough.
//   - Solve — Gaussian elimination with partial pivoting; the Fredholm
//     normal equations and the non-causal Volterra-2 rules (Simpson,
//     Gregory) produce dense systems.

package matrix

import "math"

// ZeroPivot is the sentinel value for detecting a zero pivot.
// Only exact zeros are flagged: near-singular systems proceed and
// return whatever elimination yields, mirroring the behavior of
// standard factorization backends.
const ZeroPivot = 0.0

// Operation tags for solve kernels.
const (
	opSolveLower = "SolveLower"
	opSolve      = "Solve"
)

// SolveLower solves L·x = b by forward substitution, where L is
// square and lower triangular. Entries above the diagonal are ignored
// (not validated), so callers may pass a dense matrix whose upper
// triangle is stale.
//
// Implementation:
//   - Stage 1: validate L square, b of matching length.
//   - Stage 2: x[i] = (b[i] − Σ_{k<i} L[i,k]·x[k]) / L[i,i], top-down.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrSingular when a diagonal entry is exactly zero.
//
// Complexity: Time O(n²), Space O(n).
func SolveLower(l *Dense, b []float64) ([]float64, error) {
	if err := ValidateSquare(l); err != nil {
		return nil, matrixErrorf(opSolveLower, err)
	}
	n := l.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolveLower, err)
	}

	x := make([]float64, n)
	var (
		i, k, base int
		sum, pivot float64
	)
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += l.data[base+k] * x[k]
		}
		pivot = l.data[base+i]
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opSolveLower, ErrSingular)
		}
		x[i] = (b[i] - sum) / pivot
	}

	return x, nil
}

// Solve solves the dense system A·x = b by Gaussian elimination with
// partial (row) pivoting. A and b are not mutated; elimination runs on
// a working copy.
//
// Implementation:
//   - Stage 1: validate A square, b of matching length; clone A,
//     copy b.
//   - Stage 2: for each column, swap in the row with the largest
//     absolute pivot, eliminate below, then back-substitute.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrSingular when the best available pivot is exactly zero.
//
// Notes:
//   - Partial pivoting is required here (unlike a deterministic
//     no-pivot LU) because the assembled systems (I − h·K, normal
//     equations) carry no diagonal-dominance guarantee.
//   - Near-singular systems are not detected; see ErrSingular.
//
// Complexity: Time O(n³), Space O(n²) for the working copy.
func Solve(a *Dense, b []float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Working copies: elimination is destructive.
	w := a.Clone()
	rhs := make([]float64, n)
	copy(rhs, b)

	var (
		col, row, i, k  int
		best, av, ratio float64
		baseCol, baseI  int
	)
	for col = 0; col < n; col++ {
		// Partial pivot: pick the row with the largest |w[row,col]|.
		row = col
		best = math.Abs(w.data[col*n+col])
		for i = col + 1; i < n; i++ {
			av = math.Abs(w.data[i*n+col])
			if av > best {
				best, row = av, i
			}
		}
		if best == ZeroPivot {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		if row != col {
			// Swap full rows; the already-eliminated left part is zero
			// either way, so a full-row swap keeps the code simple.
			baseCol, baseI = col*n, row*n
			for k = 0; k < n; k++ {
				w.data[baseCol+k], w.data[baseI+k] = w.data[baseI+k], w.data[baseCol+k]
			}
			rhs[col], rhs[row] = rhs[row], rhs[col]
		}

		// Eliminate below the pivot.
		baseCol = col * n
		for i = col + 1; i < n; i++ {
			baseI = i * n
			ratio = w.data[baseI+col] / w.data[baseCol+col]
			if ratio == 0 {
				continue // row already eliminated
			}
			w.data[baseI+col] = 0
			for k = col + 1; k < n; k++ {
				w.data[baseI+k] -= ratio * w.data[baseCol+k]
			}
			rhs[i] -= ratio * rhs[col]
		}
	}

	// Back substitution on the upper-triangular remainder.
	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		baseI = i * n
		for k = i + 1; k < n; k++ {
			sum += w.data[baseI+k] * x[k]
		}
		x[i] = (rhs[i] - sum) / w.data[baseI+i]
	}

	return x, nil
}
