// SPDX-License-Identifier: MIT

// Package volterra: the first-kind solver.

package volterra

import (
	"github.com/mwt/inteq/matrix"
	"github.com/mwt/inteq/quad"
)

const opSolveFirst = "Solve"

// Solve approximates g in the Volterra first-kind equation
//
//	f(s) = ∫ₐˢ K(s,y) g(y) dy
//
// on a num-point grid spanning (a, b]. Only the causal rules are
// supported: quad.Midpoint uses the raw lower-triangular kernel matrix,
// quad.Trapezoid halves the diagonal and folds the excluded left
// endpoint into column 0 as K(s_i, a)/2.
//
// Implementation:
//   - Stage 1: s-grid of num points from a+(b−a)/num to b; the point a
//     itself is excluded (f(a) = 0 makes its row trivial).
//   - Stage 2: lower-triangular kernel matrix K[i,j] = K(s_i, s_j) for
//     j ≤ i, with the rule's endpoint corrections applied.
//   - Stage 3: forward substitution K·g = f(s), then a num/(b−a)
//     rescale from quadrature-weighted values to function values.
//
// Returns the s-grid and the matching g values.
//
// Errors:
//   - ErrInvalidMethod when rule is not quad.Midpoint or quad.Trapezoid.
//   - quad.ErrInvalidGridSize when num < 1.
//   - matrix.ErrSingular when the kernel vanishes on the diagonal
//     (K(s,s) = 0 exactly at some grid point).
//
// A near-zero (but nonzero) diagonal is not caught; the output is then
// numerically unstable.
//
// Complexity: Time O(num²), Space O(num²).
func Solve(k Kernel, f Free, a, b float64, num int, rule quad.Rule) (sGrid, gGrid []float64, err error) {
	if !rule.Valid() || !rule.Causal() {
		return nil, nil, volterraErrorf(opSolveFirst, ErrInvalidMethod)
	}
	if num < 1 {
		return nil, nil, volterraErrorf(opSolveFirst, quad.ErrInvalidGridSize)
	}

	h := (b - a) / float64(num)
	sGrid = make([]float64, num)
	for i := range sGrid {
		sGrid[i] = a + float64(i+1)*h
	}
	sGrid[num-1] = b

	rows := make([][]float64, num)
	for i, s := range sGrid {
		rows[i] = make([]float64, num)
		for j := 0; j <= i; j++ {
			rows[i][j] = k(s, sGrid[j])
		}
		if rule == quad.Trapezoid {
			rows[i][i] /= 2
			rows[i][0] += k(s, a) / 2
		}
	}
	ktril, err := matrix.FromRows(rows)
	if err != nil {
		return nil, nil, volterraErrorf(opSolveFirst, err)
	}

	fs := make([]float64, num)
	for i, s := range sGrid {
		fs[i] = f(s)
	}

	gGrid, err = matrix.SolveLower(ktril, fs)
	if err != nil {
		return nil, nil, volterraErrorf(opSolveFirst, err)
	}

	scale := float64(num) / (b - a)
	for i := range gGrid {
		gGrid[i] *= scale
	}

	return sGrid, gGrid, nil
}
