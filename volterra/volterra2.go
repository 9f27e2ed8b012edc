// SPDX-License-Identifier: MIT

// Package volterra: the second-kind solver.

package volterra

import (
	"github.com/mwt/inteq/matrix"
	"github.com/mwt/inteq/quad"
)

const opSolveSecond = "Solve2"

// Solve2 approximates g in the Volterra second-kind equation
//
//	g(s) = f(s) + ∫ₐˢ K(s,y) g(y) dy
//
// on a num-point grid over [a,b] inclusive, step h = (b−a)/(num−1).
// The kernel matrix holds K(s_j, s_i) — arguments swapped relative to
// Solve; see the package comment.
//
// Rule dispatch:
//   - quad.Midpoint  — lower-triangularize, zero the (0,0) entry (the
//     first value is exactly g(a) = f(a)), forward substitution on
//     (I − h·K).
//   - quad.Trapezoid — lower-triangularize, halve column 0 and the
//     diagonal, zero (0,0), forward substitution.
//   - quad.Simpson   — Hadamard with the composite Simpson weight
//     matrix of size num−1, dense solve of (I − h·K).
//   - quad.Gregory   — Hadamard with the Gregory weight matrix of order
//     gregOrder (≤ 0 means DefaultGregoryOrder), dense solve.
//
// Returns the s-grid and the matching g values. No final rescale: the
// identity term already anchors g in function units.
//
// Errors:
//   - ErrInvalidMethod for a rule outside the declared set.
//   - quad.ErrInvalidGridSize when num < 2.
//   - quad.ErrInvalidOrder when the Gregory order does not fit the grid
//     (gregOrder ≥ num).
//   - matrix.ErrSingular when the assembled system has no unique
//     solution.
//
// Complexity: Time O(num²) for causal rules, O(num³) otherwise.
func Solve2(k Kernel, f Free, a, b float64, num int, rule quad.Rule, gregOrder int) (sGrid, gGrid []float64, err error) {
	if !rule.Valid() {
		return nil, nil, volterraErrorf(opSolveSecond, ErrInvalidMethod)
	}
	if num < 2 {
		return nil, nil, volterraErrorf(opSolveSecond, quad.ErrInvalidGridSize)
	}

	h := (b - a) / float64(num-1)
	sGrid = make([]float64, num)
	for i := range sGrid {
		sGrid[i] = a + float64(i)*h
	}
	sGrid[num-1] = b

	fs := make([]float64, num)
	for i, s := range sGrid {
		fs[i] = f(s)
	}

	// Swapped argument order: entry (i,j) holds K(s_j, s_i).
	rows := make([][]float64, num)
	for i := range rows {
		rows[i] = make([]float64, num)
		for j := range rows[i] {
			rows[i][j] = k(sGrid[j], sGrid[i])
		}
	}

	if rule.Causal() {
		gGrid, err = solveCausal(rows, fs, h, rule, num)
		if err != nil {
			return nil, nil, err
		}

		return sGrid, gGrid, nil
	}

	kmat, err := matrix.FromRows(rows)
	if err != nil {
		return nil, nil, volterraErrorf(opSolveSecond, err)
	}

	var weights *matrix.Dense
	switch rule {
	case quad.Simpson:
		weights, err = quad.SimpsonMatrix(num - 1)
	case quad.Gregory:
		order := gregOrder
		if order <= 0 {
			order = DefaultGregoryOrder
		}
		weights, err = quad.GregoryMatrix(order, num-1)
	}
	if err != nil {
		return nil, nil, volterraErrorf(opSolveSecond, err)
	}

	weighted, err := matrix.Hadamard(kmat, weights)
	if err != nil {
		return nil, nil, volterraErrorf(opSolveSecond, err)
	}
	scaled, err := matrix.Scale(weighted, -h)
	if err != nil {
		return nil, nil, volterraErrorf(opSolveSecond, err)
	}
	eye, err := matrix.Identity(num)
	if err != nil {
		return nil, nil, volterraErrorf(opSolveSecond, err)
	}
	sys, err := matrix.Add(eye, scaled)
	if err != nil {
		return nil, nil, volterraErrorf(opSolveSecond, err)
	}

	gGrid, err = matrix.Solve(sys, fs)
	if err != nil {
		return nil, nil, volterraErrorf(opSolveSecond, err)
	}

	return sGrid, gGrid, nil
}

// solveCausal handles the lower-triangular rules. rows is consumed: the
// kernel values are rewritten in place into I − h·K before the forward
// substitution.
func solveCausal(rows [][]float64, fs []float64, h float64, rule quad.Rule, num int) ([]float64, error) {
	for i := range rows {
		// Lower-triangularize.
		for j := i + 1; j < num; j++ {
			rows[i][j] = 0
		}
		if rule == quad.Trapezoid {
			rows[i][0] /= 2
			rows[i][i] /= 2
		}
	}
	// First value is exactly g(a) = f(a).
	rows[0][0] = 0

	for i := range rows {
		for j := 0; j <= i; j++ {
			rows[i][j] *= -h
		}
		rows[i][i]++
	}

	sys, err := matrix.FromRows(rows)
	if err != nil {
		return nil, volterraErrorf(opSolveSecond, err)
	}
	gGrid, err := matrix.SolveLower(sys, fs)
	if err != nil {
		return nil, volterraErrorf(opSolveSecond, err)
	}

	return gGrid, nil
}
