// SPDX-License-Identifier: MIT

// Package fredholm: the regularized first-kind solver.

package fredholm

import (
	"math"

	"github.com/mwt/inteq/matrix"
	"github.com/mwt/inteq/quad"
)

// Kernel is the two-argument integrand factor K(s,y). It must be finite
// at every (s-grid, y-grid) pair the solver evaluates.
type Kernel func(s, y float64) float64

// Free is the left-hand-side function f(s).
type Free func(s float64) float64

const opSolve = "Solve"

// Solve approximates g in the Fredholm first-kind equation
//
//	f(s) = ∫ₐᵇ K(s,y) g(y) dy
//
// by discretizing with n quadrature nodes over the y-domain, enforcing
// the equation on an snum-point s-grid, and solving the regularized
// normal equations (KᵀK + γ·H)·g = Kᵀ·f(s).
//
// Implementation:
//   - Stage 1: resolve opts (nil means DefaultOptions); NaN bounds fall
//     back to [a,b], SNum ≤ 0 falls back to 2n.
//   - Stage 2: build y-nodes and weights. SimpsonQuadrature forces n
//     odd (silent increment) on a uniform grid; LegendreQuadrature maps
//     the Legendre–Gauss rule onto [a,b].
//   - Stage 3: assemble K[i,j] = w_j·k(s_i, y_j), the normal equations,
//     and the right-hand side Kᵀ·f(s); dense solve.
//   - Stage 4: Simpson weights are in step units, so the solution is
//     rescaled by n/(b−a); Gauss–Legendre weights already carry the
//     interval measure and need no rescale.
//
// Inputs:
//   - k, f  — kernel and free functions; evaluated pointwise.
//   - a, b  — integration bounds, a < b expected.
//   - n     — number of y-domain quadrature nodes.
//   - opts  — optional configuration; see Options.
//
// Returns the y-grid and the matching g values, ordered by increasing y.
//
// Errors:
//   - ErrInvalidQuadrature for an out-of-range Quadrature selector.
//   - quad.ErrInvalidGridSize when n is too small for the chosen rule.
//   - ErrInvalidDimension when γ ≠ 0 and n < 4 (Twomey matrix).
//   - matrix.ErrSingular when the assembled system has no unique
//     solution (typically γ = 0 on a rank-deficient kernel).
//
// Complexity: Time O(n³) dominated by the dense solve, Space O(n·snum).
func Solve(k Kernel, f Free, a, b float64, n int, opts *Options) (yGrid, gGrid []float64, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if math.IsNaN(o.SMin) {
		o.SMin = a
	}
	if math.IsNaN(o.SMax) {
		o.SMax = b
	}
	if o.SNum <= 0 {
		o.SNum = DefaultSNumFactor * n
	}

	var weights []float64
	switch o.Quadrature {
	case SimpsonQuadrature:
		// Simpson pairs panels; bump n to the next odd point count
		// instead of failing.
		if n%2 == 0 {
			n++
		}
		yGrid = linspace(a, b, n)
		weights, err = quad.SimpsonWeights(n)
	case LegendreQuadrature:
		yGrid, weights, err = quad.GaussLegendre(n)
		if err == nil {
			yGrid, weights = quad.RescaleGaussLegendre(yGrid, weights, a, b)
		}
	default:
		return nil, nil, fredholmErrorf(opSolve, ErrInvalidQuadrature)
	}
	if err != nil {
		return nil, nil, fredholmErrorf(opSolve, err)
	}

	sGrid := linspace(o.SMin, o.SMax, o.SNum)

	// Quadrature matrix: row per enforcement point, column per node.
	rows := make([][]float64, o.SNum)
	for i, s := range sGrid {
		rows[i] = make([]float64, n)
		for j, y := range yGrid {
			rows[i][j] = weights[j] * k(s, y)
		}
	}
	ksqur, err := matrix.FromRows(rows)
	if err != nil {
		return nil, nil, fredholmErrorf(opSolve, err)
	}

	kt, err := matrix.Transpose(ksqur)
	if err != nil {
		return nil, nil, fredholmErrorf(opSolve, err)
	}
	sys, err := matrix.Mul(kt, ksqur)
	if err != nil {
		return nil, nil, fredholmErrorf(opSolve, err)
	}
	if o.Gamma != 0 {
		h, herr := Twomey(n)
		if herr != nil {
			return nil, nil, fredholmErrorf(opSolve, herr)
		}
		penalty, serr := matrix.Scale(h, o.Gamma)
		if serr != nil {
			return nil, nil, fredholmErrorf(opSolve, serr)
		}
		sys, err = matrix.Add(sys, penalty)
		if err != nil {
			return nil, nil, fredholmErrorf(opSolve, err)
		}
	}

	fs := make([]float64, o.SNum)
	for i, s := range sGrid {
		fs[i] = f(s)
	}
	rhs, err := matrix.MatVec(kt, fs)
	if err != nil {
		return nil, nil, fredholmErrorf(opSolve, err)
	}

	gGrid, err = matrix.Solve(sys, rhs)
	if err != nil {
		return nil, nil, fredholmErrorf(opSolve, err)
	}

	if o.Quadrature == SimpsonQuadrature {
		// Step-unit weights: convert quadrature-weighted values into
		// pointwise function values.
		scale := float64(n) / (b - a)
		for i := range gGrid {
			gGrid[i] *= scale
		}
	}

	return yGrid, gGrid, nil
}

// linspace returns n evenly spaced points from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	pts := make([]float64, n)
	if n == 1 {
		pts[0] = lo

		return pts
	}
	h := (hi - lo) / float64(n-1)
	for i := range pts {
		pts[i] = lo + float64(i)*h
	}
	pts[n-1] = hi // exact upper bound, no accumulated drift

	return pts
}
