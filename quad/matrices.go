// SPDX-License-Identifier: MIT

// Package quad: quadrature weight matrices for Volterra second-kind
// discretizations with non-causal rules.
//
// A weight matrix assigns row r the weights that integrate a sampled
// function from grid point 0 to grid point r (in step units, so row r
// sums to r). Three constructions are combined for the Gregory matrix:
//
//  1. exact polynomial-integration weights for the first k+1 rows
//     (a Vandermonde-based formula — the integration range is shorter
//     than the rule's stencil there);
//  2. "sigma" boundary-correction weights for rows k+1 .. 2k+1
//     (Wolkenfelt's reducible-rule construction);
//  3. the sliding Gregory window for all later rows: the order-k
//     Gregory weights at both ends, ones in the middle.
//
// The Simpson matrix follows the repeated Simpson + 3/8-rule scheme
// (Brunner & van der Houwen, Ex. 3.2.1): even rows are pure composite
// Simpson; odd rows reuse the row three panels back and append a 3/8
// block.

package quad

import (
	"math/big"
	"sync"

	"github.com/mwt/inteq/matrix"
)

// Simpson-matrix literals (step units).
var (
	simpsonRowOne = []float64{5.0 / 12, 8.0 / 12, -1.0 / 12}
	simpson38Tail = []float64{3.0 / 8, 9.0 / 8, 9.0 / 8, 3.0 / 8}
)

// gregKey identifies a memoized Gregory matrix.
type gregKey struct{ order, n int }

// Weight-matrix memo tables; entries are write-once (see package doc).
var (
	matMu       sync.RWMutex
	simpsonMats = map[int]*matrix.Dense{}
	gregoryMats = map[gregKey]*matrix.Dense{}
)

// PolyWeights returns the exact polynomial-integration weight block
// I^(k): a (k+1)×(k+1) matrix whose row r integrates any polynomial of
// degree ≤ k sampled at 0..k exactly over [0, r] (step units). Row 0 is
// all zeros.
//
// Implementation:
//   - aux[i][j] = i^(j+1)/(j+1) (antiderivative moments), V[i][j] = i^j
//     (Vandermonde); I = aux · V⁻¹, all in big.Rat, floats at the end.
//
// Errors:
//   - ErrInvalidOrder when k < 0.
//
// Complexity: Time O(k³) rational work, Space O(k²).
func PolyWeights(k int) (*matrix.Dense, error) {
	if k < 0 {
		return nil, quadErrorf("PolyWeights", ErrInvalidOrder)
	}

	dim := k + 1
	aux := make([][]*big.Rat, dim)
	vand := make([][]*big.Rat, dim)
	pow := new(big.Int)
	for i := 0; i < dim; i++ {
		aux[i] = make([]*big.Rat, dim)
		vand[i] = make([]*big.Rat, dim)
		for j := 0; j < dim; j++ {
			// V[i][j] = i^j with 0^0 = 1.
			pow.Exp(big.NewInt(int64(i)), big.NewInt(int64(j)), nil)
			vand[i][j] = new(big.Rat).SetInt(pow)
			// aux[i][j] = i^(j+1)/(j+1).
			pow.Exp(big.NewInt(int64(i)), big.NewInt(int64(j+1)), nil)
			aux[i][j] = new(big.Rat).SetFrac(pow, big.NewInt(int64(j+1)))
		}
	}

	inv, err := ratInverse(vand)
	if err != nil {
		return nil, quadErrorf("PolyWeights", err)
	}

	rows := make([][]float64, dim)
	acc := new(big.Rat)
	term := new(big.Rat)
	for i := 0; i < dim; i++ {
		rows[i] = make([]float64, dim)
		for j := 0; j < dim; j++ {
			acc.SetInt64(0)
			for l := 0; l < dim; l++ {
				term.Mul(aux[i][l], inv[l][j])
				acc.Add(acc, term)
			}
			rows[i][j], _ = acc.Float64()
		}
	}

	return matrix.FromRows(rows)
}

// SigmaWeights returns the (k+1)×(2k+2) boundary-correction block: row
// i−1 (for i = 1..k+1) integrates exactly over [0, k+i] using samples
// 0..2k+1, blending the Gregory window entering from both ends.
//
// Errors:
//   - ErrInvalidOrder when k < 0.
//
// Complexity: Time O(k²), Space O(k²).
func SigmaWeights(k int) (*matrix.Dense, error) {
	if k < 0 {
		return nil, quadErrorf("SigmaWeights", ErrInvalidOrder)
	}

	// Exact Gregory weight vector ω_0..ω_k.
	gregMu.Lock()
	omega := gregoryWeightsRat(k)
	gregMu.Unlock()

	one := big.NewRat(1, 1)
	rows := make([][]float64, k+1)
	for i := 1; i <= k+1; i++ {
		row := make([]*big.Rat, 2*k+2)
		for c := range row {
			row[c] = new(big.Rat)
		}
		// Base window: ω over the leading k+1 columns.
		for c := 0; c <= k; c++ {
			row[c].Set(omega[c])
		}
		// Overlap correction: the reversed tail of ω, minus the unit
		// weight it replaces.
		for c := i; c <= k; c++ {
			row[c].Add(row[c], omega[i+k-c])
			row[c].Sub(row[c], one)
		}
		// Trailing window: reversed head of ω.
		for c := k + 1; c <= k+i; c++ {
			row[c].Set(omega[i+k-c])
		}

		out := make([]float64, 2*k+2)
		for c := range row {
			out[c], _ = row[c].Float64()
		}
		rows[i-1] = out
	}

	return matrix.FromRows(rows)
}

// SimpsonMatrix returns the (n+1)×(n+1) repeated-Simpson weight matrix:
// row r integrates samples 0..r over [0, r] (step units). Even rows use
// composite Simpson; row 1 uses the 5/12, 8/12, −1/12 lookahead stencil
// and odd rows r ≥ 3 reuse row r−3 plus a 3/8-rule tail.
//
// The result is memoized by n; callers receive an independent clone.
//
// Errors:
//   - ErrInvalidGridSize when n < 2 (row 1 needs a three-point stencil).
//
// Complexity: Time O(n²) on first call, O(n²) clone on memo hits.
func SimpsonMatrix(n int) (*matrix.Dense, error) {
	if n < 2 {
		return nil, quadErrorf("SimpsonMatrix", ErrInvalidGridSize)
	}

	matMu.RLock()
	if m, ok := simpsonMats[n]; ok {
		matMu.RUnlock()

		return m.Clone(), nil
	}
	matMu.RUnlock()

	rows := make([][]float64, n+1)
	for r := range rows {
		rows[r] = make([]float64, n+1)
	}
	copy(rows[1], simpsonRowOne)
	for r := 2; r <= n; r++ {
		rows[r][0] = 1.0 / simpsonDiv
	}
	// Even rows: composite Simpson over r panels.
	for r := 2; r <= n; r += 2 {
		for c := 1; c < r; c++ {
			if c%2 == 1 {
				rows[r][c] = 4.0 / simpsonDiv
			} else {
				rows[r][c] = 2.0 / simpsonDiv
			}
		}
		rows[r][r] = 1.0 / simpsonDiv
	}
	// Odd rows: row r−3 plus the 3/8-rule tail on the last three panels.
	for r := 3; r <= n; r += 2 {
		copy(rows[r], rows[r-3]) // row r−3 is a finished even row (or row 0)
		for t, v := range simpson38Tail {
			rows[r][r-3+t] += v
		}
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, quadErrorf("SimpsonMatrix", err)
	}

	matMu.Lock()
	if cached, ok := simpsonMats[n]; ok {
		m = cached // another goroutine won the race; keep its entry
	} else {
		simpsonMats[n] = m
	}
	matMu.Unlock()

	return m.Clone(), nil
}

// GregoryMatrix returns the (n+1)×(n+1) order-k Gregory weight matrix:
// poly rows, sigma rows (column-clipped when the stencil exceeds the
// grid), then the sliding Gregory window.
//
// The result is memoized by (order, n); callers receive an independent
// clone.
//
// Errors:
//   - ErrInvalidOrder when order < 0 or order > n (the boundary window
//     would not fit the grid).
//
// Complexity: Time O(n² + k³) on first call, O(n²) clone on memo hits.
func GregoryMatrix(order, n int) (*matrix.Dense, error) {
	if order < 0 || order > n {
		return nil, quadErrorf("GregoryMatrix", ErrInvalidOrder)
	}

	key := gregKey{order: order, n: n}
	matMu.RLock()
	if m, ok := gregoryMats[key]; ok {
		matMu.RUnlock()

		return m.Clone(), nil
	}
	matMu.RUnlock()

	poly, err := PolyWeights(order)
	if err != nil {
		return nil, quadErrorf("GregoryMatrix", err)
	}
	sigma, err := SigmaWeights(order)
	if err != nil {
		return nil, quadErrorf("GregoryMatrix", err)
	}
	omega, err := GregoryWeights(order)
	if err != nil {
		return nil, quadErrorf("GregoryMatrix", err)
	}

	k := order
	rows := make([][]float64, n+1)
	for r := range rows {
		rows[r] = make([]float64, n+1)
	}
	// Poly block: rows 0..k, cols 0..k.
	for r := 0; r <= k && r <= n; r++ {
		for c := 0; c <= k; c++ {
			v, errAt := poly.At(r, c)
			if errAt != nil {
				return nil, quadErrorf("GregoryMatrix", errAt)
			}
			rows[r][c] = v
		}
	}
	// Sigma block: rows k+1..2k+1, cols clipped to the grid width.
	ncol := 2*k + 2
	if n+1 < ncol {
		ncol = n + 1
	}
	for r := k + 1; r <= 2*k+1 && r <= n; r++ {
		for c := 0; c < ncol; c++ {
			v, errAt := sigma.At(r-k-1, c)
			if errAt != nil {
				return nil, quadErrorf("GregoryMatrix", errAt)
			}
			rows[r][c] = v
		}
	}
	// Sliding window: ω at both ends, ones in the middle.
	for r := 2*k + 2; r <= n; r++ {
		for c := 0; c <= r; c++ {
			rows[r][c] = 1.0
		}
		for c := 0; c <= k; c++ {
			rows[r][c] = omega[c]
			rows[r][r-c] = omega[c]
		}
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, quadErrorf("GregoryMatrix", err)
	}

	matMu.Lock()
	if cached, ok := gregoryMats[key]; ok {
		m = cached
	} else {
		gregoryMats[key] = m
	}
	matMu.Unlock()

	return m.Clone(), nil
}

// ratInverse inverts a square rational matrix by Gauss–Jordan
// elimination with exact arithmetic. The input is not mutated.
// Internal: the Vandermonde systems built here are always invertible,
// but a zero pivot is still reported rather than panicking.
func ratInverse(a [][]*big.Rat) ([][]*big.Rat, error) {
	n := len(a)
	// Augmented working copy [A | I].
	work := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		work[i] = make([]*big.Rat, 2*n)
		for j := 0; j < n; j++ {
			work[i][j] = new(big.Rat).Set(a[i][j])
			work[i][n+j] = new(big.Rat)
		}
		work[i][n+i].SetInt64(1)
	}

	zero := new(big.Rat)
	factor := new(big.Rat)
	term := new(big.Rat)
	for col := 0; col < n; col++ {
		// Exact arithmetic: any nonzero pivot is as good as any other.
		pivotRow := -1
		for r := col; r < n; r++ {
			if work[r][col].Cmp(zero) != 0 {
				pivotRow = r

				break
			}
		}
		if pivotRow < 0 {
			return nil, matrix.ErrSingular
		}
		work[col], work[pivotRow] = work[pivotRow], work[col]

		// Normalize the pivot row.
		factor.Inv(work[col][col])
		for j := 0; j < 2*n; j++ {
			work[col][j].Mul(work[col][j], factor)
		}
		// Eliminate the column everywhere else.
		for r := 0; r < n; r++ {
			if r == col || work[r][col].Cmp(zero) == 0 {
				continue
			}
			factor.Set(work[r][col])
			for j := 0; j < 2*n; j++ {
				term.Mul(factor, work[col][j])
				work[r][j].Sub(work[r][j], term)
			}
		}
	}

	inv := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		inv[i] = work[i][n:]
	}

	return inv, nil
}
