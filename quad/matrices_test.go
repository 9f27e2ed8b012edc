// SPDX-License-Identifier: MIT

package quad_test

import (
	"math"
	"testing"

	"github.com/mwt/inteq/matrix"
	"github.com/mwt/inteq/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowOf extracts row r of m as a plain slice.
func rowOf(t *testing.T, m *matrix.Dense, r int) []float64 {
	t.Helper()

	row := make([]float64, m.Cols())
	for c := range row {
		v, err := m.At(r, c)
		require.NoError(t, err)
		row[c] = v
	}

	return row
}

// assertMoments checks that row r of a weight matrix integrates the
// monomials x^p sampled at 0..n exactly over [0, r] (step units):
// Σ_c M[r][c]·c^p = r^(p+1)/(p+1).
func assertMoments(t *testing.T, m *matrix.Dense, r, maxDeg int, tol float64) {
	t.Helper()

	row := rowOf(t, m, r)
	for p := 0; p <= maxDeg; p++ {
		sum := 0.0
		for c, w := range row {
			sum += w * math.Pow(float64(c), float64(p))
		}
		want := math.Pow(float64(r), float64(p+1)) / float64(p+1)
		assert.InDelta(t, want, sum, tol, "row %d, degree %d", r, p)
	}
}

// TestSimpsonMatrix_Literals pins the first four rows at n=3.
func TestSimpsonMatrix_Literals(t *testing.T) {
	m, err := quad.SimpsonMatrix(3)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())

	want := [][]float64{
		{0, 0, 0, 0},
		{5.0 / 12, 8.0 / 12, -1.0 / 12, 0},
		{1.0 / 3, 4.0 / 3, 1.0 / 3, 0},
		{3.0 / 8, 9.0 / 8, 9.0 / 8, 3.0 / 8},
	}
	for r := range want {
		row := rowOf(t, m, r)
		for c := range want[r] {
			assert.InDelta(t, want[r][c], row[c], 1e-15, "M[%d,%d]", r, c)
		}
	}
}

// TestSimpsonMatrix_Moments: row 1 is exact through quadratics (its
// lookahead stencil spans one panel), all later rows through cubics.
func TestSimpsonMatrix_Moments(t *testing.T) {
	m, err := quad.SimpsonMatrix(12)
	require.NoError(t, err)

	assertMoments(t, m, 1, 2, 1e-12)
	for r := 2; r <= 12; r++ {
		assertMoments(t, m, r, 3, 1e-10)
	}
}

// TestSimpsonMatrix_TooSmall: row 1 needs a three-point stencil.
func TestSimpsonMatrix_TooSmall(t *testing.T) {
	_, err := quad.SimpsonMatrix(1)
	assert.ErrorIs(t, err, quad.ErrInvalidGridSize)
}

// TestSimpsonMatrix_CloneIsolation: mutating a returned matrix must not
// corrupt the memo table.
func TestSimpsonMatrix_CloneIsolation(t *testing.T) {
	m, err := quad.SimpsonMatrix(6)
	require.NoError(t, err)
	require.NoError(t, m.Set(2, 0, -999))

	again, err := quad.SimpsonMatrix(6)
	require.NoError(t, err)
	v, err := again.At(2, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, v, 1e-15)
}

// TestPolyWeights_KnownBlock: for k=2 the polynomial-integration rows
// coincide with the Simpson lookahead row and the two-panel Simpson row.
func TestPolyWeights_KnownBlock(t *testing.T) {
	m, err := quad.PolyWeights(2)
	require.NoError(t, err)

	want := [][]float64{
		{0, 0, 0},
		{5.0 / 12, 8.0 / 12, -1.0 / 12},
		{1.0 / 3, 4.0 / 3, 1.0 / 3},
	}
	for r := range want {
		row := rowOf(t, m, r)
		for c := range want[r] {
			assert.InDelta(t, want[r][c], row[c], 1e-14, "I[%d,%d]", r, c)
		}
	}
}

// TestSigmaWeights_OrderOne: hand-derived boundary rows for k=1.
func TestSigmaWeights_OrderOne(t *testing.T) {
	m, err := quad.SigmaWeights(1)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 4, m.Cols())

	want := [][]float64{
		{5.0 / 12, 7.0 / 6, 5.0 / 12, 0},
		{5.0 / 12, 13.0 / 12, 13.0 / 12, 5.0 / 12},
	}
	for r := range want {
		row := rowOf(t, m, r)
		for c := range want[r] {
			assert.InDelta(t, want[r][c], row[c], 1e-15, "σ[%d,%d]", r, c)
		}
	}
}

// TestGregoryMatrix_Moments: every row of the order-3 matrix integrates
// polynomials through degree 3 exactly, across the poly, sigma, and
// sliding-window blocks.
func TestGregoryMatrix_Moments(t *testing.T) {
	m, err := quad.GregoryMatrix(3, 12)
	require.NoError(t, err)
	require.Equal(t, 13, m.Rows())

	for r := 0; r <= 12; r++ {
		assertMoments(t, m, r, 3, 1e-8)
	}
}

// TestGregoryMatrix_ClippedStencil: a grid narrower than the full sigma
// stencil still integrates constants and linears exactly (order 2 on
// five points).
func TestGregoryMatrix_ClippedStencil(t *testing.T) {
	m, err := quad.GregoryMatrix(2, 4)
	require.NoError(t, err)
	require.Equal(t, 5, m.Rows())

	for r := 0; r <= 4; r++ {
		assertMoments(t, m, r, 2, 1e-10)
	}
}

// TestGregoryMatrix_OrderBounds: the boundary window must fit the grid.
func TestGregoryMatrix_OrderBounds(t *testing.T) {
	_, err := quad.GregoryMatrix(5, 4)
	assert.ErrorIs(t, err, quad.ErrInvalidOrder)

	_, err = quad.GregoryMatrix(-1, 4)
	assert.ErrorIs(t, err, quad.ErrInvalidOrder)
}

// TestGregoryMatrix_CloneIsolation: memoized entries stay pristine.
func TestGregoryMatrix_CloneIsolation(t *testing.T) {
	m, err := quad.GregoryMatrix(1, 6)
	require.NoError(t, err)
	orig, err := m.At(6, 0)
	require.NoError(t, err)
	require.NoError(t, m.Set(6, 0, -999))

	again, err := quad.GregoryMatrix(1, 6)
	require.NoError(t, err)
	v, err := again.At(6, 0)
	require.NoError(t, err)
	assert.Equal(t, orig, v)
}
