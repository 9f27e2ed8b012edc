// SPDX-License-Identifier: MIT

package volterra_test

import (
	"math"
	"testing"

	"github.com/mwt/inteq/matrix"
	"github.com/mwt/inteq/quad"
	"github.com/mwt/inteq/volterra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The classic benchmark: f(s) = ∫₀ˢ cos(s−y)·g(y) dy with f(s) = s has
// the analytic solution g(s) = (2+s²)/2.
func cosKernel(s, y float64) float64 { return math.Cos(s - y) }

func identityFree(s float64) float64 { return s }

func trueFirstKind(s float64) float64 { return (2 + s*s) / 2 }

// maxAbsErr reports the largest pointwise deviation from want over the
// grid.
func maxAbsErr(sGrid, gGrid []float64, want func(float64) float64) float64 {
	worst := 0.0
	for i, s := range sGrid {
		if d := math.Abs(gGrid[i] - want(s)); d > worst {
			worst = d
		}
	}

	return worst
}

// TestSolve_MidpointConverges: O(1/n) accuracy on the cosine benchmark.
func TestSolve_MidpointConverges(t *testing.T) {
	sGrid, gGrid, err := volterra.Solve(cosKernel, identityFree, 0, 1, 1000, quad.Midpoint)
	require.NoError(t, err)
	require.Len(t, gGrid, 1000)

	assert.Less(t, maxAbsErr(sGrid, gGrid, trueFirstKind), 0.01)
}

// TestSolve_TrapezoidConverges: O(1/n²) accuracy, strictly better than
// midpoint on the same grid.
func TestSolve_TrapezoidConverges(t *testing.T) {
	const num = 1000
	sGrid, gTrap, err := volterra.Solve(cosKernel, identityFree, 0, 1, num, quad.Trapezoid)
	require.NoError(t, err)
	_, gMid, err := volterra.Solve(cosKernel, identityFree, 0, 1, num, quad.Midpoint)
	require.NoError(t, err)

	trapErr := maxAbsErr(sGrid, gTrap, trueFirstKind)
	midErr := maxAbsErr(sGrid, gMid, trueFirstKind)
	assert.Less(t, trapErr, 1e-3)
	assert.Less(t, trapErr, midErr)
}

// TestSolve_GridExcludesLowerBound: the s-grid spans (a, b], ascending,
// starting one step in from a.
func TestSolve_GridExcludesLowerBound(t *testing.T) {
	const num = 10
	sGrid, _, err := volterra.Solve(cosKernel, identityFree, 0, 1, num, quad.Midpoint)
	require.NoError(t, err)
	require.Len(t, sGrid, num)

	assert.InDelta(t, 0.1, sGrid[0], 1e-12)
	assert.Equal(t, 1.0, sGrid[num-1])
	for i := 1; i < num; i++ {
		assert.Greater(t, sGrid[i], sGrid[i-1])
	}
}

// TestSolve_NonCausalRulesRejected: the first-kind discretization only
// supports forward substitution.
func TestSolve_NonCausalRulesRejected(t *testing.T) {
	for _, rule := range []quad.Rule{quad.Simpson, quad.Gregory, quad.Rule(99)} {
		_, _, err := volterra.Solve(cosKernel, identityFree, 0, 1, 10, rule)
		assert.ErrorIs(t, err, volterra.ErrInvalidMethod, "rule=%v", rule)
	}
}

// TestSolve_VanishingDiagonal: a kernel with K(s,s) = 0 produces an
// exactly zero pivot under the midpoint rule.
func TestSolve_VanishingDiagonal(t *testing.T) {
	diff := func(s, y float64) float64 { return s - y }
	_, _, err := volterra.Solve(diff, identityFree, 0, 1, 10, quad.Midpoint)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}
