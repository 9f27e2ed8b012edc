// SPDX-License-Identifier: MIT

package quad_test

import (
	"math"
	"testing"

	"github.com/mwt/inteq/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGaussLegendre_TwoPoint: the classic ±1/√3 nodes with unit weights.
func TestGaussLegendre_TwoPoint(t *testing.T) {
	nodes, weights, err := quad.GaussLegendre(2)
	require.NoError(t, err)

	r := 1 / math.Sqrt(3)
	assert.InDelta(t, -r, nodes[0], 1e-14)
	assert.InDelta(t, r, nodes[1], 1e-14)
	assert.InDelta(t, 1.0, weights[0], 1e-14)
	assert.InDelta(t, 1.0, weights[1], 1e-14)
}

// TestGaussLegendre_FivePoint: a 5-point rule integrates degree ≤ 9
// exactly over [−1,1]; nodes are ascending and symmetric about zero.
func TestGaussLegendre_FivePoint(t *testing.T) {
	nodes, weights, err := quad.GaussLegendre(5)
	require.NoError(t, err)
	require.Len(t, nodes, 5)

	sum, m8, m9 := 0.0, 0.0, 0.0
	for i := range nodes {
		sum += weights[i]
		m8 += weights[i] * math.Pow(nodes[i], 8)
		m9 += weights[i] * math.Pow(nodes[i], 9)
	}
	assert.InDelta(t, 2.0, sum, 1e-13, "∫1")
	assert.InDelta(t, 2.0/9, m8, 1e-13, "∫x⁸")
	assert.InDelta(t, 0.0, m9, 1e-13, "∫x⁹")

	for i := 1; i < 5; i++ {
		assert.Greater(t, nodes[i], nodes[i-1])
	}
	assert.InDelta(t, 0.0, nodes[2], 1e-14, "odd rules pin the center")
	assert.InDelta(t, -nodes[4], nodes[0], 1e-14)
	assert.InDelta(t, -nodes[3], nodes[1], 1e-14)
}

// TestGaussLegendre_Invalid rejects empty rules.
func TestGaussLegendre_Invalid(t *testing.T) {
	for _, n := range []int{0, -2} {
		_, _, err := quad.GaussLegendre(n)
		assert.ErrorIs(t, err, quad.ErrInvalidGridSize, "n=%d", n)
	}
}

// TestRescaleGaussLegendre maps the rule onto [0,1] and checks the low
// moments there; the inputs must stay untouched.
func TestRescaleGaussLegendre(t *testing.T) {
	nodes, weights, err := quad.GaussLegendre(4)
	require.NoError(t, err)
	n0, w0 := nodes[0], weights[0]

	rn, rw := quad.RescaleGaussLegendre(nodes, weights, 0, 1)

	sum, m1, m2 := 0.0, 0.0, 0.0
	for i := range rn {
		assert.Greater(t, rn[i], 0.0)
		assert.Less(t, rn[i], 1.0)
		sum += rw[i]
		m1 += rw[i] * rn[i]
		m2 += rw[i] * rn[i] * rn[i]
	}
	assert.InDelta(t, 1.0, sum, 1e-13, "∫1 over [0,1]")
	assert.InDelta(t, 0.5, m1, 1e-13, "∫x over [0,1]")
	assert.InDelta(t, 1.0/3, m2, 1e-13, "∫x² over [0,1]")

	assert.Equal(t, n0, nodes[0], "input nodes must not be mutated")
	assert.Equal(t, w0, weights[0], "input weights must not be mutated")
}
