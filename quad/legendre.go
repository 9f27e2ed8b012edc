// SPDX-License-Identifier: MIT

// Package quad: Legendre–Gauss nodes and weights.
//
// Unlike the uniform-grid rules, Gauss–Legendre chooses its own sample
// points (the roots of the Legendre polynomial Pₙ) and its weights
// carry the interval measure directly — no step-unit convention, no
// post-hoc rescale. The Fredholm solver uses this as its alternative
// y-domain quadrature.

package quad

import "math"

const (
	// legendreTol is the Newton convergence threshold on the node update.
	legendreTol = 1e-15

	// maxNewtonIter caps root refinement; Newton on Pₙ from the Chebyshev
	// initial guess converges in a handful of steps.
	maxNewtonIter = 100
)

// GaussLegendre returns the n nodes (ascending, in (−1,1)) and weights
// of the n-point Legendre–Gauss rule. The rule integrates polynomials
// of degree ≤ 2n−1 exactly over [−1,1]; weights sum to 2.
//
// Implementation:
//   - Stage 1: Chebyshev initial guess x₀ = cos(π(i+3/4)/(n+1/2)).
//   - Stage 2: Newton refinement using the three-term recurrence for
//     Pₙ and the derivative identity Pₙ'(x) = n(x·Pₙ − Pₙ₋₁)/(x²−1).
//   - Stage 3: w = 2 / ((1−x²)·Pₙ'(x)²).
//
// Errors:
//   - ErrInvalidGridSize when n < 1.
//
// Complexity: Time O(n²), Space O(n).
func GaussLegendre(n int) (nodes, weights []float64, err error) {
	if n < 1 {
		return nil, nil, quadErrorf("GaussLegendre", ErrInvalidGridSize)
	}

	nodes = make([]float64, n)
	weights = make([]float64, n)
	var (
		x, p0, p1, pp, dx float64
		i, j, iter        int
	)
	for i = 0; i < n; i++ {
		// Roots come out in descending order from this guess; store
		// them mirrored so the returned grid is ascending.
		x = math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		pp = 1.0
		for iter = 0; iter < maxNewtonIter; iter++ {
			p0, p1 = 1.0, x // P₀, P₁
			for j = 2; j <= n; j++ {
				p0, p1 = p1, ((2*float64(j)-1)*x*p1-(float64(j)-1)*p0)/float64(j)
			}
			// p1 = Pₙ(x), p0 = Pₙ₋₁(x); interior roots keep x² < 1.
			pp = float64(n) * (x*p1 - p0) / (x*x - 1)
			dx = p1 / pp
			x -= dx
			if math.Abs(dx) <= legendreTol {
				break
			}
		}
		nodes[n-1-i] = x
		weights[n-1-i] = 2.0 / ((1 - x*x) * pp * pp)
	}

	return nodes, weights, nil
}

// RescaleGaussLegendre maps nodes/weights from [−1,1] onto [a,b] by the
// affine change of variables y = (b−a)/2·x + (a+b)/2, w' = (b−a)/2·w.
// Fresh slices are returned; the inputs are not mutated.
//
// Complexity: Time O(n), Space O(n).
func RescaleGaussLegendre(nodes, weights []float64, a, b float64) (rnodes, rweights []float64) {
	half := (b - a) / 2
	mid := (a + b) / 2
	rnodes = make([]float64, len(nodes))
	rweights = make([]float64, len(weights))
	for i := range nodes {
		rnodes[i] = half*nodes[i] + mid
		rweights[i] = half * weights[i]
	}

	return rnodes, rweights
}
