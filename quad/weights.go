// SPDX-License-Identifier: MIT

// Package quad: composite weight vectors for the causal-adjacent rules.
//
// Both vectors are in step units: multiplying the weighted sample sum
// by h approximates the integral over the full grid span.

package quad

// simpsonDiv is the common divisor of the composite Simpson pattern.
const simpsonDiv = 3.0

// TrapezoidWeights returns the composite trapezoid weight vector for a
// grid of n points: 1 everywhere except the two endpoints, which carry
// weight 1/2.
//
// Errors:
//   - ErrInvalidGridSize when n < 2.
//
// Complexity: Time O(n), Space O(n).
func TrapezoidWeights(n int) ([]float64, error) {
	if n < 2 {
		return nil, quadErrorf("TrapezoidWeights", ErrInvalidGridSize)
	}

	w := make([]float64, n)
	for i := 1; i < n-1; i++ {
		w[i] = 1.0
	}
	w[0], w[n-1] = 0.5, 0.5

	return w, nil
}

// SimpsonWeights returns the composite Simpson weight vector for a grid
// of n points: [1, 4, 2, 4, …, 2, 4, 1] / 3.
//
// Simpson's rule pairs panels, so it needs an odd number of points
// (an even number of panels) and at least three of them.
//
// Errors:
//   - ErrInvalidGridSize when n <= 2 or n is even.
//
// Complexity: Time O(n), Space O(n).
func SimpsonWeights(n int) ([]float64, error) {
	if n <= 2 || n%2 == 0 {
		return nil, quadErrorf("SimpsonWeights", ErrInvalidGridSize)
	}

	w := make([]float64, n)
	w[0], w[n-1] = 1.0/simpsonDiv, 1.0/simpsonDiv
	for i := 1; i < n-1; i++ {
		if i%2 == 1 {
			w[i] = 4.0 / simpsonDiv
		} else {
			w[i] = 2.0 / simpsonDiv
		}
	}

	return w, nil
}
