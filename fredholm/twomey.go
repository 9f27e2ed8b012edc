// SPDX-License-Identifier: MIT

// Package fredholm: the Twomey regularization matrix.

package fredholm

import "github.com/mwt/inteq/matrix"

// minTwomeyDim is the smallest dimension at which the band pattern is
// defined.
const minTwomeyDim = 4

// Twomey builds the dim×dim smoothing matrix H of Twomey (1963): the
// Gram matrix DᵀD of the discrete second-difference operator, encoding
// a curvature penalty that stabilizes the rank-deficient Fredholm
// normal equations.
//
// Band structure (symmetric):
//   - main diagonal        {1, 5, 6, …, 6, 5, 1}
//   - first off-diagonal   {−2, −4, …, −4, −2}
//   - second off-diagonal  all 1
//
// Errors:
//   - ErrInvalidDimension when dim < 4.
//
// Complexity: Time O(dim²), Space O(dim²).
func Twomey(dim int) (*matrix.Dense, error) {
	if dim < minTwomeyDim {
		return nil, fredholmErrorf("Twomey", ErrInvalidDimension)
	}

	rows := make([][]float64, dim)
	for i := range rows {
		rows[i] = make([]float64, dim)
	}

	// Main diagonal: 1, 5, 6, …, 6, 5, 1.
	rows[0][0], rows[dim-1][dim-1] = 1, 1
	rows[1][1], rows[dim-2][dim-2] = 5, 5
	for i := 2; i < dim-2; i++ {
		rows[i][i] = 6
	}
	// First off-diagonal: −2, −4, …, −4, −2 (mirrored below).
	for i := 0; i < dim-1; i++ {
		v := -4.0
		if i == 0 || i == dim-2 {
			v = -2.0
		}
		rows[i][i+1] = v
		rows[i+1][i] = v
	}
	// Second off-diagonal: all ones (mirrored below).
	for i := 0; i < dim-2; i++ {
		rows[i][i+2] = 1
		rows[i+2][i] = 1
	}

	return matrix.FromRows(rows)
}
