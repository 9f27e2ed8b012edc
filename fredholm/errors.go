// SPDX-License-Identifier: MIT
// Package fredholm: sentinel error set. Tests match via errors.Is;
// singular-system conditions surface as matrix.ErrSingular through
// wrapped solve errors.

package fredholm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a Twomey regularization
	// matrix is requested with dim < 4 — the band structure
	// {1,5,6,…,6,5,1} needs at least four rows to exist.
	ErrInvalidDimension = errors.New("fredholm: regularization dimension must be at least 4")

	// ErrInvalidQuadrature is returned by Solve for an out-of-range
	// Quadrature selector.
	ErrInvalidQuadrature = errors.New("fredholm: unknown quadrature selector")
)

// fredholmErrorf wraps err with an operation tag, preserving the
// sentinel via %w. Use only when err != nil.
func fredholmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
