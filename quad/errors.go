// SPDX-License-Identifier: MIT
// Package quad: sentinel error set. All weight constructors return
// these sentinels (optionally wrapped with an operation tag) and tests
// check them via errors.Is. No panics on user input.

package quad

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGridSize is returned when a grid size violates a rule's
	// precondition: fewer than two points, or an even point count where
	// Simpson's rule requires an odd one.
	ErrInvalidGridSize = errors.New("quad: invalid grid size for rule")

	// ErrInvalidOrder is returned when a Gregory order is negative or
	// incompatible with the grid size (the boundary window would not fit).
	ErrInvalidOrder = errors.New("quad: invalid gregory order for grid size")

	// ErrInvalidRule is returned by ParseRule for unrecognized rule
	// names and by weight constructors receiving an out-of-range Rule.
	ErrInvalidRule = errors.New("quad: unknown quadrature rule")
)

// quadErrorf wraps err with an operation tag, preserving the sentinel
// via %w. Use only when err != nil.
func quadErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
