// SPDX-License-Identifier: MIT

// Package fredholm: solver configuration with documented defaults.

package fredholm

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultGamma is the regularization strength when the caller does
	// not choose one. Small enough to keep bias mild, large enough to
	// stabilize typical smooth kernels.
	DefaultGamma = 1e-3

	// DefaultSNumFactor sets the enforcement grid density relative to
	// the quadrature grid: snum = factor · n.
	DefaultSNumFactor = 2
)

// Quadrature selects the y-domain quadrature scheme.
//
//   - SimpsonQuadrature — uniform grid + composite Simpson weights;
//     n is forced odd (silent increment).
//   - LegendreQuadrature — Gauss–Legendre nodes/weights mapped onto
//     [a,b]; no parity constraint, no final rescale.
type Quadrature int

const (
	// SimpsonQuadrature: uniform-grid composite Simpson (default).
	SimpsonQuadrature Quadrature = iota

	// LegendreQuadrature: Legendre–Gauss nodes and weights.
	LegendreQuadrature
)

// Options configures Solve.
//
// Fields:
//   - Gamma      — regularization strength; 0 disables regularization
//     entirely (the normal equations may then be singular).
//   - SMin, SMax — enforcement-domain bounds; NaN means "use the
//     integration bounds a and b".
//   - SNum       — number of enforcement points; 0 or negative means
//     DefaultSNumFactor·n.
//   - Quadrature — y-domain scheme, SimpsonQuadrature by default.
//
// Recognized-option defaults: {SMin: a, SMax: b, SNum: 2n}.
type Options struct {
	Gamma      float64
	SMin, SMax float64
	SNum       int
	Quadrature Quadrature
}

// DefaultOptions returns the documented defaults; NaN bounds defer to
// the integration domain at solve time.
func DefaultOptions() Options {
	return Options{
		Gamma:      DefaultGamma,
		SMin:       math.NaN(),
		SMax:       math.NaN(),
		SNum:       0,
		Quadrature: SimpsonQuadrature,
	}
}
