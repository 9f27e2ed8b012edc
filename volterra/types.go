// SPDX-License-Identifier: MIT

package volterra

// Kernel is the two-argument integrand factor. Solve evaluates it as
// K(s,y); Solve2 evaluates it as K(y,s) — see the package comment.
type Kernel func(s, y float64) float64

// Free is the right-hand-side function f(s). For Solve (first kind) the
// discretization assumes f(a) = 0; this is a convention, not a check.
type Free func(s float64) float64

// DefaultGregoryOrder is the Gregory rule order Solve2 uses when the
// caller passes gregOrder ≤ 0.
const DefaultGregoryOrder = 3
