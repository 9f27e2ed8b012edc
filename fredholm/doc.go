// SPDX-License-Identifier: MIT

// Package fredholm approximates solutions to the Fredholm integral
// equation of the first kind:
//
//	f(s) = ∫ₐᵇ K(s,y) g(y) dy
//
// Solving for g is ill-posed: the discretized operator is singular or
// severely ill-conditioned, so the solver works on the regularized
// normal equations
//
//	(KᵀK + γ·H) g = Kᵀ f
//
// where H is the Twomey (1963) second-difference penalty matrix and γ
// trades bias for variance. γ = 0 disables regularization and may
// surface a singular system.
//
// Pipeline (per Solve call):
//  1. quadrature nodes and weights over the y-domain — composite
//     Simpson on a uniform grid (default; n is silently bumped to odd)
//     or Gauss–Legendre nodes;
//  2. an enforcement s-grid, by default twice as fine, over [a,b] or a
//     caller-supplied override;
//  3. quadrature matrix K[i,j] = w_j·k(s_i, y_j), normal equations,
//     dense solve;
//  4. for the step-unit Simpson weights, a final n/(b−a) rescale turns
//     the quadrature-weighted values into pointwise function values
//     (Gauss–Legendre weights already carry the interval measure).
//
// The returned pair is (y-grid, g values), ordered by increasing y.
// Solutions of noisy problems oscillate; Smooth offers the classic
// adjacent-averaging filter as a post-step.
package fredholm
