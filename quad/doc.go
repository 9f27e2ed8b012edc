// SPDX-License-Identifier: MIT

// Package quad is the quadrature weight library: it produces the weight
// vectors and weight matrices the integral-equation solvers discretize
// with.
//
// What lives here:
//
//	Rule              — tagged quadrature-rule variant declaring its
//	                    causality (midpoint/trapezoid yield triangular
//	                    systems; Simpson/Gregory do not)
//	TrapezoidWeights  — composite trapezoid weight vector
//	SimpsonWeights    — composite Simpson weight vector (odd point count)
//	GregoryCoefficient / GregoryWeights
//	                  — exact-rational Gregory coefficients G_k and the
//	                    order-k boundary weight vector derived from them
//	PolyWeights       — exact polynomial-integration weight block
//	SigmaWeights      — boundary-correction (sigma) weight block
//	GregoryMatrix     — full (n+1)×(n+1) Gregory quadrature matrix for
//	                    Volterra second-kind discretizations
//	SimpsonMatrix     — repeated Simpson + 3/8-rule quadrature matrix
//	GaussLegendre     — Legendre–Gauss nodes and weights on [−1,1]
//
// Exactness:
//
//	Gregory coefficients satisfy the rational recursion
//	G₀ = −1/2,  G_k = (−1)^(k+1)·[1/(k+2) − Σ_{r<k} |G_r|/(k+1−r)]
//	and are evaluated in math/big.Rat; only the final weight tables are
//	converted to float64.
//
// Caching:
//
//	Weight tables are pure functions of (rule, size[, order]). They are
//	memoized process-wide behind RW locks; entries are write-once and
//	never invalidated, so concurrent readers are safe. Lookups return
//	defensive copies — callers may mutate their copy freely.
//
// All weights are expressed in step units: applying a weight row to
// samples on a uniform grid approximates the integral divided by the
// step h. Callers multiply by h (or rescale the solution) themselves,
// matching the solver conventions in fredholm/ and volterra/.
package quad
