// Package inteq approximates numerical solutions to integral equations —
// Fredholm equations of the first kind and Volterra equations of the
// first and second kind — given a kernel function, a free
// (right-hand-side) function and an integration domain.
//
// 🚀 What is inteq?
//
//	A pure-Go, deterministic numerical library built around one pipeline:
//		• Quadrature: weight vectors & matrices (trapezoid, Simpson,
//		  Gregory-k with exact rational coefficients, Gauss–Legendre)
//		• Discretization: kernel sampling into triangular or dense systems
//		• Regularization: Twomey second-difference penalty for ill-posed
//		  Fredholm problems
//		• Linear solve: forward substitution for causal rules, partial-pivot
//		  Gaussian elimination for the rest
//
// ✨ Why choose inteq?
//
//   - Explicit error contracts – sentinel errors, no panics on user input
//   - Exact where it matters – Gregory coefficients derived in big.Rat,
//     floats only at the boundary
//   - Deterministic – fixed loop orders, no hidden state beyond
//     write-once weight caches
//
// Everything is organized under four subpackages:
//
//	matrix/   — dense row-major matrix core, triangular & general solves
//	quad/     — quadrature rules, weight vectors and weight matrices
//	fredholm/ — Fredholm first-kind solver + Twomey regularization
//	volterra/ — Volterra first- and second-kind solvers
//
// Quick sketch of the first-kind Volterra problem:
//
//	f(s) = ∫ₐˢ K(s,y) g(y) dy
//
// and the second kind:
//
//	g(s) = f(s) + ∫ₐˢ K(s,y) g(y) dy
//
// Solvers return paired grids (sample points, solution values), ordered
// by increasing sample point. Plotting, file I/O and orchestration are
// deliberately left to the caller.
//
//	go get github.com/mwt/inteq
package inteq
