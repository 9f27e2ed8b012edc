// SPDX-License-Identifier: MIT

// Package volterra approximates solutions to Volterra integral
// equations, whose variable upper limit gives them causal structure:
//
//	first kind:   f(s) = ∫ₐˢ K(s,y) g(y) dy        (Solve)
//	second kind:  g(s) = f(s) + ∫ₐˢ K(s,y) g(y) dy  (Solve2)
//
// Discretizing on an s-grid turns the integral operator into a kernel
// matrix. Causal rules (midpoint, trapezoid) keep that matrix lower
// triangular, so a forward substitution suffices; Simpson and Gregory
// stencils reach ahead within a local window, so the second-kind solver
// applies their weight matrices and falls back to a dense solve.
//
// Conventions carried over from the reference treatment (Linz 1969,
// Betto and Thomas 2021):
//   - Solve assumes f(a) = 0 (not enforced); its grid excludes a, since
//     the diagonal would otherwise be trivial under the midpoint rule.
//   - Solve2 evaluates the kernel with swapped arguments, K(y,s) rather
//     than K(s,y). Kernels are often asymmetric, so callers translating
//     a first-kind setup must mind the argument order.
package volterra
