// SPDX-License-Identifier: MIT

// Package quad: the Rule tagged variant.
//
// Rather than dispatching on strings, solvers branch on an explicit
// variant that declares two properties per rule: its causality (does
// weight j depend only on j ≤ i?) and, implicitly, its weight-generation
// strategy (vector for causal rules, full matrix for the rest).

package quad

import "strconv"

// Rule identifies a quadrature rule used to discretize the integral
// operator.
//
//   - Midpoint  — implicit unit weights; causal.
//   - Trapezoid — unit weights, halved endpoints; causal.
//   - Simpson   — alternating 4/3, 2/3 pattern; non-causal.
//   - Gregory   — order-k corrected trapezoid (Gregory coefficients);
//     non-causal.
type Rule int

const (
	// Midpoint rule: uniform unit weights, no explicit weight table.
	Midpoint Rule = iota

	// Trapezoid rule: unit weights with halved endpoints.
	Trapezoid

	// Simpson rule: composite Simpson pattern, odd point count required.
	Simpson

	// Gregory rule: order-k Gregory quadrature (exact rational origin).
	Gregory

	numRules // number of valid rules; keep last
)

// ruleNames maps Rule values to their canonical lower-case names.
var ruleNames = [numRules]string{"midpoint", "trapezoid", "simpson", "gregory"}

// Valid reports whether r is one of the declared rules.
// Complexity: O(1).
func (r Rule) Valid() bool { return r >= Midpoint && r < numRules }

// Causal reports whether the rule's weight for sample j depends only on
// j ≤ current index i. Causal rules discretize Volterra operators into
// lower-triangular systems solvable by forward substitution; non-causal
// rules need a general solve.
// Complexity: O(1).
func (r Rule) Causal() bool { return r == Midpoint || r == Trapezoid }

// String returns the canonical rule name, or "rule(<n>)" for
// out-of-range values.
func (r Rule) String() string {
	if !r.Valid() {
		return "rule(" + strconv.Itoa(int(r)) + ")"
	}

	return ruleNames[r]
}

// ParseRule maps a rule name to its Rule value.
//
// Errors:
//   - ErrInvalidRule for anything but "midpoint", "trapezoid",
//     "simpson", "gregory".
func ParseRule(name string) (Rule, error) {
	for r := Midpoint; r < numRules; r++ {
		if ruleNames[r] == name {
			return r, nil
		}
	}

	return numRules, quadErrorf("ParseRule", ErrInvalidRule)
}
