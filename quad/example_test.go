// SPDX-License-Identifier: MIT

package quad_test

import (
	"fmt"

	"github.com/mwt/inteq/quad"
)

// ExampleGregoryCoefficient prints an exact Gregory coefficient; the
// whole table is derived in rational arithmetic, so no rounding occurs
// before the caller asks for floats.
func ExampleGregoryCoefficient() {
	g3, err := quad.GregoryCoefficient(3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(g3.RatString())
	// Output:
	// 19/720
}

// ExampleParseRule resolves a rule by name and inspects its causality,
// which decides between a triangular and a dense solve downstream.
func ExampleParseRule() {
	rule, err := quad.ParseRule("simpson")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(rule, rule.Causal())
	// Output:
	// simpson false
}
