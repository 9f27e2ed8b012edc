// SPDX-License-Identifier: MIT

package volterra_test

import (
	"fmt"
	"math"

	"github.com/mwt/inteq/quad"
	"github.com/mwt/inteq/volterra"
)

// ExampleSolve recovers g(s) = (2+s²)/2 from the first-kind equation
// f(s) = ∫₀ˢ cos(s−y)·g(y) dy with f(s) = s. The trapezoid rule is
// second-order accurate, so a thousand points pin the endpoint value
// g(1) = 1.5 well past two decimals.
func ExampleSolve() {
	k := func(s, y float64) float64 { return math.Cos(s - y) }
	f := func(s float64) float64 { return s }

	sGrid, gGrid, err := volterra.Solve(k, f, 0, 1, 1000, quad.Trapezoid)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	last := len(sGrid) - 1
	fmt.Printf("g(%.0f) = %.2f\n", sGrid[last], gGrid[last])
	// Output:
	// g(1) = 1.50
}

// ExampleSolve2 solves the second-kind form of the same problem,
// g(s) = f(s) + ∫₀ˢ cos(s−y)·g(y) dy with f(s) = (s²−2s+2)/2. The
// discretization pins g(0) = f(0) exactly.
func ExampleSolve2() {
	k := func(s, y float64) float64 { return math.Cos(s - y) }
	f := func(s float64) float64 { return (s*s - 2*s + 2) / 2 }

	sGrid, gGrid, err := volterra.Solve2(k, f, 0, 1, 101, quad.Trapezoid, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	last := len(sGrid) - 1
	fmt.Printf("g(0) = %.0f\ng(1) = %.2f\n", gGrid[0], gGrid[last])
	// Output:
	// g(0) = 1
	// g(1) = 1.50
}
