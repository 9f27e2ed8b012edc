// SPDX-License-Identifier: MIT

package volterra

import (
	"errors"
	"fmt"
)

// ErrInvalidMethod is returned when a quadrature rule is not supported
// by the requested solver: the first-kind solver accepts only the
// causal rules, the second-kind solver any declared rule.
var ErrInvalidMethod = errors.New("volterra: unsupported quadrature rule")

// volterraErrorf wraps err with an operation tag, preserving the
// sentinel via %w. Use only when err != nil.
func volterraErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
