// SPDX-License-Identifier: MIT

package quad_test

import (
	"testing"

	"github.com/mwt/inteq/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRule_Properties pins the causality split: midpoint and trapezoid
// yield triangular systems, simpson and gregory do not.
func TestRule_Properties(t *testing.T) {
	cases := []struct {
		rule   quad.Rule
		name   string
		causal bool
	}{
		{quad.Midpoint, "midpoint", true},
		{quad.Trapezoid, "trapezoid", true},
		{quad.Simpson, "simpson", false},
		{quad.Gregory, "gregory", false},
	}
	for _, tc := range cases {
		assert.True(t, tc.rule.Valid(), tc.name)
		assert.Equal(t, tc.causal, tc.rule.Causal(), tc.name)
		assert.Equal(t, tc.name, tc.rule.String())
	}
}

// TestRule_OutOfRange: invalid selectors are not valid, not causal, and
// stringify defensively.
func TestRule_OutOfRange(t *testing.T) {
	r := quad.Rule(99)
	assert.False(t, r.Valid())
	assert.False(t, r.Causal())
	assert.Equal(t, "rule(99)", r.String())

	assert.False(t, quad.Rule(-1).Valid())
}

// TestParseRule_RoundTrip: every declared rule parses from its own
// String form.
func TestParseRule_RoundTrip(t *testing.T) {
	for _, rule := range []quad.Rule{quad.Midpoint, quad.Trapezoid, quad.Simpson, quad.Gregory} {
		got, err := quad.ParseRule(rule.String())
		require.NoError(t, err)
		assert.Equal(t, rule, got)
	}
}

// TestParseRule_Unknown rejects anything outside the canonical names.
func TestParseRule_Unknown(t *testing.T) {
	for _, name := range []string{"", "Midpoint", "simpson ", "gauss"} {
		_, err := quad.ParseRule(name)
		assert.ErrorIs(t, err, quad.ErrInvalidRule, "name=%q", name)
	}
}
