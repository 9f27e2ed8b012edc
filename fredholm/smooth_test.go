// SPDX-License-Identifier: MIT

package fredholm_test

import (
	"testing"

	"github.com/mwt/inteq/fredholm"
	"github.com/stretchr/testify/assert"
)

// TestSmooth_AdjacentAveraging: first entry passes through, the rest
// become pairwise means.
func TestSmooth_AdjacentAveraging(t *testing.T) {
	got := fredholm.Smooth([]float64{4, 0, 2, 6})
	assert.Equal(t, []float64{4, 2, 1, 4}, got)
}

// TestSmooth_DampsAlternation: a ±1 sawtooth flattens to near-constant
// after the first entry.
func TestSmooth_DampsAlternation(t *testing.T) {
	v := []float64{1, -1, 1, -1, 1}
	got := fredholm.Smooth(v)
	for i := 1; i < len(got); i++ {
		assert.InDelta(t, 0.0, got[i], 1e-15)
	}
}

// TestSmooth_Degenerate: empty and single-entry inputs.
func TestSmooth_Degenerate(t *testing.T) {
	assert.Empty(t, fredholm.Smooth(nil))
	assert.Equal(t, []float64{7}, fredholm.Smooth([]float64{7}))
}
