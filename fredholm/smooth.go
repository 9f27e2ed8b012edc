// SPDX-License-Identifier: MIT

package fredholm

// Smooth damps oscillation in a solution vector by adjacent averaging:
// the first entry passes through, every later entry becomes the mean of
// itself and its predecessor. A fresh slice is returned.
//
// Regularized first-kind solutions often ring around the true curve;
// one Smooth pass trades a little resolution for visible stability.
//
// Complexity: Time O(n), Space O(n).
func Smooth(v []float64) []float64 {
	sv := make([]float64, len(v))
	if len(v) == 0 {
		return sv
	}
	sv[0] = v[0]
	for i := 1; i < len(v); i++ {
		sv[i] = (v[i] + v[i-1]) / 2
	}

	return sv
}
