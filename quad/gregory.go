// SPDX-License-Identifier: MIT

// Package quad: Gregory coefficients and order-k Gregory weights.
//
// Gregory coefficients G_k are the Taylor coefficients of z/ln(1+z)
// (up to sign); here they are produced by the equivalent rational
// recursion and kept exact in math/big.Rat. The order-k Gregory weight
// vector is then an inverse-Pascal transform of G_0..G_k plus one:
//
//	w_i = 1 + Σ_{j=i..k} (−1)^(j−i) · C(j,i) · G_j
//
// yielding, e.g., [5/12, 13/12] for k=1 and [3/8, 7/6, 23/24] for k=2 —
// the classic corrected-trapezoid boundary weights. Only the final
// vectors are converted to float64.

package quad

import (
	"math/big"
	"sync"
)

// Memoization tables. Entries are write-once: once an index is
// populated it is never mutated, so concurrent readers holding the
// read lock are safe.
var (
	gregMu      sync.RWMutex
	gregCoefs   []*big.Rat           // gregCoefs[k] = G_k, exact
	gregWeights = map[int][]float64{} // order → float weight vector
)

// GregoryCoefficient returns the exact k-th Gregory coefficient G_k as
// a fresh *big.Rat (callers may mutate the result freely).
//
// Implementation:
//   - Stage 1: extend the memo table iteratively up to k using
//     G_m = (−1)^(m+1)·[1/(m+2) − Σ_{r<m} |G_r|/(m+1−r)].
//   - Stage 2: return a defensive copy of the table entry.
//
// Errors:
//   - ErrInvalidOrder when k < 0.
//
// Complexity: Time O(k²) on first call (amortized O(k) per new index),
// O(1) on memo hits; rational arithmetic costs grow with denominators.
func GregoryCoefficient(k int) (*big.Rat, error) {
	if k < 0 {
		return nil, quadErrorf("GregoryCoefficient", ErrInvalidOrder)
	}

	gregMu.Lock()
	defer gregMu.Unlock()
	extendGregoryCoefs(k)

	return new(big.Rat).Set(gregCoefs[k]), nil
}

// extendGregoryCoefs grows the coefficient table through index k.
// Caller must hold gregMu for writing.
func extendGregoryCoefs(k int) {
	for len(gregCoefs) <= k {
		m := len(gregCoefs) // next index to fill
		g := big.NewRat(1, int64(m+2))
		term := new(big.Rat)
		for r := 0; r < m; r++ {
			term.Abs(gregCoefs[r])
			term.Mul(term, big.NewRat(1, int64(m+1-r)))
			g.Sub(g, term)
		}
		if m%2 == 0 { // (−1)^(m+1): negate for even m
			g.Neg(g)
		}
		gregCoefs = append(gregCoefs, g)
	}
}

// gregoryWeightsRat derives the exact order-k weight vector from the
// coefficient table. Caller must hold gregMu for writing (the table is
// extended as a side effect).
func gregoryWeightsRat(k int) []*big.Rat {
	extendGregoryCoefs(k)

	w := make([]*big.Rat, k+1)
	one := big.NewRat(1, 1)
	binom := new(big.Int)
	term := new(big.Rat)
	for i := 0; i <= k; i++ {
		wi := new(big.Rat).Set(one)
		for j := i; j <= k; j++ {
			binom.Binomial(int64(j), int64(i))
			term.SetInt(binom)
			term.Mul(term, gregCoefs[j])
			if (j-i)%2 == 1 { // alternating sign of the inverse Pascal row
				wi.Sub(wi, term)
			} else {
				wi.Add(wi, term)
			}
		}
		w[i] = wi
	}

	return w
}

// GregoryWeights returns the order-k Gregory quadrature weight vector
// (length k+1) as float64, derived exactly and rounded once. The result
// is a defensive copy of a memoized table entry.
//
// Weights are in step units: a row of the composite rule reads
// [w_0..w_k, 1, …, 1, w_k..w_0], and Σw plus the interior ones equals
// the integration range in units of h.
//
// Errors:
//   - ErrInvalidOrder when k < 0.
//
// Complexity: O(k²) rational work on first call per order, O(k) copy on
// memo hits.
func GregoryWeights(k int) ([]float64, error) {
	if k < 0 {
		return nil, quadErrorf("GregoryWeights", ErrInvalidOrder)
	}

	gregMu.RLock()
	if w, ok := gregWeights[k]; ok {
		out := make([]float64, len(w))
		copy(out, w)
		gregMu.RUnlock()

		return out, nil
	}
	gregMu.RUnlock()

	gregMu.Lock()
	if _, ok := gregWeights[k]; !ok { // re-check after lock upgrade
		exact := gregoryWeightsRat(k)
		w := make([]float64, k+1)
		for i, r := range exact {
			w[i], _ = r.Float64()
		}
		gregWeights[k] = w
	}
	w := gregWeights[k]
	out := make([]float64, len(w))
	copy(out, w)
	gregMu.Unlock()

	return out, nil
}
