// SPDX-License-Identifier: MIT
// Package matrix: element-wise and product kernels on Dense matrices.
//
// Purpose:
//   - Declare the canonical linear-algebra kernels the solvers assemble
//     their discretized systems with.
//   - Keep deterministic loop orders and a single allocation per result.
//
// Notes:
//   - All kernels use the central validators and wrap failures with a
//     stable operation tag via matrixErrorf.

package matrix

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing
// magic strings.
const (
	opAdd       = "Add"
	opScale     = "Scale"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return validatorErrorf(tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh
// Dense result. Inputs are never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateSameShape).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := 0; idx < len(a.data); idx++ { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated; NaN/Inf alphas propagate.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx := 0; idx < len(m.data); idx++ {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - i→k→j loop order with row-major strides; zero A[i,k] entries are
//     skipped to avoid useless multiplies.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateMulCompatible).
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// row-major multiplication into res.data
	// a.data layout: i*aCols + k
	// b.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Hadamard computes the element-wise product (a ⊙ b) with a fresh
// Dense result. This is how the Volterra second-kind discretization
// applies a quadrature weight matrix to a kernel matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateSameShape).
//
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := 0; idx < len(a.data); idx++ { // fixed order, stable accumulation
		res.data[idx] = a.data[idx] * b.data[idx]
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateVecLen).
//
// Complexity: Time O(r*c), Space O(r).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.r) // allocate exactly rows outputs
	var (
		i, j, base int
		acc, xv    float64
	)
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		acc = ZeroSum  // reset accumulator per row
		base = i * m.c // flat base offset for row i
		for j = 0; j < m.c; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}
