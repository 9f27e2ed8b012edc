// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// denseErrorf attaches method context and coordinates to a sentinel
// error for diagnostics, preserving the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r, c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (always > 0 after NewDense)
	data []float64 // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c zero matrix using row-major storage.
//
// Inputs:
//   - rows: positive number of rows.
//   - cols: positive number of columns.
//
// Returns:
//   - *Dense: newly allocated zero matrix.
//
// Errors:
//   - ErrBadShape when rows <= 0 or cols <= 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows creates a Dense from a rectangular slice of rows. The data
// is copied; the input remains owned by the caller.
//
// Errors:
//   - ErrBadShape when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when the rows have uneven lengths.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])
	d := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, validatorErrorf("FromRows", ErrDimensionMismatch)
		}
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	return d, nil
}

// Identity creates the n×n identity matrix.
//
// Errors:
//   - ErrBadShape when n <= 0.
//
// Complexity: Time O(n²), Space O(n²).
func Identity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1.0
	}

	return d, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// At retrieves the element at position (i, j).
//
// Errors:
//   - ErrOutOfRange when i or j is outside [0, r) × [0, c).
//
// Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set assigns the value v at position (i, j).
//
// Errors:
//   - ErrOutOfRange when i or j is outside [0, r) × [0, c).
//
// Complexity: O(1).
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	d.data[i*d.c+j] = v

	return nil
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: Time O(r*c), Space O(r*c).
func (d *Dense) Clone() *Dense {
	cp := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	copy(cp.data, d.data)

	return cp
}

// Tril returns a fresh copy keeping only the lower triangle (j <= i);
// entries above the diagonal are zeroed. This is the causal mask the
// Volterra discretizations apply to kernel matrices.
//
// Complexity: Time O(r*c), Space O(r*c).
func (d *Dense) Tril() *Dense {
	t := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	var i, j, base int // deterministic i→j traversal
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j <= i && j < d.c; j++ {
			t.data[base+j] = d.data[base+j]
		}
	}

	return t
}

// Row returns a copy of row i as a plain slice.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, r).
//
// Complexity: Time O(c), Space O(c).
func (d *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, d.c)
	copy(out, d.data[i*d.c:(i+1)*d.c])

	return out, nil
}
