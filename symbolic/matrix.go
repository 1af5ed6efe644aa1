// SPDX-License-Identifier: MIT

package symbolic

import "fmt"

// Matrix is a dense rows x cols grid of expressions stored row-major:
// entry (r, c) lives at index r*cols + c. Unset entries default to the
// constant 0, so a freshly built matrix is already a valid all-zero grid.
type Matrix struct {
	rows, cols int
	data       []Expression
}

// NewMatrix allocates a rows x cols matrix with every entry set to the
// constant 0. Returns ErrInvalidDimensions unless both dimensions are
// strictly positive.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	data := make([]Expression, rows*cols)
	for i := range data {
		data[i] = Constant(0)
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// MatrixFromSlice builds a rows x cols matrix from a flat row-major entry
// slice: entries[r*cols + c] becomes entry (r, c). The slice is copied.
// Returns ErrInvalidDimensions for non-positive dimensions and
// ErrDimensionMismatch when len(entries) != rows*cols.
func MatrixFromSlice(rows, cols int, entries []Expression) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	if len(entries) != rows*cols {
		return nil, fmt.Errorf("%d entries for %dx%d: %w", len(entries), rows, cols, ErrDimensionMismatch)
	}
	data := make([]Expression, len(entries))
	copy(data, entries)
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the entry at (r, c), or ErrIndexOutOfRange when the position
// lies outside the matrix.
func (m *Matrix) At(r, c int) (Expression, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return nil, fmt.Errorf("(%d, %d) in %dx%d: %w", r, c, m.rows, m.cols, ErrIndexOutOfRange)
	}
	return m.data[r*m.cols+c], nil
}

// Set replaces the entry at (r, c), or returns ErrIndexOutOfRange when the
// position lies outside the matrix.
func (m *Matrix) Set(r, c int, e Expression) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return fmt.Errorf("(%d, %d) in %dx%d: %w", r, c, m.rows, m.cols, ErrIndexOutOfRange)
	}
	m.data[r*m.cols+c] = e
	return nil
}

// Data returns the backing row-major entry slice. The slice is owned by the
// matrix; callers iterate it but modify entries through Set.
func (m *Matrix) Data() []Expression { return m.data }
