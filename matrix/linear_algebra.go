// SPDX-License-Identifier: MIT

// Package matrix - linear algebra kernels.
//
// Exposed API:
//   - Transpose(A)        -> Aᵀ
//   - Mul(A, B)           -> A·B
//   - MatVec(A, x)        -> A·x
//   - Inverse(A)          -> A⁻¹ (Gauss–Jordan, partial pivoting)
//   - LeastSquares(X, y)  -> β minimising ‖Xβ − y‖² via (XᵀX)β = Xᵀy

package matrix

import (
	"fmt"
	"math"
)

// SingularTolerance is the smallest absolute pivot accepted by Inverse.
const SingularTolerance = 1e-12

// Transpose returns a new cols×rows matrix.
//
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrBadShape)
	}
	t, err := NewDense(m.cols, m.rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*t.cols+i] = m.data[i*m.cols+j]
		}
	}

	return t, nil
}

// Mul returns a·b. a.Cols() must equal b.Rows().
//
// Complexity: O(r*k*c), i→k→j loop order for row-major locality.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrBadShape)
	}
	if a.cols != b.rows {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w",
			a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch))
	}
	out, err := NewDense(a.rows, b.cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			aik := a.data[i*a.cols+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				out.data[i*out.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}

	return out, nil
}

// MatVec returns m·x. len(x) must equal m.Cols().
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrBadShape)
	}
	if len(x) != m.cols {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("%dx%d · %d: %w", m.rows, m.cols, len(x), ErrDimensionMismatch))
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			out[i] += m.data[base+j] * x[j]
		}
	}

	return out, nil
}

// Inverse returns m⁻¹ by Gauss–Jordan elimination with partial pivoting.
// Implementation:
//   - Stage 1: Validate squareness; build the augmented [m | I] in one buffer.
//   - Stage 2: For each column pick the row with the largest absolute pivot, swap,
//     normalise, and eliminate the column from every other row.
//   - Stage 3: Copy the right half out.
//
// Errors:
//   - ErrNonSquare, ErrSingular (|pivot| < SingularTolerance).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opInverse, ErrBadShape)
	}
	if m.rows != m.cols {
		return nil, matrixErrorf(opInverse, ErrNonSquare)
	}
	n := m.rows
	w := 2 * n
	aug := make([]float64, n*w)
	for i := 0; i < n; i++ {
		copy(aug[i*w:i*w+n], m.data[i*n:(i+1)*n])
		aug[i*w+n+i] = 1
	}

	for col := 0; col < n; col++ {
		// Stage 2a: partial pivot.
		pivotRow := col
		best := math.Abs(aug[col*w+col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(aug[r*w+col]); v > best {
				best, pivotRow = v, r
			}
		}
		if best < SingularTolerance {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", col, ErrSingular))
		}
		if pivotRow != col {
			for j := 0; j < w; j++ {
				aug[col*w+j], aug[pivotRow*w+j] = aug[pivotRow*w+j], aug[col*w+j]
			}
		}

		// Stage 2b: normalise the pivot row.
		inv := 1 / aug[col*w+col]
		for j := 0; j < w; j++ {
			aug[col*w+j] *= inv
		}

		// Stage 2c: eliminate.
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := aug[r*w+col]
			if f == 0 {
				continue
			}
			for j := 0; j < w; j++ {
				aug[r*w+j] -= f * aug[col*w+j]
			}
		}
	}

	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		copy(out.data[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return out, nil
}

// LeastSquares returns β minimising ‖Xβ − y‖² through the normal equations.
// X is the design matrix (one row per observation), y the observations.
//
// Errors:
//   - ErrDimensionMismatch if len(y) != X.Rows().
//   - ErrSingular if XᵀX is singular (e.g. a constant regressor column next to the intercept).
func LeastSquares(x *Dense, y []float64) ([]float64, error) {
	if x == nil {
		return nil, matrixErrorf(opLeastSquares, ErrBadShape)
	}
	if len(y) != x.rows {
		return nil, matrixErrorf(opLeastSquares, fmt.Errorf("%d observations for %d rows: %w",
			len(y), x.rows, ErrDimensionMismatch))
	}
	xt, err := Transpose(x)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	xtx, err := Mul(xt, x)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	inv, err := Inverse(xtx)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	xty, err := MatVec(xt, y)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}

	return MatVec(inv, xty)
}
