// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix operations.
var (
	// ErrBadShape indicates non-positive rows or columns, or a nil operand.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates an index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates non-conformable operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare indicates an operation that requires a square matrix.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular indicates a (numerically) singular matrix.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf indicates a non-finite value.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Operation tags for error wrapping.
const (
	opNewDense     = "NewDense"
	opAt           = "At"
	opSet          = "Set"
	opTranspose    = "Transpose"
	opMul          = "Mul"
	opMatVec       = "MatVec"
	opInverse      = "Inverse"
	opLeastSquares = "LeastSquares"
)

// matrixErrorf wraps err with an operation tag, preserving errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
