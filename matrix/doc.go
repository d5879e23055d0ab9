// SPDX-License-Identifier: MIT

// Package matrix provides a small dense, row-major float64 matrix and the linear
// algebra needed for least-squares fitting: Transpose, Mul, MatVec, Inverse and
// LeastSquares (normal equations).
//
// Determinism:
//   - Fixed i→k→j loop orders; no map iteration, no randomness.
//
// Errors:
//   - ErrBadShape          non-positive dimensions or nil operand.
//   - ErrOutOfRange        index outside the matrix.
//   - ErrDimensionMismatch operands are not conformable.
//   - ErrNonSquare         Inverse of a non-square matrix.
//   - ErrSingular          pivot below SingularTolerance during elimination.
//   - ErrNaNInf            a non-finite value was written.
//
// All errors are wrapped with the operation tag ("Mul: ...") and keep the sentinel for errors.Is.
package matrix
