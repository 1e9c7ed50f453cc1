// SPDX-License-Identifier: MIT

// Package matrix offers the dense linear-algebra primitives used by the
// confidence-weighted learner.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-value numeric policy.
//   - Constructors for the neutral elements (NewZeros, NewIdentity) and for
//     lifting plain vectors into column matrices (NewColumn, NewFromRows).
//   - Pure kernels: Add, Sub, Mul, Scale, Transpose, MatVec, VecMat, Dot,
//     Outer. Every kernel allocates its result and never mutates operands.
//
// Vectors are plain []float64 slices. Kernels that need matrix shape
// compatibility treat a vector of length n as an n×1 column.
//
// Shape problems always surface as ErrDimensionMismatch wrapped with the
// operation tag, so callers match with errors.Is:
//
//	_, err := matrix.Mul(a, b)
//	if errors.Is(err, matrix.ErrDimensionMismatch) {
//		// a.Cols() != b.Rows()
//	}
//
// Loop orders are fixed, so results are bit-for-bit reproducible.
//
// See the examples in this package for usage patterns.
package matrix
