// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Ingesting constructors (NewFromRows, NewColumn) honor the NaN/Inf policy from options.go.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

import (
	"fmt"
	"math"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Unlike NewDense, empty shapes (0×m, n×0) are legal here.
// Complexity: O(rows*cols) zero-init.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions for negatives.
func NewZeros(rows, cols int) (*Dense, error) {
	return newDenseZeroOK(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// n == 0 yields the empty 0×0 matrix.
// Complexity: O(n^2) zeroing + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewFromRows builds a Dense from a row-major [][]float64 (deep copy).
// Every row must have the same length as the first one.
//
// Errors:
//   - ErrDimensionMismatch for ragged rows.
//   - ErrNaNInf when the numeric policy is on and a value is not finite.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	res, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if err = res.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("NewFromRows: %w", err)
			}
		}
	}

	return res, nil
}

// NewColumn lifts a vector of length n into an n×1 column matrix (deep copy).
// Errors: ErrNaNInf under the finite-only policy.
// Complexity: O(n).
func NewColumn(v []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	res, err := newDenseWithPolicy(len(v), 1, o.validateNaNInf)
	if err != nil {
		return nil, err
	}
	for i := range v {
		if err = res.Set(i, 0, v[i]); err != nil {
			return nil, fmt.Errorf("NewColumn: %w", err)
		}
	}

	return res, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDenseZeroOK(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Comparison ----------

// Equal reports whether a and b have identical shapes and bit-identical values.
// NaN never equals NaN, matching float64 comparison.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := r * c
			for idx := 0; idx < n; idx++ {
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
