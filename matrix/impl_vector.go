// SPDX-License-Identifier: MIT
// Package matrix - vector kernels over plain []float64 slices.
//
// Purpose:
//   - Inner and outer products plus the elementwise vector helpers the
//     learner uses for its mean vector.
//   - Same contract as the matrix kernels: fresh results, inputs untouched,
//     ErrDimensionMismatch on length disagreement.

package matrix

// Dot returns the inner product Σ a[i]*b[i] accumulated in float64.
// Dot(a, b) == Dot(b, a) bit-for-bit, since each term is a commutative product
// and the summation order is fixed (i ascending).
//
// Errors:
//   - ErrDimensionMismatch when len(a) != len(b).
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(a, b []float64) (float64, error) {
	if err := ValidateVecSameLen(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	acc := ZeroSum
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc, nil
}

// Outer returns the n×m matrix with entry (i,j) = a[i]*b[j].
// Used to build rank-1 update terms; any lengths are legal, including zero.
//
// Complexity:
//   - Time O(n*m), Space O(n*m).
func Outer(a, b []float64) *Dense {
	n, m := len(a), len(b)
	res, _ := newDenseZeroOK(n, m) // non-negative by construction

	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * m
		for j = 0; j < m; j++ {
			res.data[base+j] = a[i] * b[j]
		}
	}

	return res
}

// AddVec returns the elementwise sum a + b as a fresh slice.
//
// Errors:
//   - ErrDimensionMismatch when len(a) != len(b).
//
// Complexity:
//   - Time O(n), Space O(n).
func AddVec(a, b []float64) ([]float64, error) {
	if err := ValidateVecSameLen(a, b); err != nil {
		return nil, matrixErrorf(opAddVec, err)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// ScaleVec returns k*v as a fresh slice.
// Complexity: O(n).
func ScaleVec(v []float64, k float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] * k
	}

	return out
}

// CloneVec returns an independent copy of v (nil stays nil).
func CloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
