// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/scw/matrix"
)

// toGonum copies a Dense into a gonum mat.Dense for reference computations.
func toGonum(t *testing.T, m matrix.Matrix) *mat.Dense {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, MustAt(t, m, i, j))
		}
	}

	return out
}

// requireMatchesGonum asserts got equals the gonum reference within atol.
func requireMatchesGonum(t *testing.T, got matrix.Matrix, want mat.Matrix, atol float64) {
	t.Helper()
	r, c := want.Dims()
	MustDims(t, got, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(t, want.At(i, j), MustAt(t, got, i, j), atol, "at [%d,%d]", i, j)
		}
	}
}

func TestMul_AgainstGonum(t *testing.T) {
	t.Parallel()

	A := RandFilledDense(t, 7, 5, 11)
	B := RandFilledDense(t, 5, 9, 12)

	got, err := matrix.Mul(A, B)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(toGonum(t, A), toGonum(t, B))
	requireMatchesGonum(t, got, &want, 1e-12)
}

func TestSandwich_AgainstGonum(t *testing.T) {
	t.Parallel()

	// S · (x xᵀ) · S is the rank-1 term of the covariance downdate.
	S := RandFilledDense(t, 4, 4, 5)
	x := []float64{1, -0.5, 2, 0.25}

	left, err := matrix.Mul(S, matrix.Outer(x, x))
	require.NoError(t, err)
	got, err := matrix.Mul(left, S)
	require.NoError(t, err)

	gs := toGonum(t, S)
	xv := mat.NewVecDense(len(x), x)
	var xx, tmp, want mat.Dense
	xx.Outer(1, xv, xv)
	tmp.Mul(gs, &xx)
	want.Mul(&tmp, gs)
	requireMatchesGonum(t, got, &want, 1e-12)
}

func TestMatVecVecMat_AgainstGonum(t *testing.T) {
	t.Parallel()

	M := RandFilledDense(t, 6, 4, 3)
	x := []float64{0.1, -2, 3, 0.5}
	z := []float64{1, 2, 3, 4, 5, 6}

	y, err := matrix.MatVec(M, x)
	require.NoError(t, err)
	var want mat.VecDense
	want.MulVec(toGonum(t, M), mat.NewVecDense(len(x), x))
	for i := range y {
		require.InDelta(t, want.AtVec(i), y[i], 1e-12)
	}

	w, err := matrix.VecMat(z, M)
	require.NoError(t, err)
	var wantT mat.VecDense
	wantT.MulVec(toGonum(t, M).T(), mat.NewVecDense(len(z), z))
	for j := range w {
		require.InDelta(t, wantT.AtVec(j), w[j], 1e-12)
	}
}
