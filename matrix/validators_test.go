// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scw/matrix"
)

func TestValidators_Table(t *testing.T) {
	sq := MustDense(t, 2, 2)
	rect := MustDense(t, 2, 3)

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"NotNil ok", matrix.ValidateNotNil(sq), nil},
		{"NotNil nil", matrix.ValidateNotNil(nil), matrix.ErrNilMatrix},
		{"SameShape mismatch", matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch},
		{"Square ok", matrix.ValidateSquare(sq), nil},
		{"Square rect", matrix.ValidateSquare(rect), matrix.ErrNonSquare},
		{"Square nil", matrix.ValidateSquare(nil), matrix.ErrNilMatrix},
		{"VecLen ok", matrix.ValidateVecLen([]float64{1, 2}, 2), nil},
		{"VecLen empty ok", matrix.ValidateVecLen(nil, 0), nil},
		{"VecLen nil", matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix},
		{"VecLen short", matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch},
		{"VecSameLen", matrix.ValidateVecSameLen([]float64{1}, []float64{1, 2}), matrix.ErrDimensionMismatch},
		{"Binary nil", matrix.ValidateBinarySameShape(sq, nil), matrix.ErrNilMatrix},
		{"MulCompatible ok", matrix.ValidateMulCompatible(sq, rect), nil},
		{"MulCompatible bad", matrix.ValidateMulCompatible(rect, sq), matrix.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if tc.want == nil {
				require.NoError(t, tc.err)
				return
			}
			require.ErrorIs(t, tc.err, tc.want)
		})
	}
}

func TestValidateSymmetric(t *testing.T) {
	sym := MustRows(t, [][]float64{{2, 1}, {1 + 1e-12, 3}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 1e-9))
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, 0), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(sym, -1e-9), "negative tolerance is flipped")
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSymmetric(MustDense(t, 1, 1), 0))
}
