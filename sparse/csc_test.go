// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/qcluster/matrix"
	"github.com/katalvlaran/qcluster/sparse"
	"github.com/stretchr/testify/require"
)

func TestNewCSCValidation(t *testing.T) {
	// 2x2 with entries (1,0)=3 and (0,1)=4
	m, err := sparse.NewCSC(2, 2, []int{0, 1, 2}, []int{1, 0}, []complex128{3, 4})
	require.NoError(t, err)
	require.Equal(t, 2, m.NNZ())
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(3), v)

	_, err = sparse.NewCSC(2, 2, []int{0, 2, 1}, []int{1, 0}, []complex128{3, 4})
	require.ErrorIs(t, err, sparse.ErrMalformed)

	_, err = sparse.NewCSC(2, 2, []int{0, 1, 2}, []int{5, 0}, []complex128{3, 4})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = sparse.NewCSC(0, 2, []int{0}, nil, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromTripletsSumsDuplicates(t *testing.T) {
	m, err := sparse.FromTriplets(3, 2,
		[]int{2, 0, 2, 1},
		[]int{1, 0, 1, 1},
		[]complex128{1, 5, 2i, 3})
	require.NoError(t, err)
	require.Equal(t, 3, m.NNZ())

	v, _ := m.At(2, 1)
	require.Equal(t, 1+2i, v)

	_, err = sparse.FromTriplets(3, 2, []int{3}, []int{0}, []complex128{1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDenseRoundTrip(t *testing.T) {
	d, _ := matrix.NewDenseFrom(2, 3, []complex128{0, 1, 0, 2i, 0, 3})
	s, err := sparse.FromDense(d)
	require.NoError(t, err)
	require.Equal(t, 3, s.NNZ())
	require.True(t, matrix.AllClose(d, s.ToDense(), matrix.WithEpsilon(0)))
}
