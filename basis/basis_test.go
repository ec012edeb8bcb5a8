// SPDX-License-Identifier: MIT
package basis_test

import (
	"testing"

	"github.com/katalvlaran/qcluster/basis"
	"github.com/stretchr/testify/require"
)

func TestStructuralEquality(t *testing.T) {
	f1, err := basis.NewFock(3)
	require.NoError(t, err)
	f2, _ := basis.NewFock(3)
	g4, _ := basis.NewGeneric(4)

	require.True(t, f1.Equal(f2))
	require.Equal(t, 4, f1.Dim())
	require.False(t, f1.Equal(g4)) // same dimension, different kind

	s1, _ := basis.NewSpin(1)
	require.Equal(t, 2, s1.Dim())
	require.Equal(t, "Spin(1/2)", s1.String())

	_, err = basis.NewNLevel(0)
	require.ErrorIs(t, err, basis.ErrInvalidDimension)
}

func TestTensorFlattens(t *testing.T) {
	a, _ := basis.NewNLevel(3)
	b, _ := basis.NewSpin(1)
	c, _ := basis.NewFock(3)

	ab, err := basis.Tensor(a, b)
	require.NoError(t, err)
	abc, err := basis.Tensor(ab, c)
	require.NoError(t, err)

	comp, ok := abc.(*basis.Composite)
	require.True(t, ok)
	require.Equal(t, 3, comp.Len())
	require.Equal(t, []int{3, 2, 4}, abc.Dims())
	require.Equal(t, 24, abc.Dim())

	direct, _ := basis.NewComposite(a, b, c)
	require.True(t, direct.Equal(abc))

	single, err := basis.Tensor(a)
	require.NoError(t, err)
	require.True(t, single.Equal(a))

	_, err = basis.Tensor()
	require.ErrorIs(t, err, basis.ErrEmpty)
}

func TestSelectAndFactors(t *testing.T) {
	a, _ := basis.NewNLevel(3)
	b, _ := basis.NewSpin(1)
	c, _ := basis.NewFock(3)
	abc, _ := basis.NewComposite(a, b, c)

	sel, err := basis.Select(abc, []int{0, 2})
	require.NoError(t, err)
	want, _ := basis.NewComposite(a, c)
	require.True(t, want.Equal(sel))

	require.Len(t, basis.Factors(abc), 3)
	require.Len(t, basis.Factors(a), 1)

	_, err = basis.Select(abc, []int{3})
	require.ErrorIs(t, err, basis.ErrInvalidSubsystem)
}
