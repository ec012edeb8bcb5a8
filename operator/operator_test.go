// SPDX-License-Identifier: MIT
package operator_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qcluster/basis"
	"github.com/katalvlaran/qcluster/matrix"
	"github.com/katalvlaran/qcluster/operator"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// mustGeneric returns a Generic basis or fails the test.
func mustGeneric(t *testing.T, d int) basis.Basis {
	t.Helper()
	b, err := basis.NewGeneric(d)
	require.NoError(t, err)

	return b
}

// randOperator fills an operator on b with random complex entries.
func randOperator(t *testing.T, rng *rand.Rand, b basis.Basis) *operator.Operator {
	t.Helper()
	d, err := matrix.NewDense(b.Dim(), b.Dim())
	require.NoError(t, err)
	raw := d.RawData()
	for i := range raw {
		raw[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	op, err := operator.New(b, b, d)
	require.NoError(t, err)

	return op
}

// randDensity returns A·A†/Tr(A·A†), a valid density operator on b.
func randDensity(t *testing.T, rng *rand.Rand, b basis.Basis) *operator.Operator {
	t.Helper()
	a := randOperator(t, rng, b)
	adj, err := operator.Adjoint(a)
	require.NoError(t, err)
	rho, err := operator.Mul(a, adj)
	require.NoError(t, err)
	tr, err := operator.Trace(rho)
	require.NoError(t, err)
	rho, err = operator.Scale(rho, 1/tr)
	require.NoError(t, err)

	return rho
}

func TestNewShapeAndBases(t *testing.T) {
	b2, b3 := mustGeneric(t, 2), mustGeneric(t, 3)
	d, _ := matrix.NewDense(2, 2)

	_, err := operator.New(b3, b2, d)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	x, _ := operator.Zero(b2, b2)
	y, _ := operator.Zero(b3, b3)
	_, err = operator.Add(x, y)
	require.ErrorIs(t, err, operator.ErrBasisMismatch)

	_, err = operator.Mul(x, y)
	require.ErrorIs(t, err, operator.ErrBasisMismatch)
}

func TestArithmeticNoAliasing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := mustGeneric(t, 3)
	a := randOperator(t, rng, b)
	snapshot := a.Clone()

	sum, err := operator.Add(a, a)
	require.NoError(t, err)
	twice, err := operator.Scale(a, 2)
	require.NoError(t, err)
	require.True(t, operator.AllClose(sum, twice))

	diff, err := operator.Sub(sum, twice)
	require.NoError(t, err)
	require.True(t, operator.AllClose(diff, mustZero(t, b), matrix.WithEpsilon(tol)))
	require.True(t, operator.AllClose(a, snapshot, matrix.WithEpsilon(0)))
}

func mustZero(t *testing.T, b basis.Basis) *operator.Operator {
	t.Helper()
	z, err := operator.Zero(b, b)
	require.NoError(t, err)

	return z
}

func TestPartialTraceOfProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	ba, bb, bc := mustGeneric(t, 3), mustGeneric(t, 2), mustGeneric(t, 4)
	ra, rb, rc := randDensity(t, rng, ba), randDensity(t, rng, bb), randDensity(t, rng, bc)

	rho, err := operator.Tensor(ra, rb, rc)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 4}, rho.Left().Dims())

	got, err := operator.PartialTrace(rho, []int{2, 0}) // unsorted on purpose
	require.NoError(t, err)
	require.True(t, operator.AllClose(rb, got, matrix.WithEpsilon(tol)))

	got, err = operator.PartialTrace(rho, []int{1})
	require.NoError(t, err)
	want, _ := operator.Tensor(ra, rc)
	require.True(t, operator.AllClose(want, got, matrix.WithEpsilon(tol)))

	same, err := operator.PartialTrace(rho, nil)
	require.NoError(t, err)
	require.True(t, operator.AllClose(rho, same, matrix.WithEpsilon(0)))

	_, err = operator.PartialTrace(rho, []int{0, 1, 2})
	require.ErrorIs(t, err, operator.ErrInvalidSubsystem)
	_, err = operator.PartialTrace(rho, []int{1, 1})
	require.ErrorIs(t, err, operator.ErrInvalidSubsystem)
	_, err = operator.PartialTrace(rho, []int{3})
	require.ErrorIs(t, err, operator.ErrInvalidSubsystem)
}

// TestPermutationSensitivity tensors subsystems of dimensions 3, 2, 4 in two
// different orders and checks that permuting axes back agrees bit for bit,
// while the raw concatenation does not.
func TestPermutationSensitivity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ba, bb, bc := mustGeneric(t, 3), mustGeneric(t, 2), mustGeneric(t, 4)
	a, b, c := randOperator(t, rng, ba), randOperator(t, rng, bb), randOperator(t, rng, bc)

	ascending, err := operator.Tensor(a, b, c)
	require.NoError(t, err)

	shuffled, err := operator.Tensor(c, a, b) // global positions 2, 0, 1
	require.NoError(t, err)
	raw, err := matrix.SumAbsDiff(ascending.Data(), shuffled.Data())
	require.NoError(t, err)
	require.Greater(t, raw, 1.0)

	sorted, err := operator.SortSystems(shuffled, []int{2, 0, 1})
	require.NoError(t, err)
	diff, err := operator.SumAbsDiff(ascending, sorted)
	require.NoError(t, err)
	require.InDelta(t, 0, diff, tol)

	other, err := operator.Tensor(b, c, a) // global positions 1, 2, 0
	require.NoError(t, err)
	permuted, err := operator.PermuteSystems(other, []int{2, 0, 1})
	require.NoError(t, err)
	require.True(t, operator.AllClose(ascending, permuted, matrix.WithEpsilon(tol)))

	_, err = operator.PermuteSystems(other, []int{0, 0, 1})
	require.ErrorIs(t, err, operator.ErrInvalidPermutation)
}

func TestEmbedAndExpect(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	ba, bb, bc := mustGeneric(t, 3), mustGeneric(t, 2), mustGeneric(t, 4)
	ra, rb, rc := randDensity(t, rng, ba), randDensity(t, rng, bb), randDensity(t, rng, bc)
	rho, _ := operator.Tensor(ra, rb, rc)
	full := rho.Left()

	local := randOperator(t, rng, bc)
	lifted, err := operator.Embed(full, []int{2}, local)
	require.NoError(t, err)

	got, err := operator.Expect(lifted, rho)
	require.NoError(t, err)
	want, err := operator.Expect(local, rc)
	require.NoError(t, err)
	require.InDelta(t, real(want), real(got), 1e-10)
	require.InDelta(t, imag(want), imag(got), 1e-10)

	_, err = operator.Embed(full, []int{1}, local)
	require.ErrorIs(t, err, operator.ErrBasisMismatch)
}

func TestProjectorTrace(t *testing.T) {
	b := mustGeneric(t, 2)
	p, err := operator.Projector(b, []complex128{0.6, 0.8i})
	require.NoError(t, err)
	tr, err := operator.Trace(p)
	require.NoError(t, err)
	require.InDelta(t, 1.0, real(tr), tol)

	v, _ := p.At(0, 1)
	require.InDelta(t, 0, real(v), tol)
	require.InDelta(t, -0.48, imag(v), tol)
}
