// SPDX-License-Identifier: MIT
package approx_test

import (
	"fmt"

	"github.com/katalvlaran/qcluster/approx"
	"github.com/katalvlaran/qcluster/basis"
	"github.com/katalvlaran/qcluster/correlation"
	"github.com/katalvlaran/qcluster/matrix"
	"github.com/katalvlaran/qcluster/operator"
	"github.com/katalvlaran/qcluster/sparse"
)

// ExampleFromDensity splits a two-qubit Bell state into its single-qubit
// marginals and their connected correlation, then reassembles it.
func ExampleFromDensity() {
	q, _ := basis.NewNLevel(2)
	b, _ := basis.Tensor(q, q)
	data, _ := matrix.NewDenseFrom(4, 4, []complex128{
		0.5, 0, 0, 0.5,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0.5, 0, 0, 0.5,
	})
	rho, _ := operator.New(b, b, data)

	pair, _ := correlation.IndicesToMask(2, []int{0, 1})
	a, err := approx.FromDensity(rho, []correlation.Mask{pair})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r0, _ := a.Operator(0)
	d0, _ := r0.At(0, 0)
	d1, _ := r0.At(1, 1)
	fmt.Printf("rho_0 diagonal: %.2f %.2f\n", real(d0), real(d1))

	c, _ := a.Correlation(pair)
	c00, _ := c.At(0, 0)
	c11, _ := c.At(1, 1)
	c03, _ := c.At(0, 3)
	fmt.Printf("C: %.2f %.2f %.2f\n", real(c00), real(c11), real(c03))

	full, _ := a.Full()
	fmt.Println("exact:", operator.AllClose(full, rho))
	// Output:
	// rho_0 diagonal: 0.50 0.50
	// C: 0.25 -0.25 0.50
	// exact: true
}

// ExampleApproximateOperator_Correlation measures sparse Pauli observables on
// the connected part of a Bell pair: Tr(Z⊗Z·C) and Tr(X⊗X·C).
func ExampleApproximateOperator_Correlation() {
	q, _ := basis.NewNLevel(2)
	b, _ := basis.Tensor(q, q)
	data, _ := matrix.NewDenseFrom(4, 4, []complex128{
		0.5, 0, 0, 0.5,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0.5, 0, 0, 0.5,
	})
	rho, _ := operator.New(b, b, data)
	pair, _ := correlation.IndicesToMask(2, []int{0, 1})
	a, _ := approx.FromDensity(rho, []correlation.Mask{pair})
	c, _ := a.Correlation(pair)

	idx := []int{0, 1, 2, 3}
	zzData, _ := sparse.FromTriplets(4, 4, idx, idx, []complex128{1, -1, -1, 1})
	xxData, _ := sparse.FromTriplets(4, 4, idx, []int{3, 2, 1, 0}, []complex128{1, 1, 1, 1})
	for _, obs := range []struct {
		name string
		data *sparse.CSC
	}{{"ZZ", zzData}, {"XX", xxData}} {
		op, _ := operator.NewSparse(c.Left(), c.Right(), obs.data)
		prod, _ := op.Mul(c)
		tr, _ := operator.Trace(prod)
		fmt.Printf("Tr(%s·C) = %.2f\n", obs.name, real(tr))
	}

	xx, _ := operator.NewSparse(b, b, xxData)
	out, _ := xx.Apply([]complex128{1, 0, 0, 1})
	fmt.Println("XX|Φ⁺⟩:", real(out[0]), real(out[1]), real(out[2]), real(out[3]))
	// Output:
	// Tr(ZZ·C) = 1.00
	// Tr(XX·C) = 1.00
	// XX|Φ⁺⟩: 1 0 0 1
}
