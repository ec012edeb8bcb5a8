// SPDX-License-Identifier: MIT
package approx_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qcluster/approx"
	"github.com/katalvlaran/qcluster/basis"
	"github.com/katalvlaran/qcluster/correlation"
	"github.com/katalvlaran/qcluster/matrix"
	"github.com/katalvlaran/qcluster/operator"
)

var sinkA *approx.ApproximateOperator

// benchDensity returns a random (unnormalized) Hermitian operator on n qubits.
func benchDensity(b *testing.B, n int) *operator.Operator {
	b.Helper()
	q, _ := basis.NewNLevel(2)
	fs := make([]basis.Basis, n)
	for i := range fs {
		fs[i] = q
	}
	bs, err := basis.Tensor(fs...)
	if err != nil {
		b.Fatal(err)
	}
	d, _ := matrix.NewDense(bs.Dim(), bs.Dim())
	rng := rand.New(rand.NewSource(7))
	raw := d.RawData()
	for i := range raw {
		raw[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	a, err := operator.New(bs, bs, d)
	if err != nil {
		b.Fatal(err)
	}
	adj, _ := operator.Adjoint(a)
	rho, err := operator.Add(a, adj)
	if err != nil {
		b.Fatal(err)
	}

	return rho
}

func BenchmarkFromDensity(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{4, 6, 8} {
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("qubits=%d/workers=%d", n, workers), func(b *testing.B) {
				rho := benchDensity(b, n)
				masks, err := correlation.AllMasks(n, 2, 2)
				if err != nil {
					b.Fatal(err)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					a, err := approx.FromDensity(rho, masks, approx.WithWorkers(workers))
					if err != nil {
						b.Fatal(err)
					}
					sinkA = a
				}
			})
		}
	}
}
