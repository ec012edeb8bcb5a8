// SPDX-License-Identifier: MIT

// Package sparse_test provides benchmarks for the CSC kernels against the
// dense product, using deterministic random fill.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qcluster/matrix"
	"github.com/katalvlaran/qcluster/sparse"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkD *matrix.Dense
	sinkV []complex128
)

// benchOperands builds an n×n CSC with about 5% fill and a dense n×n operand.
func benchOperands(b *testing.B, n int, seed int64) (*sparse.CSC, *matrix.Dense) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	var ri, ci []int
	var v []complex128
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if rng.Float64() < 0.05 {
				ri, ci = append(ri, i), append(ci, j)
				v = append(v, complex(rng.NormFloat64(), rng.NormFloat64()))
			}
		}
	}
	m, err := sparse.FromTriplets(n, n, ri, ci, v)
	if err != nil {
		b.Fatal(err)
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	raw := d.RawData()
	for i := range raw {
		raw[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}

	return m, d
}

func BenchmarkGemm(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, d := benchOperands(b, n, 1337)
			c, _ := matrix.NewDense(n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := sparse.Gemm(1, m, d, 1, c); err != nil {
					b.Fatal(err)
				}
			}
			sinkD = c
		})
	}
}

func BenchmarkDenseMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, d := benchOperands(b, n, 1337)
			md := m.ToDense()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := matrix.Mul(md, d)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = res
			}
		})
	}
}

func BenchmarkGemv(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, d := benchOperands(b, n, 4242)
			v := d.RawData()[:n]
			r := make([]complex128, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := sparse.Gemv(1, m, v, 0, r); err != nil {
					b.Fatal(err)
				}
			}
			sinkV = r
		})
	}
}
