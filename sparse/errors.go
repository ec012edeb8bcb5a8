// SPDX-License-Identifier: MIT
package sparse

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates raw CSC arrays that violate the compressed-column
// layout (wrong lengths, decreasing column pointers, nnz mismatch).
// Shape and bounds failures reuse matrix.ErrDimensionMismatch,
// matrix.ErrOutOfRange and matrix.ErrNilMatrix so callers match one taxonomy.
var ErrMalformed = errors.New("sparse: malformed compressed-column arrays")

// Operation tags for error wrapping.
const (
	opNew       = "NewCSC"
	opTriplets  = "FromTriplets"
	opFromDense = "FromDense"
	opAt        = "At"
	opGemm      = "Gemm"
	opGemmDS    = "GemmDS"
	opGemv      = "Gemv"
	opGevm      = "Gevm"
)

// sparseErrorf wraps err with an operation tag, preserving it for errors.Is.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("sparse.%s: %w", tag, err)
}
