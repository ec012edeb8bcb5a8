// Package matrix offers complex dense storage and the dense linear-algebra
// kernels used by the operator layer.
//
// The matrix package provides:
//
//   - Dense, a row-major complex128 matrix with bounds-checked At/Set and a
//     RawData escape hatch for kernels in sibling packages (sparse, operator).
//   - Add, Sub, Scale, Mul, Adjoint, Kron and Trace, each allocating a fresh
//     result and never mutating its operands.
//   - AllClose, MaxAbsDiff and SumAbsDiff for tolerance-based comparisons.
//
// Kron places the left factor on the most significant digit of the composite
// index; every tensor-product routine in this module relies on that layout.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrOutOfRange, ...)
// wrapped with an operation tag; match them with errors.Is.
package matrix
