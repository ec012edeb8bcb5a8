// Package sparse provides a complex compressed-sparse-column matrix and the
// scaled sparse×dense kernels (Gemm, GemmDS, Gemv, Gevm) used wherever one
// operand of a product is sparse.
//
// Every kernel accumulates into a caller-owned result:
//
//	C := alpha·M·B + beta·C
//
// beta is always applied, so a zero beta clears finite entries and turns
// NaN/Inf entries into NaN exactly as IEEE multiplication does.
package sparse
