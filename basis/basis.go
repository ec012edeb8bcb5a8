// SPDX-License-Identifier: MIT

// Package basis - subsystem bases and their tensor composition.
//
// Purpose:
//   - Describe the Hilbert-space shape an operator acts on.
//   - Provide structural (value) equality: two bases are equal when they have
//     the same kind and parameters, never by pointer identity.
//   - Compose subsystem bases into an ordered Composite; composition is flat,
//     so a Composite never nests another Composite.
package basis

import (
	"fmt"
	"strings"
)

// Basis is the shape descriptor every operator carries on each side.
type Basis interface {
	// Dims returns the per-subsystem dimensions (a single entry for a
	// subsystem basis). The returned slice is a fresh copy.
	Dims() []int

	// Dim returns the total dimension, the product of Dims().
	Dim() int

	// Equal reports structural equality.
	Equal(other Basis) bool

	fmt.Stringer
}

// Compile-time assertions.
var (
	_ Basis = Generic{}
	_ Basis = Fock{}
	_ Basis = NLevel{}
	_ Basis = Spin{}
	_ Basis = (*Composite)(nil)
)

// Generic is an unlabeled basis of a given dimension.
type Generic struct{ dim int }

// NewGeneric returns a Generic basis; dim must be positive.
func NewGeneric(dim int) (Generic, error) {
	if dim <= 0 {
		return Generic{}, basisErrorf("NewGeneric", ErrInvalidDimension)
	}

	return Generic{dim: dim}, nil
}

func (b Generic) Dims() []int { return []int{b.dim} }
func (b Generic) Dim() int    { return b.dim }
func (b Generic) Equal(other Basis) bool {
	o, ok := other.(Generic)
	return ok && o.dim == b.dim
}
func (b Generic) String() string { return fmt.Sprintf("Generic(%d)", b.dim) }

// Fock is a truncated harmonic-oscillator basis |0>..|cutoff>.
type Fock struct{ cutoff int }

// NewFock returns a Fock basis with photon-number cutoff >= 0 (dimension cutoff+1).
func NewFock(cutoff int) (Fock, error) {
	if cutoff < 0 {
		return Fock{}, basisErrorf("NewFock", ErrInvalidDimension)
	}

	return Fock{cutoff: cutoff}, nil
}

// Cutoff returns the highest retained number state.
func (b Fock) Cutoff() int    { return b.cutoff }
func (b Fock) Dims() []int    { return []int{b.cutoff + 1} }
func (b Fock) Dim() int       { return b.cutoff + 1 }
func (b Fock) String() string { return fmt.Sprintf("Fock(cutoff=%d)", b.cutoff) }
func (b Fock) Equal(other Basis) bool {
	o, ok := other.(Fock)
	return ok && o.cutoff == b.cutoff
}

// NLevel is the basis of an n-level system.
type NLevel struct{ n int }

// NewNLevel returns an n-level basis; n must be >= 1.
func NewNLevel(n int) (NLevel, error) {
	if n <= 0 {
		return NLevel{}, basisErrorf("NewNLevel", ErrInvalidDimension)
	}

	return NLevel{n: n}, nil
}

func (b NLevel) Dims() []int    { return []int{b.n} }
func (b NLevel) Dim() int       { return b.n }
func (b NLevel) String() string { return fmt.Sprintf("NLevel(%d)", b.n) }
func (b NLevel) Equal(other Basis) bool {
	o, ok := other.(NLevel)
	return ok && o.n == b.n
}

// Spin is the basis of a spin-j particle, stored as twoJ = 2j so half-integer
// spins stay exact. Dimension is twoJ+1.
type Spin struct{ twoJ int }

// NewSpin returns a spin basis for j = twoJ/2; twoJ must be >= 1.
func NewSpin(twoJ int) (Spin, error) {
	if twoJ <= 0 {
		return Spin{}, basisErrorf("NewSpin", ErrInvalidDimension)
	}

	return Spin{twoJ: twoJ}, nil
}

func (b Spin) Dims() []int { return []int{b.twoJ + 1} }
func (b Spin) Dim() int    { return b.twoJ + 1 }
func (b Spin) String() string {
	if b.twoJ%2 == 0 {
		return fmt.Sprintf("Spin(%d)", b.twoJ/2)
	}
	return fmt.Sprintf("Spin(%d/2)", b.twoJ)
}
func (b Spin) Equal(other Basis) bool {
	o, ok := other.(Spin)
	return ok && o.twoJ == b.twoJ
}

// Composite is an ordered tensor product of subsystem bases.
// Factors never contain another Composite.
type Composite struct {
	factors []Basis
}

// NewComposite builds the tensor product of bs, flattening nested composites.
// At least one factor is required and none may be nil.
func NewComposite(bs ...Basis) (*Composite, error) {
	flat, err := flatten(bs)
	if err != nil {
		return nil, basisErrorf("NewComposite", err)
	}

	return &Composite{factors: flat}, nil
}

func flatten(bs []Basis) ([]Basis, error) {
	if len(bs) == 0 {
		return nil, ErrEmpty
	}
	flat := make([]Basis, 0, len(bs))
	for _, b := range bs {
		switch v := b.(type) {
		case nil:
			return nil, ErrNilBasis
		case *Composite:
			if v == nil {
				return nil, ErrNilBasis
			}
			flat = append(flat, v.factors...)
		default:
			flat = append(flat, v)
		}
	}

	return flat, nil
}

// Len returns the number of subsystems.
func (c *Composite) Len() int { return len(c.factors) }

// Factor returns subsystem i.
func (c *Composite) Factor(i int) (Basis, error) {
	if i < 0 || i >= len(c.factors) {
		return nil, basisErrorf("Factor", ErrInvalidSubsystem)
	}

	return c.factors[i], nil
}

func (c *Composite) Dims() []int {
	out := make([]int, len(c.factors))
	for i, f := range c.factors {
		out[i] = f.Dim()
	}

	return out
}

func (c *Composite) Dim() int {
	d := 1
	for _, f := range c.factors {
		d *= f.Dim()
	}

	return d
}

// Equal reports factor-wise structural equality with another Composite.
func (c *Composite) Equal(other Basis) bool {
	o, ok := other.(*Composite)
	if !ok || o == nil || len(o.factors) != len(c.factors) {
		return false
	}
	for i := range c.factors {
		if !c.factors[i].Equal(o.factors[i]) {
			return false
		}
	}

	return true
}

func (c *Composite) String() string {
	parts := make([]string, len(c.factors))
	for i, f := range c.factors {
		parts[i] = f.String()
	}

	return "[" + strings.Join(parts, " ⊗ ") + "]"
}

// Tensor returns the tensor product of bs. A single (flattened) factor is
// returned as-is; two or more yield a *Composite.
func Tensor(bs ...Basis) (Basis, error) {
	flat, err := flatten(bs)
	if err != nil {
		return nil, basisErrorf("Tensor", err)
	}
	if len(flat) == 1 {
		return flat[0], nil
	}

	return &Composite{factors: flat}, nil
}

// Factors lists the subsystem bases of b: the factors of a Composite, or b
// itself otherwise. The returned slice is a fresh copy.
func Factors(b Basis) []Basis {
	if c, ok := b.(*Composite); ok && c != nil {
		return append([]Basis(nil), c.factors...)
	}

	return []Basis{b}
}

// Select returns Tensor of the factors of b at the given positions, in the
// order given.
func Select(b Basis, indices []int) (Basis, error) {
	fs := Factors(b)
	picked := make([]Basis, len(indices))
	for k, i := range indices {
		if i < 0 || i >= len(fs) {
			return nil, basisErrorf("Select", ErrInvalidSubsystem)
		}
		picked[k] = fs[i]
	}

	return Tensor(picked...)
}
