// Package compiled holds the data types the frontend mutates during
// synthesis and the R1CS builder later consumes: sparse linear
// combinations, linear/quadratic forms, wire definitions and the Arena
// that owns them all.
package compiled

import "github.com/nume-crypto/r1cs/field"

// ConstWireID is the reserved wire that always holds the field's 1.
const ConstWireID = 0

// SparseVec is a sparse mapping wire-id -> coefficient, denoting
// Σ coefficient·wire. It never holds a zero coefficient: any operation that
// would produce one prunes the entry instead.
type SparseVec[E field.Element[E]] map[int]E

// Clone returns a shallow copy (coefficients are Go value types, so this is
// also a deep copy).
func (v SparseVec[E]) Clone() SparseVec[E] {
	out := make(SparseVec[E], len(v))
	for k, c := range v {
		out[k] = c
	}
	return out
}

// Merge returns the coefficient-wise sum of a and b, dropping any entry
// whose resulting coefficient is zero. Neither input is mutated.
func Merge[E field.Element[E]](a, b SparseVec[E]) SparseVec[E] {
	out := make(SparseVec[E], len(a)+len(b))
	for k, c := range a {
		out[k] = c
	}
	for k, c := range b {
		if existing, ok := out[k]; ok {
			c = existing.Add(c)
		}
		if c.IsZero() {
			delete(out, k)
			continue
		}
		out[k] = c
	}
	return out
}

// Scale returns a with every coefficient multiplied by c. If c is zero the
// result is empty.
func Scale[E field.Element[E]](a SparseVec[E], c E) SparseVec[E] {
	if c.IsZero() {
		return SparseVec[E]{}
	}
	out := make(SparseVec[E], len(a))
	for k, coeff := range a {
		out[k] = coeff.Mul(c)
	}
	return out
}

// ConstantPart returns (c, true) iff v denotes the constant c, i.e. v has
// exactly one entry and it is at the constant wire.
func (v SparseVec[E]) ConstantPart() (c E, ok bool) {
	if len(v) != 1 {
		return c, false
	}
	coeff, has := v[ConstWireID]
	if !has {
		return c, false
	}
	return coeff, true
}

// Equal compares two sparse vectors as multisets of non-zero entries.
func (v SparseVec[E]) Equal(other SparseVec[E]) bool {
	if len(v) != len(other) {
		return false
	}
	for k, c := range v {
		oc, ok := other[k]
		if !ok || !c.Equal(oc) {
			return false
		}
	}
	return true
}

// Eval computes Σ coefficient·assignment[wire] for the given assignment.
func (v SparseVec[E]) Eval(assignment func(wire int) E, zero E) E {
	sum := zero
	for wire, coeff := range v {
		sum = sum.Add(coeff.Mul(assignment(wire)))
	}
	return sum
}
