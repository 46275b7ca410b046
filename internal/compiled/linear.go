package compiled

import "github.com/nume-crypto/r1cs/field"

// Linear is a linear combination Σ cᵢ·wᵢ together with its evaluated
// Value. Value must always equal Terms evaluated against the owning
// Arena's auxiliary store.
type Linear[E field.Element[E]] struct {
	Value E
	Terms SparseVec[E]
}

// Add returns l+r: coefficient-wise sum of the term maps, sum of values.
func (l Linear[E]) Add(r Linear[E]) Linear[E] {
	return Linear[E]{
		Value: l.Value.Add(r.Value),
		Terms: Merge(l.Terms, r.Terms),
	}
}

// AddConst returns l+c.
func (l Linear[E]) AddConst(c E) Linear[E] {
	return l.Add(Linear[E]{Value: c, Terms: constTerms(c)})
}

// Scale returns l*c.
func (l Linear[E]) Scale(c E) Linear[E] {
	return Linear[E]{
		Value: l.Value.Mul(c),
		Terms: Scale(l.Terms, c),
	}
}

// Neg returns -l.
func (l Linear[E]) Neg() Linear[E] {
	negOne := l.Value.Zero().Sub(l.Value.One())
	return Linear[E]{
		Value: l.Value.Neg(),
		Terms: Scale(l.Terms, negOne),
	}
}

func constTerms[E field.Element[E]](c E) SparseVec[E] {
	if c.IsZero() {
		return SparseVec[E]{}
	}
	return SparseVec[E]{ConstWireID: c}
}
