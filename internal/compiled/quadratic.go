package compiled

import "github.com/nume-crypto/r1cs/field"

// Quadratic is a product-plus-linear form A·B+C, the shape every R1CS row
// constrains to zero (with C carrying the row's own negation).
type Quadratic[E field.Element[E]] struct {
	A, B, C Linear[E]
}

// Eval returns A.Value*B.Value+C.Value.
func (q Quadratic[E]) Eval() E {
	return q.A.Value.Mul(q.B.Value).Add(q.C.Value)
}
