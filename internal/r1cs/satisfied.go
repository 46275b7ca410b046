package r1cs

import "github.com/nume-crypto/r1cs/field"

// IsSatisfied reports whether every row holds against z: ⟨A,z⟩·⟨B,z⟩+⟨C,z⟩
// evaluates to zero. It never panics; an unsatisfied row simply fails the
// check.
func (rs *R1CS[E]) IsSatisfied(z []E) bool {
	var zero E
	zero = zero.Zero()
	at := func(idx int) E { return z[idx] }
	for _, row := range rs.Rows {
		a := row.A.Eval(at, zero)
		b := row.B.Eval(at, zero)
		c := row.C.Eval(at, zero)
		if !a.Mul(b).Add(c).IsZero() {
			return false
		}
	}
	return true
}
