package r1cs

import "github.com/nume-crypto/r1cs/field"

// Witness builds the assignment vector z for rs from ar's current
// auxiliary store: z[interned index] = ar's witness value at the
// corresponding original wire id. rs and ar must come from the same
// synthesis run (or a re-synthesis over the same circuit structure), so
// that rs's interning table still lines up with ar's wire ids.
func Witness[E field.Element[E]](rs *R1CS[E], values func(wire int) E) []E {
	z := make([]E, rs.NumWires)
	for wire, idx := range rs.index {
		z[idx] = values(wire)
	}
	return z
}
