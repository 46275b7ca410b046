// Package field abstracts over the finite field the constraint system is
// built over. The compiler core only ever needs 0, 1, +, -, * and equality;
// it never depends on a specific curve or modulus.
package field

// Element is the arithmetic contract a concrete field representation must
// satisfy. E is the field's own element type, so implementations close over
// themselves (e.g. bn254.Elt implements Element[bn254.Elt]).
type Element[E any] interface {
	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E
	// Add returns e+other.
	Add(other E) E
	// Sub returns e-other.
	Sub(other E) E
	// Neg returns -e.
	Neg() E
	// Mul returns e*other.
	Mul(other E) E
	// Equal reports whether e and other denote the same field element.
	Equal(other E) bool
	// IsZero reports whether e is the additive identity.
	IsZero() bool
	// Inverse returns 1/e. Behaviour on a zero receiver is
	// implementation-defined; callers that divide by a witness value should
	// check IsZero first.
	Inverse() E
}
