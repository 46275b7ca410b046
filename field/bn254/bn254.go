// Package bn254 is the default concrete field used by this module's tests
// and examples: the scalar field of the BN254 curve, backed by
// gnark-crypto's fr.Element.
package bn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Elt is a BN254 scalar field element. It implements field.Element[Elt].
type Elt struct {
	inner fr.Element
}

// FromInt64 builds an Elt from a signed int64, reduced modulo the field order.
func FromInt64(v int64) Elt {
	var e Elt
	e.inner.SetInt64(v)
	return e
}

// FromBigInt builds an Elt from a big.Int, reduced modulo the field order.
func FromBigInt(v *big.Int) Elt {
	var e Elt
	e.inner.SetBigInt(v)
	return e
}

func (e Elt) Zero() Elt {
	var r Elt
	return r
}

func (e Elt) One() Elt {
	var r Elt
	r.inner.SetOne()
	return r
}

func (e Elt) Add(other Elt) Elt {
	var r Elt
	r.inner.Add(&e.inner, &other.inner)
	return r
}

func (e Elt) Sub(other Elt) Elt {
	var r Elt
	r.inner.Sub(&e.inner, &other.inner)
	return r
}

func (e Elt) Neg() Elt {
	var r Elt
	r.inner.Neg(&e.inner)
	return r
}

func (e Elt) Mul(other Elt) Elt {
	var r Elt
	r.inner.Mul(&e.inner, &other.inner)
	return r
}

func (e Elt) Equal(other Elt) bool {
	return e.inner.Equal(&other.inner)
}

func (e Elt) IsZero() bool {
	return e.inner.IsZero()
}

// Inverse returns 1/e, or zero if e is zero, matching gnark-crypto's own
// fr.Element.Inverse contract on a zero input; callers that need a division
// to fail loudly on a zero divisor should test IsZero first (as
// frontend.Synthesizer.Div does).
func (e Elt) Inverse() Elt {
	var r Elt
	r.inner.Inverse(&e.inner)
	return r
}

func (e Elt) String() string {
	return e.inner.String()
}

// BigInt returns the regular (non-Montgomery) big.Int representation of e.
func (e Elt) BigInt() *big.Int {
	var r big.Int
	e.inner.ToBigIntRegular(&r)
	return &r
}
