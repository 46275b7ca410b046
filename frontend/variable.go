// Package frontend is the user-facing surface for building a circuit:
// allocate variables, combine them with +, -, *, assert equalities, and let
// a Synthesizer record everything an R1CS compiler needs.
package frontend

import (
	"github.com/nume-crypto/r1cs/field"
	"github.com/nume-crypto/r1cs/internal/compiled"
	"github.com/nume-crypto/r1cs/logger"
)

// Kind tags which of the three shapes a Variable currently holds.
type Kind uint8

const (
	// KindNone is the zero value of Kind, so an uninitialized Variable[E]{}
	// is already a valid additive identity: it combines with anything from
	// any arena without tripping a cross-arena check.
	KindNone Kind = iota
	KindLinear
	KindQuadratic
)

// Variable is a symbolic value inside a circuit under construction. It is
// one of three shapes: None (the untagged additive identity), Linear (a
// sparse linear combination of wires), or Quadratic (a single pending
// product A·B plus a linear remainder C). Combining two Quadratics requires
// reducing one to a fresh wire, since a single R1CS row only has room for
// one multiplication.
type Variable[E field.Element[E]] struct {
	ar   *compiled.Arena[E]
	kind Kind
	lin  compiled.Linear[E]
	quad compiled.Quadratic[E]
}

// Value reports the variable's current witnessed value.
func (v Variable[E]) Value() E {
	switch v.kind {
	case KindLinear:
		return v.lin.Value
	case KindQuadratic:
		return v.quad.Eval()
	default:
		if v.ar != nil {
			return v.ar.Zero()
		}
		var zero E
		return zero
	}
}

func fromLinear[E field.Element[E]](ar *compiled.Arena[E], lin compiled.Linear[E]) Variable[E] {
	return Variable[E]{ar: ar, kind: KindLinear, lin: lin}
}

func fromQuadratic[E field.Element[E]](ar *compiled.Arena[E], quad compiled.Quadratic[E]) Variable[E] {
	return Variable[E]{ar: ar, kind: KindQuadratic, quad: quad}
}

// pickArena returns the arena both variables are bound to, panicking with
// compiled.CrossArenaError if they are bound to two different ones. A
// variable bound to no arena (the None identity, or a constant AddConst
// built from an unbound None) never trips the check.
func pickArena[E field.Element[E]](x, y Variable[E]) *compiled.Arena[E] {
	if x.ar == nil {
		return y.ar
	}
	if y.ar == nil {
		return x.ar
	}
	if x.ar != y.ar {
		logger.Logger().Warn().Msg("combined variables allocated in two different arenas")
		panic(compiled.CrossArenaError{})
	}
	return x.ar
}

// Add returns x+y.
func Add[E field.Element[E]](x, y Variable[E]) Variable[E] {
	ar := pickArena(x, y)
	switch {
	case x.kind == KindNone:
		return y
	case y.kind == KindNone:
		return x
	case x.kind == KindLinear && y.kind == KindLinear:
		return fromLinear(ar, x.lin.Add(y.lin))
	case x.kind == KindLinear && y.kind == KindQuadratic:
		return fromQuadratic(ar, compiled.Quadratic[E]{A: y.quad.A, B: y.quad.B, C: y.quad.C.Add(x.lin)})
	case x.kind == KindQuadratic && y.kind == KindLinear:
		return fromQuadratic(ar, compiled.Quadratic[E]{A: x.quad.A, B: x.quad.B, C: x.quad.C.Add(y.lin)})
	default: // both Quadratic: reduce x to a fresh wire, fold it into y's C.
		reduced := ar.Reduce(x.quad)
		return fromQuadratic(ar, compiled.Quadratic[E]{A: y.quad.A, B: y.quad.B, C: y.quad.C.Add(reduced)})
	}
}

// Neg returns -x.
func Neg[E field.Element[E]](x Variable[E]) Variable[E] {
	switch x.kind {
	case KindNone:
		return x
	case KindLinear:
		return fromLinear(x.ar, x.lin.Neg())
	default:
		return fromQuadratic(x.ar, compiled.Quadratic[E]{A: x.quad.A, B: x.quad.B.Neg(), C: x.quad.C.Neg()})
	}
}

// Sub returns x-y.
func Sub[E field.Element[E]](x, y Variable[E]) Variable[E] {
	return Add(x, Neg(y))
}

// toLinear forces x into Linear form, reducing a pending product to a
// fresh wire if necessary. Used wherever a second multiplication would
// otherwise need to compose with an existing one.
func toLinear[E field.Element[E]](ar *compiled.Arena[E], x Variable[E]) compiled.Linear[E] {
	switch x.kind {
	case KindNone:
		return compiled.Linear[E]{Value: ar.Zero(), Terms: compiled.SparseVec[E]{}}
	case KindLinear:
		return x.lin
	default:
		return ar.Reduce(x.quad)
	}
}

// Mul returns x*y.
func Mul[E field.Element[E]](x, y Variable[E]) Variable[E] {
	if x.kind == KindNone || y.kind == KindNone {
		return Variable[E]{}
	}
	ar := pickArena(x, y)
	lx := toLinear(ar, x)
	ly := toLinear(ar, y)
	return fromQuadratic(ar, compiled.Quadratic[E]{A: lx, B: ly, C: compiled.Linear[E]{Value: ar.Zero(), Terms: compiled.SparseVec[E]{}}})
}

// AddConst returns x+c.
func AddConst[E field.Element[E]](x Variable[E], c E) Variable[E] {
	switch x.kind {
	case KindNone:
		if x.ar == nil {
			return Variable[E]{kind: KindLinear, lin: compiled.Linear[E]{Value: c, Terms: constTerms(c)}}
		}
		return fromLinear(x.ar, compiled.Linear[E]{Value: c, Terms: constTerms(c)})
	case KindLinear:
		return fromLinear(x.ar, x.lin.AddConst(c))
	default:
		return fromQuadratic(x.ar, compiled.Quadratic[E]{A: x.quad.A, B: x.quad.B, C: x.quad.C.AddConst(c)})
	}
}

// MulConst returns x*c.
func MulConst[E field.Element[E]](x Variable[E], c E) Variable[E] {
	switch x.kind {
	case KindNone:
		return x
	case KindLinear:
		return fromLinear(x.ar, x.lin.Scale(c))
	default:
		return fromQuadratic(x.ar, compiled.Quadratic[E]{A: x.quad.A, B: x.quad.B.Scale(c), C: x.quad.C.Scale(c)})
	}
}

// singleUnitTerm reports whether terms denotes a trivial reference to a
// single wire with coefficient 1, and if so returns that wire.
func singleUnitTerm[E field.Element[E]](terms compiled.SparseVec[E], one E) (int, bool) {
	if len(terms) != 1 {
		return 0, false
	}
	for w, c := range terms {
		if c.Equal(one) {
			return w, true
		}
	}
	return 0, false
}

func constTerms[E field.Element[E]](c E) compiled.SparseVec[E] {
	if c.IsZero() {
		return compiled.SparseVec[E]{}
	}
	return compiled.SparseVec[E]{compiled.ConstWireID: c}
}

// Sum folds Add over xs, starting from the None identity.
func Sum[E field.Element[E]](xs ...Variable[E]) Variable[E] {
	var acc Variable[E]
	for _, x := range xs {
		acc = Add(acc, x)
	}
	return acc
}

// Product folds Mul over xs, starting from a constant 1 so an empty input
// yields the multiplicative identity. As with Mul, any None operand makes
// the result None (zero).
func Product[E field.Element[E]](s *Synthesizer[E], xs ...Variable[E]) Variable[E] {
	acc := s.One()
	for _, x := range xs {
		acc = Mul(acc, x)
	}
	return acc
}
