package compiled

import "github.com/nume-crypto/r1cs/field"

// DefKind tags a wire definition's shape.
type DefKind uint8

const (
	// DefNone marks a wire with no recorded definition: either a free input
	// or a witness-only wire whose value came from Allocate directly.
	DefNone DefKind = iota
	DefLinear
	DefQuadratic
)

// Definition is a wire's recorded defining expression, if any.
type Definition[E field.Element[E]] struct {
	Kind DefKind
	Lin  Linear[E]
	Quad Quadratic[E]
}

// ExprKind tags a free-standing (unassigned) expression recorded by an
// equality assertion.
type ExprKind uint8

const (
	ExprLinear ExprKind = iota
	ExprQuadratic
)

// Expression is a free expression that must evaluate to zero, recorded by
// AssertIsEqual once its two sides have been subtracted.
type Expression[E field.Element[E]] struct {
	Kind ExprKind
	Lin  Linear[E]
	Quad Quadratic[E]
}
