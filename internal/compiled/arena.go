package compiled

import (
	"github.com/nume-crypto/r1cs/field"
	"github.com/nume-crypto/r1cs/logger"
)

// Arena owns every wire a synthesis session allocates: the auxiliary
// (witness) store, the wire-definition table, the free-standing expressions
// recorded by equality assertions, and the ordered set of public inputs.
//
// Arena is not safe for concurrent use; a synthesis session runs on a single
// goroutine.
type Arena[E field.Element[E]] struct {
	zero, one E

	aux     []E
	defs    map[int]Definition[E]
	exprs   []Expression[E]
	inputs  []int
	isInput map[int]bool
	enabled bool
}

// New creates an Arena. seed is any element of the field in use; only its
// Zero/One methods are invoked, its own value is discarded. Wire
// ConstWireID is pre-allocated to hold 1.
func New[E field.Element[E]](seed E) *Arena[E] {
	zero, one := seed.Zero(), seed.One()
	a := &Arena[E]{
		zero:    zero,
		one:     one,
		defs:    make(map[int]Definition[E]),
		isInput: make(map[int]bool),
		enabled: true,
	}
	a.aux = append(a.aux, one)
	return a
}

// Zero returns the field's additive identity.
func (a *Arena[E]) Zero() E { return a.zero }

// One returns the field's multiplicative identity.
func (a *Arena[E]) One() E { return a.one }

// Allocate appends v to the auxiliary store and returns its fresh wire id.
func (a *Arena[E]) Allocate(v E) int {
	a.aux = append(a.aux, v)
	return len(a.aux) - 1
}

// Value returns the witnessed value currently held at wire.
func (a *Arena[E]) Value(wire int) E {
	return a.aux[wire]
}

// Len reports the number of allocated wires, including the constant wire.
func (a *Arena[E]) Len() int {
	return len(a.aux)
}

// MarkInput records wire as a public input, in declaration order. Marking
// the same wire twice is a no-op.
func (a *Arena[E]) MarkInput(wire int) {
	if a.isInput[wire] {
		return
	}
	a.isInput[wire] = true
	a.inputs = append(a.inputs, wire)
}

// Inputs returns the public input wires in declaration order.
func (a *Arena[E]) Inputs() []int {
	return a.inputs
}

// IsInput reports whether wire was marked as a public input.
func (a *Arena[E]) IsInput(wire int) bool {
	return a.isInput[wire]
}

// Defs returns the wire-definition table. Callers must treat it as
// read-only.
func (a *Arena[E]) Defs() map[int]Definition[E] {
	return a.defs
}

// Exprs returns the recorded free expressions, in recording order.
func (a *Arena[E]) Exprs() []Expression[E] {
	return a.exprs
}

// Disable sets the constant wire's stored value to zero until Enable is
// called. It changes nothing else: recorded definitions and expressions,
// and values already baked into Linear forms, are left as they are.
func (a *Arena[E]) Disable() {
	a.enabled = false
	a.aux[ConstWireID] = a.zero
}

// Enable restores the constant wire to one.
func (a *Arena[E]) Enable() {
	a.enabled = true
	a.aux[ConstWireID] = a.one
}

// Enabled reports whether the constant wire currently holds one.
func (a *Arena[E]) Enabled() bool {
	return a.enabled
}

// DefineLinear records wire's definition as lin, after inlining any term
// that already has its own Linear definition. Panics with
// SelfReferenceError if, post-inlining, wire still appears among its own
// terms.
func (a *Arena[E]) DefineLinear(wire int, lin Linear[E]) {
	terms := a.inline(lin.Terms)
	if _, self := terms[wire]; self {
		logger.Logger().Warn().Int("wire", wire).Msg("wire definition references itself")
		panic(SelfReferenceError{Wire: wire})
	}
	a.defs[wire] = Definition[E]{Kind: DefLinear, Lin: Linear[E]{Value: lin.Value, Terms: terms}}
}

// DefineQuadratic records wire's definition as quad. If quad.A or quad.B is
// constant-only, the definition degrades to a Linear one (see §4.6's
// apply-subset rule); otherwise the quadratic's own term maps are still
// inlined against existing Linear definitions.
func (a *Arena[E]) DefineQuadratic(wire int, quad Quadratic[E]) {
	if k, ok := quad.A.Terms.ConstantPart(); ok {
		a.DefineLinear(wire, Linear[E]{
			Value: quad.B.Value.Mul(k).Add(quad.C.Value),
			Terms: Merge(Scale(quad.B.Terms, k), quad.C.Terms),
		})
		return
	}
	if k, ok := quad.B.Terms.ConstantPart(); ok {
		a.DefineLinear(wire, Linear[E]{
			Value: quad.A.Value.Mul(k).Add(quad.C.Value),
			Terms: Merge(Scale(quad.A.Terms, k), quad.C.Terms),
		})
		return
	}

	inlined := Quadratic[E]{
		A: Linear[E]{Value: quad.A.Value, Terms: a.inline(quad.A.Terms)},
		B: Linear[E]{Value: quad.B.Value, Terms: a.inline(quad.B.Terms)},
		C: Linear[E]{Value: quad.C.Value, Terms: a.inline(quad.C.Terms)},
	}
	for _, l := range []Linear[E]{inlined.A, inlined.B, inlined.C} {
		if _, self := l.Terms[wire]; self {
			logger.Logger().Warn().Int("wire", wire).Msg("wire definition references itself")
			panic(SelfReferenceError{Wire: wire})
		}
	}
	a.defs[wire] = Definition[E]{Kind: DefQuadratic, Quad: inlined}
}

// Reduce allocates a fresh wire carrying quad's evaluated value, registers
// quad as that wire's definition (subject to the same normalisation
// DefineQuadratic applies), and returns a linear form that simply
// references the new wire. This is how a product of two non-trivial linear
// forms becomes usable inside a further linear combination.
func (a *Arena[E]) Reduce(quad Quadratic[E]) Linear[E] {
	value := quad.Eval()
	wire := a.Allocate(value)
	a.DefineQuadratic(wire, quad)
	return Linear[E]{Value: value, Terms: SparseVec[E]{wire: a.one}}
}

// AddFreeLinear records that lin must evaluate to zero, after inlining.
// A linear form that inlines away to nothing records no expression: it was
// trivially satisfied at synthesis time.
func (a *Arena[E]) AddFreeLinear(lin Linear[E]) {
	terms := a.inline(lin.Terms)
	if len(terms) == 0 {
		return
	}
	a.exprs = append(a.exprs, Expression[E]{Kind: ExprLinear, Lin: Linear[E]{Value: lin.Value, Terms: terms}})
}

// AddFreeQuadratic records that quad must evaluate to zero, after inlining
// its term maps.
func (a *Arena[E]) AddFreeQuadratic(quad Quadratic[E]) {
	a.exprs = append(a.exprs, Expression[E]{Kind: ExprQuadratic, Quad: Quadratic[E]{
		A: Linear[E]{Value: quad.A.Value, Terms: a.inline(quad.A.Terms)},
		B: Linear[E]{Value: quad.B.Value, Terms: a.inline(quad.B.Terms)},
		C: Linear[E]{Value: quad.C.Value, Terms: a.inline(quad.C.Terms)},
	}})
}

// inline substitutes every term whose wire already carries a Linear
// definition with that definition's own (already-inlined) terms, scaled by
// the term's coefficient, merging duplicates and dropping zeros as it goes.
// It is a worklist rather than a single pass so that it stays correct even
// if a chain of definitions were ever inserted out of its usual
// already-inlined invariant.
func (a *Arena[E]) inline(terms SparseVec[E]) SparseVec[E] {
	type pendingTerm struct {
		wire  int
		coeff E
	}
	pending := make([]pendingTerm, 0, len(terms))
	for wire, coeff := range terms {
		pending = append(pending, pendingTerm{wire, coeff})
	}

	out := make(SparseVec[E], len(terms))
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if def, ok := a.defs[cur.wire]; ok && def.Kind == DefLinear {
			for w2, c2 := range def.Lin.Terms {
				pending = append(pending, pendingTerm{w2, cur.coeff.Mul(c2)})
			}
			continue
		}

		coeff := cur.coeff
		if existing, ok := out[cur.wire]; ok {
			coeff = existing.Add(coeff)
		}
		if coeff.IsZero() {
			delete(out, cur.wire)
			continue
		}
		out[cur.wire] = coeff
	}
	return out
}
