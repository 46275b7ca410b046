package frontend

import (
	"github.com/nume-crypto/r1cs/field"
	"github.com/nume-crypto/r1cs/internal/compiled"
	"github.com/nume-crypto/r1cs/logger"
)

// Synthesizer records a circuit as it is built: every Allocate, Input,
// Inputize and AssertIsEqual call, and every arithmetic combination that
// has to reduce a pending product to a wire, mutates the Synthesizer's
// Arena. Once the circuit function returns, the Synthesizer has everything
// an R1CS builder needs.
type Synthesizer[E field.Element[E]] struct {
	ar *compiled.Arena[E]

	counters []Counter
	curTag   string
}

// Counter is a named constraint-count checkpoint recorded between two Tag
// calls, mirroring the profiling hooks real circuit frontends expose so a
// circuit author can see which sub-circuit is expensive.
type Counter struct {
	Tag           string
	NbConstraints int
}

// New creates a Synthesizer over a fresh Arena. seed is any element of the
// field in use; only its Zero/One methods are invoked.
func New[E field.Element[E]](seed E) *Synthesizer[E] {
	return &Synthesizer[E]{ar: compiled.New(seed)}
}

// Arena exposes the underlying arena, for the R1CS builder and witness
// builder to consume once synthesis has finished.
func (s *Synthesizer[E]) Arena() *compiled.Arena[E] {
	return s.ar
}

// Allocate records a private (witness-only) value and returns a Variable
// referencing its fresh wire.
func (s *Synthesizer[E]) Allocate(v E) Variable[E] {
	wire := s.ar.Allocate(v)
	return fromLinear(s.ar, compiled.Linear[E]{Value: v, Terms: compiled.SparseVec[E]{wire: s.ar.One()}})
}

// Input records v as a public input and returns a Variable referencing its
// fresh wire.
func (s *Synthesizer[E]) Input(v E) Variable[E] {
	x := s.Allocate(v)
	for wire := range x.lin.Terms {
		s.ar.MarkInput(wire)
	}
	return x
}

// Inputize materialises x as a named public-input wire, per §4.5: if x is
// already a trivial reference to a single wire (coefficient 1, nothing
// else), that wire is reused and simply marked as an input; otherwise a
// fresh wire is allocated, x's expression is registered as that wire's
// definition (reducing a Quadratic to a wire first), and the new wire is
// marked as an input. The returned Variable always trivially references the
// input wire.
func (s *Synthesizer[E]) Inputize(x Variable[E]) Variable[E] {
	lin := toLinear(s.ar, x)

	if w, ok := singleUnitTerm(lin.Terms, s.ar.One()); ok {
		s.ar.MarkInput(w)
		return fromLinear(s.ar, lin)
	}

	w := s.ar.Allocate(lin.Value)
	s.ar.DefineLinear(w, lin)
	s.ar.MarkInput(w)
	return fromLinear(s.ar, compiled.Linear[E]{
		Value: lin.Value,
		Terms: compiled.SparseVec[E]{w: s.ar.One()},
	})
}

// Constant returns a Variable denoting the fixed value c, not tied to any
// particular wire until it participates in a combination that forces one.
func (s *Synthesizer[E]) Constant(c E) Variable[E] {
	return fromLinear(s.ar, compiled.Linear[E]{Value: c, Terms: constTerms(c)})
}

// One returns the Variable for the field's multiplicative identity.
func (s *Synthesizer[E]) One() Variable[E] {
	return s.Constant(s.ar.One())
}

// Zero returns the None identity, the same zero value as Variable[E]{}.
func (s *Synthesizer[E]) Zero() Variable[E] {
	return Variable[E]{}
}

// AssertIsEqual records that x and y must be equal, by recording x-y as a
// free expression that the R1CS must force to zero. If x-y inlines away to
// nothing, the equality was trivially satisfied and nothing is recorded.
func (s *Synthesizer[E]) AssertIsEqual(x, y Variable[E]) {
	diff := Sub(x, y)
	switch diff.kind {
	case KindNone:
		return
	case KindLinear:
		s.ar.AddFreeLinear(diff.lin)
	case KindQuadratic:
		s.ar.AddFreeQuadratic(diff.quad)
	}
}

// AssertIsEqualConst records that x must equal the constant c.
func (s *Synthesizer[E]) AssertIsEqualConst(x Variable[E], c E) {
	s.AssertIsEqual(x, s.Constant(c))
}

// Div returns x/y: it allocates the quotient q and constrains q*y == x.
// That constraint alone does not rule out y == 0 when x == 0; the non-zero
// check is made at synthesis time instead: Div panics if y's current
// witness value is zero, so a circuit author dividing by a value that may
// be zero should guard it explicitly before calling Div.
func (s *Synthesizer[E]) Div(x, y Variable[E]) Variable[E] {
	yv := y.Value()
	if yv.IsZero() {
		logger.Logger().Warn().Msg("Div called with a zero divisor witness")
		panic(compiled.DivisionByZeroError{})
	}
	q := s.Allocate(x.Value().Mul(yv.Inverse()))
	s.AssertIsEqual(Mul(q, y), x)
	return q
}

// Inverse returns 1/x, defined as Div(One(), x).
func (s *Synthesizer[E]) Inverse(x Variable[E]) Variable[E] {
	return s.Div(s.One(), x)
}

// Disabled runs fn with the constant wire's stored value driven to zero,
// restoring it to one afterwards if it was enabled before. Only the arena's
// stored value for the constant wire changes: Variable values already
// computed, and the expressions fn records, are not altered, and the
// witness is built from the store after synthesis, when the wire holds one
// again.
func (s *Synthesizer[E]) Disabled(fn func()) {
	wasEnabled := s.ar.Enabled()
	s.ar.Disable()
	defer func() {
		if wasEnabled {
			s.ar.Enable()
		}
	}()
	fn()
}

// Tag opens a new profiling checkpoint named name: the constraint count
// since the previous Tag (or since synthesis began) is recorded under that
// previous tag ("untagged" if there was none), and constraints recorded
// from now until the next Tag or Counters call are attributed to name.
func (s *Synthesizer[E]) Tag(name string) {
	s.AddCounter()
	s.curTag = name
}

// AddCounter closes out the current tag's checkpoint, recording how many
// free expressions were added since the previous one.
func (s *Synthesizer[E]) AddCounter() {
	tag := s.curTag
	if tag == "" {
		tag = "untagged"
	}
	total := len(s.ar.Exprs())
	prev := 0
	for _, c := range s.counters {
		prev += c.NbConstraints
	}
	s.counters = append(s.counters, Counter{Tag: tag, NbConstraints: total - prev})
}

// Counters returns the profiling checkpoints recorded so far.
func (s *Synthesizer[E]) Counters() []Counter {
	s.AddCounter()
	return s.counters
}
