// Package constraintsystem is the module's root package: it ties the
// frontend (variable algebra + synthesizer) to the internal/r1cs compiler
// and exposes the single entry point circuit code is expected to use,
// mirroring the driver described in spec.md §4.11.
package constraintsystem

import (
	"fmt"
	"io"

	"github.com/google/pprof/profile"

	"github.com/nume-crypto/r1cs/field"
	"github.com/nume-crypto/r1cs/frontend"
	"github.com/nume-crypto/r1cs/internal/r1cs"
	"github.com/nume-crypto/r1cs/logger"
)

// ConstraintSystem caches a compiled R1CS across repeated synthesis runs of
// the same circuit closure: the first Synthesize call pays for
// reachability + row-building, later calls only rebuild the witness.
type ConstraintSystem[E field.Element[E]] struct {
	compiled *r1cs.R1CS[E]
	witness  []E
	counters []frontend.Counter
}

// New returns an empty ConstraintSystem with nothing compiled yet.
func New[E field.Element[E]]() *ConstraintSystem[E] {
	return &ConstraintSystem[E]{}
}

// Synthesize runs fn over a fresh Synthesizer bound to a brand-new Arena.
// On the first call it compiles fn's recorded arena into an R1CS and caches
// it on cs; on every call (including the first) it rebuilds the witness
// vector from the arena that run produced. fn's own return value is passed
// back to the caller unchanged, so a circuit closure can hand back whatever
// output variables it wants to inspect.
func Synthesize[E field.Element[E], T any](cs *ConstraintSystem[E], seed E, fn func(s *frontend.Synthesizer[E]) T) T {
	s := frontend.New(seed)
	out := fn(s)
	ar := s.Arena()

	if cs.compiled == nil {
		logger.Logger().Debug().Msg("compiling circuit: no cached R1CS")
		cs.compiled = r1cs.Build(ar)
	} else {
		logger.Logger().Debug().
			Int("rows", len(cs.compiled.Rows)).
			Msg("reusing cached R1CS")
	}

	cs.witness = r1cs.Witness(cs.compiled, ar.Value)
	cs.counters = s.Counters()
	return out
}

// R1CS returns the cached compiled constraint system, or nil if Synthesize
// has never run.
func (cs *ConstraintSystem[E]) R1CS() *r1cs.R1CS[E] {
	return cs.compiled
}

// Witness returns the assignment vector produced by the most recent
// Synthesize call.
func (cs *ConstraintSystem[E]) Witness() []E {
	return cs.witness
}

// IsSatisfied checks the cached R1CS against the current witness, per
// spec.md §4.11 / §7: this is the only user-observable failure mode, and it
// never panics.
func (cs *ConstraintSystem[E]) IsSatisfied() bool {
	if cs.compiled == nil {
		return false
	}
	return cs.compiled.IsSatisfied(cs.witness)
}

// WriteProfile serializes the constraint/tag counters recorded by the most
// recent Synthesize call as a pprof profile, one sample per recorded
// counter (including any "untagged" one), whose value is that counter's
// constraint count (sample type "constraints", unit "count"). This is
// diagnostic tooling over the
// constraint graph, not a serialization of the compiled R1CS itself.
func (cs *ConstraintSystem[E]) WriteProfile(w io.Writer) error {
	p := &profile.Profile{
		SampleType: []*profile.ValueType{{Type: "constraints", Unit: "count"}},
		Function:   make([]*profile.Function, 0, len(cs.counters)),
		Location:   make([]*profile.Location, 0, len(cs.counters)),
		Sample:     make([]*profile.Sample, 0, len(cs.counters)),
	}
	for i, c := range cs.counters {
		id := uint64(i + 1)
		fn := &profile.Function{ID: id, Name: c.Tag}
		loc := &profile.Location{ID: id, Line: []profile.Line{{Function: fn}}}
		p.Function = append(p.Function, fn)
		p.Location = append(p.Location, loc)
		p.Sample = append(p.Sample, &profile.Sample{
			Location: []*profile.Location{loc},
			Value:    []int64{int64(c.NbConstraints)},
		})
	}
	if err := p.CheckValid(); err != nil {
		return fmt.Errorf("constraintsystem: invalid profile: %w", err)
	}
	return p.Write(w)
}
