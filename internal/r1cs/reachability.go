// Package r1cs turns a finished Arena into a compiled R1CS (the A/B/C
// matrices) and, on each later synthesis, into a witness assignment vector
// for that same R1CS.
package r1cs

import (
	"github.com/nume-crypto/r1cs/field"
	"github.com/nume-crypto/r1cs/internal/compiled"
	"github.com/nume-crypto/r1cs/logger"
)

// reachable runs a breadth-first search from the constant wire and every
// public input over the wire-definition graph, returning the set of wires
// actually needed by the circuit's outputs and assertions. Wire
// definitions that are never reached are pruned: they were dead
// allocations the circuit author never used.
//
// A reachable wire normally needs no recorded definition: most auxiliary
// wires are plain witness values (Allocate'd directly, or hints) and their
// value is simply read back out of the arena's store. The one thing every
// reachable wire must be is an actual allocation: any wire id referenced by
// a term that was never allocated (its index falls outside the arena's
// store) is a dangling wire, a fatal circuit-authoring error rather than a
// failed proof.
func reachable[E field.Element[E]](ar *compiled.Arena[E]) map[int]bool {
	seen := map[int]bool{compiled.ConstWireID: true}
	queue := []int{compiled.ConstWireID}
	for _, w := range ar.Inputs() {
		if !seen[w] {
			seen[w] = true
			queue = append(queue, w)
		}
	}

	push := func(terms compiled.SparseVec[E]) {
		for w := range terms {
			if !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}

	for _, expr := range ar.Exprs() {
		switch expr.Kind {
		case compiled.ExprLinear:
			push(expr.Lin.Terms)
		case compiled.ExprQuadratic:
			push(expr.Quad.A.Terms)
			push(expr.Quad.B.Terms)
			push(expr.Quad.C.Terms)
		}
	}

	defs := ar.Defs()
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]

		if w < 0 || w >= ar.Len() {
			logger.Logger().Warn().Int("wire", w).Msg("wire is reachable but was never allocated")
			panic(compiled.DanglingWireError{Wire: w})
		}

		def, hasDef := defs[w]
		if !hasDef {
			continue
		}
		switch def.Kind {
		case compiled.DefLinear:
			push(def.Lin.Terms)
		case compiled.DefQuadratic:
			push(def.Quad.A.Terms)
			push(def.Quad.B.Terms)
			push(def.Quad.C.Terms)
		}
	}
	return seen
}
