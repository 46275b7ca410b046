package r1cs

import (
	"golang.org/x/exp/slices"

	"github.com/nume-crypto/r1cs/field"
	"github.com/nume-crypto/r1cs/internal/compiled"
)

// Row is one constraint: ⟨A,z⟩·⟨B,z⟩+⟨C,z⟩ = 0, where A/B/C are sparse
// vectors keyed by interned wire index, not the arena's original wire id.
type Row[E field.Element[E]] struct {
	A, B, C compiled.SparseVec[E]
}

// R1CS is a compiled rank-1 constraint system: a fixed set of rows plus the
// interning table needed to build a matching witness vector from a fresh
// set of input values.
type R1CS[E field.Element[E]] struct {
	Rows []Row[E]

	// NumPublic is the count of public input wires, not including the
	// reserved constant wire at index 0.
	NumPublic int
	// NumWires is the length of the witness assignment vector z.
	NumWires int

	// index maps an arena wire id to its position in z.
	index map[int]int
}

// Build compiles ar into an R1CS: it runs the reachability pass, interns
// every reachable wire into a contiguous index space (the constant wire at
// 0, public inputs next in declaration order, then every other reachable
// wire in ascending original-id order for determinism), then fuses every
// retained wire definition and every free expression into a row, per §4.9:
// a Quadratic-defined wire w↦A·B+C becomes the row (A,B,C−{w→1}); a
// Linear-defined wire w↦L becomes the purely-linear row (∅,∅,L−{w→1}), so
// that w's witness value is provably tied to its defining combination
// rather than merely self-reported.
func Build[E field.Element[E]](ar *compiled.Arena[E]) *R1CS[E] {
	reached := reachable(ar)

	order := make([]int, 0, len(reached))
	order = append(order, compiled.ConstWireID)
	seen := map[int]bool{compiled.ConstWireID: true}
	for _, w := range ar.Inputs() {
		order = append(order, w)
		seen[w] = true
	}
	rest := make([]int, 0, len(reached))
	for w := range reached {
		if !seen[w] {
			rest = append(rest, w)
		}
	}
	slices.Sort(rest)
	order = append(order, rest...)

	index := make(map[int]int, len(order))
	for i, w := range order {
		index[w] = i
	}

	intern := func(terms compiled.SparseVec[E]) compiled.SparseVec[E] {
		out := make(compiled.SparseVec[E], len(terms))
		for w, c := range terms {
			out[index[w]] = c
		}
		return out
	}

	rs := &R1CS[E]{
		NumPublic: len(ar.Inputs()),
		NumWires:  len(order),
		index:     index,
	}

	negOne := ar.Zero().Sub(ar.One())
	emitLinearRow := func(terms compiled.SparseVec[E]) {
		rs.Rows = append(rs.Rows, Row[E]{
			A: compiled.SparseVec[E]{},
			B: compiled.SparseVec[E]{},
			C: intern(terms),
		})
	}

	defs := ar.Defs()
	for _, w := range order {
		def, ok := defs[w]
		if !ok {
			continue
		}
		switch def.Kind {
		case compiled.DefQuadratic:
			// A·B+C−{w→1} = 0: ties w's witness value to the product.
			c := compiled.Merge(def.Quad.C.Terms, compiled.SparseVec[E]{w: negOne})
			rs.Rows = append(rs.Rows, Row[E]{
				A: intern(def.Quad.A.Terms),
				B: intern(def.Quad.B.Terms),
				C: intern(c),
			})
		case compiled.DefLinear:
			// L − {w→1}: ties w's witness value to its defining combination.
			terms := compiled.Merge(def.Lin.Terms, compiled.SparseVec[E]{w: negOne})
			if len(terms) > 0 {
				emitLinearRow(terms)
			}
		}
	}

	for _, expr := range ar.Exprs() {
		switch expr.Kind {
		case compiled.ExprLinear:
			emitLinearRow(expr.Lin.Terms)
		case compiled.ExprQuadratic:
			rs.Rows = append(rs.Rows, Row[E]{
				A: intern(expr.Quad.A.Terms),
				B: intern(expr.Quad.B.Terms),
				C: intern(expr.Quad.C.Terms),
			})
		}
	}

	return rs
}
