package compiled

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/r1cs/field/bn254"
)

func seedArena() *Arena[bn254.Elt] {
	return New(bn254.Elt{})
}

func TestNewArenaSeedsConstWire(t *testing.T) {
	a := seedArena()
	require.Equal(t, 1, a.Len())
	require.True(t, a.Value(ConstWireID).Equal(bn254.FromInt64(1)))
	require.True(t, a.Enabled())
}

func TestDefineLinearInlinesExistingDefinitions(t *testing.T) {
	a := seedArena()

	wx := a.Allocate(bn254.FromInt64(3))
	// wy = 2*wx  (a pure linear definition)
	a.DefineLinear(a.Allocate(bn254.FromInt64(6)), Linear[bn254.Elt]{
		Value: bn254.FromInt64(6),
		Terms: SparseVec[bn254.Elt]{wx: bn254.FromInt64(2)},
	})
	wy := a.Len() - 1

	// wz = wy + 1, should inline to wz = 2*wx + 1
	wz := a.Allocate(bn254.FromInt64(7))
	a.DefineLinear(wz, Linear[bn254.Elt]{
		Value: bn254.FromInt64(7),
		Terms: Merge(SparseVec[bn254.Elt]{wy: bn254.FromInt64(1)}, SparseVec[bn254.Elt]{ConstWireID: bn254.FromInt64(1)}),
	})

	def := a.Defs()[wz]
	require.Equal(t, DefLinear, def.Kind)
	require.NotContains(t, def.Lin.Terms, wy)
	require.True(t, def.Lin.Terms[wx].Equal(bn254.FromInt64(2)))
	require.True(t, def.Lin.Terms[ConstWireID].Equal(bn254.FromInt64(1)))
}

func TestDefineLinearSelfReferencePanics(t *testing.T) {
	a := seedArena()
	w := a.Allocate(bn254.FromInt64(1))
	require.PanicsWithValue(t, SelfReferenceError{Wire: w}, func() {
		a.DefineLinear(w, Linear[bn254.Elt]{
			Value: bn254.FromInt64(1),
			Terms: SparseVec[bn254.Elt]{w: bn254.FromInt64(1)},
		})
	})
}

func TestDefineQuadraticWithConstantAOperandDegradesToLinear(t *testing.T) {
	a := seedArena()
	wb := a.Allocate(bn254.FromInt64(5))
	w := a.Allocate(bn254.FromInt64(15))

	a.DefineQuadratic(w, Quadratic[bn254.Elt]{
		A: Linear[bn254.Elt]{Value: bn254.FromInt64(3), Terms: SparseVec[bn254.Elt]{ConstWireID: bn254.FromInt64(3)}},
		B: Linear[bn254.Elt]{Value: bn254.FromInt64(5), Terms: SparseVec[bn254.Elt]{wb: bn254.FromInt64(1)}},
		C: Linear[bn254.Elt]{Value: bn254.FromInt64(0), Terms: SparseVec[bn254.Elt]{}},
	})

	def := a.Defs()[w]
	require.Equal(t, DefLinear, def.Kind)
	require.True(t, def.Lin.Terms[wb].Equal(bn254.FromInt64(3)))
}

func TestReduceRegistersQuadraticDefinition(t *testing.T) {
	a := seedArena()
	wx := a.Allocate(bn254.FromInt64(3))
	quad := Quadratic[bn254.Elt]{
		A: Linear[bn254.Elt]{Value: bn254.FromInt64(3), Terms: SparseVec[bn254.Elt]{wx: bn254.FromInt64(1)}},
		B: Linear[bn254.Elt]{Value: bn254.FromInt64(3), Terms: SparseVec[bn254.Elt]{wx: bn254.FromInt64(1)}},
		C: Linear[bn254.Elt]{Value: bn254.FromInt64(0), Terms: SparseVec[bn254.Elt]{}},
	}
	lin := a.Reduce(quad)
	require.True(t, lin.Value.Equal(bn254.FromInt64(9)))

	w, ok := lin.Terms.ConstantPart()
	require.False(t, ok)
	_ = w

	var wire int
	for k := range lin.Terms {
		wire = k
	}
	def := a.Defs()[wire]
	require.Equal(t, DefQuadratic, def.Kind)
}

func TestAddFreeLinearDropsTriviallySatisfied(t *testing.T) {
	a := seedArena()
	a.AddFreeLinear(Linear[bn254.Elt]{Value: bn254.Elt{}.Zero(), Terms: SparseVec[bn254.Elt]{}})
	require.Empty(t, a.Exprs())
}

func TestDisableAndEnableToggleConstWire(t *testing.T) {
	a := seedArena()
	a.Disable()
	require.False(t, a.Enabled())
	require.True(t, a.Value(ConstWireID).IsZero())
	a.Enable()
	require.True(t, a.Enabled())
	require.True(t, a.Value(ConstWireID).Equal(bn254.FromInt64(1)))
}
