package r1cs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/r1cs/field/bn254"
	"github.com/nume-crypto/r1cs/frontend"
)

// S1 — trivial input.
func TestTrivialInput(t *testing.T) {
	s := frontend.New(bn254.Elt{})
	x := s.Input(bn254.FromInt64(7))
	s.Inputize(x)

	rs := Build(s.Arena())
	require.Equal(t, 1, rs.NumPublic) // x; const wire is separate from NumPublic
	require.Equal(t, 2, rs.NumWires)  // const wire + x
	require.Empty(t, rs.Rows)

	z := Witness(rs, s.Arena().Value)
	require.True(t, rs.IsSatisfied(z))
	require.True(t, z[0].Equal(bn254.FromInt64(1)))
}

// S2 — multiplication.
func TestMultiplication(t *testing.T) {
	s := frontend.New(bn254.Elt{})
	x := s.Input(bn254.FromInt64(3))
	y := s.Input(bn254.FromInt64(4))
	p := frontend.Mul(x, y)
	s.Inputize(p)

	rs := Build(s.Arena())
	require.Equal(t, 3, rs.NumPublic) // x, y, p
	require.Equal(t, 4, rs.NumWires)
	require.Len(t, rs.Rows, 1)

	z := Witness(rs, s.Arena().Value)
	require.True(t, rs.IsSatisfied(z))
	require.True(t, z[0].Equal(bn254.FromInt64(1)))
}

// S3 — Fibonacci step: two purely-linear rows.
func TestFibonacciStep(t *testing.T) {
	s := frontend.New(bn254.Elt{})
	f0 := s.Input(bn254.FromInt64(1))
	f1 := s.Input(bn254.FromInt64(1))
	f2 := frontend.Add(f0, f1)
	s.Inputize(f2)
	f3 := frontend.Add(f1, f2)
	s.Inputize(f3)

	rs := Build(s.Arena())
	require.Len(t, rs.Rows, 2)
	for _, row := range rs.Rows {
		require.Empty(t, row.A)
		require.Empty(t, row.B)
	}

	z := Witness(rs, s.Arena().Value)
	require.True(t, rs.IsSatisfied(z))
}

// S4 — cubic polynomial e = x^3 + x + 5.
func TestCubicPolynomial(t *testing.T) {
	s := frontend.New(bn254.Elt{})
	x := s.Input(bn254.FromInt64(3))
	x2 := frontend.Mul(x, x)
	x3 := frontend.Mul(x2, x)
	e := frontend.AddConst(frontend.Add(x3, x), bn254.FromInt64(5))
	s.Inputize(e)

	require.True(t, e.Value().Equal(bn254.FromInt64(35)))

	rs := Build(s.Arena())
	z := Witness(rs, s.Arena().Value)
	require.True(t, rs.IsSatisfied(z))

	// x² forces its own row (x·x=x²); x³'s own multiplication never gets a
	// row of its own, because the "+x+5" that forms e folds straight into
	// that same Quadratic's C per §3/§4.4 ("accumulate additional linear
	// additions into C without allocating a new wire") before inputize
	// ever reduces it — so the whole x³+x+5-e assertion is one row, not
	// two. Two rows total, both with a genuine A·B product.
	require.Len(t, rs.Rows, 2)
	for _, row := range rs.Rows {
		require.NotEmpty(t, row.A)
		require.NotEmpty(t, row.B)
	}
}

// S5 — unused algebra is elided by reachability.
func TestUnusedAlgebraElided(t *testing.T) {
	s := frontend.New(bn254.Elt{})
	u := s.Input(bn254.FromInt64(2))
	v := s.Allocate(bn254.FromInt64(9))
	_ = frontend.Mul(u, v) // never inputized or equated

	rs := Build(s.Arena())
	require.Empty(t, rs.Rows)
	require.Equal(t, rs.NumPublic+1, rs.NumWires)
}

// No coefficient in any emitted row is zero.
func TestNoZeroCoefficients(t *testing.T) {
	s := frontend.New(bn254.Elt{})
	x := s.Input(bn254.FromInt64(3))
	y := s.Input(bn254.FromInt64(4))
	p := frontend.Mul(x, y)
	s.Inputize(p)

	rs := Build(s.Arena())
	for _, row := range rs.Rows {
		for _, c := range row.A {
			require.False(t, c.IsZero())
		}
		for _, c := range row.B {
			require.False(t, c.IsZero())
		}
		for _, c := range row.C {
			require.False(t, c.IsZero())
		}
	}
}
