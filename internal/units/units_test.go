package units

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDims = map[string]Dimension{
	"dimensionless": Dimensionless,
	"length":        Length,
	"mass":          Mass,
	"force":         Force,
	"pressure":      Pressure,
	"density":       Density,
	"angle":         Angle,
	"temperature":   Temperature,
	"sqrt length":   Length.PowRat(1, 2),
	"frequency":     Frequency,
}

func TestDimension_MulDivRoundTrip(t *testing.T) {
	for n1, d1 := range testDims {
		for n2, d2 := range testDims {
			t.Run(n1+" by "+n2, func(t *testing.T) {
				assert.Equal(t, d1, d1.Mul(d2).Div(d2))
			})
		}
	}
}

func TestDimension_Derived(t *testing.T) {
	t.Run("force is mass length per time squared", func(t *testing.T) {
		assert.True(t, Force.Equal(Mass.Mul(Length).Mul(Time.Pow(-2))))
	})

	t.Run("pressure times area is force", func(t *testing.T) {
		assert.Equal(t, Force, Pressure.Mul(Area))
	})

	t.Run("square root of area is length", func(t *testing.T) {
		assert.Equal(t, Length, Area.PowRat(1, 2))
	})

	t.Run("cancelled exponents normalise to dimensionless", func(t *testing.T) {
		d := Length.Div(Length)
		assert.True(t, d.IsDimensionless())
		assert.Equal(t, Dimensionless, d)
	})

	t.Run("fractional exponents compare structurally", func(t *testing.T) {
		assert.Equal(t, Length.PowRat(2, 4), Length.PowRat(1, 2))
		assert.Equal(t, 0.5, Length.PowRat(1, 2).Exponent("length"))
	})
}

func TestDimension_String(t *testing.T) {
	assert.Equal(t, "[mass]·[length]/[time]^2", Force.String())
	assert.Equal(t, "[mass]/([length]·[time]^2)", Pressure.String())
	assert.Equal(t, "[length]^(1/2)", Length.PowRat(1, 2).String())
	assert.Equal(t, "dimensionless", Dimensionless.String())
	assert.Equal(t, "1/[time]", Frequency.String())
}

func TestCatalog_Parse(t *testing.T) {
	cat := StandardCatalog()

	tests := []struct {
		expr  string
		dim   Dimension
		scale float64
	}{
		{"mm", Length, 1e-3},
		{"inch", Length, 0.0254},
		{"lbf/in^2", Pressure, 6894.757293168361},
		{"psi", Pressure, 6894.757293168361},
		{"N/mm^2", Pressure, 1e6},
		{"kg/m^3", Density, 1},
		{"lb/in³", Density, 27679.904710203125},
		{"N*m", Energy, 1},
		{"N·m/rad", TorsionalStiffness, 1},
		{"rpm", AngularVelocity, 2 * math.Pi / 60},
		{"in^4", SecondMoment, math.Pow(0.0254, 4)},
		{"m^(1/2)", Length.PowRat(1, 2), 1},
		{"lbf/(in*s)", Force.Div(Length).Div(Time), 4.4482216152605 / 0.0254},
		{"%", Dimensionless, 0.01},
		{"1/s", Frequency, 1},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			u, err := cat.Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.dim, u.Dim)
			assert.InEpsilon(t, tt.scale, u.Scale, 1e-9)
		})
	}

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := cat.Parse("furlong/fortnight")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownUnit))
		assert.Contains(t, err.Error(), "furlong")
	})

	t.Run("dangling operator", func(t *testing.T) {
		_, err := cat.Parse("N/")
		assert.ErrorIs(t, err, ErrUnknownUnit)
	})

	t.Run("alias resolves to primary symbol", func(t *testing.T) {
		u, err := cat.Parse("kpsi")
		require.NoError(t, err)
		assert.Equal(t, "ksi", u.Symbol)
	})
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	_, err := NewCatalog([]Definition{
		{Symbol: "m", Dim: Length, Scale: 1},
		{Symbol: "metre", Aliases: []string{"m"}, Expr: "m"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"m" already defined`)
}

func TestCatalog_ParseQuantity(t *testing.T) {
	cat := StandardCatalog()

	q, err := cat.ParseQuantity("1000 lbf")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, q.Magnitude())
	assert.Equal(t, "lbf", q.Unit().Symbol)

	q, err = cat.ParseQuantity("2.5e3 psi")
	require.NoError(t, err)
	assert.Equal(t, 2500.0, q.Magnitude())

	q, err = cat.ParseQuantity("0.3")
	require.NoError(t, err)
	assert.True(t, q.Dim().IsDimensionless())

	_, err = cat.ParseQuantity("lots of N")
	assert.Error(t, err)
}

func TestQuantity_To(t *testing.T) {
	cat := StandardCatalog()

	t.Run("stress from pounds over square inches", func(t *testing.T) {
		load := New(1000, cat.MustUnit("lbf"))
		area := New(100, cat.MustUnit("in^2"))
		stress := load.Div(area)
		assert.Equal(t, Pressure, stress.Dim())

		psi, err := stress.In(cat.MustUnit("psi"))
		require.NoError(t, err)
		assert.InDelta(t, 10.0, psi, 1e-9)
	})

	t.Run("conversion is transitive", func(t *testing.T) {
		q := New(421, cat.MustUnit("MPa"))
		for _, a := range []string{"psi", "ksi", "Pa", "N/mm^2", "GPa"} {
			for _, b := range []string{"psi", "ksi", "Pa", "N/mm^2", "GPa"} {
				ua, ub := cat.MustUnit(a), cat.MustUnit(b)
				viaA, err := q.To(ua)
				require.NoError(t, err)
				viaAB, err := viaA.To(ub)
				require.NoError(t, err)
				direct, err := q.To(ub)
				require.NoError(t, err)
				assert.InEpsilon(t, direct.Magnitude(), viaAB.Magnitude(), 1e-12, "%s -> %s", a, b)
			}
		}
	})

	t.Run("affine temperatures", func(t *testing.T) {
		boiling := New(100, cat.MustUnit("degC"))
		f, err := boiling.In(cat.MustUnit("degF"))
		require.NoError(t, err)
		assert.InDelta(t, 212.0, f, 1e-9)

		k, err := boiling.In(cat.MustUnit("K"))
		require.NoError(t, err)
		assert.InDelta(t, 373.15, k, 1e-9)

		back, err := New(f, cat.MustUnit("degF")).In(cat.MustUnit("degC"))
		require.NoError(t, err)
		assert.InDelta(t, 100.0, back, 1e-9)
	})

	t.Run("incompatible dimension", func(t *testing.T) {
		_, err := New(1, cat.MustUnit("m")).To(cat.MustUnit("kg"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIncompatibleDimension)
		assert.Contains(t, err.Error(), "m ([length])")
	})
}

func TestQuantity_Arithmetic(t *testing.T) {
	cat := StandardCatalog()
	in, mm := cat.MustUnit("in"), cat.MustUnit("mm")

	t.Run("add converts right operand into left unit", func(t *testing.T) {
		q1 := New(2, in)
		q2 := New(25.4, mm)
		sum, err := q1.Add(q2)
		require.NoError(t, err)
		assert.Equal(t, in, sum.Unit())
		q2in, err := q2.In(in)
		require.NoError(t, err)
		assert.InDelta(t, q1.Magnitude()+q2in, sum.Magnitude(), 1e-12)
		assert.InDelta(t, 3.0, sum.Magnitude(), 1e-12)
	})

	t.Run("sub", func(t *testing.T) {
		diff, err := New(1, cat.MustUnit("ft")).Sub(New(6, in))
		require.NoError(t, err)
		assert.InDelta(t, 0.5, diff.Magnitude(), 1e-12)
	})

	t.Run("add mismatched dimensions", func(t *testing.T) {
		_, err := New(1, in).Add(New(1, cat.MustUnit("lbf")))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
		assert.ErrorIs(t, err, ErrIncompatibleDimension)
	})

	t.Run("operands are not modified", func(t *testing.T) {
		q := New(3, in)
		_ = q.Mul(q)
		_ = q.Pow(3)
		_, _ = q.Add(New(1, mm))
		assert.Equal(t, 3.0, q.Magnitude())
		assert.Equal(t, in, q.Unit())
	})

	t.Run("power raises dimension", func(t *testing.T) {
		d := New(2, in)
		moment := d.Pow(4)
		assert.Equal(t, SecondMoment, moment.Dim())
		assert.Equal(t, 16.0, moment.Magnitude())
		v, err := moment.In(cat.MustUnit("in^4"))
		require.NoError(t, err)
		assert.InDelta(t, 16.0, v, 1e-9)
	})

	t.Run("sqrt of area", func(t *testing.T) {
		side := New(9, cat.MustUnit("mm^2")).Sqrt()
		assert.Equal(t, Length, side.Dim())
		v, err := side.In(mm)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, v, 1e-9)
	})

	t.Run("ratio of lengths is dimensionless", func(t *testing.T) {
		strain := New(0.02, in).Div(New(2, in))
		v, err := strain.Value()
		require.NoError(t, err)
		assert.InDelta(t, 0.01, v, 1e-15)

		mixed := New(1, in).Div(New(1, cat.MustUnit("ft")))
		v, err = mixed.Value()
		require.NoError(t, err)
		assert.InDelta(t, 1.0/12, v, 1e-15)
	})

	t.Run("value of a dimensioned quantity fails", func(t *testing.T) {
		_, err := New(1, in).Value()
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("compare across units", func(t *testing.T) {
		c, err := New(1, in).Compare(New(25, mm))
		require.NoError(t, err)
		assert.Equal(t, 1, c)
		assert.True(t, New(1, in).ApproxEqual(New(25.4, mm), 1e-12))
	})

	t.Run("affine operands multiply as absolute", func(t *testing.T) {
		q := New(0, cat.MustUnit("degC")).Mul(Scalar(2))
		assert.InDelta(t, 546.3, q.Magnitude(), 1e-9)
		assert.Equal(t, "K", q.Unit().Symbol)
	})
}

func TestUnit_Symbols(t *testing.T) {
	cat := StandardCatalog()
	assert.Equal(t, "lbf/in^2", cat.MustUnit("lbf").Div(cat.MustUnit("in^2")).Symbol)
	assert.Equal(t, "N/(mm*s)", cat.MustUnit("N").Div(cat.MustUnit("mm").Mul(cat.MustUnit("s"))).Symbol)
	assert.Equal(t, "(N*m)^2", cat.MustUnit("N").Mul(cat.MustUnit("m")).Pow(2).Symbol)
	assert.Equal(t, "kg*m/s^2", BaseUnit(Force).Symbol)
}

func TestCatalog_Symbols(t *testing.T) {
	cat := StandardCatalog()
	syms := cat.Symbols()

	assert.Equal(t, "1", syms[0])
	assert.Subset(t, syms, []string{"mm", "psi", "rpm", "%", "1"})
	assert.NotContains(t, syms, "radian", "aliases are not listed")

	seen := make(map[string]bool, len(syms))
	for _, s := range syms {
		assert.False(t, seen[s], "duplicate symbol %q", s)
		seen[s] = true
		_, err := cat.Unit(s)
		assert.NoError(t, err, s)
	}

	syms[0] = "changed"
	assert.Equal(t, "1", cat.Symbols()[0])
}

func TestUnit_Equivalent(t *testing.T) {
	cat := StandardCatalog()
	assert.True(t, cat.MustUnit("psi").Equivalent(cat.MustUnit("lbf/in^2")))
	assert.True(t, cat.MustUnit("J").Equivalent(cat.MustUnit("N*m")))
	assert.False(t, cat.MustUnit("psi").Equivalent(cat.MustUnit("kPa")))
	assert.False(t, cat.MustUnit("degC").Equivalent(cat.MustUnit("K")))
	assert.False(t, cat.MustUnit("J").Equivalent(cat.MustUnit("W")))
}
