package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/alexiusacademia/gomech/internal/table"
	"github.com/alexiusacademia/gomech/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var steelSchema = &Schema{
	Category:   "carbon-steel",
	NamePrefix: "aisi",
	Keys:       []string{"aisi", "treatment"},
	Fields: []Field{
		{Name: "aisi", Kind: KindText, Column: "aisi"},
		{Name: "treatment", Kind: KindText, Column: "treatment"},
		{
			Name:     "tensile_strength",
			Kind:     KindQuantity,
			SI:       Source{Column: "ts_mpa", Unit: "MPa"},
			Imperial: Source{Column: "ts_kpsi", Unit: "kpsi"},
			Aliases:  []string{"uts"},
		},
		{Name: "elongation", Kind: KindScalar, Column: "elongation_pct"},
		{Name: "reduction_in_area", Kind: KindScalar, Column: "reduction_area_pct", Optional: true},
		{
			Name:     "elastic_modulus",
			Kind:     KindQuantity,
			SI:       Source{Column: "e_gpa", Unit: "GPa", As: "MPa"},
			Imperial: Source{Column: "e_gpa", Unit: "GPa", As: "kpsi"},
			Optional: true,
			Aliases:  []string{"mod_elast", "modulus_elasticity"},
		},
	},
}

func row1015() table.Row {
	return table.Row{
		"aisi": "1015", "treatment": "As-rolled",
		"ts_mpa": "421", "ts_kpsi": "61",
		"elongation_pct": "39", "reduction_area_pct": "61",
	}
}

func TestBuild(t *testing.T) {
	cat := units.StandardCatalog()

	t.Run("si", func(t *testing.T) {
		rec, err := Build(steelSchema, row1015(), SI, cat)
		require.NoError(t, err)
		assert.Equal(t, "aisi1015_as-rolled", rec.Name())
		assert.Equal(t, "carbon-steel", rec.Category())
		assert.Equal(t, []string{"1015", "As-rolled"}, rec.Key())

		ts, ok := rec.Quantity("tensile_strength")
		require.True(t, ok)
		assert.Equal(t, units.Pressure, ts.Dim())
		assert.True(t, ts.ApproxEqual(units.New(421, cat.MustUnit("MPa")), 1e-12))

		el, ok := rec.Scalar("elongation")
		require.True(t, ok)
		assert.Equal(t, 39.0, el)
		assert.Equal(t, []string{"aisi", "treatment", "tensile_strength", "elongation", "reduction_in_area"}, rec.Fields())
	})

	t.Run("imperial reads the imperial column", func(t *testing.T) {
		rec, err := Build(steelSchema, row1015(), Imperial, cat)
		require.NoError(t, err)
		ts, _ := rec.Quantity("tensile_strength")
		assert.Equal(t, "ksi", ts.Unit().Symbol)
		assert.Equal(t, 61.0, ts.Magnitude())
	})

	t.Run("optional column absent", func(t *testing.T) {
		r := row1015()
		delete(r, "reduction_area_pct")
		rec, err := Build(steelSchema, r, SI, cat)
		require.NoError(t, err)
		assert.False(t, rec.Has("reduction_in_area"))
	})

	t.Run("required column absent", func(t *testing.T) {
		r := row1015()
		r["elongation_pct"] = "  "
		_, err := Build(steelSchema, r, SI, cat)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingColumn)
		var mc *MissingColumnError
		require.True(t, errors.As(err, &mc))
		assert.Equal(t, "elongation_pct", mc.Column)
	})

	t.Run("unparsable number", func(t *testing.T) {
		r := row1015()
		r["ts_mpa"] = "n/a"
		_, err := Build(steelSchema, r, SI, cat)
		assert.ErrorIs(t, err, ErrMalformedKey)
		assert.Contains(t, err.Error(), `"n/a"`)
	})

	t.Run("invalid unit system", func(t *testing.T) {
		_, err := Build(steelSchema, row1015(), UnitSystem(0), cat)
		assert.ErrorIs(t, err, ErrInvalidUnitSystem)
	})

	t.Run("source unit converted to record unit", func(t *testing.T) {
		r := row1015()
		r["e_gpa"] = "207"
		rec, err := Build(steelSchema, r, SI, cat)
		require.NoError(t, err)
		e, ok := rec.Quantity("mod_elast")
		require.True(t, ok, "alias resolves")
		assert.Equal(t, "MPa", e.Unit().Symbol)
		assert.InDelta(t, 207000.0, e.Magnitude(), 1e-6)
		assert.True(t, rec.Has("modulus_elasticity"))

		rec, err = Build(steelSchema, r, Imperial, cat)
		require.NoError(t, err)
		e, _ = rec.Quantity("elastic_modulus")
		assert.InDelta(t, 30022.8, e.Magnitude(), 0.1)
	})
}

func TestParseUnitSystem(t *testing.T) {
	for in, want := range map[string]UnitSystem{"SI": SI, "metric": SI, "Imperial": Imperial, " us ": Imperial} {
		got, err := ParseUnitSystem(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseUnitSystem("cgs")
	assert.ErrorIs(t, err, ErrInvalidUnitSystem)
	assert.Contains(t, err.Error(), "cgs")
}

func TestDeriveName(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"1015", "As-rolled"}, "aisi1015_as-rolled"},
		{[]string{"1095", "  Quenched & Tempered "}, "aisi1095_quenched-tempered"},
		{[]string{"1020", "As Rolled"}, "aisi1020_as-rolled"},
		{[]string{"A-36", "Hot Rolled (HR)"}, "aisia-36_hot-rolled-hr"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.keys, "/"), func(t *testing.T) {
			got, err := DeriveName(steelSchema, table.Row{"aisi": tt.keys[0], "treatment": tt.keys[1]})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := DeriveName(steelSchema, table.Row{"aisi": "1015", "treatment": "--"})
	assert.ErrorIs(t, err, ErrMalformedKey)

	_, err = DeriveName(steelSchema, table.Row{"aisi": "1015"})
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestBuild_CustomParse(t *testing.T) {
	cat := units.StandardCatalog()
	tpi := func(raw string) (float64, error) {
		if raw == "4 1/2" {
			return 4.5, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("not a thread count")
		}
		return v, nil
	}
	s := &Schema{
		Category: "thread",
		Keys:     []string{"size"},
		Fields:   []Field{{Name: "threads_per_inch", Kind: KindScalar, Column: "pitch", Parse: tpi}},
	}

	rec, err := Build(s, table.Row{"size": "2-4 1/2 UNC", "pitch": "4 1/2"}, SI, cat)
	require.NoError(t, err)
	v, _ := rec.Scalar("threads_per_inch")
	assert.Equal(t, 4.5, v)
	assert.Equal(t, "2-4-1-2-unc", rec.Name())

	_, err = Build(s, table.Row{"size": "x", "pitch": "4 3/4"}, SI, cat)
	assert.ErrorIs(t, err, ErrMalformedKey)
}
