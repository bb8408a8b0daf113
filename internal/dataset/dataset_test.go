package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gomech/internal/record"
	"github.com/alexiusacademia/gomech/internal/table"
	"github.com/alexiusacademia/gomech/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRegistries(t *testing.T) {
	l := &Loader{}
	for _, ds := range All() {
		for _, sys := range []record.UnitSystem{record.SI, record.Imperial} {
			t.Run(ds.Name+"/"+sys.String(), func(t *testing.T) {
				reg, err := l.Registry(ds, sys)
				require.NoError(t, err)
				assert.Positive(t, reg.Len())
				assert.Equal(t, ds.Schema.Category, reg.Category())
			})
		}
	}
}

func TestCarbonSteel(t *testing.T) {
	cat := units.StandardCatalog()
	l := &Loader{Catalog: cat}
	ds, err := ByName("carbon-steel")
	require.NoError(t, err)

	reg, err := l.Registry(ds, record.SI)
	require.NoError(t, err)
	names := reg.Names()
	require.Len(t, names, 18)
	assert.Equal(t, "aisi1015_as-rolled", names[0])
	assert.Contains(t, names, "aisi1020_as-rolled")

	rec, err := reg.Get("aisi1015_as-rolled")
	require.NoError(t, err)
	ts, ok := rec.Quantity("tensile_strength")
	require.True(t, ok)
	assert.True(t, ts.ApproxEqual(units.New(421, cat.MustUnit("MPa")), 1e-12))

	t.Run("lookup by key", func(t *testing.T) {
		rec, err := l.Lookup(ds, record.Imperial, "1095", "Annealed")
		require.NoError(t, err)
		ys, _ := rec.Quantity("ys")
		assert.Equal(t, 55.0, ys.Magnitude())
		assert.Equal(t, "ksi", ys.Unit().Symbol)
	})

	t.Run("lookup miss", func(t *testing.T) {
		_, err := l.Lookup(ds, record.SI, "9999", "As-rolled")
		assert.ErrorIs(t, err, table.ErrNotFound)
	})

	t.Run("wrong key count", func(t *testing.T) {
		_, err := l.Lookup(ds, record.SI, "1015")
		assert.Error(t, err)
	})
}

func TestUnifiedThread(t *testing.T) {
	cat := units.StandardCatalog()
	l := &Loader{Catalog: cat}
	ds, err := ByName("unified-thread")
	require.NoError(t, err)
	reg, err := l.Registry(ds, record.Imperial)
	require.NoError(t, err)

	t.Run("non-breaking space in size", func(t *testing.T) {
		rec, err := reg.Get("1-1-8-7-unc_2a")
		require.NoError(t, err)
		tpi, _ := rec.Scalar("tpi")
		assert.Equal(t, 7.0, tpi)
	})

	t.Run("fractional thread counts", func(t *testing.T) {
		for _, name := range []string{"2-4-1-2-unc_2a", "2-1-4-4-1-2-unc_2a"} {
			rec, err := reg.Get(name)
			require.NoError(t, err, name)
			tpi, _ := rec.Scalar("threads_per_inch")
			assert.Equal(t, 4.5, tpi)
			p, _ := rec.Quantity("pitch")
			assert.InDelta(t, 1/4.5, p.Magnitude(), 1e-12)
		}
	})

	t.Run("missing allowance is optional", func(t *testing.T) {
		rec, err := reg.Get("1-3-16-16-un_3a")
		require.NoError(t, err)
		assert.False(t, rec.Has("allowance"))
	})

	t.Run("si pitch in millimetres", func(t *testing.T) {
		rec, err := l.Lookup(ds, record.SI, "1/4-20 UNC", "2A")
		require.NoError(t, err)
		p, _ := rec.Quantity("pitch")
		assert.Equal(t, "mm", p.Unit().Symbol)
		assert.InDelta(t, 1.27, p.Magnitude(), 1e-9)
	})
}

func TestParseThreadsPerInch(t *testing.T) {
	for raw, want := range map[string]float64{"20": 20, "4 1/2": 4.5, "4\u00a01/2": 4.5, "4½": 4.5, " 13 ": 13} {
		got, err := ParseThreadsPerInch(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	for _, raw := range []string{"4 3/4", "4¾", "twenty", "0", "-8"} {
		_, err := ParseThreadsPerInch(raw)
		assert.Error(t, err, raw)
	}
}

func TestUnifiedThread_MalformedPitch(t *testing.T) {
	dir := t.TempDir()
	csv := "size,fit_class,pitch,allowance,major_dia_max,major_dia_min,pitch_dia_max,pitch_dia_min,minor_dia_max\n" +
		"3-4 3/4 UNC,2A,4 3/4,0.003,2.99,2.96,2.85,2.84,2.72\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unified-thread.csv"), []byte(csv), 0o644))

	ds, _ := ByName("unified-thread")
	_, err := (&Loader{Dir: dir}).Registry(ds, record.Imperial)
	require.Error(t, err)
	assert.ErrorIs(t, err, record.ErrMalformedKey)
	assert.Contains(t, err.Error(), "4 3/4")
}

func TestLoader_YAMLOverride(t *testing.T) {
	dir := t.TempDir()
	src := `
- metal: Unobtainium
  e_gpa: 410
  g_gpa: 160
  rho: 19.3
  nu: 0.28
  e_mpsi: 59.5
  g_mpsi: 23.2
  rho_lbin3: 0.697
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base-metal.yaml"), []byte(src), 0o644))

	ds, _ := ByName("base-metal")
	reg, err := (&Loader{Dir: dir}).Registry(ds, record.SI)
	require.NoError(t, err)
	assert.Equal(t, []string{"unobtainium"}, reg.Names())

	rec, _ := reg.Get("unobtainium")
	e, ok := rec.Quantity("modulus_elasticity")
	require.True(t, ok)
	assert.Equal(t, 410.0, e.Magnitude())
}

func TestLoader_SQLite(t *testing.T) {
	file := filepath.Join(t.TempDir(), "props.db")
	l := &Loader{}
	ds, _ := ByName("wide-flange")
	require.NoError(t, l.Export(ds, file))

	sl := &Loader{SQLite: file}
	rec, err := sl.Lookup(ds, record.Imperial, "W12X26")
	require.NoError(t, err)
	ix, _ := rec.Quantity("ix")
	assert.Equal(t, 204.0, ix.Magnitude())

	t.Run("datasets absent from the file fall back to built-in data", func(t *testing.T) {
		steel, _ := ByName("carbon-steel")
		reg, err := sl.Registry(steel, record.SI)
		require.NoError(t, err)
		assert.Equal(t, 18, reg.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := (&Loader{SQLite: filepath.Join(t.TempDir(), "nope.db")}).Table(ds)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestByName_Unknown(t *testing.T) {
	_, err := ByName("unobtainium")
	assert.ErrorIs(t, err, ErrUnknownDataset)
}
