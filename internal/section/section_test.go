package section

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gomech/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cat = units.StandardCatalog()

func q(v float64, u string) units.Quantity { return units.New(v, cat.MustUnit(u)) }

func TestRectangle(t *testing.T) {
	p, err := Rectangle(q(4, "in"), q(2, "in"))
	require.NoError(t, err)

	assert.InDelta(t, 8.0, p.Area.Magnitude(), 1e-12)
	assert.Equal(t, units.Area, p.Area.Dim())
	assert.InDelta(t, 2*64.0/12, p.Ix.Magnitude(), 1e-12)
	assert.Equal(t, units.SecondMoment, p.Ix.Dim())
	assert.InDelta(t, 4/math.Sqrt(12), p.Rx.Magnitude(), 1e-12)
	assert.InDelta(t, 2*16.0/6, p.Sx.Magnitude(), 1e-12)

	t.Run("mixed units follow the height", func(t *testing.T) {
		p, err := Rectangle(q(100, "mm"), q(5, "cm"))
		require.NoError(t, err)
		assert.InDelta(t, 5000.0, p.Area.Magnitude(), 1e-9)
		assert.Equal(t, "mm", p.Height.Unit().Symbol)
	})

	t.Run("non-length rejected", func(t *testing.T) {
		_, err := Rectangle(q(4, "in"), q(2, "lbf"))
		assert.ErrorIs(t, err, units.ErrDimensionMismatch)
	})

	t.Run("zero rejected", func(t *testing.T) {
		_, err := Rectangle(q(0, "in"), q(2, "in"))
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestCircle(t *testing.T) {
	p, err := Circle(q(2, "in"))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, p.Area.Magnitude(), 1e-12)
	assert.InDelta(t, math.Pi/4, p.Ix.Magnitude(), 1e-12)
	assert.InDelta(t, math.Pi/2, p.J.Magnitude(), 1e-12)
	assert.InDelta(t, 0.5, p.Rx.Magnitude(), 1e-12)

	tube, err := HollowCircle(q(2, "in"), q(0, "in"))
	require.NoError(t, err)
	assert.InDelta(t, p.Ix.Magnitude(), tube.Ix.Magnitude(), 1e-12)
	assert.InDelta(t, p.Q.Magnitude(), tube.Q.Magnitude(), 1e-12)

	_, err = HollowCircle(q(2, "in"), q(60, "mm"))
	assert.Error(t, err)
}

func TestPolygonMatchesRectangle(t *testing.T) {
	for _, name := range []string{"counter-clockwise", "clockwise"} {
		t.Run(name, func(t *testing.T) {
			vs := []Point{{0, 0}, {2, 0}, {2, 4}, {0, 4}}
			if name == "clockwise" {
				vs = []Point{{0, 0}, {0, 4}, {2, 4}, {2, 0}}
			}
			poly := &Polygon{Name: "r", Unit: "in", Vertices: vs}
			got, err := poly.Properties(cat)
			require.NoError(t, err)
			want, err := Rectangle(q(4, "in"), q(2, "in"))
			require.NoError(t, err)

			assert.InDelta(t, want.Area.Magnitude(), got.Area.Magnitude(), 1e-12)
			assert.InDelta(t, 1.0, got.CentroidX.Magnitude(), 1e-12)
			assert.InDelta(t, 2.0, got.CentroidY.Magnitude(), 1e-12)
			assert.InDelta(t, want.Ix.Magnitude(), got.Ix.Magnitude(), 1e-9)
			assert.InDelta(t, want.Iy.Magnitude(), got.Iy.Magnitude(), 1e-9)
			assert.InDelta(t, want.Sx.Magnitude(), got.Sx.Magnitude(), 1e-9)
			assert.InDelta(t, want.Q.Magnitude(), got.Q.Magnitude(), 1e-9)
			assert.InDelta(t, 2.0, got.B.Magnitude(), 1e-12)
		})
	}
}

func TestPolygonTee(t *testing.T) {
	// 6x1 flange over a 1x5 stem, overall depth 6.
	tee := &Polygon{Unit: "in", Vertices: []Point{
		{2.5, 0}, {3.5, 0}, {3.5, 5}, {6, 5}, {6, 6}, {0, 6}, {0, 5}, {2.5, 5},
	}}
	p, err := tee.Properties(cat)
	require.NoError(t, err)

	assert.InDelta(t, 11.0, p.Area.Magnitude(), 1e-12)
	cy := (6*5.5 + 5*2.5) / 11
	assert.InDelta(t, cy, p.CentroidY.Magnitude(), 1e-12)
	ix := 6.0/12 + 6*math.Pow(5.5-cy, 2) + 125.0/12 + 5*math.Pow(2.5-cy, 2)
	assert.InDelta(t, ix, p.Ix.Magnitude(), 1e-9)
	assert.InDelta(t, cy, p.C.Magnitude(), 1e-12)
	assert.InDelta(t, 1.0, p.B.Magnitude(), 1e-12)
	assert.InDelta(t, 6.0, tee.WidthAtDepth(0.5), 1e-12)
}

func TestPolygonValidation(t *testing.T) {
	tests := []struct {
		name string
		poly Polygon
	}{
		{"too few vertices", Polygon{Unit: "mm", Vertices: []Point{{0, 0}, {1, 0}}}},
		{"no unit", Polygon{Vertices: []Point{{0, 0}, {1, 0}, {0, 1}}}},
		{"coincident", Polygon{Unit: "mm", Vertices: []Point{{0, 0}, {1, 0}, {0, 0}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.poly.Properties(cat)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}

	t.Run("unit must be a length", func(t *testing.T) {
		poly := Polygon{Unit: "kg", Vertices: []Point{{0, 0}, {1, 0}, {0, 1}}}
		_, err := poly.Properties(cat)
		assert.ErrorIs(t, err, units.ErrDimensionMismatch)
	})

	t.Run("collinear", func(t *testing.T) {
		poly := Polygon{Unit: "mm", Vertices: []Point{{0, 0}, {1, 0}, {2, 0}}}
		_, err := poly.Properties(cat)
		assert.Error(t, err)
	})
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.json")
	src := `{"name":"tri","unit":"mm","vertices":[{"x":0,"y":0},{"x":30,"y":0},{"x":0,"y":30}]}`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	poly, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tri", poly.Name)
	p, err := poly.Properties(cat)
	require.NoError(t, err)
	assert.InDelta(t, 450.0, p.Area.Magnitude(), 1e-9)
	assert.InDelta(t, 10.0, p.CentroidY.Magnitude(), 1e-9)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMaxShearStress(t *testing.T) {
	p, err := Rectangle(q(4, "in"), q(2, "in"))
	require.NoError(t, err)

	tau, err := p.MaxShearStress(q(800, "lbf"))
	require.NoError(t, err)
	psi, err := tau.In(cat.MustUnit("psi"))
	require.NoError(t, err)
	// 1.5 V/A for a rectangle.
	assert.InDelta(t, 150.0, psi, 1e-9)

	_, err = p.MaxShearStress(q(800, "psi"))
	assert.ErrorIs(t, err, units.ErrDimensionMismatch)
}
