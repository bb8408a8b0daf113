package table

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const steelCSV = `# tensile and yield strengths
aisi,treatment,ts_mpa,ys_mpa
1015,As-rolled,421,314
1015,Normalized,424,324
1020,As-rolled,448,331
1015,As-rolled,999,999
`

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV("carbon-steel", strings.NewReader(steelCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{"aisi", "treatment", "ts_mpa", "ys_mpa"}, tbl.Columns())

	rows, err := tbl.Rows()
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	t.Run("first match wins", func(t *testing.T) {
		r, err := tbl.Lookup(Where{"aisi": "1015", "treatment": "As-rolled"})
		require.NoError(t, err)
		v, ok := r.Get("ts_mpa")
		assert.True(t, ok)
		assert.Equal(t, "421", v)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := tbl.Lookup(Where{"aisi": "9999"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "aisi=9999")
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := tbl.Lookup(Where{"grade": "8"})
		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "grade", nf.Column)
	})

	t.Run("returned rows are copies", func(t *testing.T) {
		r, err := tbl.Lookup(Where{"aisi": "1020"})
		require.NoError(t, err)
		r["ts_mpa"] = "0"
		again, err := tbl.Lookup(Where{"aisi": "1020"})
		require.NoError(t, err)
		assert.Equal(t, "448", again["ts_mpa"])
	})
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ReadCSV("empty", strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadCSV("ragged", strings.NewReader("a,b\n1,2,3\n"))
	assert.Error(t, err)
}

type closeTracker struct {
	fs.File
	closed *bool
}

func (c closeTracker) Close() error {
	*c.closed = true
	return c.File.Close()
}

type trackingFS struct {
	fstest.MapFS
	closed bool
}

func (t *trackingFS) Open(name string) (fs.File, error) {
	f, err := t.MapFS.Open(name)
	if err != nil {
		return nil, err
	}
	return closeTracker{File: f, closed: &t.closed}, nil
}

func TestOpenCSV_ReleasesHandle(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		fsys := &trackingFS{MapFS: fstest.MapFS{"steel.csv": {Data: []byte(steelCSV)}}}
		_, err := OpenCSV(fsys, "steel.csv")
		require.NoError(t, err)
		assert.True(t, fsys.closed)
	})

	t.Run("on parse failure", func(t *testing.T) {
		fsys := &trackingFS{MapFS: fstest.MapFS{"bad.csv": {Data: []byte("a,b\n\"unterminated\n")}}}
		_, err := OpenCSV(fsys, "bad.csv")
		require.Error(t, err)
		assert.True(t, fsys.closed)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := OpenCSV(fstest.MapFS{}, "nope.csv")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestReadYAML(t *testing.T) {
	src := `
- metal: unobtainium
  e_gpa: 410
  rho: 19.3
- metal: handwavium
  e_gpa: 12.5
  nu: ~
  rho: 0.5
`
	tbl, err := ReadYAML("custom", strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"metal", "e_gpa", "rho", "nu"}, tbl.Columns())

	r, err := tbl.Lookup(Where{"metal": "handwavium"})
	require.NoError(t, err)
	assert.Equal(t, "12.5", r["e_gpa"])
	_, ok := r.Get("nu")
	assert.False(t, ok)

	_, err = ReadYAML("bad", strings.NewReader("metal: steel\n"))
	assert.Error(t, err)

	_, err = ReadYAML("nested", strings.NewReader("- metal: [a, b]\n"))
	assert.Error(t, err)
}

func TestWhere_String(t *testing.T) {
	assert.Equal(t, "aisi=1015, treatment=as-rolled", Where{"treatment": "as-rolled", "aisi": "1015"}.String())
}

func TestMemory_CopiesInput(t *testing.T) {
	rows := []Row{{"k": "a"}}
	m := NewMemory("m", []string{"k"}, rows)
	rows[0]["k"] = "b"
	_, err := m.Lookup(Where{"k": "a"})
	assert.NoError(t, err)
}
