package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gomech/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) string {
	t.Helper()
	src := table.NewMemory("carbon_steel", []string{"aisi", "treatment", "ts_mpa", "reduction_area_pct"}, []table.Row{
		{"aisi": "1015", "treatment": "As-rolled", "ts_mpa": "421", "reduction_area_pct": "61"},
		{"aisi": "1015", "treatment": "Normalized", "ts_mpa": "424"},
		{"aisi": "1020", "treatment": "As-rolled", "ts_mpa": "448", "reduction_area_pct": "59"},
	})
	path := filepath.Join(t.TempDir(), "props.db")
	require.NoError(t, Export(path, "carbon_steel", src))
	return path
}

func TestExportAndOpen(t *testing.T) {
	path := seed(t)

	tbl, err := Open(path, "carbon_steel")
	require.NoError(t, err)
	t.Cleanup(func() { _ = tbl.Close() })

	assert.Equal(t, []string{"aisi", "treatment", "ts_mpa", "reduction_area_pct"}, tbl.Columns())

	rows, err := tbl.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "1015", rows[0]["aisi"])
	_, ok := rows[1].Get("reduction_area_pct")
	assert.False(t, ok, "empty cells are stored as NULL")

	t.Run("lookup", func(t *testing.T) {
		r, err := tbl.Lookup(table.Where{"aisi": "1020", "treatment": "As-rolled"})
		require.NoError(t, err)
		assert.Equal(t, "448", r["ts_mpa"])
	})

	t.Run("no match", func(t *testing.T) {
		_, err := tbl.Lookup(table.Where{"aisi": "9999"})
		assert.ErrorIs(t, err, table.ErrNotFound)
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := tbl.Lookup(table.Where{"grade; DROP TABLE carbon_steel": "1"})
		assert.ErrorIs(t, err, table.ErrNotFound)
	})
}

func TestExport_Replaces(t *testing.T) {
	path := seed(t)
	small := table.NewMemory("carbon_steel", []string{"aisi"}, []table.Row{{"aisi": "1095"}})
	require.NoError(t, Export(path, "carbon_steel", small))

	m, err := Load(path, "carbon_steel")
	require.NoError(t, err)
	rows, err := m.Rows()
	require.NoError(t, err)
	assert.Equal(t, []table.Row{{"aisi": "1095"}}, rows)
}

func TestOpen_Errors(t *testing.T) {
	path := seed(t)

	_, err := Open(path, "bad-name")
	assert.Error(t, err)

	_, err = Open(path, "missing")
	assert.ErrorIs(t, err, table.ErrNotFound)

	_, err = Open("", "carbon_steel")
	assert.Error(t, err)

	err = Export(path, "x", table.NewMemory("x", []string{"bad col"}, nil))
	assert.Error(t, err)
}
