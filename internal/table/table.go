// Package table provides read-only tabular sources of engineering property
// data: one row per entity, one string cell per column.
package table

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Row maps column names to raw cell text. Empty cells are treated as absent.
type Row map[string]string

// Get returns the trimmed cell for col and whether it holds a value.
func (r Row) Get(col string) (string, bool) {
	v, ok := r[col]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// Where is a set of column equality predicates.
type Where map[string]string

// String renders the predicate in column order, e.g. "aisi=1015, treatment=as-rolled".
func (w Where) String() string {
	parts := make([]string, 0, len(w))
	for _, k := range slices.Sorted(maps.Keys(w)) {
		parts = append(parts, k+"="+w[k])
	}
	return strings.Join(parts, ", ")
}

// NotFoundError reports a lookup with no matching row.
type NotFoundError struct {
	Table string
	Where Where
	// Column is set when the predicate names a column the table lacks.
	Column string
}

func (e *NotFoundError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("table %s: no column %q", e.Table, e.Column)
	}
	return fmt.Sprintf("table %s: no row where %s", e.Table, e.Where)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Table is a read-only source of rows.
type Table interface {
	// Name identifies the table in errors and logs.
	Name() string
	// Columns lists the column names in source order.
	Columns() []string
	// Rows returns every row in source order.
	Rows() ([]Row, error)
	// Lookup returns the first row, in source order, whose cells equal
	// every predicate value.
	Lookup(w Where) (Row, error)
}

// Memory is a Table held entirely in memory. It is safe for concurrent
// readers.
type Memory struct {
	name    string
	columns []string
	rows    []Row
}

// NewMemory copies columns and rows into a new in-memory table.
func NewMemory(name string, columns []string, rows []Row) *Memory {
	m := &Memory{name: name, columns: slices.Clone(columns), rows: make([]Row, len(rows))}
	for i, r := range rows {
		m.rows[i] = maps.Clone(r)
	}
	return m
}

func (m *Memory) Name() string { return m.name }

func (m *Memory) Columns() []string { return slices.Clone(m.columns) }

// Rows returns copies of the stored rows.
func (m *Memory) Rows() ([]Row, error) {
	out := make([]Row, len(m.rows))
	for i, r := range m.rows {
		out[i] = maps.Clone(r)
	}
	return out, nil
}

func (m *Memory) Lookup(w Where) (Row, error) {
	for col := range w {
		if !slices.Contains(m.columns, col) {
			return nil, &NotFoundError{Table: m.name, Where: w, Column: col}
		}
	}
	for _, r := range m.rows {
		if matches(r, w) {
			return maps.Clone(r), nil
		}
	}
	return nil, &NotFoundError{Table: m.name, Where: w}
}

func matches(r Row, w Where) bool {
	for col, want := range w {
		got, _ := r.Get(col)
		if got != strings.TrimSpace(want) {
			return false
		}
	}
	return true
}
