// Package sqlite serves property tables stored in a SQLite database file.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/alexiusacademia/gomech/internal/table"
	_ "modernc.org/sqlite"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func quote(ident string) (string, error) {
	if !identRe.MatchString(ident) {
		return "", fmt.Errorf("invalid identifier %q", ident)
	}
	return `"` + ident + `"`, nil
}

// Table is a property table backed by one SQLite table. Every column is
// read as text.
type Table struct {
	db      *sql.DB
	name    string
	columns []string
}

var _ table.Table = (*Table)(nil)

func openDB(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	db, err := sql.Open("sqlite", filepath.Clean(path)+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// Open opens the named table in the SQLite file at path.
func Open(path, name string) (*Table, error) {
	if _, err := quote(name); err != nil {
		return nil, err
	}
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	cols, err := tableColumns(db, name)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Table{db: db, name: name, columns: cols}, nil
}

func tableColumns(db *sql.DB, name string) ([]string, error) {
	rows, err := db.Query(`SELECT name FROM pragma_table_info(?)`, name)
	if err != nil {
		return nil, fmt.Errorf("table %s: columns: %w", name, err)
	}
	defer rows.Close()
	var cols []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("table %s: columns: %w", name, err)
		}
		if _, err := quote(c); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("table %s: columns: %w", name, err)
	}
	if len(cols) == 0 {
		return nil, &table.NotFoundError{Table: name, Column: "*"}
	}
	return cols, nil
}

// Close closes the database handle.
func (t *Table) Close() error {
	if t == nil || t.db == nil {
		return nil
	}
	return t.db.Close()
}

func (t *Table) Name() string { return t.name }

func (t *Table) Columns() []string { return slices.Clone(t.columns) }

func (t *Table) selectList() string {
	quoted := make([]string, len(t.columns))
	for i, c := range t.columns {
		quoted[i] = `CAST("` + c + `" AS TEXT)`
	}
	return strings.Join(quoted, ", ")
}

// Rows reads every row in rowid order.
func (t *Table) Rows() ([]table.Row, error) {
	rs, err := t.db.Query(`SELECT ` + t.selectList() + ` FROM "` + t.name + `" ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("table %s: query: %w", t.name, err)
	}
	defer rs.Close()
	var out []table.Row
	for rs.Next() {
		r, err := t.scan(rs)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("table %s: query: %w", t.name, err)
	}
	return out, nil
}

// Lookup runs a parameterised equality query and returns the first row by
// rowid.
func (t *Table) Lookup(w table.Where) (table.Row, error) {
	var (
		conds []string
		args  []any
	)
	for _, col := range slices.Sorted(maps.Keys(w)) {
		if !slices.Contains(t.columns, col) {
			return nil, &table.NotFoundError{Table: t.name, Where: w, Column: col}
		}
		conds = append(conds, `TRIM(CAST("`+col+`" AS TEXT)) = ?`)
		args = append(args, strings.TrimSpace(w[col]))
	}
	q := `SELECT ` + t.selectList() + ` FROM "` + t.name + `"`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	q += ` ORDER BY rowid LIMIT 1`

	r, err := t.scan(t.db.QueryRow(q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &table.NotFoundError{Table: t.name, Where: w}
	}
	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func (t *Table) scan(s scanner) (table.Row, error) {
	cells := make([]sql.NullString, len(t.columns))
	dest := make([]any, len(cells))
	for i := range cells {
		dest[i] = &cells[i]
	}
	if err := s.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("table %s: scan: %w", t.name, err)
	}
	r := make(table.Row, len(t.columns))
	for i, c := range t.columns {
		if cells[i].Valid {
			r[c] = cells[i].String
		}
	}
	return r, nil
}

// Load reads the named table fully into memory and closes the database.
func Load(path, name string) (*table.Memory, error) {
	t, err := Open(path, name)
	if err != nil {
		return nil, err
	}
	defer t.Close()
	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	return table.NewMemory(name, t.columns, rows), nil
}

// Export writes src into the SQLite file at path as table name, replacing
// any existing table of that name. All columns are stored as TEXT.
func Export(path, name string, src table.Table) error {
	qname, err := quote(name)
	if err != nil {
		return err
	}
	cols := src.Columns()
	qcols := make([]string, len(cols))
	for i, c := range cols {
		if qcols[i], err = quote(c); err != nil {
			return fmt.Errorf("table %s: %w", name, err)
		}
	}
	rows, err := src.Rows()
	if err != nil {
		return err
	}

	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DROP TABLE IF EXISTS ` + qname); err != nil {
		return fmt.Errorf("drop %s: %w", name, err)
	}
	defs := make([]string, len(qcols))
	for i, c := range qcols {
		defs[i] = c + " TEXT"
	}
	if _, err := tx.Exec(`CREATE TABLE ` + qname + ` (` + strings.Join(defs, ", ") + `)`); err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	stmt, err := tx.Prepare(`INSERT INTO ` + qname + ` (` + strings.Join(qcols, ", ") +
		`) VALUES (` + strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ") + `)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for i, r := range rows {
		args := make([]any, len(cols))
		for j, c := range cols {
			if v, ok := r.Get(c); ok {
				args[j] = v
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert row %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}
