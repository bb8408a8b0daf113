package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// ReadCSV parses a header-first CSV stream into a Memory table. Lines
// starting with '#' are comments.
func ReadCSV(name string, r io.Reader) (*Memory, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("table %s: empty csv", name)
	}
	if err != nil {
		return nil, fmt.Errorf("table %s: read header: %w", name, err)
	}
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = rec[i]
		}
		rows = append(rows, row)
	}
	return &Memory{name: name, columns: columns, rows: rows}, nil
}

// OpenCSV reads a CSV file from fsys. The file is closed before returning,
// whether or not parsing succeeded.
func OpenCSV(fsys fs.FS, name string) (*Memory, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()
	return ReadCSV(name, f)
}
