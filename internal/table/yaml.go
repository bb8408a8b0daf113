package table

import (
	"fmt"
	"io"
	"io/fs"
	"slices"

	"gopkg.in/yaml.v3"
)

// ReadYAML parses a YAML sequence of mappings into a Memory table:
//
//	- metric: unobtainium
//	  e_gpa: 410
//	  rho: 19.3
//
// Columns are collected in first-seen key order. Scalar values are kept as
// their source text.
func ReadYAML(name string, r io.Reader) (*Memory, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("table %s: decode yaml: %w", name, err)
	}
	seq := &doc
	if seq.Kind == yaml.DocumentNode && len(seq.Content) > 0 {
		seq = seq.Content[0]
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("table %s: line %d: expected a list of rows", name, seq.Line)
	}

	var columns []string
	rows := make([]Row, 0, len(seq.Content))
	for _, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("table %s: line %d: row is not a mapping", name, item.Line)
		}
		row := make(Row, len(item.Content)/2)
		for i := 0; i+1 < len(item.Content); i += 2 {
			k, v := item.Content[i], item.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("table %s: line %d: column %q must be a scalar", name, v.Line, k.Value)
			}
			if !slices.Contains(columns, k.Value) {
				columns = append(columns, k.Value)
			}
			if v.Tag != "!!null" {
				row[k.Value] = v.Value
			}
		}
		rows = append(rows, row)
	}
	return &Memory{name: name, columns: columns, rows: rows}, nil
}

// OpenYAML reads a YAML table file from fsys.
func OpenYAML(fsys fs.FS, name string) (*Memory, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()
	return ReadYAML(name, f)
}
