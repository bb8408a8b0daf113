package record

import "slices"

// Kind is the value type a field holds.
type Kind int

const (
	KindQuantity Kind = iota
	KindScalar
	KindText
)

// Source says where a quantity comes from in one unit system: the column,
// the unit its raw numbers are expressed in, and optionally the unit the
// record should carry instead.
type Source struct {
	Column string
	Unit   string
	As     string
}

// ParseFunc converts a raw cell into a number. It must fail for anything it
// does not explicitly recognise.
type ParseFunc func(raw string) (float64, error)

// Field declares one attribute of a record.
type Field struct {
	Name string
	Kind Kind
	// Column is the source column for scalar and text fields.
	Column string
	// SI and Imperial are the quantity sources per unit system.
	SI, Imperial Source
	Optional     bool
	// Parse overrides numeric parsing for columns with documented
	// irregular values.
	Parse ParseFunc
	// Aliases are accepted as synonyms of Name by the record accessors.
	Aliases []string
}

func (f Field) source(sys UnitSystem) Source {
	if sys == Imperial {
		return f.Imperial
	}
	return f.SI
}

// column is the cell the field reads in sys.
func (f Field) column(sys UnitSystem) string {
	if f.Kind == KindQuantity {
		return f.source(sys).Column
	}
	return f.Column
}

// Schema describes how rows of one dataset category become records.
type Schema struct {
	Category string
	// NamePrefix is prepended to the first key part of a derived name.
	NamePrefix string
	// Keys are the natural-key columns, in name order.
	Keys   []string
	Fields []Field
}

// Field returns the field declared under name or one of its aliases.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name || slices.Contains(f.Aliases, name) {
			return f, true
		}
	}
	return Field{}, false
}

// Columns lists every column the schema reads in sys, keys first.
func (s *Schema) Columns(sys UnitSystem) []string {
	cols := slices.Clone(s.Keys)
	for _, f := range s.Fields {
		if c := f.column(sys); c != "" && !slices.Contains(cols, c) {
			cols = append(cols, c)
		}
	}
	return cols
}
