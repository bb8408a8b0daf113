// Package record turns raw property-table rows into typed, unit-attached
// entity records according to a per-category schema.
package record

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/alexiusacademia/gomech/internal/table"
	"github.com/alexiusacademia/gomech/internal/units"
	"golang.org/x/text/unicode/norm"
)

// Record is one immutable entity built from a table row.
type Record struct {
	schema *Schema
	system UnitSystem
	name   string
	key    []string

	order      []string
	quantities map[string]units.Quantity
	scalars    map[string]float64
	texts      map[string]string
}

// Build converts row into a record. It either returns a complete record
// or an error; nothing is partially populated.
func Build(schema *Schema, row table.Row, sys UnitSystem, cat *units.Catalog) (*Record, error) {
	if !sys.Valid() {
		return nil, &InvalidUnitSystemError{Value: strconv.Itoa(int(sys))}
	}
	name, err := DeriveName(schema, row)
	if err != nil {
		return nil, err
	}
	rec := &Record{
		schema:     schema,
		system:     sys,
		name:       name,
		quantities: make(map[string]units.Quantity),
		scalars:    make(map[string]float64),
		texts:      make(map[string]string),
	}
	for _, k := range schema.Keys {
		v, _ := row.Get(k)
		rec.key = append(rec.key, v)
	}

	for _, f := range schema.Fields {
		col := f.column(sys)
		if col == "" {
			return nil, fmt.Errorf("%s: field %s has no %s source", schema.Category, f.Name, sys)
		}
		raw, ok := row.Get(col)
		if !ok {
			if f.Optional {
				continue
			}
			return nil, &MissingColumnError{Category: schema.Category, Column: col, Field: f.Name}
		}

		switch f.Kind {
		case KindText:
			rec.texts[f.Name] = raw
		case KindScalar:
			v, err := parseNumber(f, raw)
			if err != nil {
				return nil, &MalformedKeyError{Category: schema.Category, Column: col, Value: raw, Err: err}
			}
			rec.scalars[f.Name] = v
		case KindQuantity:
			v, err := parseNumber(f, raw)
			if err != nil {
				return nil, &MalformedKeyError{Category: schema.Category, Column: col, Value: raw, Err: err}
			}
			q, err := attach(cat, v, f.source(sys))
			if err != nil {
				return nil, fmt.Errorf("%s: field %s: %w", schema.Category, f.Name, err)
			}
			rec.quantities[f.Name] = q
		}
		rec.order = append(rec.order, f.Name)
	}
	return rec, nil
}

func parseNumber(f Field, raw string) (float64, error) {
	if f.Parse != nil {
		return f.Parse(raw)
	}
	return strconv.ParseFloat(raw, 64)
}

// attach pairs a raw number with the source unit, then converts it to the
// record unit when one is declared.
func attach(cat *units.Catalog, v float64, src Source) (units.Quantity, error) {
	u, err := cat.Parse(src.Unit)
	if err != nil {
		return units.Quantity{}, err
	}
	q := units.New(v, u)
	if src.As == "" {
		return q, nil
	}
	as, err := cat.Parse(src.As)
	if err != nil {
		return units.Quantity{}, err
	}
	return q.To(as)
}

// Category is the dataset category the record belongs to.
func (r *Record) Category() string { return r.schema.Category }

// Name is the record's derived name, e.g. "aisi1015_as-rolled".
func (r *Record) Name() string { return r.name }

// System is the unit system the record was built in.
func (r *Record) System() UnitSystem { return r.system }

// Key returns the raw natural-key cells.
func (r *Record) Key() []string { return slices.Clone(r.key) }

func (r *Record) canonical(name string) string {
	if f, ok := r.schema.Field(name); ok {
		return f.Name
	}
	return name
}

// Quantity returns the named quantity field. Aliases are accepted.
func (r *Record) Quantity(name string) (units.Quantity, bool) {
	q, ok := r.quantities[r.canonical(name)]
	return q, ok
}

// Scalar returns the named dimensionless field.
func (r *Record) Scalar(name string) (float64, bool) {
	v, ok := r.scalars[r.canonical(name)]
	return v, ok
}

// Text returns the named text field.
func (r *Record) Text(name string) (string, bool) {
	v, ok := r.texts[r.canonical(name)]
	return v, ok
}

// Has reports whether the field is present on this record.
func (r *Record) Has(name string) bool {
	return slices.Contains(r.order, r.canonical(name))
}

// Fields lists the present fields in schema order.
func (r *Record) Fields() []string { return slices.Clone(r.order) }

// Format renders a present field for display.
func (r *Record) Format(name string, prec int) string {
	name = r.canonical(name)
	if q, ok := r.quantities[name]; ok {
		return q.Format(prec)
	}
	if v, ok := r.scalars[name]; ok {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return r.texts[name]
}

// DeriveName builds the registry name for row: the schema prefix, then each
// normalised key part joined with "_".
func DeriveName(schema *Schema, row table.Row) (string, error) {
	if len(schema.Keys) == 0 {
		return "", fmt.Errorf("%s: schema has no key columns", schema.Category)
	}
	parts := make([]string, len(schema.Keys))
	for i, col := range schema.Keys {
		raw, ok := row.Get(col)
		if !ok {
			return "", &MissingColumnError{Category: schema.Category, Column: col}
		}
		p := Normalize(raw)
		if p == "" {
			return "", &MalformedKeyError{Category: schema.Category, Column: col, Value: raw}
		}
		parts[i] = p
	}
	return schema.NamePrefix + strings.Join(parts, "_"), nil
}

// Normalize lower-cases s after NFKC normalisation and collapses every run
// of characters other than letters and digits into a single "-".
func Normalize(s string) string {
	s = strings.ToLower(norm.NFKC.String(s))
	var b strings.Builder
	pending := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
