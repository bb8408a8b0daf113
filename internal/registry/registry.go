// Package registry holds every record of one dataset category addressable
// by derived name.
package registry

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"

	"github.com/alexiusacademia/gomech/internal/record"
	"github.com/alexiusacademia/gomech/internal/table"
	"github.com/alexiusacademia/gomech/internal/units"
	"github.com/charmbracelet/log"
)

var (
	// ErrNotFound is the table package's sentinel so a missed name and a
	// missed row read the same to callers.
	ErrNotFound             = table.ErrNotFound
	ErrDuplicateKey         = errors.New("duplicate key")
	ErrDuplicateDerivedName = errors.New("duplicate derived name")
)

// NotFoundError reports a name absent from the registry.
type NotFoundError struct {
	Category string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no entry named %q", e.Category, e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateError reports a name collision, either while building from a
// table or on AddCustom.
type DuplicateError struct {
	Category string
	Name     string
	// Row is the 1-based table row that collided; zero for AddCustom.
	Row int
	// First is the 1-based row that first claimed the name.
	First int
}

func (e *DuplicateError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: row %d derives name %q already taken by row %d", e.Category, e.Row, e.Name, e.First)
	}
	return fmt.Sprintf("%s: %q already registered", e.Category, e.Name)
}

func (e *DuplicateError) Is(target error) bool {
	if e.Row > 0 {
		return target == ErrDuplicateDerivedName
	}
	return target == ErrDuplicateKey
}

// Registry maps derived names to records in insertion order. It is not safe
// for concurrent AddCustom calls.
type Registry struct {
	category string
	system   record.UnitSystem
	names    []string
	entries  map[string]*record.Record
}

type options struct {
	logger *log.Logger
}

// Option configures Build.
type Option func(*options)

// WithLogger sets the logger used to report build progress.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Build creates a registry from every row of t. Any failing row fails the
// whole build.
func Build(t table.Table, schema *record.Schema, sys record.UnitSystem, cat *units.Catalog, opts ...Option) (*Registry, error) {
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	if !sys.Valid() {
		return nil, &record.InvalidUnitSystemError{Value: strconv.Itoa(int(sys))}
	}

	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	r := &Registry{
		category: schema.Category,
		system:   sys,
		names:    make([]string, 0, len(rows)),
		entries:  make(map[string]*record.Record, len(rows)),
	}
	first := make(map[string]int, len(rows))
	for i, row := range rows {
		rec, err := record.Build(schema, row, sys, cat)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", t.Name(), i+1, err)
		}
		name := rec.Name()
		if prev, ok := first[name]; ok {
			return nil, &DuplicateError{Category: schema.Category, Name: name, Row: i + 1, First: prev}
		}
		first[name] = i + 1
		r.names = append(r.names, name)
		r.entries[name] = rec
	}
	o.logger.Debug("registry built", "category", schema.Category, "system", sys, "table", t.Name(), "entries", len(r.names))
	return r, nil
}

// Category is the dataset category of every entry.
func (r *Registry) Category() string { return r.category }

// System is the unit system the registry was built in.
func (r *Registry) System() record.UnitSystem { return r.system }

// Get returns the record registered under name.
func (r *Registry) Get(name string) (*record.Record, error) {
	rec, ok := r.entries[name]
	if !ok {
		return nil, &NotFoundError{Category: r.category, Name: name}
	}
	return rec, nil
}

// Names lists entry names in insertion order.
func (r *Registry) Names() []string { return slices.Clone(r.names) }

// Len is the number of entries.
func (r *Registry) Len() int { return len(r.names) }

// All yields entries in insertion order.
func (r *Registry) All() iter.Seq2[string, *record.Record] {
	return func(yield func(string, *record.Record) bool) {
		for _, n := range r.names {
			if !yield(n, r.entries[n]) {
				return
			}
		}
	}
}

// AddCustom registers rec under name. An existing name is left untouched
// and reported as ErrDuplicateKey.
func (r *Registry) AddCustom(name string, rec *record.Record) error {
	if name == "" {
		return fmt.Errorf("%s: custom entry needs a name", r.category)
	}
	if rec == nil {
		return fmt.Errorf("%s: custom entry %q has no record", r.category, name)
	}
	if _, ok := r.entries[name]; ok {
		return &DuplicateError{Category: r.category, Name: name}
	}
	r.names = append(r.names, name)
	r.entries[name] = rec
	return nil
}
