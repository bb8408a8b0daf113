// Package dataset ships the built-in engineering property tables and
// resolves each one to a table, a single record or a full registry.
package dataset

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/alexiusacademia/gomech/internal/record"
	"github.com/alexiusacademia/gomech/internal/registry"
	"github.com/alexiusacademia/gomech/internal/table"
	"github.com/alexiusacademia/gomech/internal/table/sqlite"
	"github.com/alexiusacademia/gomech/internal/units"
	"github.com/charmbracelet/log"
)

//go:embed data/*.csv
var dataFS embed.FS

// ErrUnknownDataset is returned for a dataset name that is not built in.
var ErrUnknownDataset = errors.New("unknown dataset")

// Dataset is one built-in property table and the schema its rows follow.
type Dataset struct {
	Name        string
	Description string
	Schema      *record.Schema
}

// TableName is the dataset name as a SQL identifier.
func (d Dataset) TableName() string {
	return strings.ReplaceAll(d.Name, "-", "_")
}

var all = []Dataset{
	{"carbon-steel", "Plain carbon steels by AISI number and heat treatment", carbonSteel},
	{"stainless-steel", "Wrought stainless steels", stainlessSteel},
	{"base-metal", "Elastic constants and densities of common metals", baseMetal},
	{"polymer", "Engineering thermoplastics", polymer},
	{"unified-thread", "Unified inch screw threads by size and fit class", unifiedThread},
	{"metric-thread", "ISO metric screw threads", metricThread},
	{"sae-grade", "SAE bolt grades", saeGrade},
	{"metric-class", "Metric bolt property classes", metricClass},
	{"wide-flange", "AISC wide-flange beam shapes", wideFlange},
}

// All returns every built-in dataset.
func All() []Dataset {
	out := make([]Dataset, len(all))
	copy(out, all)
	return out
}

// ByName returns the built-in dataset called name.
func ByName(name string) (Dataset, error) {
	for _, d := range all {
		if d.Name == name {
			return d, nil
		}
	}
	return Dataset{}, fmt.Errorf("%w %q", ErrUnknownDataset, name)
}

// Loader resolves datasets to tables. A file named after the dataset in Dir
// (.csv, .yaml or .yml) takes precedence, then a table in the SQLite file,
// then the embedded data.
type Loader struct {
	Dir     string
	SQLite  string
	Catalog *units.Catalog
	Logger  *log.Logger
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.New(io.Discard)
	}
	return l.Logger
}

func (l *Loader) catalog() *units.Catalog {
	if l.Catalog == nil {
		return units.StandardCatalog()
	}
	return l.Catalog
}

// Table opens the table backing ds.
func (l *Loader) Table(ds Dataset) (table.Table, error) {
	if l.Dir != "" {
		fsys := os.DirFS(l.Dir)
		for _, ext := range []string{".csv", ".yaml", ".yml"} {
			name := ds.Name + ext
			if _, err := fs.Stat(fsys, name); err != nil {
				continue
			}
			l.logger().Debug("loading table", "dataset", ds.Name, "source", path.Join(l.Dir, name))
			if ext == ".csv" {
				return table.OpenCSV(fsys, name)
			}
			return table.OpenYAML(fsys, name)
		}
	}
	if l.SQLite != "" {
		if _, err := os.Stat(l.SQLite); err != nil {
			return nil, fmt.Errorf("sqlite data file: %w", err)
		}
		t, err := sqlite.Load(l.SQLite, ds.TableName())
		switch {
		case err == nil:
			l.logger().Debug("loading table", "dataset", ds.Name, "source", l.SQLite)
			return t, nil
		case !errors.Is(err, table.ErrNotFound):
			return nil, err
		}
		l.logger().Debug("table not in sqlite file, using built-in data", "dataset", ds.Name, "file", l.SQLite)
	}
	l.logger().Debug("loading table", "dataset", ds.Name, "source", "embedded")
	return table.OpenCSV(dataFS, "data/"+ds.Name+".csv")
}

// Lookup builds the single record of ds whose key columns equal key, in
// schema key order.
func (l *Loader) Lookup(ds Dataset, sys record.UnitSystem, key ...string) (*record.Record, error) {
	if len(key) != len(ds.Schema.Keys) {
		return nil, fmt.Errorf("%s: want %d key values (%s), got %d",
			ds.Name, len(ds.Schema.Keys), strings.Join(ds.Schema.Keys, ", "), len(key))
	}
	t, err := l.Table(ds)
	if err != nil {
		return nil, err
	}
	w := make(table.Where, len(key))
	for i, col := range ds.Schema.Keys {
		w[col] = key[i]
	}
	row, err := t.Lookup(w)
	if err != nil {
		return nil, err
	}
	return record.Build(ds.Schema, row, sys, l.catalog())
}

// Registry builds the full registry of ds.
func (l *Loader) Registry(ds Dataset, sys record.UnitSystem) (*registry.Registry, error) {
	t, err := l.Table(ds)
	if err != nil {
		return nil, err
	}
	return registry.Build(t, ds.Schema, sys, l.catalog(), registry.WithLogger(l.logger()))
}

// Export copies the table backing ds into the SQLite file, creating it if
// needed.
func (l *Loader) Export(ds Dataset, file string) error {
	t, err := l.Table(ds)
	if err != nil {
		return err
	}
	if err := sqlite.Export(file, ds.TableName(), t); err != nil {
		return fmt.Errorf("export %s: %w", ds.Name, err)
	}
	l.logger().Info("exported dataset", "dataset", ds.Name, "file", file, "table", ds.TableName())
	return nil
}
