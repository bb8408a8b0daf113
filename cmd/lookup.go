package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/dataset"
	"github.com/alexiusacademia/gomech/internal/record"
)

var (
	lookupByName    bool
	lookupPrecision int
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <dataset> <key...>",
	Short: "Show the properties of one dataset entry",
	Long: `Look up one entry by its key column values, in key order, or by its
registry name with --name.

Quantities are shown in the selected unit system (--system).

Examples:
  gomech lookup carbon-steel 1020 Normalized
  gomech lookup unified-thread "1/4-20 UNC" 2A --system imperial
  gomech lookup wide-flange --name w8x31`,
	Args: cobra.MinimumNArgs(2),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().BoolVarP(&lookupByName, "name", "n", false, "treat the second argument as a registry name")
	lookupCmd.Flags().IntVarP(&lookupPrecision, "precision", "p", 3, "decimal places")
}

func runLookup(cmd *cobra.Command, args []string) error {
	ds, err := dataset.ByName(args[0])
	if err != nil {
		return err
	}

	var rec *record.Record
	if lookupByName {
		reg, err := loader.Registry(ds, system)
		if err != nil {
			return err
		}
		if rec, err = reg.Get(args[1]); err != nil {
			return err
		}
	} else if rec, err = loader.Lookup(ds, system, args[1:]...); err != nil {
		return err
	}

	printRecord(rec, ds.Schema.Keys, lookupPrecision)
	return nil
}

func printRecord(rec *record.Record, keyColumns []string, prec int) {
	printHeader(strings.ToUpper(rec.Category()) + " - " + rec.Name())

	printSection("KEY")
	w := newTabWriter()
	for i, k := range rec.Key() {
		fmt.Fprintf(w, "  %s:\t%s\n", keyColumns[i], k)
	}
	w.Flush()
	fmt.Fprintln(out)

	printSection(fmt.Sprintf("PROPERTIES (%s)", rec.System()))
	w = newTabWriter()
	for _, f := range rec.Fields() {
		fmt.Fprintf(w, "  %s:\t%s\n", f, rec.Format(f, prec))
	}
	w.Flush()
	fmt.Fprintln(out)
}
