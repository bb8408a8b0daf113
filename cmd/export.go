package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/dataset"
)

var exportFile string

var exportCmd = &cobra.Command{
	Use:   "export [dataset...]",
	Short: "Copy datasets into a SQLite file",
	Long: `Copy one or more datasets, or all of them when none is named, into
tables of a SQLite file. Existing tables of the same name are replaced.

The file can then be edited with any SQLite tool and passed back with
--sqlite (or data.sqlite in the config file) to override the built-in
data.

Examples:
  gomech export -o props.db
  gomech export carbon-steel wide-flange -o props.db`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFile, "output", "o", "", "SQLite file to write [required]")
	exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) error {
	sets := dataset.All()
	if len(args) > 0 {
		sets = sets[:0]
		for _, name := range args {
			ds, err := dataset.ByName(name)
			if err != nil {
				return err
			}
			sets = append(sets, ds)
		}
	}

	var errs []error
	for _, ds := range sets {
		if err := loader.Export(ds, exportFile); err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(out, "  %s %s → %s.%s\n", SuccessStyle.Render("✓"), ds.Name, exportFile, ds.TableName())
	}
	return errors.Join(errs...)
}
