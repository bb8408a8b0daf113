package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/dataset"
)

var listCmd = &cobra.Command{
	Use:   "list <dataset>",
	Short: "List the entry names of a dataset",
	Long: `Build the registry of a dataset and list its entry names.

Names are derived from the key columns, lowercased and with separators
collapsed, e.g. "aisi1020_normalized" or "1-4-20-unc_2a".

Examples:
  gomech list carbon-steel
  gomech list unified-thread --system imperial`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ds, err := dataset.ByName(args[0])
	if err != nil {
		return err
	}
	reg, err := loader.Registry(ds, system)
	if err != nil {
		return err
	}
	for _, name := range reg.Names() {
		fmt.Fprintln(out, name)
	}
	logger.Debug("listed registry", "dataset", ds.Name, "entries", reg.Len(), "system", system)
	return nil
}
