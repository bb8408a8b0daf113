package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var convertPrecision int

var convertCmd = &cobra.Command{
	Use:   "convert <quantity> [unit...]",
	Short: "Convert a quantity between units",
	Long: `Convert a quantity to one or more units of the same dimension.

With no target unit the quantity is shown in SI base units together with
every catalog unit of the same dimension.

Examples:
  gomech convert "30 Mpsi" GPa
  gomech convert "250 lbf*ft" N*m kN*m
  gomech convert "68 degF" degC K`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().IntVarP(&convertPrecision, "precision", "p", 4, "decimal places")
}

func runConvert(cmd *cobra.Command, args []string) error {
	q, err := catalog.ParseQuantity(args[0])
	if err != nil {
		return err
	}

	targets := args[1:]
	if len(targets) == 0 {
		// Every compatible unit except aliases of the input's own unit.
		for _, sym := range catalog.Compatible(q.Dim()) {
			if !catalog.MustUnit(sym).Equivalent(q.Unit()) {
				targets = append(targets, sym)
			}
		}
	}

	w := newTabWriter()
	fmt.Fprintf(w, "  %s\t= %s\n", q.Format(convertPrecision), q.Base().Format(convertPrecision))
	for _, t := range targets {
		u, err := catalog.Parse(t)
		if err != nil {
			return err
		}
		c, err := q.To(u)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  \t= %s\n", c.Format(convertPrecision))
	}
	fmt.Fprintf(w, "  dimension:\t%s\n", strings.TrimSpace(q.Dim().String()))
	return w.Flush()
}
