package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/design"
	"github.com/alexiusacademia/gomech/internal/diagram"
	"github.com/alexiusacademia/gomech/internal/units"
)

var (
	bearingRating string
	bearingLoad   string
	bearingRadial string
	bearingAxial  string
	bearingX      float64
	bearingY      float64
	bearingThrust bool
	bearingSpeed  string
	bearingKind   string
)

var bearingCmd = &cobra.Command{
	Use:   "bearing",
	Short: "Rolling bearing L10 rating life",
	Long: `Estimate the rating life of a ball or roller bearing.

  L10 = (C / P)^a · 10⁶ revolutions     a = 3 ball, 10/3 roller
  P   = max(X·Fr + Y·Fa, Fr)           equivalent radial load
  Pa  = Fa + Y·Fr                      equivalent axial load (--thrust)

Give either the equivalent load with --load, or the radial and axial
components with their X and Y factors.

Examples:
  gomech bearing --rating "30 kN" --load "3 kN" --speed "1000 rpm"
  gomech bearing -C "5000 lbf" --radial "800 lbf" --axial "300 lbf" --x 0.56 --y 1.5 --kind roller`,
	Args: cobra.NoArgs,
	RunE: runBearing,
}

func init() {
	rootCmd.AddCommand(bearingCmd)

	bearingCmd.Flags().StringVarP(&bearingRating, "rating", "C", "", "basic dynamic load rating [required]")
	bearingCmd.Flags().StringVarP(&bearingLoad, "load", "P", "", "equivalent load")
	bearingCmd.Flags().StringVar(&bearingRadial, "radial", "", "radial load Fr")
	bearingCmd.Flags().StringVar(&bearingAxial, "axial", "0 N", "axial load Fa")
	bearingCmd.Flags().Float64Var(&bearingX, "x", 1, "radial factor X")
	bearingCmd.Flags().Float64Var(&bearingY, "y", 0, "axial factor Y")
	bearingCmd.Flags().BoolVar(&bearingThrust, "thrust", false, "use the equivalent axial load of a thrust bearing")
	bearingCmd.Flags().StringVarP(&bearingSpeed, "speed", "n", "", "shaft speed for life in hours, e.g. \"1000 rpm\"")
	bearingCmd.Flags().StringVarP(&bearingKind, "kind", "k", "ball", "bearing kind: ball or roller")

	bearingCmd.MarkFlagRequired("rating")
	bearingCmd.MarkFlagsOneRequired("load", "radial")
	bearingCmd.MarkFlagsMutuallyExclusive("load", "radial")
}

func runBearing(cmd *cobra.Command, args []string) error {
	kind, err := design.ParseBearingKind(bearingKind)
	if err != nil {
		return err
	}
	c, err := quantityFlag("rating", bearingRating, "N")
	if err != nil {
		return err
	}
	p, err := equivalentLoad()
	if err != nil {
		return err
	}

	printHeader("BEARING LIFE")

	printSection("INPUT DATA")
	w := newTabWriter()
	fmt.Fprintf(w, "  Kind:\t%s (a = %.4g)\n", kind, kind.Exponent())
	fmt.Fprintf(w, "  Dynamic rating (C):\t%s\n", c.Format(2))
	fmt.Fprintf(w, "  Equivalent load (P):\t%s\n", p.Format(2))
	w.Flush()
	fmt.Fprintln(out)

	revs, err := design.BearingLifeRevs(c, p, kind)
	if err != nil {
		return err
	}
	lines := []string{fmt.Sprintf("L10 = %.4g rev", revs)}
	if bearingSpeed != "" {
		n, err := quantityFlag("speed", bearingSpeed, "rpm")
		if err != nil {
			return err
		}
		hours, err := design.BearingLifeHours(c, p, n, kind)
		if err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("L10h = %s at %s", hours.Format(0), n.Format(0)))
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("RATING LIFE", lines))
	fmt.Fprintln(out)
	return nil
}

func equivalentLoad() (units.Quantity, error) {
	if bearingLoad != "" {
		return quantityFlag("load", bearingLoad, "N")
	}
	fr, err := quantityFlag("radial", bearingRadial, "N")
	if err != nil {
		return units.Quantity{}, err
	}
	fa, err := quantityFlag("axial", bearingAxial, fr.Unit().Symbol)
	if err != nil {
		return units.Quantity{}, err
	}
	if bearingThrust {
		return design.EquivalentAxialLoad(fr, fa, bearingY)
	}
	return design.EquivalentRadialLoad(fr, fa, bearingX, bearingY)
}
