package cmd

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/mechanics"
	"github.com/alexiusacademia/gomech/internal/units"
)

var (
	tensorSX     string
	tensorSY     string
	tensorTXY    string
	tensorAngle  string
	tensorSweep  bool
)

var tensorCmd = &cobra.Command{
	Use:   "tensor",
	Short: "Plane stress transformation",
	Long: `Transform a plane stress state (σx, σy, τxy).

Reports principal stresses, maximum in-plane shear and the principal
angle; with --angle, the normal and shear stress on a plane rotated by
that angle. All results use the unit of σx.

Examples:
  gomech tensor --sx "100 MPa" --sy "50 MPa" --txy "10 MPa"
  gomech tensor --sx "12 ksi" --sy "-4 ksi" --txy "5 ksi" --angle "30 deg" --sweep`,
	Args: cobra.NoArgs,
	RunE: runTensor,
}

func init() {
	rootCmd.AddCommand(tensorCmd)

	tensorCmd.Flags().StringVar(&tensorSX, "sx", "", "normal stress σx [required]")
	tensorCmd.Flags().StringVar(&tensorSY, "sy", "0 Pa", "normal stress σy")
	tensorCmd.Flags().StringVar(&tensorTXY, "txy", "0 Pa", "shear stress τxy")
	tensorCmd.Flags().StringVarP(&tensorAngle, "angle", "a", "", "rotation of the plane, e.g. \"30 deg\"")
	tensorCmd.Flags().BoolVar(&tensorSweep, "sweep", false, "plot σ and τ against rotation from 0 to 180°")
	tensorCmd.MarkFlagRequired("sx")
}

func runTensor(cmd *cobra.Command, args []string) error {
	var qs [3]units.Quantity
	for i, f := range []struct{ name, val string }{{"sx", tensorSX}, {"sy", tensorSY}, {"txy", tensorTXY}} {
		q, err := quantityFlag(f.name, f.val, "")
		if err != nil {
			return err
		}
		qs[i] = q
	}
	st, err := mechanics.NewStressTensor(qs[0], qs[1], qs[2])
	if err != nil {
		return err
	}

	printHeader("PLANE STRESS TRANSFORMATION")

	printSection("INPUT DATA")
	w := newTabWriter()
	fmt.Fprintf(w, "  σx:\t%s\n", st.SigmaX().Format(3))
	fmt.Fprintf(w, "  σy:\t%s\n", st.SigmaY().Format(3))
	fmt.Fprintf(w, "  τxy:\t%s\n", st.TauXY().Format(3))
	w.Flush()
	fmt.Fprintln(out)

	printSection("PRINCIPAL STRESSES")
	w = newTabWriter()
	fmt.Fprintf(w, "  σ1:\t%s\n", st.Sigma1().Format(3))
	fmt.Fprintf(w, "  σ2:\t%s\n", st.Sigma2().Format(3))
	fmt.Fprintf(w, "  τmax (in-plane):\t%s\n", st.TauMax().Format(3))
	fmt.Fprintf(w, "  Mean normal stress:\t%s\n", st.Center().Format(3))
	fmt.Fprintf(w, "  Principal angle θp:\t%s\n", st.PrincipalAngle().Format(2))
	w.Flush()
	fmt.Fprintln(out)

	if tensorAngle != "" {
		theta, err := quantityFlag("angle", tensorAngle, "deg")
		if err != nil {
			return err
		}
		n, s, err := st.OnPlane(theta)
		if err != nil {
			return err
		}
		printSection(fmt.Sprintf("PLANE AT θ = %s", theta.Format(2)))
		w = newTabWriter()
		fmt.Fprintf(w, "  σ:\t%s\n", n.Format(3))
		fmt.Fprintf(w, "  τ:\t%s\n", s.Format(3))
		w.Flush()
		fmt.Fprintln(out)
	}

	if tensorSweep {
		plot, err := sweepPlot(st)
		if err != nil {
			return err
		}
		printSection("STRESS VS ROTATION")
		fmt.Fprintln(out, plot)
		fmt.Fprintln(out)
	}
	return nil
}

// sweepPlot charts σ(θ) and τ(θ) in one-degree steps.
func sweepPlot(st *mechanics.StressTensor) (string, error) {
	deg := catalog.MustUnit("deg")
	normal := make([]float64, 0, 181)
	shear := make([]float64, 0, 181)
	for d := 0; d <= 180; d++ {
		n, s, err := st.OnPlane(units.New(float64(d), deg))
		if err != nil {
			return "", err
		}
		normal = append(normal, n.Magnitude())
		shear = append(shear, s.Magnitude())
	}
	return asciigraph.PlotMany([][]float64{normal, shear},
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.Caption(fmt.Sprintf("σ (blue) and τ (red) in %s, θ = 0..180°", st.Unit().Symbol)),
	), nil
}
