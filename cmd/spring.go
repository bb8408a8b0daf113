package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/design"
)

var (
	springStiffness  string
	springDeflection string
	springWire       string
	springCoil       string
	springCoils      float64
	springG          string
	springUnit       string
)

var springCmd = &cobra.Command{
	Use:   "spring",
	Short: "Spring rate and restoring force",
	Long: `Restoring force of a linear or torsional spring, or the rate of a
helical coil spring of round wire.

  F = -k·x                    linear (k in force/length) or torsional (torque/angle)
  k = G·d⁴ / (8·D³·Na)        helical coil spring, D = mean coil diameter

Examples:
  gomech spring --stiffness "20 N/mm" --deflection "15 mm"
  gomech spring --stiffness "2 N*m/rad" --deflection "90 deg"
  gomech spring --wire "2 mm" --coil "20 mm" --coils 10 --shear-modulus "79.3 GPa" --deflection "5 mm"`,
	Args: cobra.NoArgs,
	RunE: runSpring,
}

func init() {
	rootCmd.AddCommand(springCmd)

	springCmd.Flags().StringVarP(&springStiffness, "stiffness", "k", "", "spring stiffness, e.g. \"20 N/mm\"")
	springCmd.Flags().StringVarP(&springDeflection, "deflection", "x", "", "deflection, a length or an angle")
	springCmd.Flags().StringVar(&springWire, "wire", "", "wire diameter d")
	springCmd.Flags().StringVar(&springCoil, "coil", "", "mean coil diameter D")
	springCmd.Flags().Float64Var(&springCoils, "coils", 0, "number of active coils Na")
	springCmd.Flags().StringVarP(&springG, "shear-modulus", "G", "79.3 GPa", "shear modulus of the wire")
	springCmd.Flags().StringVarP(&springUnit, "unit", "u", "", "length unit for bare numbers")

	springCmd.MarkFlagsRequiredTogether("wire", "coil", "coils")
	springCmd.MarkFlagsOneRequired("stiffness", "wire")
	springCmd.MarkFlagsMutuallyExclusive("stiffness", "wire")
}

func runSpring(cmd *cobra.Command, args []string) error {
	printHeader("SPRING")

	var elem *design.SpringElement
	if springStiffness != "" {
		k, err := quantityFlag("stiffness", springStiffness, "")
		if err != nil {
			return err
		}
		if elem, err = design.NewSpringElement(k); err != nil {
			return err
		}
	} else {
		coil, err := coilSpring()
		if err != nil {
			return err
		}
		printSection("COIL SPRING")
		w := newTabWriter()
		fmt.Fprintf(w, "  Wire diameter (d):\t%s\n", coil.WireDia.Format(3))
		fmt.Fprintf(w, "  Mean coil diameter (D):\t%s\n", coil.CoilDia.Format(3))
		fmt.Fprintf(w, "  Active coils (Na):\t%g\n", coil.ActiveCoils)
		fmt.Fprintf(w, "  Shear modulus (G):\t%s\n", coil.ShearModulus.Format(1))
		fmt.Fprintf(w, "  Spring index (C = D/d):\t%.3f\n", coil.SpringIndex())
		w.Flush()
		fmt.Fprintln(out)
		if c := coil.SpringIndex(); c < 4 || c > 12 {
			fmt.Fprintln(out, WarningStyle.Render(fmt.Sprintf("  ⚠ spring index %.2f is outside the usual 4 to 12", c)))
			fmt.Fprintln(out)
		}
		elem = coil.Element()
	}

	printSection("STIFFNESS")
	w := newTabWriter()
	fmt.Fprintf(w, "  Kind:\t%s\n", elem.Kind)
	fmt.Fprintf(w, "  Rate (k):\t%s\n", elem.Stiffness.Format(4))
	if elem.Kind == design.Linear {
		fmt.Fprintf(w, "  \t%s\n", display(elem.Stiffness, "N/mm", 4))
	}
	w.Flush()
	fmt.Fprintln(out)

	if springDeflection == "" {
		return nil
	}
	fallback := springUnit
	if elem.Kind == design.Torsional {
		fallback = "deg"
	}
	x, err := quantityFlag("deflection", springDeflection, fallback)
	if err != nil {
		return err
	}
	f, err := elem.RestoringForce(x)
	if err != nil {
		return err
	}
	printSection("RESTORING FORCE")
	w = newTabWriter()
	fmt.Fprintf(w, "  Deflection:\t%s\n", x.Format(3))
	fmt.Fprintf(w, "  -k·x:\t%s\n", f.Format(4))
	w.Flush()
	fmt.Fprintln(out)
	return nil
}

func coilSpring() (*design.CoilSpring, error) {
	d, err := quantityFlag("wire", springWire, springUnit)
	if err != nil {
		return nil, err
	}
	dm, err := quantityFlag("coil", springCoil, firstNonEmpty(springUnit, d.Unit().Symbol))
	if err != nil {
		return nil, err
	}
	g, err := quantityFlag("shear-modulus", springG, "GPa")
	if err != nil {
		return nil, err
	}
	return design.NewCoilSpring(d, dm, springCoils, g)
}
