package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/mechanics"
	"github.com/alexiusacademia/gomech/internal/units"
)

var (
	massDensity   string
	massDia       string
	massInner     string
	massLength    string
	massWidth     string
	massHeight    string
	massThickness string
	massUnit      string
)

var massCmd = &cobra.Command{
	Use:   "mass <rod|disk|prism|cylinder>",
	Short: "Mass and mass moments of inertia of simple solids",
	Long: `Mass and mass moments of inertia about the centroidal axes of a
homogeneous solid. Results are in kg and kg·m².

Shapes and their dimensions:
  rod       --dia --length             slender rod along x
  disk      --dia --thickness          thin disk, axis along x
  prism     --length --width --height  block, length along z
  cylinder  --dia --length [--inner]   solid or hollow cylinder, axis along x

Examples:
  gomech mass rod --dia "20 mm" --length "1 m"
  gomech mass cylinder --dia "4 in" --inner "3 in" --length "12 in" --density "0.284 lb/in^3"`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"rod", "disk", "prism", "cylinder"},
	RunE:      runMass,
}

func init() {
	rootCmd.AddCommand(massCmd)

	massCmd.Flags().StringVarP(&massDensity, "density", "r", "7850 kg/m^3", "material density")
	massCmd.Flags().StringVarP(&massDia, "dia", "D", "", "outer diameter")
	massCmd.Flags().StringVar(&massInner, "inner", "0 m", "inner diameter of a cylinder")
	massCmd.Flags().StringVarP(&massLength, "length", "L", "", "length")
	massCmd.Flags().StringVarP(&massWidth, "width", "W", "", "width of a prism")
	massCmd.Flags().StringVarP(&massHeight, "height", "H", "", "height of a prism")
	massCmd.Flags().StringVarP(&massThickness, "thickness", "t", "", "thickness of a disk")
	massCmd.Flags().StringVarP(&massUnit, "unit", "u", "", "length unit for bare numbers")
}

func runMass(cmd *cobra.Command, args []string) error {
	rho, err := quantityFlag("density", massDensity, "kg/m^3")
	if err != nil {
		return err
	}

	dims := map[string]string{
		"dia": massDia, "inner": massInner, "length": massLength,
		"width": massWidth, "height": massHeight, "thickness": massThickness,
	}
	need := map[string][]string{
		"rod":      {"dia", "length"},
		"disk":     {"dia", "thickness"},
		"prism":    {"length", "width", "height"},
		"cylinder": {"dia", "inner", "length"},
	}
	names, ok := need[args[0]]
	if !ok {
		return fmt.Errorf("unknown shape %q: want rod, disk, prism or cylinder", args[0])
	}
	q := make([]units.Quantity, len(names))
	for i, name := range names {
		if dims[name] == "" {
			return fmt.Errorf("%s needs --%s", args[0], name)
		}
		if q[i], err = quantityFlag(name, dims[name], massUnit); err != nil {
			return err
		}
	}

	var mp mechanics.MassProperties
	switch args[0] {
	case "rod":
		mp, err = mechanics.Rod(q[0], q[1], rho)
	case "disk":
		mp, err = mechanics.Disk(q[0], q[1], rho)
	case "prism":
		mp, err = mechanics.RectPrism(q[0], q[1], q[2], rho)
	case "cylinder":
		mp, err = mechanics.HollowCylinder(q[0], q[1], q[2], rho)
	}
	if err != nil {
		return err
	}

	printHeader("MASS PROPERTIES - " + strings.ToUpper(args[0]))
	w := newTabWriter()
	fmt.Fprintf(w, "  Density (ρ):\t%s\n", rho.Format(1))
	fmt.Fprintf(w, "  Mass (m):\t%s\n", mp.Mass.Format(4))
	fmt.Fprintf(w, "  Ix:\t%s\n", mp.Ix.Format(6))
	fmt.Fprintf(w, "  Iy:\t%s\n", mp.Iy.Format(6))
	fmt.Fprintf(w, "  Iz:\t%s\n", mp.Iz.Format(6))
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
